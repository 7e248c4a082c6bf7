package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFavorites(t *testing.T) {
	favorites := ParseFavorites(" pasir-ris,,changi-beach , ")

	assert.Len(t, favorites, 2)
	assert.True(t, favorites.Has("pasir-ris"))
	assert.True(t, favorites.Has("changi-beach"))
	assert.False(t, favorites.Has("west-coast"))
	assert.Equal(t, "changi-beach,pasir-ris", favorites.String())
}

func TestParseFavoritesEmpty(t *testing.T) {
	assert.Empty(t, ParseFavorites(""))
	assert.Equal(t, "", ParseFavorites("").String())
}

func TestHaversine(t *testing.T) {
	assert.InDelta(t, 0, haversineKm(1.3, 103.9, 1.3, 103.9), 1e-9)
	assert.InDelta(t, 111.19, haversineKm(0, 0, 1, 0), 0.01)
	assert.InDelta(t, 20015.09, haversineKm(0, 0, 0, 180), 0.01)
}

func TestValidLocation(t *testing.T) {
	assert.True(t, ValidLocation(1.35, 103.8))
	assert.True(t, ValidLocation(-90, 180))
	assert.False(t, ValidLocation(90.1, 0))
	assert.False(t, ValidLocation(0, 180.5))
}

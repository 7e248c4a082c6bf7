package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestDayLabel(t *testing.T) {
	tests := []struct {
		name  string
		index int
		date  string
		tag   language.Tag
		want  string
	}{
		{"first is today", 0, "2024-05-02", language.English, "Today"},
		{"first is today in any language", 0, "2024-05-02", language.Portuguese, "Today"},
		{"english", 1, "2024-05-02", language.English, "Thu, May 2"},
		{"portuguese", 1, "2024-05-02", language.Portuguese, "qui., 2 de mai."},
		{"indonesian", 2, "2024-05-02", language.Indonesian, "Kam, 2 Mei"},
		{"malay", 3, "2024-05-02", language.Malay, "Kha, 2 Mei"},
		{"unsupported falls back to english", 1, "2024-12-31", language.French, "Tue, Dec 31"},
		{"unparsable date kept", 1, "tomorrow", language.English, "tomorrow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayLabel(tt.index, tt.date, tt.tag))
		})
	}
}

func TestMatchLanguage(t *testing.T) {
	assert.Equal(t, language.English, MatchLanguage(""))
	assert.Equal(t, language.English, MatchLanguage("en-US,en;q=0.9"))
	assert.Equal(t, language.Portuguese, MatchLanguage("pt-BR,pt;q=0.9,en;q=0.8"))
	assert.Equal(t, language.Indonesian, MatchLanguage("id-ID"))
	assert.Equal(t, language.Malay, MatchLanguage("ms"))
	assert.Equal(t, language.English, MatchLanguage("fr-FR"))
	assert.Equal(t, language.English, MatchLanguage(";;;"))
}

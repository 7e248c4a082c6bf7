package controller

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"beach-cleanup/internal/domain/model"
	"beach-cleanup/internal/domain/usecase/event"
	"beach-cleanup/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
)

const (
	favoritesCookie    = "favorites"
	lastLocationCookie = "last_location"
	cookieMaxAge       = 365 * 24 * time.Hour
)

func readFavorites(c echo.Context) event.Favorites {
	cookie, err := c.Cookie(favoritesCookie)
	if err != nil {
		return event.ParseFavorites("")
	}
	return event.ParseFavorites(cookie.Value)
}

func writeFavorites(c echo.Context, favorites event.Favorites) {
	c.SetCookie(newCookie(favoritesCookie, favorites.String()))
}

// readLastLocation parses the "lat,lon" cookie. ok is false when it is absent or malformed.
func readLastLocation(c echo.Context) (model.Location, bool) {
	cookie, err := c.Cookie(lastLocationCookie)
	if err != nil {
		return model.Location{}, false
	}
	parts := strings.Split(cookie.Value, ",")
	if len(parts) != 2 {
		return model.Location{}, false
	}
	latitude, err := numberutils.ToFloat64WithError(parts[0])
	if err != nil {
		return model.Location{}, false
	}
	longitude, err := numberutils.ToFloat64WithError(parts[1])
	if err != nil {
		return model.Location{}, false
	}
	return model.Location{Latitude: latitude, Longitude: longitude}, true
}

func writeLastLocation(c echo.Context, location model.Location) {
	c.SetCookie(newCookie(lastLocationCookie, fmt.Sprintf("%g,%g", location.Latitude, location.Longitude)))
}

func newCookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

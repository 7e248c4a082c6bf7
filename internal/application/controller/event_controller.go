package controller

import (
	"errors"
	"net/http"

	"beach-cleanup/internal/domain/model"
	"beach-cleanup/internal/domain/usecase/event"
	"beach-cleanup/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
)

type EventController struct {
	api     *echo.Group
	useCase event.UseCase
}

func NewEventController(api *echo.Group, useCase event.UseCase) *EventController {
	return &EventController{api: api, useCase: useCase}
}

// InitEventRoutes initializes cleanup event routes
func (controller *EventController) InitEventRoutes() {
	controller.api.GET("/api/events", controller.FindAll)
	controller.api.GET("/api/events/nearby", controller.FindNearby)
	controller.api.POST("/api/events/:id/favorite", controller.ToggleFavorite)
}

// FindAll godoc
// @Summary Get cleanup events
// @Description Retrieve cleanup events in date order, flagged with the favorites cookie
// @Tags events
// @Produce json
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} model.Page[model.EventView] "Paginated list of events"
// @Router /api/events [get]
func (controller *EventController) FindAll(c echo.Context) error {
	var page int = numberutils.ToIntWithDefault(c.QueryParam("page"), 0)
	var size int = numberutils.ToIntWithDefault(c.QueryParam("size"), 10)

	return c.JSON(http.StatusOK, controller.useCase.FindAll(page, size, readFavorites(c)))
}

// ToggleFavorite godoc
// @Summary Toggle a favorite event
// @Description Flips the event in the favorites cookie
// @Tags events
// @Produce json
// @Param id path string true "Event id"
// @Success 200 {object} model.FavoriteResponse "Event id and its new favorite flag"
// @Failure 404 {object} map[string]string "Event not found"
// @Router /api/events/{id}/favorite [post]
func (controller *EventController) ToggleFavorite(c echo.Context) error {
	id := c.Param("id")

	favorites, favorite, err := controller.useCase.ToggleFavorite(readFavorites(c), id)
	if errors.Is(err, event.ErrEventNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Event not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	writeFavorites(c, favorites)
	return c.JSON(http.StatusOK, model.FavoriteResponse{EventID: id, Favorite: favorite})
}

// FindNearby godoc
// @Summary Find cleanup events near a location
// @Description Sorts events by distance from lat/lon, or from the last_location cookie when both are omitted. The location is remembered in the cookie.
// @Tags events
// @Produce json
// @Param lat query number false "Latitude"
// @Param lon query number false "Longitude"
// @Param limit query int false "Maximum number of events"
// @Success 200 {object} model.NearbyResponse "Nearest events"
// @Failure 400 {object} map[string]string "Missing or invalid coordinates"
// @Router /api/events/nearby [get]
func (controller *EventController) FindNearby(c echo.Context) error {
	latParam, lonParam := c.QueryParam("lat"), c.QueryParam("lon")
	limit := numberutils.ToIntWithDefault(c.QueryParam("limit"), 0)

	var location model.Location
	if latParam == "" && lonParam == "" {
		remembered, ok := readLastLocation(c)
		if !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "lat and lon are required"})
		}
		location = remembered
	} else {
		latitude, latErr := numberutils.ToFloat64WithError(latParam)
		longitude, lonErr := numberutils.ToFloat64WithError(lonParam)
		if latErr != nil || lonErr != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid coordinates"})
		}
		location = model.Location{Latitude: latitude, Longitude: longitude}
	}

	events, err := controller.useCase.FindNearby(location, limit, readFavorites(c))
	if errors.Is(err, event.ErrInvalidCoordinates) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid coordinates"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	writeLastLocation(c, location)
	return c.JSON(http.StatusOK, model.NearbyResponse{Location: location, Events: events})
}

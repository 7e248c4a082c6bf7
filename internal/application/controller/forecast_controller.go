package controller

import (
	"net/http"

	"beach-cleanup/internal/application/widget"
	"beach-cleanup/internal/domain/usecase/forecast"
	"beach-cleanup/pkg/sse"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
)

type ForecastController struct {
	api      *echo.Group
	widget   *widget.ForecastWidget
	renderer widget.FragmentRenderer
}

func NewForecastController(api *echo.Group, forecastWidget *widget.ForecastWidget, renderer widget.FragmentRenderer) *ForecastController {
	return &ForecastController{api: api, widget: forecastWidget, renderer: renderer}
}

// InitForecastRoutes initializes forecast widget routes
func (controller *ForecastController) InitForecastRoutes() {
	controller.api.GET("/forecast/stream", controller.Stream)
	controller.api.GET("/forecast/widget", controller.Widget)
	controller.api.GET("/api/forecast", controller.FindForecast)
}

// Stream godoc
// @Summary Stream the forecast widget
// @Description Runs one widget load and pushes every render of the container as a "forecast" event, then a "done" event. Returns early when the client goes away.
// @Tags forecast
// @Produce text/event-stream
// @Param Accept-Language header string false "Preferred language for day labels"
// @Success 200 {string} string "Server-sent events"
// @Router /forecast/stream [get]
func (controller *ForecastController) Stream(c echo.Context) error {
	ctx := c.Request().Context()
	tag := requestLanguage(c)

	response := c.Response()
	flusher := sse.Prepare(response)
	container := widget.NewStreamContainer(response, flusher, controller.renderer)

	done := controller.widget.Load(ctx, container, tag)
	select {
	case <-done:
		container.Close()
	case <-ctx.Done():
		container.Abandon()
	}
	return nil
}

// Widget godoc
// @Summary Render the forecast widget
// @Description Renders the terminal forecast fragment in a single response. Any failure renders the fallback immediately.
// @Tags forecast
// @Produce html
// @Param Accept-Language header string false "Preferred language for day labels"
// @Success 200 {string} string "Forecast HTML fragment"
// @Router /forecast/widget [get]
func (controller *ForecastController) Widget(c echo.Context) error {
	tag := requestLanguage(c)
	view := controller.widget.Resolve(c.Request().Context(), tag)
	return c.Render(http.StatusOK, "forecast", view)
}

// FindForecast godoc
// @Summary Get the forecast view
// @Description Returns the terminal forecast view with its source, failure kind and day cards
// @Tags forecast
// @Produce json
// @Param Accept-Language header string false "Preferred language for day labels"
// @Success 200 {object} model.ForecastView "Forecast view"
// @Router /api/forecast [get]
func (controller *ForecastController) FindForecast(c echo.Context) error {
	tag := requestLanguage(c)
	return c.JSON(http.StatusOK, controller.widget.Resolve(c.Request().Context(), tag))
}

func requestLanguage(c echo.Context) language.Tag {
	return forecast.MatchLanguage(c.Request().Header.Get("Accept-Language"))
}

package controller

import (
	"net/http"
	"time"

	"beach-cleanup/internal/domain/entity"
	"beach-cleanup/internal/domain/model"
	"beach-cleanup/internal/domain/usecase/event"
	"beach-cleanup/pkg/log"
	"beach-cleanup/pkg/msg"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const pageTitle = "Beach Cleanup"

type PageController struct {
	api          *echo.Group
	eventUseCase event.UseCase
	stats        entity.PageStats
	basePath     string
}

func NewPageController(api *echo.Group, eventUseCase event.UseCase, stats entity.PageStats, basePath string) *PageController {
	return &PageController{api: api, eventUseCase: eventUseCase, stats: stats, basePath: basePath}
}

// InitPageRoutes initializes landing page routes
func (controller *PageController) InitPageRoutes() {
	controller.api.GET("/", controller.Index)
}

// Index godoc
// @Summary Render the landing page
// @Description Renders the landing page. The forecast container starts loading and is filled by the stream.
// @Tags page
// @Produce html
// @Param Accept-Language header string false "Preferred language"
// @Success 200 {string} string "Landing page"
// @Router / [get]
func (controller *PageController) Index(c echo.Context) error {
	start := time.Now()
	tag := requestLanguage(c)

	events := controller.eventUseCase.List(readFavorites(c))

	page := model.PageView{
		Title:    pageTitle,
		BasePath: controller.basePath,
		Lang:     tag.String(),
		Stats:    formatStats(controller.stats, tag),
		Events:   events,
		Forecast: model.ForecastView{
			State: model.StateLoading,
			Days:  []model.DayView{},
		},
		StreamPath:  controller.basePath + "/forecast/stream",
		WidgetPath:  controller.basePath + "/forecast/widget",
		GeneratedAt: start.UTC().Format(time.RFC3339),
	}

	if err := c.Render(http.StatusOK, "page", page); err != nil {
		return err
	}

	log.Debug(msg.GetMessage("app.page-rendered", time.Since(start)),
		zap.String("lang", page.Lang),
		zap.Int("events", len(page.Events)))
	return nil
}

func formatStats(stats entity.PageStats, tag language.Tag) []model.StatView {
	printer := message.NewPrinter(tag)
	stat := func(label string, value int64) model.StatView {
		return model.StatView{Label: label, Value: value, Formatted: printer.Sprintf("%d", value)}
	}
	return []model.StatView{
		stat("Volunteers", stats.Volunteers),
		stat("Kilograms Collected", stats.Kilograms),
		stat("Beaches Cleaned", stats.Beaches),
	}
}

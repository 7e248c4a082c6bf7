package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"beach-cleanup/internal/application/view"
	"beach-cleanup/internal/application/widget"
	"beach-cleanup/internal/domain/entity"
	"beach-cleanup/internal/domain/gateway/api"
	"beach-cleanup/internal/domain/gateway/catalog"
	"beach-cleanup/internal/domain/model"
	"beach-cleanup/internal/domain/usecase/event"
	"beach-cleanup/internal/domain/usecase/forecast"
	"beach-cleanup/internal/domain/usecase/health"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubForecastUseCase struct {
	forecast entity.ForecastSet
	err      error
}

func (s *stubForecastUseCase) Load(context.Context) (entity.ForecastSet, error) {
	return s.forecast, s.err
}

func (s *stubForecastUseCase) Refresh(context.Context) error { return s.err }

func (s *stubForecastUseCase) Fallback() entity.ForecastSet {
	return forecast.MockForecast(time.Now())
}

func (s *stubForecastUseCase) LastOutcome() forecast.Outcome { return forecast.Outcome{} }

func newTestServer(t *testing.T, forecastUseCase forecast.UseCase) *echo.Echo {
	t.Helper()

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	gateway, err := catalog.NewEventGateway([]entity.CleanupEvent{
		{ID: "east-coast-park", Title: "East Coast", Date: "2026-11-07", Time: "07:30", Latitude: 1.3008, Longitude: 103.9122},
		{ID: "changi-beach", Title: "Changi", Date: "2026-11-14", Time: "08:00", Latitude: 1.3911, Longitude: 103.9915},
		{ID: "pasir-ris", Title: "Pasir Ris", Date: "2026-11-28", Time: "07:00", Latitude: 1.3817, Longitude: 103.9527},
	})
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer
	group := e.Group("")

	eventUseCase := event.NewEventUseCase(gateway, 2)
	forecastWidget := widget.NewForecastWidget(forecastUseCase, 10*time.Millisecond)

	NewPageController(group, eventUseCase, entity.PageStats{Volunteers: 2847, Kilograms: 15420, Beaches: 36}, "").InitPageRoutes()
	NewForecastController(group, forecastWidget, renderer).InitForecastRoutes()
	NewEventController(group, eventUseCase).InitEventRoutes()
	NewHealthController(group, health.NewHealthUseCase(nil, forecastUseCase)).InitHealthRoutes()
	return e
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestIndexRendersPage(t *testing.T) {
	e := newTestServer(t, &stubForecastUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: favoritesCookie, Value: "changi-beach"})
	rec := serve(e, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<html lang="en">`)
	assert.Contains(t, body, "2,847")
	assert.Contains(t, body, "15,420")
	assert.Contains(t, body, `data-stream="/forecast/stream"`)
	assert.Contains(t, body, "Loading weather forecast...")
	assert.Equal(t, 3, strings.Count(body, `class="event-card"`))
	assert.Equal(t, 1, strings.Count(body, "favorite-btn active"))
}

func TestIndexFormatsStatsForLanguage(t *testing.T) {
	e := newTestServer(t, &stubForecastUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9")
	rec := serve(e, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<html lang="pt">`)
	assert.Contains(t, rec.Body.String(), "2.847")
}

func TestForecastStreamErrorTimeline(t *testing.T) {
	e := newTestServer(t, &stubForecastUseCase{err: api.ErrStatus})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/forecast/stream", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Equal(t, 3, strings.Count(body, "event: forecast\n"))
	assert.Equal(t, 1, strings.Count(body, "event: done\n"))

	loading := strings.Index(body, "Loading weather forecast...")
	failed := strings.Index(body, "Unable to load weather data")
	fallback := strings.Index(body, `data-source="fallback"`)
	assert.True(t, loading >= 0 && loading < failed && failed < fallback, "renders out of order:\n%s", body)
}

func TestForecastStreamLive(t *testing.T) {
	e := newTestServer(t, &stubForecastUseCase{forecast: entity.ForecastSet{{Date: "2024-05-01", ConditionText: "Sunny"}}})

	body := serve(e, httptest.NewRequest(http.MethodGet, "/forecast/stream", nil)).Body.String()

	assert.Equal(t, 2, strings.Count(body, "event: forecast\n"))
	assert.Contains(t, body, `data-source="live"`)
	assert.Contains(t, body, "fa-sun")
}

func TestForecastWidgetFallsBackImmediately(t *testing.T) {
	e := newTestServer(t, &stubForecastUseCase{err: api.ErrTransport})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/forecast/widget", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-source="fallback"`)
	assert.NotContains(t, rec.Body.String(), "Unable to load weather data")
	assert.Equal(t, 4, strings.Count(rec.Body.String(), `class="forecast-card"`))
}

func TestFindForecastJSON(t *testing.T) {
	e := newTestServer(t, &stubForecastUseCase{err: forecast.ErrShapeMismatch})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/forecast", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var view model.ForecastView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, model.StateFallback, view.State)
	assert.Equal(t, model.SourceFallback, view.Source)
	assert.Equal(t, forecast.FailureShapeMismatch, view.Failure)
	require.Len(t, view.Days, 4)
	assert.Equal(t, "Today", view.Days[0].Label)
}

func TestFindAllEvents(t *testing.T) {
	e := newTestServer(t, &stubForecastUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/api/events?page=0&size=2", nil)
	req.AddCookie(&http.Cookie{Name: favoritesCookie, Value: "east-coast-park"})
	rec := serve(e, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var page model.Page[model.EventView]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, int64(3), page.TotalElements)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "east-coast-park", page.Content[0].ID)
	assert.True(t, page.Content[0].Favorite)
	assert.False(t, page.Content[1].Favorite)
}

func TestToggleFavorite(t *testing.T) {
	e := newTestServer(t, &stubForecastUseCase{})

	rec := serve(e, httptest.NewRequest(http.MethodPost, "/api/events/pasir-ris/favorite", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var response model.FavoriteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, model.FavoriteResponse{EventID: "pasir-ris", Favorite: true}, response)

	cookie := responseCookie(rec, favoritesCookie)
	require.NotNil(t, cookie)
	assert.Equal(t, "pasir-ris", cookie.Value)

	req := httptest.NewRequest(http.MethodPost, "/api/events/pasir-ris/favorite", nil)
	req.AddCookie(&http.Cookie{Name: favoritesCookie, Value: cookie.Value})
	rec = serve(e, req)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.False(t, response.Favorite)
	assert.Equal(t, "", responseCookie(rec, favoritesCookie).Value)
}

func TestToggleFavoriteUnknownEvent(t *testing.T) {
	e := newTestServer(t, &stubForecastUseCase{})

	rec := serve(e, httptest.NewRequest(http.MethodPost, "/api/events/nowhere/favorite", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Nil(t, responseCookie(rec, favoritesCookie))
}

func TestFindNearby(t *testing.T) {
	e := newTestServer(t, &stubForecastUseCase{})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/events/nearby?lat=1.3008&lon=103.9122", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var response model.NearbyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Events, 2)
	assert.Equal(t, "east-coast-park", response.Events[0].ID)
	assert.Equal(t, "pasir-ris", response.Events[1].ID)

	cookie := responseCookie(rec, lastLocationCookie)
	require.NotNil(t, cookie)
	assert.Equal(t, "1.3008,103.9122", cookie.Value)
}

func TestFindNearbyUsesRememberedLocation(t *testing.T) {
	e := newTestServer(t, &stubForecastUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/api/events/nearby?limit=1", nil)
	req.AddCookie(&http.Cookie{Name: lastLocationCookie, Value: "1.3911,103.9915"})
	rec := serve(e, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var response model.NearbyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Events, 1)
	assert.Equal(t, "changi-beach", response.Events[0].ID)
}

func TestFindNearbyBadRequests(t *testing.T) {
	e := newTestServer(t, &stubForecastUseCase{})

	for _, target := range []string{
		"/api/events/nearby",
		"/api/events/nearby?lat=abc&lon=103.9",
		"/api/events/nearby?lat=1.3",
		"/api/events/nearby?lat=95&lon=103.9",
		"/api/events/nearby?lat=1.3&lon=-200",
	} {
		rec := serve(e, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Nil(t, responseCookie(rec, lastLocationCookie), target)
	}
}

func TestCheckHealth(t *testing.T) {
	e := newTestServer(t, &stubForecastUseCase{})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var response model.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, model.StatusUp, response.Status)
	assert.Equal(t, model.StatusDisabled, response.Cache.Status)
	assert.Equal(t, model.StatusUnknown, response.Upstream.Status)
}

func TestDocumentedRoutesAreRegistered(t *testing.T) {
	e := newTestServer(t, &stubForecastUseCase{})

	registered := map[string]bool{}
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, route := range []string{
		"GET /",
		"GET /forecast/stream",
		"GET /forecast/widget",
		"GET /api/forecast",
		"GET /api/events",
		"GET /api/events/nearby",
		"POST /api/events/:id/favorite",
		"GET /health",
	} {
		assert.True(t, registered[route], route)
	}
}

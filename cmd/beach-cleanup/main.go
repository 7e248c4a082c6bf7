package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"beach-cleanup/configs"
	"beach-cleanup/internal/application/controller"
	"beach-cleanup/internal/application/middleware"
	"beach-cleanup/internal/application/schedule"
	"beach-cleanup/internal/application/view"
	"beach-cleanup/internal/application/widget"
	"beach-cleanup/internal/domain/entity"
	"beach-cleanup/internal/domain/gateway/api"
	"beach-cleanup/internal/domain/gateway/cache"
	"beach-cleanup/internal/domain/gateway/catalog"
	"beach-cleanup/internal/domain/usecase/event"
	"beach-cleanup/internal/domain/usecase/forecast"
	"beach-cleanup/internal/domain/usecase/health"
	"beach-cleanup/pkg/http"
	"beach-cleanup/pkg/log"
	"beach-cleanup/pkg/msg"
	"beach-cleanup/pkg/redis"
	"beach-cleanup/pkg/resource"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	if err := configs.Load(); err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}
	defer log.Sync()

	log.SetLevel(resource.GetString("app.log.level"))
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatal("failed to load templates", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	middleware.SetupRequestLogger(e)

	basePath := resource.GetString("app.server.context-path")
	group := e.Group(basePath)

	// Init Cache
	forecastCache := cache.NewNoopForecastCache()
	var cacheChecker health.CacheChecker
	if resource.GetBool("app.cache.enabled") {
		redisClient, err := newRedisClient()
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer func() { _ = redisClient.Close() }()

		forecastCache = cache.NewRedisForecastCache(redisClient)
		cacheChecker = redis.NewHealthChecker(redisClient)
	}

	// Init Gateway
	forecastGateway := api.NewRateLimitedForecastGateway(
		api.NewForecastGateway(resource.GetString("app.forecast.url"), http.ClientOptions{
			ReadTimeout: resource.GetDurationOrDefault("app.forecast.read-timeout", 30*time.Second),
		}),
		resource.GetFloat64("app.forecast.rate-limit.rps"),
		resource.GetIntOrDefault("app.forecast.rate-limit.burst", 1),
	)

	eventsContent, err := configs.Events()
	if err != nil {
		log.Fatal("failed to read event catalog", zap.Error(err))
	}
	eventGateway, err := catalog.NewYAMLEventGateway(eventsContent)
	if err != nil {
		log.Fatal("failed to load event catalog", zap.Error(err))
	}

	// Init UseCase
	forecastUseCase := forecast.NewForecastUseCase(forecastGateway, forecastCache)
	eventUseCase := event.NewEventUseCase(eventGateway, resource.GetIntOrDefault("app.nearby.default-limit", 3))
	healthUseCase := health.NewHealthUseCase(cacheChecker, forecastUseCase)
	log.Info(msg.GetMessage("event.catalog-loaded", eventUseCase.Count()))

	forecastWidget := widget.NewForecastWidget(forecastUseCase,
		resource.GetDurationOrDefault("app.forecast.fallback-delay", widget.DefaultFallbackDelay))

	// Init Controller
	pageController := controller.NewPageController(group, eventUseCase, entity.PageStats{
		Volunteers: resource.GetInt64("app.stats.volunteers"),
		Kilograms:  resource.GetInt64("app.stats.kilograms"),
		Beaches:    resource.GetInt64("app.stats.beaches"),
	}, basePath)
	forecastController := controller.NewForecastController(group, forecastWidget, renderer)
	eventController := controller.NewEventController(group, eventUseCase)
	healthController := controller.NewHealthController(group, healthUseCase)

	// Init Routes
	pageController.InitPageRoutes()
	forecastController.InitForecastRoutes()
	eventController.InitEventRoutes()
	healthController.InitHealthRoutes()

	// Init Schedule
	if forecastCache.Enabled() {
		forecastScheduler := schedule.NewForecastScheduler(forecastUseCase,
			resource.GetString("app.cache.warmup-cron"),
			resource.GetDurationOrDefault("app.forecast.read-timeout", 30*time.Second))
		if err := forecastScheduler.InitForecastScheduleTasks(); err != nil {
			log.Fatal("failed to start forecast warm-up", zap.Error(err))
		}
		defer forecastScheduler.Stop()
	} else {
		log.Info(msg.GetMessage("forecast.cron.disabled"))
	}

	// Start Routes
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := resource.GetStringOrDefault("app.server.port", "8080")
	go func() {
		log.Info(msg.GetMessage("app.started", basePath, port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatal("server stopped unexpectedly", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shut down server", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stopped"))
}

func newRedisClient() (*redis.Client, error) {
	config := redis.NewRedisConfig().
		WithHost(resource.GetStringOrDefault("app.redis.host", "localhost")).
		WithPort(resource.GetIntOrDefault("app.redis.port", 6379)).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithCacheTTL(cache.ForecastCacheName, resource.GetDurationOrDefault("app.cache.ttl", 30*time.Minute))
	return redis.NewClient(config)
}

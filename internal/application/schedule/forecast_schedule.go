package schedule

import (
	"context"
	"time"

	"beach-cleanup/internal/domain/usecase/forecast"
	"beach-cleanup/pkg/log"
	"beach-cleanup/pkg/msg"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultRefreshTimeout = 30 * time.Second

// ForecastScheduler keeps the forecast cache warm so page loads rarely wait on the upstream
type ForecastScheduler struct {
	cron           *cron.Cron
	useCase        forecast.UseCase
	cronExpression string
	refreshTimeout time.Duration
}

func NewForecastScheduler(useCase forecast.UseCase, cronExpression string, refreshTimeout time.Duration) *ForecastScheduler {
	if refreshTimeout <= 0 {
		refreshTimeout = defaultRefreshTimeout
	}
	return &ForecastScheduler{
		cron:           cron.New(),
		useCase:        useCase,
		cronExpression: cronExpression,
		refreshTimeout: refreshTimeout,
	}
}

// InitForecastScheduleTasks registers the warm-up job and starts the cron
func (s *ForecastScheduler) InitForecastScheduleTasks() error {
	if _, err := s.cron.AddFunc(s.cronExpression, s.ExecuteScheduledTask); err != nil {
		return err
	}
	s.cron.Start()
	log.Infof("Forecast warm-up scheduler started with cron expression: %s", s.cronExpression)
	return nil
}

// ExecuteScheduledTask refreshes the cached forecast once
func (s *ForecastScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()
	log.Info(msg.GetMessage("forecast.cron.start"), zap.String("request_id", requestID))

	ctx, cancel := context.WithTimeout(context.Background(), s.refreshTimeout)
	defer cancel()

	if err := s.useCase.Refresh(ctx); err != nil {
		log.Error(msg.GetMessage("forecast.cron.failed", err), zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("forecast.cron.end"), zap.String("request_id", requestID))
}

// Stop waits for a running job and stops the scheduler
func (s *ForecastScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

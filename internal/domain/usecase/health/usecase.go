package health

import (
	"context"

	"beach-cleanup/internal/domain/model"
)

type UseCase interface {
	CheckHealth(ctx context.Context) model.HealthResponse
}

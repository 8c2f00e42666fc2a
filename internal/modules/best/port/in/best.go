package in

import (
	"context"

	"github.com/shivam2408/Self-Mediation-App/internal/modules/best/dto"
)

// Usecase tracks the longest gap ever recorded. Consider is called once for
// every interval the moment it closes; persistence failures are logged and
// swallowed, so neither method fails on storage trouble.
type Usecase interface {
	Current(ctx context.Context) (dto.BestOutput, error)
	Consider(ctx context.Context, durationMs int64) (dto.BestOutput, error)
}

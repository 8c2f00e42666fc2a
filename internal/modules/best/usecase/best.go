package usecase

import (
	"context"

	"github.com/shivam2408/Self-Mediation-App/internal/modules/best/dto"
	bestin "github.com/shivam2408/Self-Mediation-App/internal/modules/best/port/in"
	"github.com/shivam2408/Self-Mediation-App/internal/modules/best/service"
)

type Interactor struct {
	svc *service.BestService
}

func NewInteractor(svc *service.BestService) bestin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Current(ctx context.Context) (dto.BestOutput, error) {
	return dto.BestOutput{DurationMs: i.svc.Current(ctx)}, nil
}

func (i *Interactor) Consider(ctx context.Context, durationMs int64) (dto.BestOutput, error) {
	best, improved := i.svc.Consider(ctx, durationMs)
	return dto.BestOutput{DurationMs: best, Improved: improved}, nil
}

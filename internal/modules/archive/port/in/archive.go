package in

import (
	"context"

	"github.com/shivam2408/Self-Mediation-App/internal/modules/archive/dto"
)

// Usecase is the read-mostly surface over the archived sittings. The archive
// is newest first everywhere; Append puts new sittings at the head.
type Usecase interface {
	Append(ctx context.Context, input dto.AppendInput) (dto.SessionOutput, error)
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]dto.SessionOutput, error)
	GroupedByDay(ctx context.Context) ([]dto.DayGroupOutput, error)
	Totals(ctx context.Context) (dto.TotalsOutput, error)
}

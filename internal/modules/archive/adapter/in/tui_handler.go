package in

import (
	"context"

	"github.com/shivam2408/Self-Mediation-App/internal/modules/archive/dto"
	archivein "github.com/shivam2408/Self-Mediation-App/internal/modules/archive/port/in"
)

type TUIHandler struct {
	usecase archivein.Usecase
}

func NewTUIHandler(usecase archivein.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) GroupedByDay(ctx context.Context) ([]dto.DayGroupOutput, error) {
	return h.usecase.GroupedByDay(ctx)
}

func (h TUIHandler) Totals(ctx context.Context) (dto.TotalsOutput, error) {
	return h.usecase.Totals(ctx)
}

func (h TUIHandler) Delete(ctx context.Context, id int64) (bool, error) {
	return h.usecase.Delete(ctx, id)
}

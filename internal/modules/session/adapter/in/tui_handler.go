package in

import (
	"context"

	"github.com/shivam2408/Self-Mediation-App/internal/modules/session/dto"
	sessionin "github.com/shivam2408/Self-Mediation-App/internal/modules/session/port/in"
)

type TUIHandler struct {
	usecase sessionin.Usecase
}

func NewTUIHandler(usecase sessionin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Start(ctx context.Context) (dto.SnapshotOutput, error) {
	return h.usecase.Start(ctx)
}

func (h TUIHandler) Tick(ctx context.Context) (dto.SnapshotOutput, error) {
	return h.usecase.Tick(ctx)
}

func (h TUIHandler) RecordThought(ctx context.Context) (dto.SnapshotOutput, error) {
	return h.usecase.RecordThought(ctx)
}

func (h TUIHandler) TogglePause(ctx context.Context) (dto.SnapshotOutput, error) {
	return h.usecase.TogglePause(ctx)
}

func (h TUIHandler) End(ctx context.Context) (dto.EndOutput, error) {
	return h.usecase.End(ctx)
}

func (h TUIHandler) Snapshot(ctx context.Context) (dto.SnapshotOutput, error) {
	return h.usecase.Snapshot(ctx)
}

package in

import (
	"context"

	"github.com/shivam2408/Self-Mediation-App/internal/modules/session/dto"
)

// Usecase is the intent surface of the sitting engine. Intents that do not
// apply to the current phase are absorbed silently; callers read the
// returned snapshot instead of checking for rejection errors.
type Usecase interface {
	Start(ctx context.Context) (dto.SnapshotOutput, error)
	Tick(ctx context.Context) (dto.SnapshotOutput, error)
	RecordThought(ctx context.Context) (dto.SnapshotOutput, error)
	TogglePause(ctx context.Context) (dto.SnapshotOutput, error)
	End(ctx context.Context) (dto.EndOutput, error)
	Snapshot(ctx context.Context) (dto.SnapshotOutput, error)
}

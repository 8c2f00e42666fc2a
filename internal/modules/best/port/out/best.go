package out

import "context"

// Store persists the single personal-best value. Load returns zero (not an
// error) when nothing has been recorded yet.
type Store interface {
	Load(ctx context.Context) (int64, error)
	Save(ctx context.Context, durationMs int64) error
}

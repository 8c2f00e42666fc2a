package out

import (
	"context"

	"github.com/shivam2408/Self-Mediation-App/internal/modules/archive/domain"
)

// Store persists the whole archive in one shot. Save always writes the full
// newest-first collection; there is no partial update.
type Store interface {
	Load(ctx context.Context) ([]domain.Session, error)
	Save(ctx context.Context, sessions []domain.Session) error
}

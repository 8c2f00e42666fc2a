package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/shivam2408/Self-Mediation-App/internal/modules/best/domain"
	bestout "github.com/shivam2408/Self-Mediation-App/internal/modules/best/port/out"
)

// BestService holds the personal best in memory and writes every improvement
// through to the store. Unreadable stored state resets the record to zero
// rather than failing startup.
type BestService struct {
	store bestout.Store
	log   zerolog.Logger

	mu   sync.Mutex
	best int64
}

func NewBestService(store bestout.Store, log zerolog.Logger) *BestService {
	s := &BestService{store: store, log: log}
	best, err := store.Load(context.Background())
	if err != nil {
		s.log.Warn().Err(err).Msg("load personal best, starting from zero")
		best = 0
	}
	s.best = best
	return s
}

func (s *BestService) Current(_ context.Context) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best
}

// Consider raises the record when the candidate beats it and reports the
// (possibly unchanged) best. The write-through is best effort: a failed save
// keeps the improved value in memory for the rest of the run.
func (s *BestService) Consider(ctx context.Context, durationMs int64) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !domain.Improves(s.best, durationMs) {
		return s.best, false
	}
	s.best = durationMs
	if err := s.store.Save(ctx, s.best); err != nil {
		s.log.Warn().Err(err).Int64("duration_ms", durationMs).Msg("persist personal best")
	}
	return s.best, true
}

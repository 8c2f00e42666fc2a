package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/shivam2408/Self-Mediation-App/internal/modules/archive/domain"
	archiveout "github.com/shivam2408/Self-Mediation-App/internal/modules/archive/port/out"
)

// ArchiveService owns the in-memory archive, newest sitting first, and
// mirrors every change to the store. A store that cannot be read resets the
// archive to empty instead of failing startup; failed writes are logged and
// the in-memory state stays authoritative for the rest of the run.
type ArchiveService struct {
	store archiveout.Store
	log   zerolog.Logger

	mu       sync.Mutex
	sessions []domain.Session
}

func NewArchiveService(store archiveout.Store, log zerolog.Logger) *ArchiveService {
	s := &ArchiveService{store: store, log: log}
	sessions, err := store.Load(context.Background())
	if err != nil {
		s.log.Warn().Err(err).Msg("load session archive, starting empty")
		sessions = nil
	}
	s.sessions = sessions
	return s
}

func (s *ArchiveService) Append(ctx context.Context, session domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = append([]domain.Session{session}, s.sessions...)
	s.persistLocked(ctx)
}

// Delete removes the sitting with the given id and reports whether anything
// changed. Unknown ids are a quiet no-op and leave the store untouched.
func (s *ArchiveService) Delete(ctx context.Context, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtered := make([]domain.Session, 0, len(s.sessions))
	removed := false
	for _, session := range s.sessions {
		if session.ID == id {
			removed = true
			continue
		}
		filtered = append(filtered, session)
	}
	if !removed {
		return false
	}
	s.sessions = filtered
	s.persistLocked(ctx)
	return true
}

func (s *ArchiveService) List(_ context.Context) []domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Session(nil), s.sessions...)
}

func (s *ArchiveService) GroupedByDay(_ context.Context, loc *time.Location) []domain.DayGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.GroupByDay(s.sessions, loc)
}

func (s *ArchiveService) Totals(_ context.Context) domain.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Summarize(s.sessions)
}

func (s *ArchiveService) persistLocked(ctx context.Context) {
	if err := s.store.Save(ctx, s.sessions); err != nil {
		s.log.Warn().Err(err).Int("sessions", len(s.sessions)).Msg("persist session archive")
	}
}

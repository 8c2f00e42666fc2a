package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shivam2408/Self-Mediation-App/internal/modules/archive/domain"
)

type fakeStore struct {
	sessions []domain.Session
	loadErr  error
	saveErr  error
	saves    int
}

func (f *fakeStore) Load(context.Context) ([]domain.Session, error) {
	return f.sessions, f.loadErr
}

func (f *fakeStore) Save(_ context.Context, sessions []domain.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.sessions = append([]domain.Session(nil), sessions...)
	f.saves++
	return nil
}

func archived(id int64) domain.Session {
	return domain.Session{
		ID:              id,
		DateISO:         "2026-03-09T10:00:00.000Z",
		Intervals:       []domain.Interval{{ID: 1, DurationMs: 800, TimestampMs: id}},
		TotalDurationMs: 1_000,
		ThoughtCount:    1,
		LongestGapMs:    800,
		AvgGapMs:        800,
	}
}

func TestAppendPutsNewestFirstAndPersistsAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := &fakeStore{sessions: []domain.Session{archived(1)}}
	svc := NewArchiveService(store, zerolog.Nop())

	svc.Append(ctx, archived(2))
	svc.Append(ctx, archived(3))

	got := svc.List(ctx)
	if len(got) != 3 || got[0].ID != 3 || got[1].ID != 2 || got[2].ID != 1 {
		t.Fatalf("list order = %+v", got)
	}
	if store.saves != 2 {
		t.Fatalf("saves = %d, want one per append", store.saves)
	}
	if len(store.sessions) != 3 || store.sessions[0].ID != 3 {
		t.Fatalf("store holds %+v", store.sessions)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := &fakeStore{sessions: []domain.Session{archived(2), archived(1)}}
	svc := NewArchiveService(store, zerolog.Nop())

	if !svc.Delete(ctx, 1) {
		t.Fatal("delete of an existing sitting reported no change")
	}
	if svc.Delete(ctx, 1) {
		t.Fatal("second delete of the same id reported a change")
	}
	if svc.Delete(ctx, 99) {
		t.Fatal("delete of an unknown id reported a change")
	}

	if got := svc.List(ctx); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("list after delete = %+v", got)
	}
	// Only the effective delete hit the store.
	if store.saves != 1 {
		t.Fatalf("saves = %d, want 1", store.saves)
	}
}

func TestUnreadableStoreStartsEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := &fakeStore{loadErr: errors.New("corrupt archive")}
	svc := NewArchiveService(store, zerolog.Nop())

	if got := svc.List(ctx); len(got) != 0 {
		t.Fatalf("list after failed load = %+v", got)
	}

	// The archive still works, and the next write replaces the bad state.
	svc.Append(ctx, archived(5))
	if got := svc.List(ctx); len(got) != 1 {
		t.Fatalf("list after append = %+v", got)
	}
	if len(store.sessions) != 1 || store.sessions[0].ID != 5 {
		t.Fatalf("store after append = %+v", store.sessions)
	}
}

func TestFailedSaveKeepsMemoryAuthoritative(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := &fakeStore{saveErr: errors.New("disk full")}
	svc := NewArchiveService(store, zerolog.Nop())

	svc.Append(ctx, archived(7))
	if got := svc.List(ctx); len(got) != 1 || got[0].ID != 7 {
		t.Fatalf("list after failed save = %+v", got)
	}
}

func TestListReturnsACopy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewArchiveService(&fakeStore{sessions: []domain.Session{archived(1)}}, zerolog.Nop())

	got := svc.List(ctx)
	got[0].ID = 42

	if again := svc.List(ctx); again[0].ID != 1 {
		t.Fatal("callers can mutate the archive through List")
	}
}

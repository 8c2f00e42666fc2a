package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/shivam2408/Self-Mediation-App/internal/modules/archive/domain"
	"github.com/shivam2408/Self-Mediation-App/internal/modules/archive/dto"
	"github.com/shivam2408/Self-Mediation-App/internal/modules/archive/service"
)

type memoryStore struct {
	sessions []domain.Session
}

func (m *memoryStore) Load(context.Context) ([]domain.Session, error) {
	return m.sessions, nil
}

func (m *memoryStore) Save(_ context.Context, sessions []domain.Session) error {
	m.sessions = append([]domain.Session(nil), sessions...)
	return nil
}

func newUsecase(seed ...domain.Session) (*memoryStore, *Interactor) {
	store := &memoryStore{sessions: seed}
	svc := service.NewArchiveService(store, zerolog.Nop())
	return store, NewInteractor(svc, time.UTC).(*Interactor)
}

func appendInput(id int64, dateISO string, gaps ...int64) dto.AppendInput {
	input := dto.AppendInput{ID: id, DateISO: dateISO, ThoughtCount: len(gaps)}
	var sum int64
	for n, gap := range gaps {
		input.Intervals = append(input.Intervals, dto.IntervalInput{ID: n + 1, DurationMs: gap, TimestampMs: id})
		sum += gap
		if gap > input.LongestGapMs {
			input.LongestGapMs = gap
		}
		input.TotalDurationMs += gap
	}
	if len(gaps) > 0 {
		input.AvgGapMs = float64(sum) / float64(len(gaps))
	}
	return input
}

func TestAppendValidatesAndStores(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, uc := newUsecase()

	out, err := uc.Append(ctx, appendInput(100, "2026-03-09T10:00:00.000Z", 700, 1_300))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if out.ID != 100 || out.ThoughtCount != 2 || out.AvgGapMs != 1_000 {
		t.Fatalf("output = %+v", out)
	}
	if len(store.sessions) != 1 {
		t.Fatalf("store = %+v", store.sessions)
	}

	bad := appendInput(101, "2026-03-09T11:00:00.000Z", 700)
	bad.ThoughtCount = 3
	if _, err := uc.Append(ctx, bad); err == nil {
		t.Fatal("append accepted an inconsistent record")
	}
	if len(store.sessions) != 1 {
		t.Fatal("rejected record still reached the store")
	}
}

func TestGroupedByDayUsesConfiguredLocation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, uc := newUsecase()

	for _, in := range []dto.AppendInput{
		appendInput(1, "2026-03-09T09:00:00.000Z", 900),
		appendInput(2, "2026-03-09T21:00:00.000Z", 800),
		appendInput(3, "2026-03-10T08:00:00.000Z", 700),
	} {
		if _, err := uc.Append(ctx, in); err != nil {
			t.Fatalf("append %d: %v", in.ID, err)
		}
	}

	groups, err := uc.GroupedByDay(ctx)
	if err != nil {
		t.Fatalf("grouped: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("groups = %+v", groups)
	}
	// Appends stack newest first, so the 10th leads.
	if groups[0].Day != "Tue, 10 Mar 2026" || len(groups[0].Sessions) != 1 {
		t.Fatalf("first group = %+v", groups[0])
	}
	if groups[1].Day != "Mon, 09 Mar 2026" || len(groups[1].Sessions) != 2 {
		t.Fatalf("second group = %+v", groups[1])
	}
	if groups[1].Sessions[0].ID != 2 || groups[1].Sessions[1].ID != 1 {
		t.Fatalf("second group order = %+v", groups[1].Sessions)
	}
}

func TestDeleteReportsWhetherAnythingChanged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, uc := newUsecase()
	if _, err := uc.Append(ctx, appendInput(7, "2026-03-09T10:00:00.000Z", 600)); err != nil {
		t.Fatalf("append: %v", err)
	}

	removed, err := uc.Delete(ctx, 7)
	if err != nil || !removed {
		t.Fatalf("delete = (%v, %v)", removed, err)
	}
	removed, err = uc.Delete(ctx, 7)
	if err != nil || removed {
		t.Fatalf("repeat delete = (%v, %v)", removed, err)
	}

	list, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("list = %+v", list)
	}
}

func TestTotalsAcrossSittings(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, uc := newUsecase()
	if _, err := uc.Append(ctx, appendInput(1, "2026-03-09T10:00:00.000Z", 1_000, 1_000, 1_000, 1_000)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := uc.Append(ctx, appendInput(2, "2026-03-10T10:00:00.000Z", 500)); err != nil {
		t.Fatalf("append: %v", err)
	}

	totals, err := uc.Totals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if totals.Sessions != 2 || totals.Thoughts != 5 {
		t.Fatalf("totals = %+v", totals)
	}
	if totals.AvgGapMs != 750 {
		t.Fatalf("AvgGapMs = %v, want the mean of sitting averages", totals.AvgGapMs)
	}
}

package usecase

import (
	"context"
	"time"

	"github.com/shivam2408/Self-Mediation-App/internal/modules/archive/domain"
	"github.com/shivam2408/Self-Mediation-App/internal/modules/archive/dto"
	archivein "github.com/shivam2408/Self-Mediation-App/internal/modules/archive/port/in"
	"github.com/shivam2408/Self-Mediation-App/internal/modules/archive/service"
)

type Interactor struct {
	svc *service.ArchiveService
	loc *time.Location
}

// NewInteractor builds the archive usecase. The location decides which local
// calendar day a sitting belongs to in the grouped view.
func NewInteractor(svc *service.ArchiveService, loc *time.Location) archivein.Usecase {
	return &Interactor{svc: svc, loc: loc}
}

func (i *Interactor) Append(ctx context.Context, input dto.AppendInput) (dto.SessionOutput, error) {
	session := fromAppendInput(input)
	if err := session.Validate(); err != nil {
		return dto.SessionOutput{}, err
	}
	i.svc.Append(ctx, session)
	return toSessionOutput(session), nil
}

func (i *Interactor) Delete(ctx context.Context, id int64) (bool, error) {
	return i.svc.Delete(ctx, id), nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.SessionOutput, error) {
	sessions := i.svc.List(ctx)
	out := make([]dto.SessionOutput, len(sessions))
	for n, session := range sessions {
		out[n] = toSessionOutput(session)
	}
	return out, nil
}

func (i *Interactor) GroupedByDay(ctx context.Context) ([]dto.DayGroupOutput, error) {
	groups := i.svc.GroupedByDay(ctx, i.loc)
	out := make([]dto.DayGroupOutput, len(groups))
	for n, group := range groups {
		sessions := make([]dto.SessionOutput, len(group.Sessions))
		for m, session := range group.Sessions {
			sessions[m] = toSessionOutput(session)
		}
		out[n] = dto.DayGroupOutput{Day: group.Day, Sessions: sessions}
	}
	return out, nil
}

func (i *Interactor) Totals(ctx context.Context) (dto.TotalsOutput, error) {
	totals := i.svc.Totals(ctx)
	return dto.TotalsOutput{
		Sessions:   totals.Sessions,
		Thoughts:   totals.Thoughts,
		DurationMs: totals.DurationMs,
		AvgGapMs:   totals.AvgGapMs,
	}, nil
}

func fromAppendInput(input dto.AppendInput) domain.Session {
	intervals := make([]domain.Interval, len(input.Intervals))
	for n, iv := range input.Intervals {
		intervals[n] = domain.Interval{ID: iv.ID, DurationMs: iv.DurationMs, TimestampMs: iv.TimestampMs}
	}
	return domain.Session{
		ID:              input.ID,
		DateISO:         input.DateISO,
		Intervals:       intervals,
		TotalDurationMs: input.TotalDurationMs,
		ThoughtCount:    input.ThoughtCount,
		LongestGapMs:    input.LongestGapMs,
		AvgGapMs:        input.AvgGapMs,
	}
}

func toSessionOutput(session domain.Session) dto.SessionOutput {
	intervals := make([]dto.IntervalOutput, len(session.Intervals))
	for n, iv := range session.Intervals {
		intervals[n] = dto.IntervalOutput{ID: iv.ID, DurationMs: iv.DurationMs, TimestampMs: iv.TimestampMs}
	}
	return dto.SessionOutput{
		ID:              session.ID,
		DateISO:         session.DateISO,
		Intervals:       intervals,
		TotalDurationMs: session.TotalDurationMs,
		ThoughtCount:    session.ThoughtCount,
		LongestGapMs:    session.LongestGapMs,
		AvgGapMs:        session.AvgGapMs,
	}
}

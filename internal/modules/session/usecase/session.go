package usecase

import (
	"context"

	"github.com/rs/zerolog"

	archivedto "github.com/shivam2408/Self-Mediation-App/internal/modules/archive/dto"
	archivein "github.com/shivam2408/Self-Mediation-App/internal/modules/archive/port/in"
	bestin "github.com/shivam2408/Self-Mediation-App/internal/modules/best/port/in"
	"github.com/shivam2408/Self-Mediation-App/internal/modules/session/domain"
	sessiondto "github.com/shivam2408/Self-Mediation-App/internal/modules/session/dto"
	sessionin "github.com/shivam2408/Self-Mediation-App/internal/modules/session/port/in"
	"github.com/shivam2408/Self-Mediation-App/internal/modules/session/service"
)

// Interactor drives the sitting engine and fans its results out to the other
// modules: every closed interval goes to the personal-best tracker the
// moment it closes, and a finished sitting goes to the archive. Neither
// side effect can fail a sitting; trouble there is logged and swallowed.
type Interactor struct {
	svc     *service.SessionService
	best    bestin.Usecase
	archive archivein.Usecase
	log     zerolog.Logger
}

func NewInteractor(svc *service.SessionService, best bestin.Usecase, archive archivein.Usecase, log zerolog.Logger) sessionin.Usecase {
	return &Interactor{svc: svc, best: best, archive: archive, log: log}
}

func (i *Interactor) Start(ctx context.Context) (sessiondto.SnapshotOutput, error) {
	return i.snapshotOutput(ctx, i.svc.Start(ctx)), nil
}

func (i *Interactor) Tick(ctx context.Context) (sessiondto.SnapshotOutput, error) {
	return i.snapshotOutput(ctx, i.svc.Tick(ctx)), nil
}

func (i *Interactor) RecordThought(ctx context.Context) (sessiondto.SnapshotOutput, error) {
	iv, snap, closed := i.svc.RecordThought(ctx)
	out := i.snapshotOutput(ctx, snap)
	if !closed {
		return out, nil
	}
	best, err := i.best.Consider(ctx, iv.DurationMs)
	if err != nil {
		i.log.Warn().Err(err).Msg("consider closed interval")
		return out, nil
	}
	out.BestGapMs = best.DurationMs
	return out, nil
}

func (i *Interactor) TogglePause(ctx context.Context) (sessiondto.SnapshotOutput, error) {
	return i.snapshotOutput(ctx, i.svc.TogglePause(ctx)), nil
}

func (i *Interactor) End(ctx context.Context) (sessiondto.EndOutput, error) {
	summary, tail, ok := i.svc.End(ctx)
	if !ok {
		return sessiondto.EndOutput{}, nil
	}
	// The synthetic tail interval closed during finalize, so it gets the
	// same personal-best treatment as every other close.
	if tail != nil {
		if _, err := i.best.Consider(ctx, tail.DurationMs); err != nil {
			i.log.Warn().Err(err).Msg("consider tail interval")
		}
	}
	if _, err := i.archive.Append(ctx, toAppendInput(summary)); err != nil {
		i.log.Warn().Err(err).Int64("session_id", summary.ID).Msg("archive sitting")
	}
	return sessiondto.EndOutput{
		Archived:        true,
		SessionID:       summary.ID,
		ThoughtCount:    summary.ThoughtCount,
		TotalDurationMs: summary.TotalDurationMs,
		LongestGapMs:    summary.LongestGapMs,
		AvgGapMs:        summary.AvgGapMs,
	}, nil
}

func (i *Interactor) Snapshot(ctx context.Context) (sessiondto.SnapshotOutput, error) {
	return i.snapshotOutput(ctx, i.svc.Snapshot(ctx)), nil
}

func (i *Interactor) snapshotOutput(ctx context.Context, snap domain.Snapshot) sessiondto.SnapshotOutput {
	out := sessiondto.SnapshotOutput{
		Active:       snap.Phase != domain.PhaseIdle,
		Paused:       snap.Phase == domain.PhasePaused,
		ElapsedMs:    snap.ElapsedMs,
		ThoughtCount: snap.ThoughtCount,
		LastGapMs:    snap.LastGapMs,
	}
	if best, err := i.best.Current(ctx); err == nil {
		out.BestGapMs = best.DurationMs
	}
	return out
}

func toAppendInput(summary domain.Summary) archivedto.AppendInput {
	intervals := make([]archivedto.IntervalInput, len(summary.Intervals))
	for n, iv := range summary.Intervals {
		intervals[n] = archivedto.IntervalInput{ID: iv.ID, DurationMs: iv.DurationMs, TimestampMs: iv.TimestampMs}
	}
	return archivedto.AppendInput{
		ID:              summary.ID,
		DateISO:         summary.DateISO,
		Intervals:       intervals,
		TotalDurationMs: summary.TotalDurationMs,
		ThoughtCount:    summary.ThoughtCount,
		LongestGapMs:    summary.LongestGapMs,
		AvgGapMs:        summary.AvgGapMs,
	}
}

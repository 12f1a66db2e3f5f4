package usecase

import (
	"context"
	"fmt"
	"time"

	"tempo/internal/modules/tracker/domain"
	"tempo/internal/modules/tracker/dto"
	trackerin "tempo/internal/modules/tracker/port/in"
	trackerout "tempo/internal/modules/tracker/port/out"
	"tempo/internal/modules/tracker/service"
	apperrors "tempo/internal/platform/errors"
	"tempo/internal/platform/tx"
)

type Interactor struct {
	svc        *service.TrackerService
	active     trackerout.ActiveSessionStore
	activities trackerout.ActivityPort
	journal    trackerout.JournalStore
	txm        tx.Manager
}

func NewInteractor(svc *service.TrackerService, active trackerout.ActiveSessionStore, activities trackerout.ActivityPort, journal trackerout.JournalStore, txm tx.Manager) trackerin.Usecase {
	return &Interactor{svc: svc, active: active, activities: activities, journal: journal, txm: txm}
}

// Start enforces the global single-active-session invariant by reading the
// explicit active handle before creating anything. A concurrent session
// leaves the existing one untouched.
func (i *Interactor) Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error) {
	if _, err := i.active.LoadActive(ctx); err == nil {
		return dto.StartOutput{}, apperrors.ErrActiveSessionExists
	} else if err != apperrors.ErrNoActiveSession {
		return dto.StartOutput{}, err
	}

	info, err := i.activities.Get(ctx, input.ActivityID)
	if err != nil {
		return dto.StartOutput{}, err
	}
	session, err := i.svc.Begin(ctx, info.ID, info.Kind, info.Title)
	if err != nil {
		return dto.StartOutput{}, err
	}
	if err := i.activities.SetStatus(ctx, info.ID, "in_progress"); err != nil {
		return dto.StartOutput{}, err
	}
	if err := i.active.SaveActive(ctx, session); err != nil {
		return dto.StartOutput{}, err
	}
	return dto.StartOutput{
		SessionID:     session.ID,
		ActivityID:    session.ActivityID,
		ActivityTitle: session.ActivityTitle,
		StartedAt:     session.StartTime,
	}, nil
}

func (i *Interactor) Pause(ctx context.Context, input dto.PauseInput) (dto.ActiveSessionOutput, error) {
	session, err := i.resolveCurrent(ctx, input.SessionID)
	if err != nil {
		return dto.ActiveSessionOutput{}, err
	}
	if err := i.svc.Pause(ctx, &session); err != nil {
		return dto.ActiveSessionOutput{}, err
	}
	if err := i.activities.SetStatus(ctx, session.ActivityID, "paused"); err != nil {
		return dto.ActiveSessionOutput{}, err
	}
	if err := i.active.SaveActive(ctx, session); err != nil {
		return dto.ActiveSessionOutput{}, err
	}
	return i.toActiveOutput(session), nil
}

func (i *Interactor) Resume(ctx context.Context, input dto.ResumeInput) (dto.ActiveSessionOutput, error) {
	session, err := i.resolveCurrent(ctx, input.SessionID)
	if err != nil {
		return dto.ActiveSessionOutput{}, err
	}
	if err := i.svc.Resume(ctx, &session); err != nil {
		return dto.ActiveSessionOutput{}, err
	}
	if err := i.activities.SetStatus(ctx, session.ActivityID, "in_progress"); err != nil {
		return dto.ActiveSessionOutput{}, err
	}
	if err := i.active.SaveActive(ctx, session); err != nil {
		return dto.ActiveSessionOutput{}, err
	}
	return i.toActiveOutput(session), nil
}

// Stop closes the session, classifies completion against the activity's
// scheduled duration and commits the done status in one transactional
// boundary. Only then is the active handle released.
func (i *Interactor) Stop(ctx context.Context, input dto.StopInput) (dto.StopOutput, error) {
	session, err := i.resolveCurrent(ctx, input.SessionID)
	if err != nil {
		return dto.StopOutput{}, err
	}
	info, err := i.activities.Get(ctx, session.ActivityID)
	if err != nil {
		return dto.StopOutput{}, err
	}

	out := dto.StopOutput{}
	err = i.txm.Within(ctx, func(ctx context.Context) error {
		pct, substatus, err := i.svc.Stop(ctx, &session, info.TargetSeconds, input.Notes)
		if err != nil {
			return err
		}
		if err := i.activities.MarkDone(ctx, session.ActivityID, string(substatus), pct); err != nil {
			return err
		}
		path, err := i.journal.Save(ctx, session, pct, string(substatus))
		if err != nil {
			return err
		}
		out = dto.StopOutput{
			SessionID:       session.ID,
			ActivityID:      session.ActivityID,
			DurationSeconds: session.DurationSeconds,
			PausedSeconds:   session.PausedSeconds,
			CompletionPct:   pct,
			Substatus:       string(substatus),
			JournalPath:     path,
		}
		return nil
	})
	if err != nil {
		return dto.StopOutput{}, err
	}
	if err := i.active.ClearActive(ctx); err != nil {
		return dto.StopOutput{}, err
	}
	return out, nil
}

// Cancel discards the session's effort. The target activity's status returns
// to pending; no completion is computed or persisted.
func (i *Interactor) Cancel(ctx context.Context, input dto.CancelInput) (dto.CancelOutput, error) {
	session, err := i.resolveCurrent(ctx, input.SessionID)
	if err != nil {
		return dto.CancelOutput{}, err
	}
	if err := i.svc.Cancel(ctx, &session, input.Reason); err != nil {
		return dto.CancelOutput{}, err
	}
	if err := i.activities.SetStatus(ctx, session.ActivityID, "pending"); err != nil {
		return dto.CancelOutput{}, err
	}
	if err := i.active.ClearActive(ctx); err != nil {
		return dto.CancelOutput{}, err
	}
	return dto.CancelOutput{SessionID: session.ID, ActivityID: session.ActivityID}, nil
}

// LogManual records retroactive effort. Exactly one of the explicit interval
// or the duration form must be supplied; classification reuses the stop-path
// formula so both entry points grade identically.
func (i *Interactor) LogManual(ctx context.Context, input dto.ManualLogInput) (dto.StopOutput, error) {
	hasInterval := input.Start != nil || input.End != nil
	hasDuration := input.DurationMinutes != 0
	if hasInterval == hasDuration {
		return dto.StopOutput{}, fmt.Errorf("%w: provide either an explicit interval or a duration, not both", apperrors.ErrInvalidInput)
	}
	if hasInterval && (input.Start == nil || input.End == nil) {
		return dto.StopOutput{}, fmt.Errorf("%w: an explicit interval needs both start and end", apperrors.ErrInvalidInput)
	}

	info, err := i.activities.Get(ctx, input.ActivityID)
	if err != nil {
		return dto.StopOutput{}, err
	}

	var start, end time.Time
	if hasInterval {
		start, end = *input.Start, *input.End
	} else {
		start, end, err = i.svc.IntervalFromDuration(input.DurationMinutes)
		if err != nil {
			return dto.StopOutput{}, err
		}
	}

	out := dto.StopOutput{}
	err = i.txm.Within(ctx, func(ctx context.Context) error {
		session, pct, substatus, err := i.svc.LogManual(ctx, info.ID, info.Kind, info.Title, start, end, info.TargetSeconds, input.Notes)
		if err != nil {
			return err
		}
		if err := i.activities.MarkDone(ctx, session.ActivityID, string(substatus), pct); err != nil {
			return err
		}
		path, err := i.journal.Save(ctx, session, pct, string(substatus))
		if err != nil {
			return err
		}
		out = dto.StopOutput{
			SessionID:       session.ID,
			ActivityID:      session.ActivityID,
			DurationSeconds: session.DurationSeconds,
			PausedSeconds:   session.PausedSeconds,
			CompletionPct:   pct,
			Substatus:       string(substatus),
			JournalPath:     path,
		}
		return nil
	})
	if err != nil {
		return dto.StopOutput{}, err
	}
	return out, nil
}

func (i *Interactor) GetActive(ctx context.Context) (dto.ActiveSessionOutput, error) {
	session, err := i.active.LoadActive(ctx)
	if err != nil {
		return dto.ActiveSessionOutput{}, err
	}
	return i.toActiveOutput(session), nil
}

func (i *Interactor) ListSessions(ctx context.Context, from, to time.Time) ([]dto.SessionOutput, error) {
	sessions, err := i.svc.List(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SessionOutput, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, dto.SessionOutput{
			SessionID:       session.ID,
			ActivityID:      session.ActivityID,
			ActivityKind:    session.ActivityKind,
			ActivityTitle:   session.ActivityTitle,
			State:           string(session.State),
			StartedAt:       session.StartTime,
			EndedAt:         session.EndTime,
			DurationSeconds: session.DurationSeconds,
			PausedSeconds:   session.PausedSeconds,
			CancelReason:    session.CancelReason,
			Notes:           session.Notes,
		})
	}
	return out, nil
}

// resolveCurrent returns the session a mutating call should act on. Without
// an explicit id that is the active session. An explicit id must match the
// active session; ids of terminal sessions fail with a transition error so
// that re-stopping or re-cancelling is distinguishable from a typo.
func (i *Interactor) resolveCurrent(ctx context.Context, sessionID string) (domain.Session, error) {
	active, err := i.active.LoadActive(ctx)
	if err == nil {
		if sessionID == "" || sessionID == active.ID {
			return active, nil
		}
	} else if err != apperrors.ErrNoActiveSession {
		return domain.Session{}, err
	}
	if sessionID == "" {
		return domain.Session{}, apperrors.ErrNoActiveSession
	}
	session, err := i.svc.FindByID(ctx, sessionID)
	if err != nil {
		return domain.Session{}, err
	}
	if session.State.Terminal() {
		return domain.Session{}, fmt.Errorf("%w: session %s is already %s", apperrors.ErrInvalidTransition, session.ID, session.State)
	}
	return domain.Session{}, fmt.Errorf("%w: session %s is not the active session", apperrors.ErrInvalidInput, sessionID)
}

func (i *Interactor) toActiveOutput(session domain.Session) dto.ActiveSessionOutput {
	return dto.ActiveSessionOutput{
		SessionID:      session.ID,
		ActivityID:     session.ActivityID,
		ActivityTitle:  session.ActivityTitle,
		State:          string(session.State),
		StartedAt:      session.StartTime,
		PausedSeconds:  session.PausedSeconds,
		ElapsedSeconds: int64(session.Elapsed(i.svc.Now()).Seconds()),
	}
}

package domain

import (
	"fmt"
	"time"

	apperrors "tempo/internal/platform/errors"
)

const SchemaVersion = 1

type State string

const (
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateDone      State = "done"
	StateCancelled State = "cancelled"
)

func (s State) Terminal() bool {
	return s == StateDone || s == StateCancelled
}

// Session tracks elapsed effort against one activity, with pause/resume
// bookkeeping. At most one session is running or paused at any time; the
// active-session store enforces that globally.
type Session struct {
	ID              string     `json:"id"`
	ActivityID      string     `json:"activity_id"`
	ActivityKind    string     `json:"activity_kind"`
	ActivityTitle   string     `json:"activity_title"`
	State           State      `json:"state"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	PausedSeconds   int64      `json:"paused_seconds"`
	PauseStart      *time.Time `json:"pause_start,omitempty"`
	DurationSeconds int64      `json:"duration_seconds"`
	CancelReason    string     `json:"cancel_reason,omitempty"`
	Notes           string     `json:"notes,omitempty"`
}

func (s *Session) Pause(now time.Time) error {
	if s.State != StateRunning {
		return fmt.Errorf("%w: cannot pause a %s session", apperrors.ErrInvalidTransition, s.State)
	}
	t := now
	s.PauseStart = &t
	s.State = StatePaused
	return nil
}

func (s *Session) Resume(now time.Time) error {
	if s.State != StatePaused {
		return fmt.Errorf("%w: cannot resume a %s session", apperrors.ErrInvalidTransition, s.State)
	}
	s.foldOpenPause(now)
	s.State = StateRunning
	return nil
}

// Stop closes the session and fixes its effective duration: wall time minus
// accumulated pause time, floored to whole seconds.
func (s *Session) Stop(now time.Time) error {
	switch s.State {
	case StateRunning:
	case StatePaused:
		s.foldOpenPause(now)
	default:
		return fmt.Errorf("%w: cannot stop a %s session", apperrors.ErrInvalidTransition, s.State)
	}
	t := now
	s.EndTime = &t
	s.DurationSeconds = int64(now.Sub(s.StartTime).Seconds()) - s.PausedSeconds
	if s.DurationSeconds < 0 {
		s.DurationSeconds = 0
	}
	s.State = StateDone
	return nil
}

// Cancel discards accumulated effort. Re-cancelling a terminal session is an
// error, not a no-op.
func (s *Session) Cancel(now time.Time, reason string) error {
	if s.State.Terminal() {
		return fmt.Errorf("%w: session is already %s", apperrors.ErrInvalidTransition, s.State)
	}
	t := now
	s.EndTime = &t
	s.PauseStart = nil
	s.CancelReason = reason
	s.State = StateCancelled
	return nil
}

// Elapsed is the effective effort so far, excluding pause time and any open
// pause interval.
func (s Session) Elapsed(now time.Time) time.Duration {
	end := now
	if s.EndTime != nil {
		end = *s.EndTime
	}
	elapsed := end.Sub(s.StartTime) - time.Duration(s.PausedSeconds)*time.Second
	if s.PauseStart != nil {
		elapsed -= end.Sub(*s.PauseStart)
	}
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func (s *Session) foldOpenPause(now time.Time) {
	if s.PauseStart == nil {
		return
	}
	s.PausedSeconds += int64(now.Sub(*s.PauseStart).Seconds())
	s.PauseStart = nil
}

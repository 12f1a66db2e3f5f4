package domain_test

import (
	"errors"
	"testing"
	"time"

	"tempo/internal/modules/tracker/domain"
	apperrors "tempo/internal/platform/errors"
)

func at(minuteOffset int) time.Time {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	return base.Add(time.Duration(minuteOffset) * time.Minute)
}

func running() domain.Session {
	return domain.Session{
		ID:            "sess-1",
		ActivityID:    "act-1",
		ActivityKind:  "task",
		ActivityTitle: "Write report",
		State:         domain.StateRunning,
		StartTime:     at(0),
	}
}

func TestStopExcludesPausedTime(t *testing.T) {
	t.Parallel()
	s := running()

	if err := s.Pause(at(10)); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if err := s.Resume(at(15)); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if err := s.Stop(at(65)); err != nil {
		t.Fatalf("stop: %v", err)
	}

	// 65 minutes wall, 5 paused: one hour of effective effort.
	if s.DurationSeconds != 3600 {
		t.Fatalf("expected 3600s tracked, got %d", s.DurationSeconds)
	}
	if s.PausedSeconds != 300 {
		t.Fatalf("expected 300s paused, got %d", s.PausedSeconds)
	}
	if s.State != domain.StateDone {
		t.Fatalf("expected done, got %s", s.State)
	}
	if s.EndTime == nil || !s.EndTime.Equal(at(65)) {
		t.Fatalf("end time not recorded")
	}
}

func TestStopWhilePausedFoldsOpenPause(t *testing.T) {
	t.Parallel()
	s := running()

	if err := s.Pause(at(30)); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if err := s.Stop(at(45)); err != nil {
		t.Fatalf("stop: %v", err)
	}

	if s.PausedSeconds != 900 {
		t.Fatalf("open pause must be folded on stop, got %ds paused", s.PausedSeconds)
	}
	if s.DurationSeconds != 1800 {
		t.Fatalf("expected 1800s tracked, got %d", s.DurationSeconds)
	}
	if s.PauseStart != nil {
		t.Fatalf("pause start must be cleared")
	}
}

func TestInvalidTransitions(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		run  func(s *domain.Session) error
		from domain.State
	}{
		{"pause paused", func(s *domain.Session) error { return s.Pause(at(1)) }, domain.StatePaused},
		{"pause done", func(s *domain.Session) error { return s.Pause(at(1)) }, domain.StateDone},
		{"resume running", func(s *domain.Session) error { return s.Resume(at(1)) }, domain.StateRunning},
		{"resume cancelled", func(s *domain.Session) error { return s.Resume(at(1)) }, domain.StateCancelled},
		{"stop done", func(s *domain.Session) error { return s.Stop(at(1)) }, domain.StateDone},
		{"stop cancelled", func(s *domain.Session) error { return s.Stop(at(1)) }, domain.StateCancelled},
		{"cancel done", func(s *domain.Session) error { return s.Cancel(at(1), "x") }, domain.StateDone},
		{"cancel cancelled", func(s *domain.Session) error { return s.Cancel(at(1), "x") }, domain.StateCancelled},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := running()
			s.State = tc.from
			err := tc.run(&s)
			if !errors.Is(err, apperrors.ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
		})
	}
}

func TestCancelFromRunningAndPaused(t *testing.T) {
	t.Parallel()
	s := running()
	if err := s.Cancel(at(20), "interrupted"); err != nil {
		t.Fatalf("cancel running: %v", err)
	}
	if s.State != domain.StateCancelled || s.CancelReason != "interrupted" {
		t.Fatalf("cancel state not recorded: %s %q", s.State, s.CancelReason)
	}

	p := running()
	if err := p.Pause(at(5)); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if err := p.Cancel(at(10), ""); err != nil {
		t.Fatalf("cancel paused: %v", err)
	}
	if p.PauseStart != nil {
		t.Fatalf("cancel must clear the open pause")
	}
}

func TestElapsedExcludesOpenPause(t *testing.T) {
	t.Parallel()
	s := running()
	if err := s.Pause(at(10)); err != nil {
		t.Fatalf("pause: %v", err)
	}
	// 25 minutes in, of which 15 are an open pause.
	if got := s.Elapsed(at(25)); got != 10*time.Minute {
		t.Fatalf("expected 10m elapsed, got %v", got)
	}
}

func TestStopNeverGoesNegative(t *testing.T) {
	t.Parallel()
	s := running()
	s.PausedSeconds = 7200
	if err := s.Stop(at(30)); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if s.DurationSeconds != 0 {
		t.Fatalf("duration must floor at zero, got %d", s.DurationSeconds)
	}
}

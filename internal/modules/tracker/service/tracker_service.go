package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tempo/internal/modules/tracker/domain"
	trackerout "tempo/internal/modules/tracker/port/out"
	"tempo/internal/platform/clock"
	apperrors "tempo/internal/platform/errors"
	"tempo/internal/platform/id"
)

type TrackerService struct {
	clock clock.Clock
	idGen id.Generator
	store trackerout.SessionStore
}

func NewTrackerService(clock clock.Clock, idGen id.Generator, store trackerout.SessionStore) *TrackerService {
	return &TrackerService{clock: clock, idGen: idGen, store: store}
}

func (s *TrackerService) Begin(ctx context.Context, activityID, kind, title string) (domain.Session, error) {
	if strings.TrimSpace(activityID) == "" {
		return domain.Session{}, fmt.Errorf("%w: activity id is required", apperrors.ErrInvalidInput)
	}
	session := domain.Session{
		ID:            s.idGen.New(),
		ActivityID:    activityID,
		ActivityKind:  kind,
		ActivityTitle: title,
		State:         domain.StateRunning,
		StartTime:     s.clock.Now(),
	}
	if err := s.store.Save(ctx, session); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

func (s *TrackerService) Pause(ctx context.Context, session *domain.Session) error {
	if err := session.Pause(s.clock.Now()); err != nil {
		return err
	}
	return s.store.Save(ctx, *session)
}

func (s *TrackerService) Resume(ctx context.Context, session *domain.Session) error {
	if err := session.Resume(s.clock.Now()); err != nil {
		return err
	}
	return s.store.Save(ctx, *session)
}

// Stop closes the session and classifies its completion against the target.
// Classification failure (a non-positive target is a data-integrity problem)
// aborts before anything is persisted.
func (s *TrackerService) Stop(ctx context.Context, session *domain.Session, targetSeconds int64, notes string) (int, domain.Substatus, error) {
	if err := session.Stop(s.clock.Now()); err != nil {
		return 0, "", err
	}
	pct, substatus, err := domain.Classify(session.DurationSeconds, targetSeconds)
	if err != nil {
		return 0, "", err
	}
	session.Notes = notes
	if err := s.store.Save(ctx, *session); err != nil {
		return 0, "", err
	}
	return pct, substatus, nil
}

func (s *TrackerService) Cancel(ctx context.Context, session *domain.Session, reason string) error {
	if err := session.Cancel(s.clock.Now(), reason); err != nil {
		return err
	}
	return s.store.Save(ctx, *session)
}

// LogManual creates a session that is born done; it never passes through the
// running state and never touches the active handle.
func (s *TrackerService) LogManual(ctx context.Context, activityID, kind, title string, start, end time.Time, targetSeconds int64, notes string) (domain.Session, int, domain.Substatus, error) {
	if !start.Before(end) {
		return domain.Session{}, 0, "", fmt.Errorf("%w: logged start must be before end", apperrors.ErrInvalidInput)
	}
	endAt := end
	session := domain.Session{
		ID:              s.idGen.New(),
		ActivityID:      activityID,
		ActivityKind:    kind,
		ActivityTitle:   title,
		State:           domain.StateDone,
		StartTime:       start,
		EndTime:         &endAt,
		DurationSeconds: int64(end.Sub(start).Seconds()),
		Notes:           notes,
	}
	pct, substatus, err := domain.Classify(session.DurationSeconds, targetSeconds)
	if err != nil {
		return domain.Session{}, 0, "", err
	}
	if err := s.store.Save(ctx, session); err != nil {
		return domain.Session{}, 0, "", err
	}
	return session, pct, substatus, nil
}

// IntervalFromDuration derives the retroactive interval for a duration-only
// manual log: the given number of minutes ending now.
func (s *TrackerService) IntervalFromDuration(minutes int) (time.Time, time.Time, error) {
	if minutes <= 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: duration must be positive", apperrors.ErrInvalidInput)
	}
	end := s.clock.Now()
	return end.Add(-time.Duration(minutes) * time.Minute), end, nil
}

func (s *TrackerService) FindByID(ctx context.Context, sessionID string) (domain.Session, error) {
	return s.store.FindByID(ctx, sessionID)
}

func (s *TrackerService) List(ctx context.Context, from, to time.Time) ([]domain.Session, error) {
	return s.store.List(ctx, from, to)
}

func (s *TrackerService) Now() time.Time {
	return s.clock.Now()
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tempo/internal/modules/catalog/domain"
	catalogout "tempo/internal/modules/catalog/port/out"
	"tempo/internal/platform/clock"
	apperrors "tempo/internal/platform/errors"
	"tempo/internal/platform/id"
)

type ActivityService struct {
	clock clock.Clock
	idGen id.Generator
	store catalogout.ActivityStore
}

func NewActivityService(clock clock.Clock, idGen id.Generator, store catalogout.ActivityStore) *ActivityService {
	return &ActivityService{clock: clock, idGen: idGen, store: store}
}

func (s *ActivityService) Add(ctx context.Context, kind domain.Kind, title, day string, start, end *time.Time, tags []string) (domain.Activity, error) {
	if err := kind.Validate(); err != nil {
		return domain.Activity{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	title = strings.TrimSpace(title)
	day = strings.TrimSpace(day)
	if day == "" && start != nil {
		day = start.Format("2006-01-02")
	}
	now := s.clock.Now()
	activity := domain.Activity{
		ID:        s.idGen.New(),
		Kind:      kind,
		Title:     title,
		Day:       day,
		Start:     start,
		End:       end,
		Status:    domain.StatusPending,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := activity.Validate(); err != nil {
		return domain.Activity{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := s.store.Upsert(ctx, activity); err != nil {
		return domain.Activity{}, err
	}
	return activity, nil
}

func (s *ActivityService) Get(ctx context.Context, activityID string) (domain.Activity, error) {
	return s.store.FindByID(ctx, activityID)
}

func (s *ActivityService) ListDay(ctx context.Context, day string) ([]domain.Activity, error) {
	return s.store.ListByDay(ctx, day)
}

// SetTimes moves an occurrence. A nil end keeps the activity open-ended,
// which for tasks means the default duration applies.
func (s *ActivityService) SetTimes(ctx context.Context, activityID string, start time.Time, end *time.Time) (domain.Activity, error) {
	if end != nil && !start.Before(*end) {
		return domain.Activity{}, fmt.Errorf("%w: start must be before end", apperrors.ErrInvalidInput)
	}
	activity, err := s.store.FindByID(ctx, activityID)
	if err != nil {
		return domain.Activity{}, err
	}
	t := start
	activity.Start = &t
	activity.End = end
	activity.Day = start.Format("2006-01-02")
	activity.UpdatedAt = s.clock.Now()
	if err := s.store.Upsert(ctx, activity); err != nil {
		return domain.Activity{}, err
	}
	return activity, nil
}

func (s *ActivityService) SetStatus(ctx context.Context, activityID string, status domain.Status) (domain.Activity, error) {
	if err := status.Validate(); err != nil {
		return domain.Activity{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	activity, err := s.store.FindByID(ctx, activityID)
	if err != nil {
		return domain.Activity{}, err
	}
	activity.Status = status
	if status != domain.StatusDone {
		activity.DoneSubstatus = ""
		activity.CompletionPct = 0
	}
	activity.UpdatedAt = s.clock.Now()
	if err := s.store.Upsert(ctx, activity); err != nil {
		return domain.Activity{}, err
	}
	return activity, nil
}

// MarkDone commits a completion outcome. Any prior not-done classification is
// cleared; done substatus and percentage are mutually exclusive with it.
func (s *ActivityService) MarkDone(ctx context.Context, activityID string, substatus domain.Substatus, completionPct int) (domain.Activity, error) {
	if err := substatus.Validate(); err != nil {
		return domain.Activity{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if completionPct < 0 {
		return domain.Activity{}, fmt.Errorf("%w: completion percentage must be non-negative", apperrors.ErrInvalidInput)
	}
	activity, err := s.store.FindByID(ctx, activityID)
	if err != nil {
		return domain.Activity{}, err
	}
	activity.Status = domain.StatusDone
	activity.DoneSubstatus = substatus
	activity.CompletionPct = completionPct
	activity.NotDoneReason = ""
	activity.UpdatedAt = s.clock.Now()
	if err := s.store.Upsert(ctx, activity); err != nil {
		return domain.Activity{}, err
	}
	return activity, nil
}

// Resolve answers the Time Provider contract: the scheduled window for one
// occurrence, or Resolved=false when the activity is missing or unscheduled.
func (s *ActivityService) Resolve(ctx context.Context, activityID string) (domain.Activity, time.Time, time.Time, bool, error) {
	activity, err := s.store.FindByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.Activity{}, time.Time{}, time.Time{}, false, nil
		}
		return domain.Activity{}, time.Time{}, time.Time{}, false, err
	}
	start, end, ok := activity.Window()
	return activity, start, end, ok, nil
}

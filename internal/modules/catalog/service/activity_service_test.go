package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tempo/internal/modules/catalog/domain"
	"tempo/internal/modules/catalog/service"
	apperrors "tempo/internal/platform/errors"
)

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

type fakeID struct{ next int }

func (f *fakeID) New() string {
	f.next++
	return []string{"act-1", "act-2", "act-3"}[f.next-1]
}

type memoryStore struct {
	activities map[string]domain.Activity
}

func newMemoryStore() *memoryStore {
	return &memoryStore{activities: map[string]domain.Activity{}}
}

func (m *memoryStore) Upsert(_ context.Context, activity domain.Activity) error {
	m.activities[activity.ID] = activity
	return nil
}

func (m *memoryStore) FindByID(_ context.Context, id string) (domain.Activity, error) {
	a, ok := m.activities[id]
	if !ok {
		return domain.Activity{}, apperrors.ErrNotFound
	}
	return a, nil
}

func (m *memoryStore) ListByDay(_ context.Context, day string) ([]domain.Activity, error) {
	out := []domain.Activity{}
	for _, a := range m.activities {
		if a.Day == day {
			out = append(out, a)
		}
	}
	return out, nil
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.Local)
}

func ptr(t time.Time) *time.Time { return &t }

func newService() (*service.ActivityService, *memoryStore) {
	store := newMemoryStore()
	return service.NewActivityService(&fakeClock{now: at(8, 0)}, &fakeID{}, store), store
}

func TestAddDefaultsToPendingAndDerivesDay(t *testing.T) {
	t.Parallel()
	svc, store := newService()

	activity, err := svc.Add(context.Background(), domain.KindTask, "Write report", "", ptr(at(9, 0)), nil, []string{"work"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if activity.Status != domain.StatusPending {
		t.Fatalf("new activities default to pending, got %s", activity.Status)
	}
	if activity.Day != "2026-03-02" {
		t.Fatalf("day must be derived from the start time, got %q", activity.Day)
	}
	if _, err := store.FindByID(context.Background(), activity.ID); err != nil {
		t.Fatalf("activity must be persisted: %v", err)
	}
}

func TestAddRejectsUnknownKindAndEmptyTitle(t *testing.T) {
	t.Parallel()
	svc, _ := newService()

	if _, err := svc.Add(context.Background(), domain.Kind("meeting"), "Standup", "2026-03-02", nil, nil, nil); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unknown kind: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Add(context.Background(), domain.KindTask, "   ", "2026-03-02", nil, nil, nil); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("blank title: expected ErrInvalidInput, got %v", err)
	}
}

func TestSetTimesMovesDayWithTheStart(t *testing.T) {
	t.Parallel()
	svc, _ := newService()
	activity, err := svc.Add(context.Background(), domain.KindTask, "Write report", "2026-03-02", ptr(at(9, 0)), nil, nil)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	nextDay := time.Date(2026, 3, 3, 14, 0, 0, 0, time.Local)
	moved, err := svc.SetTimes(context.Background(), activity.ID, nextDay, ptr(nextDay.Add(30*time.Minute)))
	if err != nil {
		t.Fatalf("set times: %v", err)
	}
	if moved.Day != "2026-03-03" {
		t.Fatalf("day must follow the new start, got %q", moved.Day)
	}
}

func TestSetTimesRejectsInvertedInterval(t *testing.T) {
	t.Parallel()
	svc, _ := newService()

	if _, err := svc.SetTimes(context.Background(), "act-1", at(10, 0), ptr(at(9, 0))); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSetStatusClearsDoneClassification(t *testing.T) {
	t.Parallel()
	svc, _ := newService()
	activity, err := svc.Add(context.Background(), domain.KindTask, "Write report", "2026-03-02", nil, nil, nil)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.MarkDone(context.Background(), activity.ID, domain.SubstatusFull, 100); err != nil {
		t.Fatalf("mark done: %v", err)
	}

	reset, err := svc.SetStatus(context.Background(), activity.ID, domain.StatusPending)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if reset.DoneSubstatus != "" || reset.CompletionPct != 0 {
		t.Fatalf("leaving done must clear the classification, got %s/%d", reset.DoneSubstatus, reset.CompletionPct)
	}
}

func TestMarkDoneRecordsClassification(t *testing.T) {
	t.Parallel()
	svc, _ := newService()
	activity, err := svc.Add(context.Background(), domain.KindTask, "Write report", "2026-03-02", nil, nil, nil)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	done, err := svc.MarkDone(context.Background(), activity.ID, domain.SubstatusPartial, 75)
	if err != nil {
		t.Fatalf("mark done: %v", err)
	}
	if done.Status != domain.StatusDone || done.DoneSubstatus != domain.SubstatusPartial || done.CompletionPct != 75 {
		t.Fatalf("classification not recorded: %s %s %d", done.Status, done.DoneSubstatus, done.CompletionPct)
	}

	if _, err := svc.MarkDone(context.Background(), activity.ID, domain.Substatus("great"), 100); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unknown substatus: expected ErrInvalidInput, got %v", err)
	}
}

func TestResolveIsLenientOnMissingActivities(t *testing.T) {
	t.Parallel()
	svc, _ := newService()

	_, _, _, ok, err := svc.Resolve(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("a missing activity must not error: %v", err)
	}
	if ok {
		t.Fatalf("a missing activity must not resolve")
	}
}

func TestResolveAppliesDefaultTaskDuration(t *testing.T) {
	t.Parallel()
	svc, _ := newService()
	activity, err := svc.Add(context.Background(), domain.KindTask, "Write report", "", ptr(at(9, 0)), nil, nil)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	_, start, end, ok, err := svc.Resolve(context.Background(), activity.ID)
	if err != nil || !ok {
		t.Fatalf("resolve: ok=%v err=%v", ok, err)
	}
	if !start.Equal(at(9, 0)) || !end.Equal(at(10, 0)) {
		t.Fatalf("expected the default one-hour slot, got %v to %v", start, end)
	}
}

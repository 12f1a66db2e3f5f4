package service_test

import (
	"context"
	"testing"
	"time"

	"tempo/internal/modules/schedule/domain"
	scheduleout "tempo/internal/modules/schedule/port/out"
	"tempo/internal/modules/schedule/service"
)

type fakeTimeSource struct {
	byID   map[string]scheduleout.ScheduledActivity
	byDay  map[string][]scheduleout.ScheduledActivity
	writes []write
}

type write struct {
	activityID string
	start      time.Time
	end        *time.Time
}

func (f *fakeTimeSource) Get(_ context.Context, ref domain.ActivityRef) (scheduleout.ScheduledActivity, bool, error) {
	a, ok := f.byID[ref.ID]
	return a, ok, nil
}

func (f *fakeTimeSource) ListOnDay(_ context.Context, day string) ([]scheduleout.ScheduledActivity, error) {
	return f.byDay[day], nil
}

func (f *fakeTimeSource) SetTimes(_ context.Context, activityID string, start time.Time, end *time.Time) error {
	f.writes = append(f.writes, write{activityID: activityID, start: start, end: end})
	return nil
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.Local)
}

func scheduled(id, status string, startHour, startMin, endHour, endMin int) scheduleout.ScheduledActivity {
	return scheduleout.ScheduledActivity{
		Ref:    domain.ActivityRef{ID: id, Kind: "task"},
		Day:    "2026-03-02",
		Status: status,
		Interval: domain.Interval{
			Start: at(startHour, startMin),
			End:   at(endHour, endMin),
		},
	}
}

func TestDetectConflictsFindsSameDayOverlaps(t *testing.T) {
	t.Parallel()
	subject := scheduled("a1", "pending", 9, 0, 10, 0)
	overlapping := scheduled("b1", "pending", 9, 30, 10, 30)
	touching := scheduled("c1", "pending", 10, 0, 11, 0)
	source := &fakeTimeSource{
		byID:  map[string]scheduleout.ScheduledActivity{"a1": subject},
		byDay: map[string][]scheduleout.ScheduledActivity{"2026-03-02": {subject, overlapping, touching}},
	}
	svc := service.NewScheduleService(source, source)

	conflicts, err := svc.DetectConflicts(context.Background(), subject.Ref)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if len(conflicts) != 1 {
		t.Fatalf("expected exactly one conflict, got %d", len(conflicts))
	}
	c := conflicts[0]
	if c.Anchor.ID != "a1" || c.Other.ID != "b1" {
		t.Fatalf("unexpected pair: %s vs %s", c.Anchor.ID, c.Other.ID)
	}
	if c.Kind != domain.ConflictOverlap {
		t.Fatalf("unexpected kind: %s", c.Kind)
	}
}

func TestDetectConflictsUnresolvableSubjectIsLenient(t *testing.T) {
	t.Parallel()
	source := &fakeTimeSource{byID: map[string]scheduleout.ScheduledActivity{}}
	svc := service.NewScheduleService(source, source)

	conflicts, err := svc.DetectConflicts(context.Background(), domain.ActivityRef{ID: "ghost"})
	if err != nil {
		t.Fatalf("unresolvable subject must not error: %v", err)
	}
	if len(conflicts) != 0 {
		t.Fatalf("expected no conflicts, got %d", len(conflicts))
	}
}

func TestConflictsForDayReportsEachPairOnce(t *testing.T) {
	t.Parallel()
	a := scheduled("a1", "pending", 9, 0, 10, 0)
	b := scheduled("b1", "pending", 9, 30, 10, 30)
	c := scheduled("c1", "pending", 14, 0, 15, 0)
	source := &fakeTimeSource{
		byDay: map[string][]scheduleout.ScheduledActivity{"2026-03-02": {b, a, c}},
	}
	svc := service.NewScheduleService(source, source)

	conflicts, err := svc.ConflictsForDay(context.Background(), "2026-03-02")
	if err != nil {
		t.Fatalf("day scan: %v", err)
	}
	if len(conflicts) != 1 {
		t.Fatalf("expected one conflict for the pair, got %d", len(conflicts))
	}
	if conflicts[0].Anchor.ID != "a1" || conflicts[0].Other.ID != "b1" {
		t.Fatalf("pair must be canonical lower-id-first, got %s/%s", conflicts[0].Anchor.ID, conflicts[0].Other.ID)
	}
}

func TestRescheduleWritesThenReportsConflictsWithProposal(t *testing.T) {
	t.Parallel()
	anchor := scheduled("a1", "in_progress", 9, 0, 10, 0)
	moved := scheduled("t1", "pending", 9, 30, 10, 30)
	source := &fakeTimeSource{
		byID: map[string]scheduleout.ScheduledActivity{"a1": anchor, "t1": moved},
		byDay: map[string][]scheduleout.ScheduledActivity{
			"2026-03-02": {anchor, moved},
		},
	}
	svc := service.NewScheduleService(source, source)

	end := at(10, 30)
	conflicts, proposal, err := svc.Reschedule(context.Background(), moved.Ref, at(9, 30), &end)
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if len(source.writes) != 1 || source.writes[0].activityID != "t1" {
		t.Fatalf("write must happen before detection, got %v", source.writes)
	}
	if len(conflicts) != 1 {
		t.Fatalf("expected the new overlap to be reported, got %d", len(conflicts))
	}
	if proposal.Empty() {
		t.Fatalf("expected a proposal moving the pending task")
	}
	if proposal.Changes[0].ActivityID != "t1" {
		t.Fatalf("the in-progress anchor must not move")
	}
}

func TestRescheduleRejectsInvertedInterval(t *testing.T) {
	t.Parallel()
	source := &fakeTimeSource{}
	svc := service.NewScheduleService(source, source)

	end := at(9, 0)
	_, _, err := svc.Reschedule(context.Background(), domain.ActivityRef{ID: "t1"}, at(10, 0), &end)
	if err == nil {
		t.Fatalf("inverted interval must be rejected")
	}
	if len(source.writes) != 0 {
		t.Fatalf("invalid input must not be written")
	}
}

func TestApplyValidatesAllChangesBeforeWriting(t *testing.T) {
	t.Parallel()
	source := &fakeTimeSource{}
	svc := service.NewScheduleService(source, source)

	changes := []domain.ProposedChange{
		{ActivityID: "ok", Start: at(9, 0), End: at(10, 0)},
		{ActivityID: "bad", Start: at(11, 0), End: at(11, 0)},
	}
	if _, err := svc.Apply(context.Background(), changes); err == nil {
		t.Fatalf("invalid change must fail the whole apply")
	}
	if len(source.writes) != 0 {
		t.Fatalf("nothing may be written when validation fails, got %d write(s)", len(source.writes))
	}

	applied, err := svc.Apply(context.Background(), changes[:1])
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if applied != 1 || len(source.writes) != 1 {
		t.Fatalf("expected one applied write, got applied=%d writes=%d", applied, len(source.writes))
	}
}

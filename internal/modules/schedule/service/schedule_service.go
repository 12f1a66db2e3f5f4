package service

import (
	"context"
	"fmt"
	"time"

	"tempo/internal/modules/schedule/domain"
	scheduleout "tempo/internal/modules/schedule/port/out"
	apperrors "tempo/internal/platform/errors"
)

type ScheduleService struct {
	source scheduleout.ActivityTimeSource
	writer scheduleout.ActivityScheduleWriter
}

func NewScheduleService(source scheduleout.ActivityTimeSource, writer scheduleout.ActivityScheduleWriter) *ScheduleService {
	return &ScheduleService{source: source, writer: writer}
}

// DetectConflicts scans every other occurrence on the subject's day. An
// unresolvable subject yields no conflicts rather than an error.
func (s *ScheduleService) DetectConflicts(ctx context.Context, ref domain.ActivityRef) ([]domain.Conflict, error) {
	subject, ok, err := s.source.Get(ctx, ref)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	others, err := s.source.ListOnDay(ctx, subject.Day)
	if err != nil {
		return nil, err
	}
	conflicts := []domain.Conflict{}
	for _, other := range others {
		if other.Ref.ID == subject.Ref.ID {
			continue
		}
		if domain.Overlaps(subject.Interval, other.Interval) {
			conflicts = append(conflicts, domain.Conflict{
				Anchor:         subject.Ref,
				Other:          other.Ref,
				AnchorInterval: subject.Interval,
				OtherInterval:  other.Interval,
				Kind:           domain.ConflictOverlap,
			})
		}
	}
	return conflicts, nil
}

// ConflictsForDay runs the pairwise scan over one day. Each unordered pair is
// reported once, canonically with the lower id as anchor.
func (s *ScheduleService) ConflictsForDay(ctx context.Context, day string) ([]domain.Conflict, error) {
	items, err := s.source.ListOnDay(ctx, day)
	if err != nil {
		return nil, err
	}
	conflicts := []domain.Conflict{}
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			a, b := items[i], items[j]
			if !domain.Overlaps(a.Interval, b.Interval) {
				continue
			}
			if b.Ref.ID < a.Ref.ID {
				a, b = b, a
			}
			conflicts = append(conflicts, domain.Conflict{
				Anchor:         a.Ref,
				Other:          b.Ref,
				AnchorInterval: a.Interval,
				OtherInterval:  b.Interval,
				Kind:           domain.ConflictOverlap,
			})
		}
	}
	return conflicts, nil
}

// Propose resolves the current status and schedule of every activity the
// conflicts reference, then computes the reordering. Activities that vanished
// since detection are skipped.
func (s *ScheduleService) Propose(ctx context.Context, conflicts []domain.Conflict) (domain.Proposal, error) {
	if len(conflicts) == 0 {
		return domain.Proposal{}, nil
	}
	seen := map[string]bool{}
	refs := []domain.ActivityRef{}
	for _, c := range conflicts {
		for _, ref := range []domain.ActivityRef{c.Anchor, c.Other} {
			if seen[ref.ID] {
				continue
			}
			seen[ref.ID] = true
			refs = append(refs, ref)
		}
	}
	entries := make([]domain.Entry, 0, len(refs))
	for _, ref := range refs {
		scheduled, ok, err := s.source.Get(ctx, ref)
		if err != nil {
			return domain.Proposal{}, err
		}
		if !ok {
			continue
		}
		entries = append(entries, domain.Entry{Ref: scheduled.Ref, Interval: scheduled.Interval, Status: scheduled.Status})
	}
	return domain.ProposeReordering(entries, conflicts), nil
}

// Reschedule writes the new window and reports any same-day conflicts the
// move creates. Conflicts never block the write.
func (s *ScheduleService) Reschedule(ctx context.Context, ref domain.ActivityRef, start time.Time, end *time.Time) ([]domain.Conflict, domain.Proposal, error) {
	if end != nil {
		if err := (domain.Interval{Start: start, End: *end}).Validate(); err != nil {
			return nil, domain.Proposal{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
		}
	}
	if err := s.writer.SetTimes(ctx, ref.ID, start, end); err != nil {
		return nil, domain.Proposal{}, err
	}
	conflicts, err := s.DetectConflicts(ctx, ref)
	if err != nil {
		return nil, domain.Proposal{}, err
	}
	if len(conflicts) == 0 {
		return conflicts, domain.Proposal{}, nil
	}
	proposal, err := s.Propose(ctx, conflicts)
	if err != nil {
		return nil, domain.Proposal{}, err
	}
	return conflicts, proposal, nil
}

// Apply performs the explicit write of proposed changes. Recomputing and
// reapplying the same proposal is a no-op.
func (s *ScheduleService) Apply(ctx context.Context, changes []domain.ProposedChange) (int, error) {
	for _, change := range changes {
		if err := (domain.Interval{Start: change.Start, End: change.End}).Validate(); err != nil {
			return 0, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
		}
	}
	applied := 0
	for _, change := range changes {
		end := change.End
		if err := s.writer.SetTimes(ctx, change.ActivityID, change.Start, &end); err != nil {
			return applied, err
		}
		applied++
	}
	return applied, nil
}

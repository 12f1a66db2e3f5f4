package usecase

import (
	"context"

	"tempo/internal/modules/schedule/domain"
	"tempo/internal/modules/schedule/dto"
	schedulein "tempo/internal/modules/schedule/port/in"
	"tempo/internal/modules/schedule/service"
)

type Interactor struct {
	svc *service.ScheduleService
}

func NewInteractor(svc *service.ScheduleService) schedulein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) DetectConflicts(ctx context.Context, input dto.DetectInput) ([]dto.ConflictOutput, error) {
	conflicts, err := i.svc.DetectConflicts(ctx, domain.ActivityRef{ID: input.ActivityID, Kind: input.Kind})
	if err != nil {
		return nil, err
	}
	return toConflictOutputs(conflicts), nil
}

func (i *Interactor) ConflictsForDay(ctx context.Context, day string) ([]dto.ConflictOutput, error) {
	conflicts, err := i.svc.ConflictsForDay(ctx, day)
	if err != nil {
		return nil, err
	}
	return toConflictOutputs(conflicts), nil
}

func (i *Interactor) ProposeReordering(ctx context.Context, conflicts []dto.ConflictOutput) (dto.ProposalOutput, error) {
	proposal, err := i.svc.Propose(ctx, toDomainConflicts(conflicts))
	if err != nil {
		return dto.ProposalOutput{}, err
	}
	return toProposalOutput(proposal), nil
}

func (i *Interactor) Reschedule(ctx context.Context, input dto.RescheduleInput) (dto.RescheduleOutput, error) {
	ref := domain.ActivityRef{ID: input.ActivityID, Kind: input.Kind}
	conflicts, proposal, err := i.svc.Reschedule(ctx, ref, input.Start, input.End)
	if err != nil {
		return dto.RescheduleOutput{}, err
	}
	out := dto.RescheduleOutput{
		ActivityID: input.ActivityID,
		Start:      input.Start,
		End:        input.End,
		Conflicts:  toConflictOutputs(conflicts),
	}
	if len(conflicts) > 0 {
		p := toProposalOutput(proposal)
		out.Proposal = &p
	}
	return out, nil
}

func (i *Interactor) ApplyProposal(ctx context.Context, input dto.ApplyInput) (dto.ApplyOutput, error) {
	changes := make([]domain.ProposedChange, 0, len(input.Changes))
	for _, c := range input.Changes {
		changes = append(changes, domain.ProposedChange{ActivityID: c.ActivityID, Start: c.Start, End: c.End})
	}
	applied, err := i.svc.Apply(ctx, changes)
	if err != nil {
		return dto.ApplyOutput{}, err
	}
	return dto.ApplyOutput{Applied: applied}, nil
}

func toConflictOutputs(conflicts []domain.Conflict) []dto.ConflictOutput {
	out := make([]dto.ConflictOutput, 0, len(conflicts))
	for _, c := range conflicts {
		out = append(out, dto.ConflictOutput{
			AnchorID:    c.Anchor.ID,
			AnchorKind:  c.Anchor.Kind,
			OtherID:     c.Other.ID,
			OtherKind:   c.Other.Kind,
			AnchorStart: c.AnchorInterval.Start,
			AnchorEnd:   c.AnchorInterval.End,
			OtherStart:  c.OtherInterval.Start,
			OtherEnd:    c.OtherInterval.End,
			Kind:        string(c.Kind),
		})
	}
	return out
}

func toDomainConflicts(conflicts []dto.ConflictOutput) []domain.Conflict {
	out := make([]domain.Conflict, 0, len(conflicts))
	for _, c := range conflicts {
		out = append(out, domain.Conflict{
			Anchor:         domain.ActivityRef{ID: c.AnchorID, Kind: c.AnchorKind},
			Other:          domain.ActivityRef{ID: c.OtherID, Kind: c.OtherKind},
			AnchorInterval: domain.Interval{Start: c.AnchorStart, End: c.AnchorEnd},
			OtherInterval:  domain.Interval{Start: c.OtherStart, End: c.OtherEnd},
			Kind:           domain.ConflictKind(c.Kind),
		})
	}
	return out
}

func toProposalOutput(proposal domain.Proposal) dto.ProposalOutput {
	out := dto.ProposalOutput{
		Conflicts:             toConflictOutputs(proposal.Conflicts),
		WindowStart:           proposal.WindowStart,
		WindowEnd:             proposal.WindowEnd,
		EstimatedShiftSeconds: proposal.EstimatedShift,
	}
	for _, c := range proposal.Changes {
		out.Changes = append(out.Changes, dto.ProposedChangeOutput{ActivityID: c.ActivityID, Start: c.Start, End: c.End})
	}
	return out
}

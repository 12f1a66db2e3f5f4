package in

import (
	"context"

	"tempo/internal/modules/schedule/dto"
)

type Usecase interface {
	DetectConflicts(ctx context.Context, input dto.DetectInput) ([]dto.ConflictOutput, error)
	ConflictsForDay(ctx context.Context, day string) ([]dto.ConflictOutput, error)
	ProposeReordering(ctx context.Context, conflicts []dto.ConflictOutput) (dto.ProposalOutput, error)
	Reschedule(ctx context.Context, input dto.RescheduleInput) (dto.RescheduleOutput, error)
	ApplyProposal(ctx context.Context, input dto.ApplyInput) (dto.ApplyOutput, error)
}

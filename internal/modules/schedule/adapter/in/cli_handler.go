package in

import (
	"context"
	"time"

	"tempo/internal/modules/schedule/dto"
	schedulein "tempo/internal/modules/schedule/port/in"
)

type CLIHandler struct {
	usecase schedulein.Usecase
}

func NewCLIHandler(usecase schedulein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) DetectConflicts(ctx context.Context, activityID, kind string) ([]dto.ConflictOutput, error) {
	return h.usecase.DetectConflicts(ctx, dto.DetectInput{ActivityID: activityID, Kind: kind})
}

func (h CLIHandler) ConflictsForDay(ctx context.Context, day string) ([]dto.ConflictOutput, error) {
	return h.usecase.ConflictsForDay(ctx, day)
}

func (h CLIHandler) ProposeForDay(ctx context.Context, day string) (dto.ProposalOutput, error) {
	conflicts, err := h.usecase.ConflictsForDay(ctx, day)
	if err != nil {
		return dto.ProposalOutput{}, err
	}
	return h.usecase.ProposeReordering(ctx, conflicts)
}

func (h CLIHandler) Reschedule(ctx context.Context, activityID, kind string, start time.Time, end *time.Time) (dto.RescheduleOutput, error) {
	return h.usecase.Reschedule(ctx, dto.RescheduleInput{ActivityID: activityID, Kind: kind, Start: start, End: end})
}

func (h CLIHandler) ApplyProposal(ctx context.Context, changes []dto.ProposedChangeOutput) (dto.ApplyOutput, error) {
	return h.usecase.ApplyProposal(ctx, dto.ApplyInput{Changes: changes})
}

package in

import (
	"context"
	"time"

	"tempo/internal/modules/catalog/dto"
	catalogin "tempo/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, kind, title, day string, start, end *time.Time, tags []string) (dto.ActivityOutput, error) {
	return h.usecase.Add(ctx, dto.AddInput{Kind: kind, Title: title, Day: day, Start: start, End: end, Tags: tags})
}

func (h CLIHandler) Get(ctx context.Context, activityID string) (dto.ActivityOutput, error) {
	return h.usecase.Get(ctx, activityID)
}

func (h CLIHandler) ListDay(ctx context.Context, day string) ([]dto.ActivityOutput, error) {
	return h.usecase.ListDay(ctx, day)
}

func (h CLIHandler) SetTimes(ctx context.Context, activityID string, start time.Time, end *time.Time) (dto.ActivityOutput, error) {
	return h.usecase.SetTimes(ctx, dto.SetTimesInput{ActivityID: activityID, Start: start, End: end})
}

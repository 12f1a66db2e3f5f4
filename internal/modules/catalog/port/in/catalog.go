package in

import (
	"context"

	"tempo/internal/modules/catalog/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.ActivityOutput, error)
	Get(ctx context.Context, activityID string) (dto.ActivityOutput, error)
	ListDay(ctx context.Context, day string) ([]dto.ActivityOutput, error)
	SetTimes(ctx context.Context, input dto.SetTimesInput) (dto.ActivityOutput, error)
	SetStatus(ctx context.Context, input dto.SetStatusInput) (dto.ActivityOutput, error)
	MarkDone(ctx context.Context, input dto.MarkDoneInput) (dto.ActivityOutput, error)
	Resolve(ctx context.Context, activityID, kind string) (dto.ResolveOutput, error)
	ResolveDay(ctx context.Context, day string) ([]dto.ResolveOutput, error)
}

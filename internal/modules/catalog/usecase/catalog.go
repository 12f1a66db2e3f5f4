package usecase

import (
	"context"
	"fmt"

	"tempo/internal/modules/catalog/domain"
	"tempo/internal/modules/catalog/dto"
	catalogin "tempo/internal/modules/catalog/port/in"
	"tempo/internal/modules/catalog/service"
	apperrors "tempo/internal/platform/errors"
)

type Interactor struct {
	svc *service.ActivityService
}

func NewInteractor(svc *service.ActivityService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Add(ctx context.Context, input dto.AddInput) (dto.ActivityOutput, error) {
	activity, err := i.svc.Add(ctx, domain.Kind(input.Kind), input.Title, input.Day, input.Start, input.End, input.Tags)
	if err != nil {
		return dto.ActivityOutput{}, err
	}
	return toOutput(activity), nil
}

func (i *Interactor) Get(ctx context.Context, activityID string) (dto.ActivityOutput, error) {
	activity, err := i.svc.Get(ctx, activityID)
	if err != nil {
		return dto.ActivityOutput{}, err
	}
	return toOutput(activity), nil
}

func (i *Interactor) ListDay(ctx context.Context, day string) ([]dto.ActivityOutput, error) {
	activities, err := i.svc.ListDay(ctx, day)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActivityOutput, 0, len(activities))
	for _, activity := range activities {
		out = append(out, toOutput(activity))
	}
	return out, nil
}

func (i *Interactor) SetTimes(ctx context.Context, input dto.SetTimesInput) (dto.ActivityOutput, error) {
	activity, err := i.svc.SetTimes(ctx, input.ActivityID, input.Start, input.End)
	if err != nil {
		return dto.ActivityOutput{}, err
	}
	return toOutput(activity), nil
}

func (i *Interactor) SetStatus(ctx context.Context, input dto.SetStatusInput) (dto.ActivityOutput, error) {
	activity, err := i.svc.SetStatus(ctx, input.ActivityID, domain.Status(input.Status))
	if err != nil {
		return dto.ActivityOutput{}, err
	}
	return toOutput(activity), nil
}

func (i *Interactor) MarkDone(ctx context.Context, input dto.MarkDoneInput) (dto.ActivityOutput, error) {
	activity, err := i.svc.MarkDone(ctx, input.ActivityID, domain.Substatus(input.Substatus), input.CompletionPct)
	if err != nil {
		return dto.ActivityOutput{}, err
	}
	return toOutput(activity), nil
}

func (i *Interactor) Resolve(ctx context.Context, activityID, kind string) (dto.ResolveOutput, error) {
	if kind != "" {
		if err := (domain.Kind(kind)).Validate(); err != nil {
			return dto.ResolveOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
		}
	}
	activity, start, end, ok, err := i.svc.Resolve(ctx, activityID)
	if err != nil {
		return dto.ResolveOutput{}, err
	}
	if !ok {
		return dto.ResolveOutput{ActivityID: activityID, Kind: kind}, nil
	}
	return dto.ResolveOutput{
		ActivityID: activity.ID,
		Kind:       string(activity.Kind),
		Day:        activity.Day,
		Status:     string(activity.Status),
		Start:      start,
		End:        end,
		Resolved:   true,
	}, nil
}

// ResolveDay returns the resolvable occurrences on a civil day, in store
// order (start time, then id). Unscheduled activities are omitted.
func (i *Interactor) ResolveDay(ctx context.Context, day string) ([]dto.ResolveOutput, error) {
	activities, err := i.svc.ListDay(ctx, day)
	if err != nil {
		return nil, err
	}
	out := []dto.ResolveOutput{}
	for _, activity := range activities {
		start, end, ok := activity.Window()
		if !ok {
			continue
		}
		out = append(out, dto.ResolveOutput{
			ActivityID: activity.ID,
			Kind:       string(activity.Kind),
			Day:        activity.Day,
			Status:     string(activity.Status),
			Start:      start,
			End:        end,
			Resolved:   true,
		})
	}
	return out, nil
}

func toOutput(activity domain.Activity) dto.ActivityOutput {
	return dto.ActivityOutput{
		ID:            activity.ID,
		Kind:          string(activity.Kind),
		Title:         activity.Title,
		Day:           activity.Day,
		Start:         activity.Start,
		End:           activity.End,
		Status:        string(activity.Status),
		DoneSubstatus: string(activity.DoneSubstatus),
		CompletionPct: activity.CompletionPct,
		NotDoneReason: activity.NotDoneReason,
		Tags:          activity.Tags,
	}
}

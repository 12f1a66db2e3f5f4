package out

import (
	"context"
	"time"

	catalogdto "tempo/internal/modules/catalog/dto"
	catalogin "tempo/internal/modules/catalog/port/in"
	"tempo/internal/modules/schedule/domain"
	scheduleout "tempo/internal/modules/schedule/port/out"
)

// CatalogTimeSource adapts the activity catalog into the schedule module's
// time source and schedule writer ports.
type CatalogTimeSource struct {
	catalog catalogin.Usecase
}

func NewCatalogTimeSource(catalog catalogin.Usecase) *CatalogTimeSource {
	return &CatalogTimeSource{catalog: catalog}
}

func (a *CatalogTimeSource) Get(ctx context.Context, ref domain.ActivityRef) (scheduleout.ScheduledActivity, bool, error) {
	resolved, err := a.catalog.Resolve(ctx, ref.ID, ref.Kind)
	if err != nil {
		return scheduleout.ScheduledActivity{}, false, err
	}
	if !resolved.Resolved {
		return scheduleout.ScheduledActivity{}, false, nil
	}
	return scheduleout.ScheduledActivity{
		Ref:      domain.ActivityRef{ID: resolved.ActivityID, Kind: resolved.Kind},
		Day:      resolved.Day,
		Status:   resolved.Status,
		Interval: domain.Interval{Start: resolved.Start, End: resolved.End},
	}, true, nil
}

func (a *CatalogTimeSource) ListOnDay(ctx context.Context, day string) ([]scheduleout.ScheduledActivity, error) {
	resolved, err := a.catalog.ResolveDay(ctx, day)
	if err != nil {
		return nil, err
	}
	out := make([]scheduleout.ScheduledActivity, 0, len(resolved))
	for _, r := range resolved {
		out = append(out, scheduleout.ScheduledActivity{
			Ref:      domain.ActivityRef{ID: r.ActivityID, Kind: r.Kind},
			Day:      r.Day,
			Status:   r.Status,
			Interval: domain.Interval{Start: r.Start, End: r.End},
		})
	}
	return out, nil
}

func (a *CatalogTimeSource) SetTimes(ctx context.Context, activityID string, start time.Time, end *time.Time) error {
	_, err := a.catalog.SetTimes(ctx, catalogdto.SetTimesInput{ActivityID: activityID, Start: start, End: end})
	return err
}

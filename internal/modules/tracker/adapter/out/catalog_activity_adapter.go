package out

import (
	"context"

	catalogdto "tempo/internal/modules/catalog/dto"
	catalogin "tempo/internal/modules/catalog/port/in"
	trackerout "tempo/internal/modules/tracker/port/out"
)

// CatalogActivityAdapter gives the tracker its view of the activity catalog:
// identity, lifecycle status and the scheduled target duration.
type CatalogActivityAdapter struct {
	catalog catalogin.Usecase
}

func NewCatalogActivityAdapter(catalog catalogin.Usecase) trackerout.ActivityPort {
	return &CatalogActivityAdapter{catalog: catalog}
}

func (a *CatalogActivityAdapter) Get(ctx context.Context, activityID string) (trackerout.ActivityInfo, error) {
	activity, err := a.catalog.Get(ctx, activityID)
	if err != nil {
		return trackerout.ActivityInfo{}, err
	}
	info := trackerout.ActivityInfo{
		ID:     activity.ID,
		Kind:   activity.Kind,
		Title:  activity.Title,
		Status: activity.Status,
	}
	resolved, err := a.catalog.Resolve(ctx, activityID, activity.Kind)
	if err != nil {
		return trackerout.ActivityInfo{}, err
	}
	if resolved.Resolved {
		info.TargetSeconds = int64(resolved.End.Sub(resolved.Start).Seconds())
	}
	return info, nil
}

func (a *CatalogActivityAdapter) SetStatus(ctx context.Context, activityID, status string) error {
	_, err := a.catalog.SetStatus(ctx, catalogdto.SetStatusInput{ActivityID: activityID, Status: status})
	return err
}

func (a *CatalogActivityAdapter) MarkDone(ctx context.Context, activityID, substatus string, completionPct int) error {
	_, err := a.catalog.MarkDone(ctx, catalogdto.MarkDoneInput{ActivityID: activityID, Substatus: substatus, CompletionPct: completionPct})
	return err
}

package out

import (
	"context"
	"time"

	"tempo/internal/modules/schedule/domain"
)

// ScheduledActivity is one occurrence with a resolved window on its day.
type ScheduledActivity struct {
	Ref      domain.ActivityRef
	Day      string
	Status   string
	Interval domain.Interval
}

// ActivityTimeSource resolves occurrences to scheduled windows.
type ActivityTimeSource interface {
	// Get resolves one occurrence. ok is false when the activity is missing
	// or has no usable schedule; that is not an error.
	Get(ctx context.Context, ref domain.ActivityRef) (ScheduledActivity, bool, error)
	// ListOnDay returns every resolvable occurrence on the civil day,
	// ordered by start time then id.
	ListOnDay(ctx context.Context, day string) ([]ScheduledActivity, error)
}

// ActivityScheduleWriter persists schedule changes.
type ActivityScheduleWriter interface {
	SetTimes(ctx context.Context, activityID string, start time.Time, end *time.Time) error
}

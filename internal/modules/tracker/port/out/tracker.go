package out

import (
	"context"
	"time"

	"tempo/internal/modules/tracker/domain"
)

type SessionStore interface {
	Save(ctx context.Context, session domain.Session) error
	FindByID(ctx context.Context, id string) (domain.Session, error)
	List(ctx context.Context, from, to time.Time) ([]domain.Session, error)
}

// ActiveSessionStore is the explicit global handle for the single session
// allowed to be running or paused. Callers own the handle; there is no hidden
// module-level state.
type ActiveSessionStore interface {
	SaveActive(ctx context.Context, session domain.Session) error
	LoadActive(ctx context.Context) (domain.Session, error)
	ClearActive(ctx context.Context) error
}

// ActivityInfo is the slice of an activity the tracker needs: identity,
// lifecycle status and the scheduled target duration (zero when the schedule
// does not resolve).
type ActivityInfo struct {
	ID            string
	Kind          string
	Title         string
	Status        string
	TargetSeconds int64
}

type ActivityPort interface {
	Get(ctx context.Context, activityID string) (ActivityInfo, error)
	SetStatus(ctx context.Context, activityID, status string) error
	MarkDone(ctx context.Context, activityID, substatus string, completionPct int) error
}

// JournalStore writes a human-readable note for each finished session.
type JournalStore interface {
	Save(ctx context.Context, session domain.Session, completionPct int, substatus string) (string, error)
}

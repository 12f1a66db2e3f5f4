package out

import (
	"context"
	"time"

	exportout "tempo/internal/modules/export/port/out"
	trackerin "tempo/internal/modules/tracker/port/in"
)

// TrackerHistoryAdapter exposes finished sessions to report plugins.
type TrackerHistoryAdapter struct {
	tracker trackerin.Usecase
}

func NewTrackerHistoryAdapter(tracker trackerin.Usecase) exportout.SessionHistory {
	return &TrackerHistoryAdapter{tracker: tracker}
}

func (a *TrackerHistoryAdapter) Sessions(ctx context.Context, from, to time.Time) ([]exportout.SessionRecord, error) {
	sessions, err := a.tracker.ListSessions(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]exportout.SessionRecord, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, exportout.SessionRecord{
			ID:              s.SessionID,
			ActivityID:      s.ActivityID,
			ActivityKind:    s.ActivityKind,
			ActivityTitle:   s.ActivityTitle,
			State:           s.State,
			StartTime:       s.StartedAt,
			DurationSeconds: s.DurationSeconds,
			PausedSeconds:   s.PausedSeconds,
		})
	}
	return out, nil
}

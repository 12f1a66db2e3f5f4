package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"tempo/internal/modules/tracker/domain"
	trackerout "tempo/internal/modules/tracker/port/out"
	"tempo/internal/platform/markdown"
	"tempo/internal/platform/slug"
)

// JournalSessionStore writes one markdown note per finished session,
// organized by the session's start date.
type JournalSessionStore struct {
	journalPath string
}

func NewJournalSessionStore(journalPath string) trackerout.JournalStore {
	return &JournalSessionStore{journalPath: journalPath}
}

func (s *JournalSessionStore) Save(_ context.Context, session domain.Session, completionPct int, substatus string) (string, error) {
	date := session.StartTime
	dir := filepath.Join(s.journalPath, date.Format("2006"), date.Format("01"), date.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create journal dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s.md", date.Format("150405"), slug.Make(session.ActivityTitle))
	path := filepath.Join(dir, name)

	meta := map[string]any{
		"schema_version":   domain.SchemaVersion,
		"id":               session.ID,
		"activity_id":      session.ActivityID,
		"activity_kind":    session.ActivityKind,
		"state":            string(session.State),
		"started_at":       session.StartTime.Format("2006-01-02T15:04:05Z07:00"),
		"duration_seconds": session.DurationSeconds,
		"paused_seconds":   session.PausedSeconds,
		"completion_pct":   completionPct,
		"substatus":        substatus,
	}
	if session.EndTime != nil {
		meta["ended_at"] = session.EndTime.Format("2006-01-02T15:04:05Z07:00")
	}
	minutes := session.DurationSeconds / 60
	body := fmt.Sprintf("# Session %s\n\n- Activity: [[%s]]\n- Effort: %d minutes (%d%%, %s)\n\n## Notes\n\n%s\n", session.ID, session.ActivityTitle, minutes, completionPct, substatus, session.Notes)
	rendered, err := markdown.RenderFrontmatter(meta, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write journal note: %w", err)
	}
	return path, nil
}

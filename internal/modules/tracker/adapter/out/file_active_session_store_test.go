package out_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	out "tempo/internal/modules/tracker/adapter/out"
	"tempo/internal/modules/tracker/domain"
	apperrors "tempo/internal/platform/errors"
)

func runningSession() domain.Session {
	return domain.Session{
		ID:            "sess-1",
		ActivityID:    "act-1",
		ActivityKind:  "task",
		ActivityTitle: "Write report",
		State:         domain.StateRunning,
		StartTime:     time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local),
	}
}

func TestActiveSessionRoundTrip(t *testing.T) {
	t.Parallel()
	store := out.NewFileActiveSessionStore(t.TempDir())

	session := runningSession()
	if err := store.SaveActive(context.Background(), session); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.LoadActive(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.ID != session.ID || loaded.State != domain.StateRunning {
		t.Fatalf("round trip lost data: %+v", loaded)
	}
	if !loaded.StartTime.Equal(session.StartTime) {
		t.Fatalf("start time drifted: %v", loaded.StartTime)
	}
}

func TestLoadActiveWithoutHandle(t *testing.T) {
	t.Parallel()
	store := out.NewFileActiveSessionStore(t.TempDir())

	if _, err := store.LoadActive(context.Background()); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}
}

func TestClearActiveIsIdempotent(t *testing.T) {
	t.Parallel()
	store := out.NewFileActiveSessionStore(t.TempDir())

	if err := store.ClearActive(context.Background()); err != nil {
		t.Fatalf("clearing a missing handle must succeed: %v", err)
	}
	if err := store.SaveActive(context.Background(), runningSession()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.ClearActive(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := store.LoadActive(context.Background()); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("handle must be gone after clear, got %v", err)
	}
}

func TestJournalNoteIsDatedAndSlugged(t *testing.T) {
	t.Parallel()
	base := t.TempDir()
	store := out.NewJournalSessionStore(base)

	session := runningSession()
	session.State = domain.StateDone
	session.DurationSeconds = 3600
	session.Notes = "finished the draft"

	path, err := store.Save(context.Background(), session, 100, "full")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasSuffix(path, "2026/03/02/090000-write-report.md") {
		t.Fatalf("unexpected note path: %s", path)
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	content := string(payload)
	for _, want := range []string{"activity_id: act-1", "substatus: full", "[[Write report]]", "60 minutes"} {
		if !strings.Contains(content, want) {
			t.Fatalf("note missing %q:\n%s", want, content)
		}
	}
}

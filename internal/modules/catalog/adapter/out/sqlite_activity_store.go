package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tempo/internal/modules/catalog/domain"
	catalogout "tempo/internal/modules/catalog/port/out"
	apperrors "tempo/internal/platform/errors"

	_ "modernc.org/sqlite"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

type SQLiteActivityStore struct {
	db *sql.DB
}

func NewSQLiteActivityStore(dbPath string) (catalogout.ActivityStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteActivityStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteActivityStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS activities (
  id TEXT PRIMARY KEY,
  kind TEXT NOT NULL,
  title TEXT NOT NULL,
  day TEXT NOT NULL,
  start_time TEXT,
  end_time TEXT,
  status TEXT NOT NULL,
  done_substatus TEXT,
  completion_pct INTEGER NOT NULL DEFAULT 0,
  not_done_reason TEXT,
  tags TEXT,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_activities_day ON activities(day);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create activities table: %w", err)
	}
	return nil
}

func (s *SQLiteActivityStore) Upsert(ctx context.Context, activity domain.Activity) error {
	const stmt = `
INSERT INTO activities (id, kind, title, day, start_time, end_time, status, done_substatus, completion_pct, not_done_reason, tags, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  kind=excluded.kind,
  title=excluded.title,
  day=excluded.day,
  start_time=excluded.start_time,
  end_time=excluded.end_time,
  status=excluded.status,
  done_substatus=excluded.done_substatus,
  completion_pct=excluded.completion_pct,
  not_done_reason=excluded.not_done_reason,
  tags=excluded.tags,
  updated_at=excluded.updated_at;
`
	_, err := s.db.ExecContext(ctx, stmt,
		activity.ID,
		string(activity.Kind),
		activity.Title,
		activity.Day,
		encodeTime(activity.Start),
		encodeTime(activity.End),
		string(activity.Status),
		string(activity.DoneSubstatus),
		activity.CompletionPct,
		activity.NotDoneReason,
		strings.Join(activity.Tags, ","),
		activity.CreatedAt.Format(timeLayout),
		activity.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("upsert activity: %w", err)
	}
	return nil
}

func (s *SQLiteActivityStore) FindByID(ctx context.Context, id string) (domain.Activity, error) {
	const query = `
SELECT id, kind, title, day, start_time, end_time, status, done_substatus, completion_pct, not_done_reason, tags, created_at, updated_at
FROM activities WHERE id = ?;
`
	row := s.db.QueryRowContext(ctx, query, id)
	activity, err := scanActivity(row)
	if err == sql.ErrNoRows {
		return domain.Activity{}, fmt.Errorf("%w: activity %s", apperrors.ErrNotFound, id)
	}
	if err != nil {
		return domain.Activity{}, fmt.Errorf("find activity: %w", err)
	}
	return activity, nil
}

func (s *SQLiteActivityStore) ListByDay(ctx context.Context, day string) ([]domain.Activity, error) {
	const query = `
SELECT id, kind, title, day, start_time, end_time, status, done_substatus, completion_pct, not_done_reason, tags, created_at, updated_at
FROM activities WHERE day = ? ORDER BY start_time, id;
`
	rows, err := s.db.QueryContext(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []domain.Activity{}
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		out = append(out, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanActivity(row scanner) (domain.Activity, error) {
	var (
		activity               domain.Activity
		kind, status           string
		substatus, reason      sql.NullString
		startRaw, endRaw, tags sql.NullString
		createdRaw, updatedRaw string
	)
	err := row.Scan(&activity.ID, &kind, &activity.Title, &activity.Day, &startRaw, &endRaw, &status, &substatus, &activity.CompletionPct, &reason, &tags, &createdRaw, &updatedRaw)
	if err != nil {
		return domain.Activity{}, err
	}
	activity.Kind = domain.Kind(kind)
	activity.Status = domain.Status(status)
	activity.DoneSubstatus = domain.Substatus(substatus.String)
	activity.NotDoneReason = reason.String
	if tags.String != "" {
		activity.Tags = strings.Split(tags.String, ",")
	}
	if activity.Start, err = decodeTime(startRaw); err != nil {
		return domain.Activity{}, err
	}
	if activity.End, err = decodeTime(endRaw); err != nil {
		return domain.Activity{}, err
	}
	if activity.CreatedAt, err = time.Parse(timeLayout, createdRaw); err != nil {
		return domain.Activity{}, err
	}
	if activity.UpdatedAt, err = time.Parse(timeLayout, updatedRaw); err != nil {
		return domain.Activity{}, err
	}
	return activity, nil
}

func encodeTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(timeLayout)
}

func decodeTime(raw sql.NullString) (*time.Time, error) {
	if !raw.Valid || raw.String == "" {
		return nil, nil
	}
	t, err := time.Parse(timeLayout, raw.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

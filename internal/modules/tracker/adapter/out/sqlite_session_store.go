package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tempo/internal/modules/tracker/domain"
	trackerout "tempo/internal/modules/tracker/port/out"
	apperrors "tempo/internal/platform/errors"

	_ "modernc.org/sqlite"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

type SQLiteSessionStore struct {
	db *sql.DB
}

func NewSQLiteSessionStore(dbPath string) (trackerout.SessionStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteSessionStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteSessionStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  id TEXT PRIMARY KEY,
  activity_id TEXT NOT NULL,
  activity_kind TEXT NOT NULL,
  activity_title TEXT NOT NULL,
  state TEXT NOT NULL,
  start_time TEXT NOT NULL,
  end_time TEXT,
  paused_seconds INTEGER NOT NULL DEFAULT 0,
  pause_start TEXT,
  duration_seconds INTEGER NOT NULL DEFAULT 0,
  cancel_reason TEXT,
  notes TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_start ON sessions(start_time);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func (s *SQLiteSessionStore) Save(ctx context.Context, session domain.Session) error {
	const stmt = `
INSERT INTO sessions (id, activity_id, activity_kind, activity_title, state, start_time, end_time, paused_seconds, pause_start, duration_seconds, cancel_reason, notes)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  state=excluded.state,
  end_time=excluded.end_time,
  paused_seconds=excluded.paused_seconds,
  pause_start=excluded.pause_start,
  duration_seconds=excluded.duration_seconds,
  cancel_reason=excluded.cancel_reason,
  notes=excluded.notes;
`
	_, err := s.db.ExecContext(ctx, stmt,
		session.ID,
		session.ActivityID,
		session.ActivityKind,
		session.ActivityTitle,
		string(session.State),
		session.StartTime.Format(timeLayout),
		encodeTime(session.EndTime),
		session.PausedSeconds,
		encodeTime(session.PauseStart),
		session.DurationSeconds,
		session.CancelReason,
		session.Notes,
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *SQLiteSessionStore) FindByID(ctx context.Context, id string) (domain.Session, error) {
	const query = `
SELECT id, activity_id, activity_kind, activity_title, state, start_time, end_time, paused_seconds, pause_start, duration_seconds, cancel_reason, notes
FROM sessions WHERE id = ?;
`
	row := s.db.QueryRowContext(ctx, query, id)
	session, err := scanSession(row)
	if err == sql.ErrNoRows {
		return domain.Session{}, fmt.Errorf("%w: session %s", apperrors.ErrNotFound, id)
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("find session: %w", err)
	}
	return session, nil
}

func (s *SQLiteSessionStore) List(ctx context.Context, from, to time.Time) ([]domain.Session, error) {
	const query = `
SELECT id, activity_id, activity_kind, activity_title, state, start_time, end_time, paused_seconds, pause_start, duration_seconds, cancel_reason, notes
FROM sessions WHERE start_time >= ? AND start_time < ? ORDER BY start_time, id;
`
	rows, err := s.db.QueryContext(ctx, query, from.Format(timeLayout), to.Format(timeLayout))
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []domain.Session{}
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (domain.Session, error) {
	var (
		session             domain.Session
		state, startRaw     string
		endRaw, pauseRaw    sql.NullString
		cancelReason, notes sql.NullString
	)
	err := row.Scan(&session.ID, &session.ActivityID, &session.ActivityKind, &session.ActivityTitle, &state, &startRaw, &endRaw, &session.PausedSeconds, &pauseRaw, &session.DurationSeconds, &cancelReason, &notes)
	if err != nil {
		return domain.Session{}, err
	}
	session.State = domain.State(state)
	session.CancelReason = cancelReason.String
	session.Notes = notes.String
	if session.StartTime, err = time.Parse(timeLayout, startRaw); err != nil {
		return domain.Session{}, err
	}
	if session.EndTime, err = decodeTime(endRaw); err != nil {
		return domain.Session{}, err
	}
	if session.PauseStart, err = decodeTime(pauseRaw); err != nil {
		return domain.Session{}, err
	}
	return session, nil
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

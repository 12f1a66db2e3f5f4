package dto

import "time"

type StartInput struct {
	ActivityID string
	Kind       string
}

type StartOutput struct {
	SessionID     string
	ActivityID    string
	ActivityTitle string
	StartedAt     time.Time
}

type PauseInput struct {
	SessionID string
}

type ResumeInput struct {
	SessionID string
}

type StopInput struct {
	SessionID string
	Notes     string
}

type StopOutput struct {
	SessionID       string
	ActivityID      string
	DurationSeconds int64
	PausedSeconds   int64
	CompletionPct   int
	Substatus       string
	JournalPath     string
}

type CancelInput struct {
	SessionID string
	Reason    string
}

type CancelOutput struct {
	SessionID  string
	ActivityID string
}

// ManualLogInput records effort retroactively. Exactly one of the explicit
// interval (Start and End) or DurationMinutes must be provided.
type ManualLogInput struct {
	ActivityID      string
	Kind            string
	Start           *time.Time
	End             *time.Time
	DurationMinutes int
	Notes           string
}

type SessionOutput struct {
	SessionID       string
	ActivityID      string
	ActivityKind    string
	ActivityTitle   string
	State           string
	StartedAt       time.Time
	EndedAt         *time.Time
	DurationSeconds int64
	PausedSeconds   int64
	CancelReason    string
	Notes           string
}

type ActiveSessionOutput struct {
	SessionID      string
	ActivityID     string
	ActivityTitle  string
	State          string
	StartedAt      time.Time
	PausedSeconds  int64
	ElapsedSeconds int64
}

package domain

import (
	"fmt"
	"strings"
	"time"
)

const SchemaVersion = 1

// DefaultTaskDuration is assumed for one-off tasks scheduled without an
// explicit end time.
const DefaultTaskDuration = 60 * time.Minute

type Kind string

const (
	KindHabit Kind = "habit"
	KindTask  Kind = "task"
)

func (k Kind) Validate() error {
	switch k {
	case KindHabit, KindTask:
		return nil
	default:
		return fmt.Errorf("unsupported activity kind %q", string(k))
	}
}

type Status string

const (
	StatusPlanned    Status = "planned"
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusPaused     Status = "paused"
	StatusDone       Status = "done"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Validate() error {
	switch s {
	case StatusPlanned, StatusPending, StatusInProgress, StatusPaused, StatusDone, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("unsupported activity status %q", string(s))
	}
}

func (s Status) Terminal() bool {
	return s == StatusDone || s == StatusCancelled
}

// Substatus grades a done activity by actual effort against its scheduled
// duration. It is only meaningful while Status is done.
type Substatus string

const (
	SubstatusPartial   Substatus = "partial"
	SubstatusFull      Substatus = "full"
	SubstatusOverdone  Substatus = "overdone"
	SubstatusExcessive Substatus = "excessive"
)

func (s Substatus) Validate() error {
	switch s {
	case SubstatusPartial, SubstatusFull, SubstatusOverdone, SubstatusExcessive:
		return nil
	default:
		return fmt.Errorf("unsupported done substatus %q", string(s))
	}
}

// Activity is one schedulable occurrence on a calendar day: a habit's daily
// occurrence or a one-off task.
type Activity struct {
	ID            string
	Kind          Kind
	Title         string
	Day           string // civil date, 2006-01-02
	Start         *time.Time
	End           *time.Time
	Status        Status
	DoneSubstatus Substatus
	CompletionPct int
	NotDoneReason string
	Tags          []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (a Activity) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if err := a.Kind.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(a.Day) == "" {
		return fmt.Errorf("day is required")
	}
	if err := a.Status.Validate(); err != nil {
		return err
	}
	if a.Start != nil && a.End != nil && !a.Start.Before(*a.End) {
		return fmt.Errorf("scheduled start must be before end")
	}
	return nil
}

// Window resolves the scheduled interval for the activity. A task scheduled
// without an explicit end runs for DefaultTaskDuration; a habit occurrence
// needs both bounds. ok is false when no interval can be resolved.
func (a Activity) Window() (start, end time.Time, ok bool) {
	if a.Start == nil {
		return time.Time{}, time.Time{}, false
	}
	if a.End != nil {
		return *a.Start, *a.End, true
	}
	if a.Kind == KindTask {
		return *a.Start, a.Start.Add(DefaultTaskDuration), true
	}
	return time.Time{}, time.Time{}, false
}

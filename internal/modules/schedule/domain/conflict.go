package domain

import (
	"fmt"
	"time"
)

// ActivityRef identifies one schedulable occurrence: a habit's daily
// occurrence or a one-off task.
type ActivityRef struct {
	ID   string
	Kind string
}

type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) Validate() error {
	if !i.Start.Before(i.End) {
		return fmt.Errorf("interval start must be before end")
	}
	return nil
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps is strict on both sides: intervals that merely touch do not
// overlap.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

type ConflictKind string

const ConflictOverlap ConflictKind = "overlap"

// Conflict is a detected temporal overlap between two same-day activities.
// Conflicts are computed on demand and never persisted.
type Conflict struct {
	Anchor         ActivityRef
	Other          ActivityRef
	AnchorInterval Interval
	OtherInterval  Interval
	Kind           ConflictKind
}

package dto

import "time"

type AddInput struct {
	Kind  string
	Title string
	Day   string
	Start *time.Time
	End   *time.Time
	Tags  []string
}

type SetTimesInput struct {
	ActivityID string
	Start      time.Time
	End        *time.Time
}

type SetStatusInput struct {
	ActivityID string
	Status     string
}

type MarkDoneInput struct {
	ActivityID    string
	Substatus     string
	CompletionPct int
}

type ActivityOutput struct {
	ID            string
	Kind          string
	Title         string
	Day           string
	Start         *time.Time
	End           *time.Time
	Status        string
	DoneSubstatus string
	CompletionPct int
	NotDoneReason string
	Tags          []string
}

// ResolveOutput is the Time Provider answer for one occurrence.
// Resolved is false when the activity has no usable schedule.
type ResolveOutput struct {
	ActivityID string
	Kind       string
	Day        string
	Status     string
	Start      time.Time
	End        time.Time
	Resolved   bool
}

package dto

import "time"

type ConflictOutput struct {
	AnchorID    string
	AnchorKind  string
	OtherID     string
	OtherKind   string
	AnchorStart time.Time
	AnchorEnd   time.Time
	OtherStart  time.Time
	OtherEnd    time.Time
	Kind        string
}

type ProposedChangeOutput struct {
	ActivityID string
	Start      time.Time
	End        time.Time
}

type ProposalOutput struct {
	Conflicts             []ConflictOutput
	Changes               []ProposedChangeOutput
	WindowStart           time.Time
	WindowEnd             time.Time
	EstimatedShiftSeconds int64
}

type DetectInput struct {
	ActivityID string
	Kind       string
}

type RescheduleInput struct {
	ActivityID string
	Kind       string
	Start      time.Time
	End        *time.Time
}

// RescheduleOutput reports the result of moving an activity. The write always
// succeeds; conflicts are informational and come with a proposal when any
// exist.
type RescheduleOutput struct {
	ActivityID string
	Start      time.Time
	End        *time.Time
	Conflicts  []ConflictOutput
	Proposal   *ProposalOutput
}

type ApplyInput struct {
	Changes []ProposedChangeOutput
}

type ApplyOutput struct {
	Applied int
}

package domain

import (
	"sort"
	"time"
)

// Entry pairs an activity reference with its current schedule and status for
// reordering purposes.
type Entry struct {
	Ref      ActivityRef
	Interval Interval
	Status   string
}

type ProposedChange struct {
	ActivityID string
	Start      time.Time
	End        time.Time
}

// Proposal is a computed, non-persisted set of suggested new times resolving
// a conflict set. Applying it is a separate, caller-driven write.
type Proposal struct {
	Conflicts      []Conflict
	Changes        []ProposedChange
	WindowStart    time.Time
	WindowEnd      time.Time
	EstimatedShift int64 // sum of absolute start shifts, in seconds
}

func (p Proposal) Empty() bool {
	return len(p.Changes) == 0
}

// ProposeReordering partitions the activities referenced by the conflicts
// into immovable anchors (critical/high tiers) and movable activities (low
// tier), then stacks each movable activity at the earliest start clear of
// everything already placed, preserving its original duration. Excluded-tier
// activities are dropped entirely; anchors never receive a change. The result
// is deterministic for a given input.
func ProposeReordering(entries []Entry, conflicts []Conflict) Proposal {
	proposal := Proposal{Conflicts: conflicts}
	if len(conflicts) == 0 {
		return proposal
	}

	referenced := map[string]bool{}
	for _, c := range conflicts {
		referenced[c.Anchor.ID] = true
		referenced[c.Other.ID] = true
	}

	var anchors, movable []Entry
	for _, e := range entries {
		if !referenced[e.Ref.ID] {
			continue
		}
		tier := TierFor(e.Status)
		switch {
		case tier.Anchor():
			anchors = append(anchors, e)
		case tier.Movable():
			movable = append(movable, e)
		}
	}

	sort.SliceStable(movable, func(i, j int) bool {
		if movable[i].Interval.Start.Equal(movable[j].Interval.Start) {
			return movable[i].Ref.ID < movable[j].Ref.ID
		}
		return movable[i].Interval.Start.Before(movable[j].Interval.Start)
	})

	placed := make([]Interval, 0, len(anchors)+len(movable))
	for _, a := range anchors {
		placed = append(placed, a.Interval)
	}

	window := windowTracker{}
	for _, a := range anchors {
		window.include(a.Interval)
	}

	var shift int64
	for _, m := range movable {
		duration := m.Interval.Duration()
		start := m.Interval.Start
		for bumped := true; bumped; {
			bumped = false
			for _, p := range placed {
				if Overlaps(Interval{Start: start, End: start.Add(duration)}, p) {
					start = p.End
					bumped = true
				}
			}
		}
		slot := Interval{Start: start, End: start.Add(duration)}
		placed = append(placed, slot)
		window.include(m.Interval)
		window.include(slot)
		if !start.Equal(m.Interval.Start) {
			proposal.Changes = append(proposal.Changes, ProposedChange{ActivityID: m.Ref.ID, Start: slot.Start, End: slot.End})
			delta := slot.Start.Sub(m.Interval.Start)
			if delta < 0 {
				delta = -delta
			}
			shift += int64(delta.Seconds())
		}
	}

	proposal.WindowStart = window.start
	proposal.WindowEnd = window.end
	proposal.EstimatedShift = shift
	return proposal
}

type windowTracker struct {
	start time.Time
	end   time.Time
}

func (w *windowTracker) include(i Interval) {
	if w.start.IsZero() || i.Start.Before(w.start) {
		w.start = i.Start
	}
	if w.end.IsZero() || i.End.After(w.end) {
		w.end = i.End
	}
}

package domain

// Tier is the reordering priority derived from an activity's lifecycle
// status. It exists only while a proposal is being computed.
type Tier int

const (
	// TierExcluded activities take no part in reordering at all.
	TierExcluded Tier = iota
	// TierCritical and TierHigh activities are immovable anchors.
	TierCritical
	TierHigh
	// TierLow activities may be moved.
	TierLow
)

func (t Tier) Anchor() bool {
	return t == TierCritical || t == TierHigh
}

func (t Tier) Movable() bool {
	return t == TierLow
}

// TierFor maps a lifecycle status to its reordering tier. Statuses outside
// the known set are excluded rather than moved.
func TierFor(status string) Tier {
	switch status {
	case "in_progress":
		return TierCritical
	case "paused":
		return TierHigh
	case "planned", "pending":
		return TierLow
	case "done", "cancelled":
		return TierExcluded
	default:
		return TierExcluded
	}
}

package domain

import (
	"fmt"
	"math"

	apperrors "tempo/internal/platform/errors"
)

// Substatus grades how closely actual effort matched the scheduled target.
type Substatus string

const (
	SubstatusPartial   Substatus = "partial"
	SubstatusFull      Substatus = "full"
	SubstatusOverdone  Substatus = "overdone"
	SubstatusExcessive Substatus = "excessive"
)

// Classify computes the completion percentage and its substatus tier. It is
// the single source of truth for both live-tracked and manually logged
// sessions. Tiers are upper-bound inclusive: 90% is full, 110% is full,
// 150% is overdone.
func Classify(actualSeconds, targetSeconds int64) (int, Substatus, error) {
	if targetSeconds <= 0 {
		return 0, "", fmt.Errorf("%w: target duration must be positive, got %ds", apperrors.ErrInvalidInput, targetSeconds)
	}
	pct := int(math.Round(float64(actualSeconds) / float64(targetSeconds) * 100))
	switch {
	case pct < 90:
		return pct, SubstatusPartial, nil
	case pct <= 110:
		return pct, SubstatusFull, nil
	case pct <= 150:
		return pct, SubstatusOverdone, nil
	default:
		return pct, SubstatusExcessive, nil
	}
}

package domain_test

import (
	"errors"
	"testing"

	"tempo/internal/modules/tracker/domain"
	apperrors "tempo/internal/platform/errors"
)

func TestClassifyTierBoundaries(t *testing.T) {
	t.Parallel()
	const target = int64(3600)
	cases := []struct {
		name    string
		actual  int64
		wantPct int
		want    domain.Substatus
	}{
		{"well under", 1800, 50, domain.SubstatusPartial},
		{"just under full", 3200, 89, domain.SubstatusPartial},
		{"lower full bound", 3240, 90, domain.SubstatusFull},
		{"exact", 3600, 100, domain.SubstatusFull},
		{"upper full bound", 3960, 110, domain.SubstatusFull},
		{"into overdone", 3996, 111, domain.SubstatusOverdone},
		{"upper overdone bound", 5400, 150, domain.SubstatusOverdone},
		{"excessive", 5436, 151, domain.SubstatusExcessive},
		{"double", 7200, 200, domain.SubstatusExcessive},
		{"zero effort", 0, 0, domain.SubstatusPartial},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			pct, substatus, err := domain.Classify(tc.actual, target)
			if err != nil {
				t.Fatalf("classify: %v", err)
			}
			if pct != tc.wantPct || substatus != tc.want {
				t.Fatalf("Classify(%d, %d) = %d%%/%s, want %d%%/%s",
					tc.actual, target, pct, substatus, tc.wantPct, tc.want)
			}
		})
	}
}

func TestClassifyRoundsToNearestPercent(t *testing.T) {
	t.Parallel()
	// 3222/3600 = 89.5% rounds up to 90, crossing into full.
	pct, substatus, err := domain.Classify(3222, 3600)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if pct != 90 || substatus != domain.SubstatusFull {
		t.Fatalf("expected 90%%/full after rounding, got %d%%/%s", pct, substatus)
	}
}

func TestClassifyRejectsNonPositiveTarget(t *testing.T) {
	t.Parallel()
	for _, target := range []int64{0, -60} {
		if _, _, err := domain.Classify(1800, target); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("target %d: expected ErrInvalidInput, got %v", target, err)
		}
	}
}

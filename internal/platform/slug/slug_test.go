package slug_test

import (
	"testing"

	"tempo/internal/platform/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want string
	}{
		{"Write report", "write-report"},
		{"  Morning run!  ", "morning-run"},
		{"Déjà vu", "d-j-vu"},
		{"---", "untitled"},
		{"", "untitled"},
	}
	for _, tc := range cases {
		if got := slug.Make(tc.in); got != tc.want {
			t.Fatalf("Make(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

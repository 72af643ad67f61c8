package engine

import (
	"reflect"
	"testing"
)

func TestComputePathExamples(t *testing.T) {
	tests := []struct {
		start, end int
		want       []int
	}{
		{0, 0, []int{0}},
		{0, 3, []int{0, 1, 2, 3}},
		{20, 24, []int{20, 21, 22, 23, 24}},
		{5, 2, []int{5, 4, 3, 2}},
	}
	for _, tt := range tests {
		if got := ComputePath(tt.start, tt.end); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ComputePath(%d,%d) = %v, want %v", tt.start, tt.end, got, tt.want)
		}
	}
}

// TestComputePathProperties checks endpoints, unit steps and length for all pairs.
func TestComputePathProperties(t *testing.T) {
	for a := 0; a < TotalTiles; a++ {
		for b := 0; b < TotalTiles; b++ {
			p := ComputePath(a, b)
			if p[0] != a || p[len(p)-1] != b {
				t.Fatalf("ComputePath(%d,%d) endpoints = %d..%d", a, b, p[0], p[len(p)-1])
			}
			wantLen := b - a
			if wantLen < 0 {
				wantLen = -wantLen
			}
			if len(p) != wantLen+1 {
				t.Fatalf("ComputePath(%d,%d) len = %d, want %d", a, b, len(p), wantLen+1)
			}
			for i := 1; i < len(p); i++ {
				d := p[i] - p[i-1]
				if d != 1 && d != -1 {
					t.Fatalf("ComputePath(%d,%d) step %d..%d", a, b, p[i-1], p[i])
				}
			}
		}
	}
}

// TestClampTarget checks target = min(position+value, TotalTiles-1).
func TestClampTarget(t *testing.T) {
	for pos := 0; pos < TotalTiles; pos++ {
		for v := DieMin; v <= DieMax; v++ {
			got, clamped := clampTarget(pos, v, TotalTiles)
			want := pos + v
			if want > TotalTiles-1 {
				want = TotalTiles - 1
			}
			if got != want {
				t.Fatalf("clampTarget(%d,%d) = %d, want %d", pos, v, got, want)
			}
			if clamped != (pos+v >= TotalTiles) {
				t.Fatalf("clampTarget(%d,%d) clamped = %v", pos, v, clamped)
			}
		}
	}
}

package validate

import "testing"

func TestIsSortedUnique(t *testing.T) {
	cases := []struct {
		name string
		idx  []int
		want bool
	}{
		{"empty", nil, true},
		{"single", []int{0}, true},
		{"ascending", []int{0, 2, 5}, true},
		{"unsorted", []int{2, 0, 5}, false},
		{"duplicate", []int{0, 2, 2}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsSortedUnique(tc.idx); got != tc.want {
				t.Errorf("IsSortedUnique(%v) = %v, want %v", tc.idx, got, tc.want)
			}
		})
	}
}

func TestInBounds(t *testing.T) {
	if !InBounds([]int{0, 1, 2}, 3) {
		t.Error("expected all indices in bounds")
	}
	if InBounds([]int{0, 3}, 3) {
		t.Error("expected 3 to be out of bounds for n=3")
	}
	if InBounds([]int{-1}, 3) {
		t.Error("expected -1 to be out of bounds")
	}
}

func TestAllZero(t *testing.T) {
	if !AllZero([]float64{0, 0, 0}) {
		t.Error("expected all-zero row to be detected")
	}
	if AllZero([]float64{0, 1, 0}) {
		t.Error("expected non-zero row to not be flagged")
	}
	if !AllZero(nil) {
		t.Error("expected empty row to be vacuously all-zero")
	}
}

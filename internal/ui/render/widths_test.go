package render

import (
	"slices"
	"testing"
)

func TestColumnWidths(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		gap      int
		minWidth int
		weights  []int
		want     []int
	}{
		{"lyrics weighted four to one", 80, 0, 1, []int{1, 1, 1, 1, 4}, []int{10, 10, 10, 10, 40}},
		{"gaps reserved", 84, 1, 1, []int{1, 1, 1, 1, 4}, []int{10, 10, 10, 10, 40}},
		{"remainder goes right", 10, 0, 1, []int{1, 1, 1}, []int{3, 3, 4}},
		{"minimum width enforced", 5, 0, 3, []int{1, 4}, []int{3, 4}},
		{"no columns", 80, 1, 1, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColumnWidths(tt.total, tt.gap, tt.minWidth, tt.weights)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ColumnWidths(%d, %d, %d, %v) = %v, want %v",
					tt.total, tt.gap, tt.minWidth, tt.weights, got, tt.want)
			}
		})
	}
}

func TestColumnWidths_FillsAvailableSpace(t *testing.T) {
	for total := 20; total < 200; total += 7 {
		widths := ColumnWidths(total, 1, 1, []int{1, 1, 1, 1, 4})
		sum := len(widths) - 1
		for _, w := range widths {
			sum += w
		}
		if sum != total {
			t.Errorf("total %d: widths %v sum with gaps to %d", total, widths, sum)
		}
	}
}

package render

// ColumnWidths splits total columns between len(weights) columns
// proportionally to their weights, reserving gap columns between each pair.
// Every column gets at least minWidth; the remainder goes to the
// rightmost columns first.
func ColumnWidths(total, gap, minWidth int, weights []int) []int {
	n := len(weights)
	if n == 0 {
		return nil
	}

	avail := max(total-gap*(n-1), 0)
	sum := 0
	for _, w := range weights {
		sum += w
	}

	widths := make([]int, n)
	used := 0
	for i, w := range weights {
		if sum > 0 {
			widths[i] = avail * w / sum
		}
		widths[i] = max(widths[i], minWidth)
		used += widths[i]
	}

	for i := n - 1; used < avail; i-- {
		if i < 0 {
			i = n - 1
		}
		widths[i]++
		used++
	}
	return widths
}

// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of rows to keep visible above/below the cursor.
	ScrollMargin = 3

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// HeaderHeight is the space for the column header + separator in the table.
	HeaderHeight = 2

	// PanelOverhead is the total vertical overhead (border + header + separator).
	PanelOverhead = BorderHeight + HeaderHeight

	// LyricsWeight is the width of the lyrics column relative to the others.
	LyricsWeight = 4

	// ColumnGap is the number of spaces between table columns.
	ColumnGap = 1

	// MinColumnWidth is the narrowest a table column may get.
	MinColumnWidth = 4

	// MinProgressBarWidth is the minimum width for a usable progress bar.
	MinProgressBarWidth = 5
)

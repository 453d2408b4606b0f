// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Tag batch operations
	OpLoadTags  Op = "load tags"
	OpSaveTags  Op = "save tags"
	OpSortTable Op = "sort column"
	OpEditField Op = "edit field"

	// Directory selection
	OpOpenDirectory Op = "open directory"
	OpRecentLoad    Op = "load recent directories"
	OpRecentSave    Op = "remember directory"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// Package table holds the edit session's records in display order and
// implements editing and the three-state column sort.
package table

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/llehouerou/tagbatch/internal/tags"
)

// SortState is the sort direction of the store's sorted column.
type SortState int

const (
	Unsorted SortState = iota
	Ascending
	Descending
)

func (s SortState) String() string {
	switch s {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unsorted"
	}
}

// next returns the state following s in the Unsorted -> Ascending -> Descending cycle.
func (s SortState) next() SortState {
	switch s {
	case Unsorted:
		return Ascending
	case Ascending:
		return Descending
	default:
		return Unsorted
	}
}

var (
	// ErrReadOnlyColumn is returned when editing the Filename column.
	ErrReadOnlyColumn = errors.New("column is read-only")
	// ErrRowOutOfRange is returned for row indexes outside the store.
	ErrRowOutOfRange = errors.New("row out of range")
)

// Store is an ordered collection of records.
// It is not safe for concurrent use; the control loop owns it.
type Store struct {
	records []tags.Record
	sortCol Column
	sort    SortState
}

// New creates a store holding records in the given order.
// The slice is copied.
func New(records []tags.Record) *Store {
	return &Store{records: slices.Clone(records)}
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Row returns a copy of the record displayed at row.
func (s *Store) Row(row int) (tags.Record, error) {
	if row < 0 || row >= len(s.records) {
		return tags.Record{}, fmt.Errorf("%w: %d", ErrRowOutOfRange, row)
	}
	return s.records[row], nil
}

// Records returns a copy of all records in display order.
func (s *Store) Records() []tags.Record {
	return slices.Clone(s.records)
}

// Find returns the display position of the record with the given filename, or -1.
func (s *Store) Find(filename string) int {
	return slices.IndexFunc(s.records, func(r tags.Record) bool {
		return r.Filename == filename
	})
}

// Edit overwrites one field of the record at row.
func (s *Store) Edit(row int, col Column, value string) error {
	if !col.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownColumn, int(col))
	}
	if !col.Editable() {
		return fmt.Errorf("%w: %s", ErrReadOnlyColumn, col)
	}
	if row < 0 || row >= len(s.records) {
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, row)
	}
	col.set(&s.records[row], value)
	return nil
}

// SortState returns the sorted column and its direction.
// The column is meaningless when the state is Unsorted.
func (s *Store) SortState() (Column, SortState) {
	return s.sortCol, s.sort
}

// RestoreSort marks the records as ordered by col in state without moving
// them. It undoes a Sort whose follow-up reload failed, when the rows still
// have the order of the previous state.
func (s *Store) RestoreSort(col Column, state SortState) {
	s.sortCol = col
	s.sort = state
}

// StateOf returns the sort state of col.
func (s *Store) StateOf(col Column) SortState {
	if col != s.sortCol {
		return Unsorted
	}
	return s.sort
}

// Sort advances col through Unsorted -> Ascending -> Descending -> Unsorted
// and returns the new state. Selecting a column other than the sorted one
// resets the previous column and starts col at Ascending.
//
// Ascending and Descending reorder the records with a stable byte-wise
// string comparison. Unsorted leaves the rows as they are: the caller is
// expected to reload the directory to restore scan order.
func (s *Store) Sort(col Column) (SortState, error) {
	if !col.Valid() {
		return Unsorted, fmt.Errorf("%w: %d", ErrUnknownColumn, int(col))
	}

	state := s.StateOf(col).next()
	s.sortCol = col
	s.sort = state

	switch state {
	case Ascending:
		slices.SortStableFunc(s.records, func(a, b tags.Record) int {
			return strings.Compare(col.Value(a), col.Value(b))
		})
	case Descending:
		slices.SortStableFunc(s.records, func(a, b tags.Record) int {
			return strings.Compare(col.Value(b), col.Value(a))
		})
	case Unsorted:
	}
	return state, nil
}

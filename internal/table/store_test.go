package table

import (
	"errors"
	"slices"
	"testing"

	"github.com/llehouerou/tagbatch/internal/tags"
)

func sample() []tags.Record {
	return []tags.Record{
		{Filename: "a.mp3", Title: "X", Artist: "Zed"},
		{Filename: "b.mp3"},
		{Filename: "c.mp3", Title: "Y", Artist: "Zed"},
	}
}

func filenames(s *Store) []string {
	names := make([]string, 0, s.Len())
	for _, r := range s.Records() {
		names = append(names, r.Filename)
	}
	return names
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNew_CopiesInput(t *testing.T) {
	in := sample()
	s := New(in)
	in[0].Title = "mutated"

	r, err := s.Row(0)
	if err != nil {
		t.Fatalf("Row(0) error: %v", err)
	}
	if r.Title != "X" {
		t.Errorf("store should own a copy, got Title %q", r.Title)
	}
}

func TestSort_Cycle(t *testing.T) {
	s := New(sample())

	steps := []struct {
		state SortState
		order []string
	}{
		{Ascending, []string{"b.mp3", "a.mp3", "c.mp3"}},
		{Descending, []string{"c.mp3", "a.mp3", "b.mp3"}},
		{Unsorted, []string{"c.mp3", "a.mp3", "b.mp3"}}, // rows untouched until reload
	}

	for i, step := range steps {
		state, err := s.Sort(ColTitle)
		if err != nil {
			t.Fatalf("step %d: Sort() error: %v", i, err)
		}
		if state != step.state {
			t.Errorf("step %d: state = %v, want %v", i, state, step.state)
		}
		if got := filenames(s); !equal(got, step.order) {
			t.Errorf("step %d: order = %v, want %v", i, got, step.order)
		}
	}
}

func TestSort_IsStable(t *testing.T) {
	s := New(sample())

	if _, err := s.Sort(ColArtist); err != nil {
		t.Fatal(err)
	}
	// "" < "Zed"; a and c tie and keep their relative order
	want := []string{"b.mp3", "a.mp3", "c.mp3"}
	if got := filenames(s); !equal(got, want) {
		t.Errorf("ascending order = %v, want %v", got, want)
	}

	if _, err := s.Sort(ColArtist); err != nil {
		t.Fatal(err)
	}
	want = []string{"a.mp3", "c.mp3", "b.mp3"}
	if got := filenames(s); !equal(got, want) {
		t.Errorf("descending order = %v, want %v", got, want)
	}
}

func TestSort_StringComparisonOnly(t *testing.T) {
	s := New([]tags.Record{
		{Filename: "1.mp3", Title: "10"},
		{Filename: "2.mp3", Title: "9"},
		{Filename: "3.mp3", Title: "b"},
		{Filename: "4.mp3", Title: "B"},
	})

	if _, err := s.Sort(ColTitle); err != nil {
		t.Fatal(err)
	}
	want := []string{"1.mp3", "2.mp3", "4.mp3", "3.mp3"}
	if got := filenames(s); !equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestSort_SwitchingColumnResetsPrevious(t *testing.T) {
	s := New(sample())

	if _, err := s.Sort(ColTitle); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Sort(ColTitle); err != nil {
		t.Fatal(err)
	}
	if got := s.StateOf(ColTitle); got != Descending {
		t.Fatalf("Title state = %v, want descending", got)
	}

	state, err := s.Sort(ColFilename)
	if err != nil {
		t.Fatal(err)
	}
	if state != Ascending {
		t.Errorf("new column state = %v, want ascending", state)
	}
	if got := s.StateOf(ColTitle); got != Unsorted {
		t.Errorf("previous column state = %v, want unsorted", got)
	}
	col, st := s.SortState()
	if col != ColFilename || st != Ascending {
		t.Errorf("SortState() = (%v, %v), want (Filename, ascending)", col, st)
	}
}

func TestSort_PreservesRecordIdentity(t *testing.T) {
	s := New(sample())
	if _, err := s.Sort(ColTitle); err != nil {
		t.Fatal(err)
	}

	row := s.Find("c.mp3")
	r, err := s.Row(row)
	if err != nil {
		t.Fatal(err)
	}
	if r.Title != "Y" {
		t.Errorf("record for c.mp3 has Title %q, want %q", r.Title, "Y")
	}
}

func TestSort_InvalidColumn(t *testing.T) {
	s := New(sample())
	if _, err := s.Sort(Column(42)); !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("Sort(42) error = %v, want ErrUnknownColumn", err)
	}
}

func TestRestoreSort_KeepsRowOrder(t *testing.T) {
	s := New(sample())
	for range 3 {
		if _, err := s.Sort(ColTitle); err != nil {
			t.Fatal(err)
		}
	}
	before := s.Records()

	s.RestoreSort(ColTitle, Descending)

	if col, state := s.SortState(); col != ColTitle || state != Descending {
		t.Errorf("SortState() = %v, %v, want Title, Descending", col, state)
	}
	if !slices.Equal(before, s.Records()) {
		t.Errorf("RestoreSort moved records: %v, want %v", s.Records(), before)
	}
	if _, err := s.Sort(ColTitle); err != nil {
		t.Fatal(err)
	}
	if state := s.StateOf(ColTitle); state != Unsorted {
		t.Errorf("next Sort() after restore = %v, want Unsorted", state)
	}
}

func TestEdit(t *testing.T) {
	tests := []struct {
		name    string
		row     int
		col     Column
		wantErr error
	}{
		{"title", 1, ColTitle, nil},
		{"lyrics", 0, ColLyrics, nil},
		{"filename is read-only", 0, ColFilename, ErrReadOnlyColumn},
		{"negative row", -1, ColTitle, ErrRowOutOfRange},
		{"row past end", 3, ColTitle, ErrRowOutOfRange},
		{"unknown column", 0, Column(-1), ErrUnknownColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(sample())
			err := s.Edit(tt.row, tt.col, "edited")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Edit() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			r, _ := s.Row(tt.row)
			if got := tt.col.Value(r); got != "edited" {
				t.Errorf("value = %q, want %q", got, "edited")
			}
		})
	}
}

func TestEdit_AppliesToDisplayPosition(t *testing.T) {
	s := New(sample())
	if _, err := s.Sort(ColTitle); err != nil {
		t.Fatal(err)
	}

	// Row 0 is b.mp3 after ascending sort on Title
	if err := s.Edit(0, ColAlbum, "Filled"); err != nil {
		t.Fatal(err)
	}
	r, _ := s.Row(s.Find("b.mp3"))
	if r.Album != "Filled" {
		t.Errorf("b.mp3 Album = %q, want %q", r.Album, "Filled")
	}
}

func TestRecords_ReturnsCopy(t *testing.T) {
	s := New(sample())
	recs := s.Records()
	recs[0].Title = "changed"

	r, _ := s.Row(0)
	if r.Title != "X" {
		t.Errorf("Records() should return a copy, store now has %q", r.Title)
	}
}

func TestParseColumn(t *testing.T) {
	tests := []struct {
		name    string
		want    Column
		wantErr bool
	}{
		{"Title", ColTitle, false},
		{"title", ColTitle, false},
		{" LYRICS ", ColLyrics, false},
		{"Filename", ColFilename, false},
		{"genre", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColumn(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColumn(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseColumn(%q) = %v, want %v", tt.name, got, tt.want)
			}
			if err != nil && !errors.Is(err, ErrUnknownColumn) {
				t.Errorf("error should wrap ErrUnknownColumn, got %v", err)
			}
		})
	}
}

func TestColumn_String(t *testing.T) {
	if got := ColLyrics.String(); got != "Lyrics" {
		t.Errorf("ColLyrics.String() = %q", got)
	}
	if got := Column(9).String(); got != "Column(9)" {
		t.Errorf("Column(9).String() = %q", got)
	}
}

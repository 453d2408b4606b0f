//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		contexts        []string
		expectMinLength int
	}{
		{"global context", []string{"global"}, 3},
		{"table context", []string{"table"}, 10},
		{"edit context", []string{"edit"}, 2},
		{"prompt context", []string{"prompt"}, 3},
		{"multiple contexts", []string{"global", "table"}, 13},
		{"unknown context returns empty", []string{"unknown"}, 0},
		{"no context returns empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.contexts...)

			if tt.expectMinLength == 0 && len(result) != 0 {
				t.Errorf("ByContext(%v) returned %d items, expected empty", tt.contexts, len(result))
			}
			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%v) returned %d items, expected at least %d", tt.contexts, len(result), tt.expectMinLength)
			}

			for _, binding := range result {
				found := false
				for _, c := range tt.contexts {
					if binding.Context == c {
						found = true
					}
				}
				if !found {
					t.Errorf("binding context = %q, not in %v", binding.Context, tt.contexts)
				}
			}
		})
	}
}

func TestTableBindingsCoverEveryColumnSort(t *testing.T) {
	r := ForContexts("table")

	for i, key := range []string{"1", "2", "3", "4", "5"} {
		idx, ok := SortIndex(r.Resolve(key))
		if !ok {
			t.Errorf("key %q is not a positional sort", key)
			continue
		}
		if idx != i {
			t.Errorf("SortIndex(Resolve(%q)) = %d, want %d", key, idx, i)
		}
	}
}

func TestSortIndex_NonSortAction(t *testing.T) {
	if _, ok := SortIndex(ActionSave); ok {
		t.Error("SortIndex(ActionSave) ok = true, want false")
	}
}

func TestBindingsHaveRequiredFields(t *testing.T) {
	for i, b := range Bindings {
		if b.Action == "" {
			t.Errorf("binding[%d] has empty Action", i)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding[%d] (%s) has no Keys", i, b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding[%d] (%s) has empty Description", i, b.Action)
		}
		if b.Context == "" {
			t.Errorf("binding[%d] (%s) has empty Context", i, b.Action)
		}
	}
}

func TestBindingsHaveValidContexts(t *testing.T) {
	validContexts := map[string]bool{
		"global": true,
		"table":  true,
		"edit":   true,
		"prompt": true,
	}

	for i, b := range Bindings {
		if !validContexts[b.Context] {
			t.Errorf("binding[%d] (%s) has invalid context %q", i, b.Action, b.Context)
		}
	}
}

func TestNoKeyConflictsWithinContext(t *testing.T) {
	seen := make(map[string]map[string]Action)
	for _, b := range Bindings {
		if seen[b.Context] == nil {
			seen[b.Context] = make(map[string]Action)
		}
		for _, k := range b.Keys {
			if prev, ok := seen[b.Context][k]; ok && prev != b.Action {
				t.Errorf("key %q bound to both %q and %q in context %q", k, prev, b.Action, b.Context)
			}
			seen[b.Context][k] = b.Action
		}
	}
}

package domain

import (
	"testing"
)

func TestNormalize_ZeroCheckedIsNone(t *testing.T) {
	sel := Normalize([]int64{}, 5)
	if !sel.IsNone() {
		t.Errorf("expected None, got state %v", sel.State())
	}
	if sel.Matches(1) {
		t.Error("None must match nothing")
	}
}

func TestNormalize_AllCheckedIsAll(t *testing.T) {
	sel := Normalize([]int64{1, 2, 3}, 3)
	if !sel.IsAll() {
		t.Errorf("expected All, got state %v", sel.State())
	}
	if !sel.Matches(99) {
		t.Error("All must match everything")
	}
}

func TestNormalize_PartialIsSubset(t *testing.T) {
	sel := Normalize([]int64{2, 4}, 5)
	if sel.State() != SelectionSubset {
		t.Fatalf("expected Subset, got state %v", sel.State())
	}
	if !sel.Matches(2) || !sel.Matches(4) {
		t.Error("subset must match its own ids")
	}
	if sel.Matches(3) {
		t.Error("subset must not match an id outside the checked set")
	}
	ids := sel.IDs()
	if len(ids) != 2 || ids[0] != 2 || ids[1] != 4 {
		t.Errorf("expected sorted ids [2 4], got %v", ids)
	}
}

func TestSelectSubset_EmptyCollapsesToNone(t *testing.T) {
	sel := SelectSubset([]int64{})
	if !sel.IsNone() {
		t.Error("an empty subset selects nothing and must be None")
	}
}

func TestMatchesPair_RequiresBothIDs(t *testing.T) {
	sel := SelectSubset([]int64{1, 2}) // people A=1, B=2 selected

	// debtor A, creditor C=3: C not selected, pair excluded
	if sel.MatchesPair(1, 3) {
		t.Error("pair with unselected creditor must be excluded")
	}
	// debtor A, creditor B: both selected, pair included
	if !sel.MatchesPair(1, 2) {
		t.Error("pair with both people selected must be included")
	}
}

func TestParseIDSelection(t *testing.T) {
	tests := []struct {
		name  string
		param string
		state SelectionState
		ids   []int64
		err   bool
	}{
		{name: "absent means all", param: "", state: SelectionAll},
		{name: "none keyword", param: "none", state: SelectionNone},
		{name: "none uppercase", param: "NONE", state: SelectionNone},
		{name: "csv subset", param: "3,1,2", state: SelectionSubset, ids: []int64{1, 2, 3}},
		{name: "csv with spaces", param: " 5 , 7 ", state: SelectionSubset, ids: []int64{5, 7}},
		{name: "garbage", param: "1,x", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := ParseIDSelection(tt.param)
			if tt.err {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if sel.State() != tt.state {
				t.Errorf("expected state %v, got %v", tt.state, sel.State())
			}
			got := sel.IDs()
			if len(got) != len(tt.ids) {
				t.Fatalf("expected ids %v, got %v", tt.ids, got)
			}
			for i := range got {
				if got[i] != tt.ids[i] {
					t.Errorf("expected ids %v, got %v", tt.ids, got)
					break
				}
			}
		})
	}
}

func TestParseTypeSelection(t *testing.T) {
	if !ParseTypeSelection("").IsAll() {
		t.Error("absent parameter must be All")
	}
	if !ParseTypeSelection("none").IsNone() {
		t.Error("none keyword must be None")
	}
	sel := ParseTypeSelection("SALARIO,PRIMA")
	if !sel.Matches("SALARIO") || !sel.Matches("PRIMA") {
		t.Error("subset must match its own types")
	}
	if sel.Matches("OTROS") {
		t.Error("subset must not match an unlisted type")
	}
}

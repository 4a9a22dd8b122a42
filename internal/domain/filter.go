package domain

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// SelectionState identifies the canonical state of a filter dimension.
type SelectionState int

const (
	// SelectionAll applies no filtering.
	SelectionAll SelectionState = iota
	// SelectionNone hides every record in the dimension.
	SelectionNone
	// SelectionSubset keeps only records whose id is in the subset.
	SelectionSubset
)

// Selection is the committed state of one filter dimension. It is always one
// of All, None, or a non-empty explicit subset; there is no exclusion-list
// intermediate. Canonical state is recomputed from the full checked set on
// every commit, never from incremental mutation.
type Selection[T cmp.Ordered] struct {
	state SelectionState
	ids   map[T]struct{}
}

// SelectAll returns a selection that matches everything.
func SelectAll[T cmp.Ordered]() Selection[T] {
	return Selection[T]{state: SelectionAll}
}

// SelectNone returns a selection that matches nothing.
func SelectNone[T cmp.Ordered]() Selection[T] {
	return Selection[T]{state: SelectionNone}
}

// SelectSubset returns a selection matching exactly the given ids.
// An empty id list is None: a subset that selects nothing hides everything.
func SelectSubset[T cmp.Ordered](ids []T) Selection[T] {
	if len(ids) == 0 {
		return SelectNone[T]()
	}
	set := make(map[T]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return Selection[T]{state: SelectionSubset, ids: set}
}

// Normalize is the commit step: it derives the canonical selection from the
// set of checked ids and the total number of checkboxes in the dimension.
// Zero checked is None, all checked is All, anything else is the checked
// subset.
func Normalize[T cmp.Ordered](checked []T, total int) Selection[T] {
	switch {
	case len(checked) == 0:
		return SelectNone[T]()
	case total > 0 && len(checked) >= total:
		return SelectAll[T]()
	default:
		return SelectSubset(checked)
	}
}

// State returns the canonical state.
func (s Selection[T]) State() SelectionState { return s.state }

// IsAll reports whether the selection applies no filtering.
func (s Selection[T]) IsAll() bool { return s.state == SelectionAll }

// IsNone reports whether the selection hides everything.
func (s Selection[T]) IsNone() bool { return s.state == SelectionNone }

// Matches reports whether a record with the given id passes the filter.
func (s Selection[T]) Matches(id T) bool {
	switch s.state {
	case SelectionAll:
		return true
	case SelectionNone:
		return false
	default:
		_, ok := s.ids[id]
		return ok
	}
}

// MatchesPair reports whether both ids pass the filter. Loan balances are
// kept only when debtor AND creditor are selected.
func (s Selection[T]) MatchesPair(a, b T) bool {
	return s.Matches(a) && s.Matches(b)
}

// IDs returns the subset ids in ascending order. All and None return nil.
func (s Selection[T]) IDs() []T {
	if s.state != SelectionSubset {
		return nil
	}
	ids := make([]T, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// noneParam is the query-parameter sentinel for an empty selection.
const noneParam = "none"

// ParseIDSelection parses a filter query parameter into a selection over
// numeric ids. An absent parameter means All, the literal "none" means None,
// and a comma-separated id list means Subset.
func ParseIDSelection(param string) (Selection[int64], error) {
	param = strings.TrimSpace(param)
	if param == "" {
		return SelectAll[int64](), nil
	}
	if strings.EqualFold(param, noneParam) {
		return SelectNone[int64](), nil
	}
	parts := strings.Split(param, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return Selection[int64]{}, ErrInvalidSelection
		}
		ids = append(ids, id)
	}
	return SelectSubset(ids), nil
}

// ParseTypeSelection parses a filter query parameter into a selection over
// string type codes, following the same All/None/Subset convention.
func ParseTypeSelection(param string) Selection[string] {
	param = strings.TrimSpace(param)
	if param == "" {
		return SelectAll[string]()
	}
	if strings.EqualFold(param, noneParam) {
		return SelectNone[string]()
	}
	parts := strings.Split(param, ",")
	types := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			types = append(types, p)
		}
	}
	return SelectSubset(types)
}

// FilterSet carries the committed selection for every filterable dimension of
// the dashboard.
type FilterSet struct {
	Members        Selection[int64]
	IncomeTypes    Selection[string]
	Categories     Selection[int64]
	PaymentMethods Selection[int64]
	LoanPeople     Selection[int64]
	Cards          Selection[int64]
	CardOwners     Selection[int64]
}

// NewFilterSet returns a filter set with every dimension set to All.
func NewFilterSet() FilterSet {
	return FilterSet{
		Members:        SelectAll[int64](),
		IncomeTypes:    SelectAll[string](),
		Categories:     SelectAll[int64](),
		PaymentMethods: SelectAll[int64](),
		LoanPeople:     SelectAll[int64](),
		Cards:          SelectAll[int64](),
		CardOwners:     SelectAll[int64](),
	}
}

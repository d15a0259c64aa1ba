package search

import (
	"strings"

	"github.com/redexp/familymuseum-lsp/state"
	. "github.com/redexp/familymuseum-lsp/utils"
)

// Matcher tests members against one query.
// Latin fields are compared ignoring case, Hebrew fields by exact containment.
type Matcher struct {
	query string
	lower string
}

func NewMatcher(query string) Matcher {
	return Matcher{
		query: query,
		lower: strings.ToLower(query),
	}
}

func (q Matcher) Empty() bool {
	return q.query == ""
}

func (q Matcher) Match(m *state.Member) bool {
	if q.Empty() {
		return true
	}

	return ContainsFold(m.Name, q.lower) ||
		ContainsFold(m.Role, q.lower) ||
		(m.HebrewName != "" && strings.Contains(m.HebrewName, q.query)) ||
		AnyContains(m.Achievements, q.containsFold) ||
		AnyContains(m.Cultural, q.contains)
}

// NameMatch is the lighter check used to flag nodes while searching.
func (q Matcher) NameMatch(m *state.Member) bool {
	if q.Empty() {
		return false
	}

	return ContainsFold(m.Name, q.lower) ||
		(m.HebrewName != "" && strings.Contains(m.HebrewName, q.query))
}

func (q Matcher) containsFold(s string) bool {
	return ContainsFold(s, q.lower)
}

func (q Matcher) contains(s string) bool {
	return strings.Contains(s, q.query)
}

// Filter keeps matching members in their original order.
// An empty query returns the list itself.
func Filter(list state.Members, query string) state.Members {
	q := NewMatcher(query)

	if q.Empty() {
		return list
	}

	res := make(state.Members, 0)

	for _, m := range list {
		if q.Match(m) {
			res = append(res, m)
		}
	}

	return res
}

func Count(list state.Members, query string) int {
	q := NewMatcher(query)

	if q.Empty() {
		return len(list)
	}

	n := 0

	for _, m := range list {
		if q.Match(m) {
			n++
		}
	}

	return n
}

package layout

import (
	"slices"

	"github.com/redexp/familymuseum-lsp/state"
)

type HighlightSet map[string]struct{}

// Highlight collects the hovered id with its children, parents and spouse.
// Parent ids are taken as is, even when no such member exists.
func Highlight(index *state.Index, hovered string) HighlightSet {
	set := make(HighlightSet)

	if hovered == "" {
		return set
	}

	set.Add(hovered)

	if index == nil {
		return set
	}

	m := index.Get(hovered)

	if m == nil {
		return set
	}

	for _, id := range m.Children {
		set.Add(id)
	}

	for _, id := range m.ParentIds {
		set.Add(id)
	}

	if spouse := index.Spouse(m); spouse != nil {
		set.Add(spouse.Id)
	}

	return set
}

func (set HighlightSet) Add(id string) {
	set[id] = struct{}{}
}

func (set HighlightSet) Has(id string) bool {
	_, ok := set[id]

	return ok
}

func (set HighlightSet) Connection(c Connection) bool {
	return set.Has(c.MemberIds[0]) || set.Has(c.MemberIds[1])
}

func (set HighlightSet) Ids() []string {
	ids := make([]string, 0, len(set))

	for id := range set {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}

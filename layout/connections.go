package layout

import (
	"slices"
	"strings"

	"github.com/redexp/familymuseum-lsp/state"
)

type ConnectionType string

const (
	ParentChild ConnectionType = "parent-child"
	Spouse      ConnectionType = "spouse"
	Sibling     ConnectionType = "sibling"
)

type Connection struct {
	Type      ConnectionType `json:"type"`
	From      state.Position `json:"from"`
	To        state.Position `json:"to"`
	MemberIds [2]string      `json:"memberIds"`
}

type ConnectOptions struct {
	InferSiblings bool
}

// Connect derives parent-child and spouse edges between positioned members.
// Children that are not in the list are skipped.
func Connect(positioned state.Members, index *state.Index, opts ConnectOptions) []Connection {
	if index == nil {
		index = state.NewIndex(positioned)
	}

	list := make([]Connection, 0)

	for _, m := range positioned {
		for _, childId := range m.Children {
			child := index.Get(childId)

			if child == nil {
				continue
			}

			list = append(list, link(ParentChild, m, child))
		}

		if !m.HasSpouse() {
			continue
		}

		spouse := index.Spouse(m)

		// the lower id draws the line so each couple gets one edge
		if spouse != nil && m.Id < spouse.Id {
			list = append(list, link(Spouse, m, spouse))
		}
	}

	if opts.InferSiblings {
		list = append(list, siblings(positioned)...)
	}

	return list
}

// siblings links members that share the same non-empty set of parents.
func siblings(positioned state.Members) []Connection {
	groups := make(map[string]state.Members)
	keys := make([]string, 0)

	for _, m := range positioned {
		if len(m.ParentIds) == 0 {
			continue
		}

		parents := slices.Clone(m.ParentIds)
		slices.Sort(parents)
		parents = slices.Compact(parents)
		key := strings.Join(parents, "\x00")

		if _, exist := groups[key]; !exist {
			keys = append(keys, key)
		}

		groups[key] = append(groups[key], m)
	}

	list := make([]Connection, 0)

	for _, key := range keys {
		group := groups[key]

		for i, a := range group {
			for _, b := range group[i+1:] {
				switch {
				case a.Id < b.Id:
					list = append(list, link(Sibling, a, b))
				case b.Id < a.Id:
					list = append(list, link(Sibling, b, a))
				}
			}
		}
	}

	return list
}

func link(t ConnectionType, from, to *state.Member) Connection {
	return Connection{
		Type:      t,
		From:      from.Position,
		To:        to.Position,
		MemberIds: [2]string{from.Id, to.Id},
	}
}

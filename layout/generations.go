package layout

import (
	"slices"

	"github.com/redexp/familymuseum-lsp/state"
)

type GenerationsMap map[int]state.Members

type Generation struct {
	Index   int
	Members state.Members
}

type GenerationLabel struct {
	Generation int     `json:"generation"`
	Number     int     `json:"number"`
	Y          float64 `json:"y"`
}

func (genMap GenerationsMap) Add(m *state.Member) {
	genMap[m.Generation] = append(genMap[m.Generation], m)
}

func (genMap GenerationsMap) ToArray() (list []Generation) {
	for index, members := range genMap {
		list = append(list, Generation{
			Index:   index,
			Members: members,
		})
	}

	slices.SortFunc(list, func(a, b Generation) int {
		return a.Index - b.Index
	})

	return list
}

// Arrange returns positioned copies of the members grouped by generation.
// Rows are centered in the viewport and may overflow it horizontally.
func Arrange(members state.Members, viewport Viewport, style Style) state.Members {
	genMap := make(GenerationsMap)

	for _, m := range members {
		genMap.Add(m)
	}

	gens := genMap.ToArray()
	positioned := make(state.Members, 0, len(members))

	if len(gens) == 0 {
		return positioned
	}

	minGen := gens[0].Index

	for _, gen := range gens {
		y := float64(gen.Index-minGen)*style.GenerationHeight + style.TopMargin
		startX := (viewport.Width - float64(len(gen.Members))*style.MemberWidth) / 2

		for i, m := range gen.Members {
			p := m.Clone()
			p.Position = state.Position{
				X: startX + float64(i)*style.MemberWidth + style.MemberWidth/2,
				Y: y,
			}

			positioned = append(positioned, p)
		}
	}

	return positioned
}

func Labels(members state.Members, style Style) []GenerationLabel {
	gens := members.Generations()
	labels := make([]GenerationLabel, 0, len(gens))

	if len(gens) == 0 {
		return labels
	}

	slices.Sort(gens)
	minGen := gens[0]

	for _, g := range gens {
		labels = append(labels, GenerationLabel{
			Generation: g,
			Number:     g + 1,
			Y:          float64(g-minGen)*style.GenerationHeight + style.LabelOffset,
		})
	}

	return labels
}

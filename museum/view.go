package museum

import (
	"github.com/redexp/familymuseum-lsp/i18n"
	"github.com/redexp/familymuseum-lsp/layout"
	"github.com/redexp/familymuseum-lsp/search"
	"github.com/redexp/familymuseum-lsp/state"
	. "github.com/redexp/familymuseum-lsp/types"
	"github.com/redexp/familymuseum-lsp/virtual"
)

type Node struct {
	*state.Member

	Index       int     `json:"index"`
	Highlighted bool    `json:"highlighted"`
	Placeholder bool    `json:"placeholder,omitempty"`
	Width       float64 `json:"width,omitempty"`
	Height      float64 `json:"height,omitempty"`
}

type Line struct {
	layout.Connection
	layout.Path

	Highlighted bool `json:"highlighted"`
}

type Label struct {
	layout.GenerationLabel

	Text string `json:"text"`
}

type View struct {
	Session     string          `json:"session"`
	Dataset     Uri             `json:"dataset"`
	Viewport    layout.Viewport `json:"viewport"`
	Query       string          `json:"query"`
	Hovered     string          `json:"hovered,omitempty"`
	Total       int             `json:"total"`
	Matched     int             `json:"matched"`
	Filtered    int             `json:"filtered"`
	Generations int             `json:"generations"`
	Virtualized bool            `json:"virtualized"`
	Range       virtual.Range   `json:"range"`
	Nodes       []Node          `json:"nodes"`
	Lines       []Line          `json:"lines"`
	Labels      []Label         `json:"labels"`
	Highlighted []string        `json:"highlighted"`
	Message     string          `json:"message,omitempty"`
	Hint        string          `json:"hint,omitempty"`
	Status      Status          `json:"status"`
	Notice      *Notice         `json:"notice,omitempty"`
}

// Notice is the banner shown while the tree loads and right after it.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Caption     string `json:"caption,omitempty"`
}

func (s Status) Notice() *Notice {
	switch {
	case s.Loading:
		return &Notice{
			Title: i18n.L("loading"),
		}

	case s.Welcome:
		return &Notice{
			Title:       i18n.L("welcome_title"),
			Description: i18n.L("welcome_description"),
			Caption:     i18n.L("loaded"),
		}
	}

	return nil
}

// View runs one full render cycle over the current state.
func (r *Root) View() *View {
	r.lock.Lock()
	defer r.lock.Unlock()

	s := r.settings
	all := r.members
	query := search.NewMatcher(r.query)

	// the tree only receives the page level results while searching
	tree := search.Filter(all, r.query)

	positioned := layout.Arrange(tree, r.viewport, s.Style)
	index := state.NewIndex(positioned)
	connections := layout.Connect(positioned, index, layout.ConnectOptions{
		InferSiblings: s.InferSiblings,
	})
	filtered := search.Filter(positioned, r.query)
	highlight := layout.Highlight(index, r.hovered)
	virtualized := s.Virtual.Enabled(len(filtered))
	rng := s.Virtual.Window(r.scrollTop, r.viewport.Height, len(filtered))

	v := &View{
		Session:     r.Session,
		Dataset:     r.dataset,
		Viewport:    r.viewport,
		Query:       r.query,
		Hovered:     r.hovered,
		Total:       len(all),
		Matched:     len(tree),
		Filtered:    len(filtered),
		Generations: len(all.Generations()),
		Virtualized: virtualized,
		Range:       rng,
		Nodes:       make([]Node, 0, rng.Len()),
		Lines:       make([]Line, 0, len(connections)),
		Highlighted: highlight.Ids(),
		Status:      r.status,
		Notice:      r.status.Notice(),
	}

	for i := rng.Start; i < rng.End; i++ {
		m := filtered[i]
		node := Node{
			Member:      m,
			Index:       i,
			Highlighted: highlight.Has(m.Id) || query.NameMatch(m),
		}

		if virtualized && !r.revealed.Has(m.Id) {
			node.Placeholder = true
			node.Width = s.Virtual.PlaceholderWidth
			node.Height = s.Virtual.PlaceholderHeight
		}

		v.Nodes = append(v.Nodes, node)
	}

	for _, c := range connections {
		v.Lines = append(v.Lines, Line{
			Connection:  c,
			Path:        c.Path(),
			Highlighted: highlight.Connection(c),
		})
	}

	for _, label := range layout.Labels(positioned, s.Style) {
		v.Labels = append(v.Labels, Label{
			GenerationLabel: label,
			Text:            i18n.L("generation_label", label.Number),
		})
	}

	if v.Labels == nil {
		v.Labels = make([]Label, 0)
	}

	switch {
	case !query.Empty() && len(filtered) == 0:
		v.Message = i18n.L("no_results")
		v.Hint = i18n.L("no_results_hint")

	case r.hovered == "" && len(v.Nodes) > 0:
		v.Hint = i18n.L("hover_hint")
	}

	return v
}

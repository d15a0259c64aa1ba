package museum

import (
	"bytes"
	"fmt"

	"github.com/redexp/familymuseum-lsp/layout"
	"github.com/redexp/familymuseum-lsp/state"
	"github.com/yuin/goldmark"
)

var markdown = goldmark.New()

type Card struct {
	*state.Member

	Lifespan      string   `json:"lifespan,omitempty"`
	BiographyHtml string   `json:"biographyHtml,omitempty"`
	SpouseMember  string   `json:"spouseMember,omitempty"`
	Related       []string `json:"related"`
}

func RenderBiography(src string) (string, error) {
	if src == "" {
		return "", nil
	}

	var buf bytes.Buffer

	err := markdown.Convert([]byte(src), &buf)

	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

func Lifespan(m *state.Member) string {
	switch {
	case m.BirthYear != nil && m.DeathYear != nil:
		return fmt.Sprintf("%d-%d", *m.BirthYear, *m.DeathYear)
	case m.BirthYear != nil:
		return fmt.Sprintf("%d", *m.BirthYear)
	case m.DeathYear != nil:
		return fmt.Sprintf("?-%d", *m.DeathYear)
	}

	return ""
}

// Card returns the member details shown when a node is opened.
// It returns nil when the id is unknown.
func (r *Root) Card(id string) (*Card, error) {
	r.lock.Lock()
	index := state.NewIndex(r.members)
	r.lock.Unlock()

	m := index.Get(id)

	if m == nil {
		return nil, nil
	}

	html, err := RenderBiography(m.Biography)

	if err != nil {
		return nil, fmt.Errorf("biography %s: %w", id, err)
	}

	card := &Card{
		Member:        m,
		Lifespan:      Lifespan(m),
		BiographyHtml: html,
		Related:       layout.Highlight(index, id).Ids(),
	}

	if spouse := index.Spouse(m); spouse != nil {
		card.SpouseMember = spouse.Id
	}

	return card, nil
}

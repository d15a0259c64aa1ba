package state

import (
	"slices"

	. "github.com/redexp/familymuseum-lsp/types"
)

type DirtyUris map[Uri]*TextState

type TextState struct {
	State UriState
	Text  string
}

type UriState uint8

const (
	UriCreate UriState = 1 + iota
	UriOpen
	UriChange
	UriDelete
)

func (uris DirtyUris) Set(uri Uri, state UriState) {
	uris[uri] = &TextState{
		State: state,
	}
}

func (uris DirtyUris) SetText(uri Uri, state UriState, text string) {
	prev, exist := uris[uri]

	// a scan must not override a fresher editor state
	if exist && state == UriCreate && prev.State != UriCreate {
		return
	}

	uris[uri] = &TextState{
		State: state,
		Text:  text,
	}
}

func (uris DirtyUris) Has(uri Uri) bool {
	_, has := uris[uri]

	return has
}

func (uris DirtyUris) Remove(uri Uri) {
	delete(uris, uri)
}

// Sorted returns the dirty uris in lexical order so updates are deterministic.
func (uris DirtyUris) Sorted() []Uri {
	list := make([]Uri, 0, len(uris))

	for uri := range uris {
		list = append(list, uri)
	}

	slices.Sort(list)

	return list
}

func (item *TextState) IsDeleted() bool {
	return item.State == UriDelete
}

func (item *TextState) IsEdited() bool {
	return item.State == UriOpen || item.State == UriChange
}

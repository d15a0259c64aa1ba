package providers

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redexp/familymuseum-lsp/i18n"
	"github.com/redexp/familymuseum-lsp/museum"
	"github.com/redexp/familymuseum-lsp/state"
	. "github.com/redexp/familymuseum-lsp/types"
)

// ClientMembersUri marks a member list pushed by the client instead of a workspace file.
const ClientMembersUri Uri = "client:///members.family.json"

var errNotInitialized = errors.New("server not initialized")

func MuseumView(_ *Ctx) (*museum.View, error) {
	if root == nil {
		return nil, errNotInitialized
	}

	return renderView(), nil
}

func MuseumMembers(_ *Ctx, params *MembersParams) (*museum.View, error) {
	if root == nil {
		return nil, errNotInitialized
	}

	uri := params.Uri

	if uri == "" {
		uri = ClientMembersUri
	}

	if params.Members == nil {
		return nil, fmt.Errorf("members are required")
	}

	root.SetMembers(uri, params.Members)
	observeEvent("members")

	return renderView(), nil
}

func MuseumResize(_ *Ctx, params *ResizeParams) error {
	if root == nil {
		return errNotInitialized
	}

	root.Resize(params.Width, params.Height)
	observeEvent(museum.SourceResize)

	return nil
}

func MuseumScroll(_ *Ctx, params *ScrollParams) error {
	if root == nil {
		return errNotInitialized
	}

	root.Scroll(params.Top)
	observeEvent(museum.SourceScroll)

	return nil
}

func MuseumSearch(_ *Ctx, params *SearchParams) (*SearchResult, error) {
	if root == nil {
		return nil, errNotInitialized
	}

	matched, total := root.Search(params.Query)
	observeEvent(museum.SourceSearch)

	res := &SearchResult{
		Query:   params.Query,
		Matched: matched,
		Total:   total,
	}

	switch {
	case params.Query == "":
	case matched == 0:
		res.Message = i18n.L("no_results_for", params.Query)
	default:
		res.Message = i18n.L("results_for", matched, params.Query)
	}

	return res, nil
}

func MuseumHover(_ *Ctx, params *HoverParams) (*HoverResult, error) {
	if root == nil {
		return nil, errNotInitialized
	}

	set := root.Hover(params.Id)
	observeEvent("hover")

	return &HoverResult{
		Ids: set.Ids(),
	}, nil
}

func MuseumReveal(_ *Ctx, params *RevealParams) (*RevealResult, error) {
	if root == nil {
		return nil, errNotInitialized
	}

	added := root.Reveal(params.Ids)
	observeEvent("reveal")

	return &RevealResult{
		Added: added,
	}, nil
}

func MuseumMember(_ *Ctx, params *MemberParams) (*museum.Card, error) {
	if root == nil {
		return nil, errNotInitialized
	}

	card, err := root.Card(params.Id)

	if err != nil {
		return nil, err
	}

	if card == nil {
		return nil, fmt.Errorf("member %s not found", params.Id)
	}

	return card, nil
}

func renderView() *museum.View {
	start := time.Now()
	view := root.View()
	viewDuration.Observe(time.Since(start).Seconds())

	return view
}

type MuseumHandlers struct {
	View    MuseumViewFunc
	Members MuseumMembersFunc
	Resize  MuseumResizeFunc
	Scroll  MuseumScrollFunc
	Search  MuseumSearchFunc
	Hover   MuseumHoverFunc
	Reveal  MuseumRevealFunc
	Member  MuseumMemberFunc
}

func (req *MuseumHandlers) Handle(ctx *Ctx) (res any, validMethod bool, validParams bool, err error) {
	switch ctx.Method {
	case MuseumViewMethod:
		validMethod = true
		validParams = true
		res, err = req.View(ctx)

	case MuseumMembersMethod:
		validMethod = true

		var params MembersParams
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			res, err = req.Members(ctx, &params)
		}

	case MuseumResizeMethod:
		validMethod = true

		var params ResizeParams
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			err = req.Resize(ctx, &params)
		}

	case MuseumScrollMethod:
		validMethod = true

		var params ScrollParams
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			err = req.Scroll(ctx, &params)
		}

	case MuseumSearchMethod:
		validMethod = true

		var params SearchParams
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			res, err = req.Search(ctx, &params)
		}

	case MuseumHoverMethod:
		validMethod = true

		var params HoverParams
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			res, err = req.Hover(ctx, &params)
		}

	case MuseumRevealMethod:
		validMethod = true

		var params RevealParams
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			res, err = req.Reveal(ctx, &params)
		}

	case MuseumMemberMethod:
		validMethod = true

		var params MemberParams
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			res, err = req.Member(ctx, &params)
		}
	}

	return
}

var MuseumMethods = []string{
	MuseumViewMethod,
	MuseumMembersMethod,
	MuseumResizeMethod,
	MuseumScrollMethod,
	MuseumSearchMethod,
	MuseumHoverMethod,
	MuseumRevealMethod,
	MuseumMemberMethod,
}

// MuseumReloadMethod is the notification sent after a debounced state change.
const MuseumReloadMethod = "museum/reload"

// MuseumView

const MuseumViewMethod = "museum/view"

type MuseumViewFunc func(ctx *Ctx) (*museum.View, error)

// MuseumMembers

const MuseumMembersMethod = "museum/members"

type MuseumMembersFunc func(ctx *Ctx, params *MembersParams) (*museum.View, error)

type MembersParams struct {
	Uri     Uri           `json:"uri,omitempty"`
	Members state.Members `json:"members"`
}

// MuseumResize

const MuseumResizeMethod = "museum/resize"

type MuseumResizeFunc func(ctx *Ctx, params *ResizeParams) error

type ResizeParams struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// MuseumScroll

const MuseumScrollMethod = "museum/scroll"

type MuseumScrollFunc func(ctx *Ctx, params *ScrollParams) error

type ScrollParams struct {
	Top float64 `json:"top"`
}

// MuseumSearch

const MuseumSearchMethod = "museum/search"

type MuseumSearchFunc func(ctx *Ctx, params *SearchParams) (*SearchResult, error)

type SearchParams struct {
	Query string `json:"query"`
}

type SearchResult struct {
	Query   string `json:"query"`
	Matched int    `json:"matched"`
	Total   int    `json:"total"`
	Message string `json:"message,omitempty"`
}

// MuseumHover

const MuseumHoverMethod = "museum/hover"

type MuseumHoverFunc func(ctx *Ctx, params *HoverParams) (*HoverResult, error)

type HoverParams struct {
	Id string `json:"id"`
}

type HoverResult struct {
	Ids []string `json:"ids"`
}

// MuseumReveal

const MuseumRevealMethod = "museum/reveal"

type MuseumRevealFunc func(ctx *Ctx, params *RevealParams) (*RevealResult, error)

type RevealParams struct {
	Ids []string `json:"ids"`
}

type RevealResult struct {
	Added int `json:"added"`
}

// MuseumMember

const MuseumMemberMethod = "museum/member"

type MuseumMemberFunc func(ctx *Ctx, params *MemberParams) (*museum.Card, error)

type MemberParams struct {
	Id string `json:"id"`
}

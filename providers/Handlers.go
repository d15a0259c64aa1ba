package providers

import (
	"context"
	"fmt"

	. "github.com/redexp/familymuseum-lsp/types"
	"github.com/sourcegraph/jsonrpc2"
	"github.com/tliron/glsp"
	proto "github.com/tliron/glsp/protocol_3_16"
)

func CreateRequestHandler() *RequestHandler {
	return &RequestHandler{
		Handlers: []glsp.Handler{
			NewProtocolHandlers(),
			&MuseumHandlers{
				View:    MuseumView,
				Members: MuseumMembers,
				Resize:  MuseumResize,
				Scroll:  MuseumScroll,
				Search:  MuseumSearch,
				Hover:   MuseumHover,
				Reveal:  MuseumReveal,
				Member:  MuseumMember,
			},
			&ConfigurationHandlers{
				Change: ConfigurationChange,
			},
		},
	}
}

func NewProtocolHandlers() *proto.Handler {
	return &proto.Handler{
		Initialize:              Initialize,
		Initialized:             Initialized,
		Shutdown:                Shutdown,
		SetTrace:                SetTrace,
		CancelRequest:           CancelRequest,
		TextDocumentDidOpen:     DocOpen,
		TextDocumentDidChange:   DocChange,
		TextDocumentDidClose:    DocClose,
		WorkspaceDidDeleteFiles: DocDelete,
	}
}

type RequestHandler struct {
	Handlers []glsp.Handler
}

func (req *RequestHandler) RpcHandle(_ context.Context, conn *jsonrpc2.Conn, r *jsonrpc2.Request) (res any, err error) {
	if r.Method == "exit" {
		err = conn.Close()
		return nil, err
	}

	ctx := &glsp.Context{
		Method: r.Method,
		Notify: func(method string, params any) {
			_ = conn.Notify(context.Background(), method, params)
		},
		Call: func(method string, params any, result any) {
			_ = conn.Call(context.Background(), method, params, result)
		},
	}

	if r.Params != nil {
		ctx.Params = *r.Params
	}

	var validMethod bool
	var validParams bool

	res, validMethod, validParams, err = req.Handle(ctx)

	if !validMethod {
		return nil, &jsonrpc2.Error{
			Code:    jsonrpc2.CodeMethodNotFound,
			Message: fmt.Sprintf("Method not found: %s", r.Method),
		}
	}

	if !validParams {
		e := &jsonrpc2.Error{
			Code: jsonrpc2.CodeInvalidParams,
		}

		if err != nil {
			e.Message = err.Error()
		}

		err = e
	}

	return res, err
}

func (req *RequestHandler) Handle(ctx *Ctx) (res any, validMethod bool, validParams bool, err error) {
	timer := observeRequest(ctx.Method)
	defer timer()

	for _, h := range req.Handlers {
		res, validMethod, validParams, err = h.Handle(ctx)

		if validMethod {
			break
		}
	}

	if err != nil {
		log.Debugf("%s: %s", ctx.Method, err.Error())
	}

	return
}

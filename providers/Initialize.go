package providers

import (
	"sync/atomic"
	"time"

	"github.com/bep/debounce"
	"github.com/redexp/familymuseum-lsp/i18n"
	"github.com/redexp/familymuseum-lsp/museum"
	"github.com/redexp/familymuseum-lsp/state"
	. "github.com/redexp/familymuseum-lsp/types"
	proto "github.com/tliron/glsp/protocol_3_16"
)

var museumContext atomic.Pointer[Ctx]
var reloadDebouncer = debounce.New(50 * time.Millisecond)

func Initialize(ctx *Ctx, params *proto.InitializeParams) (any, error) {
	if root != nil {
		root.Close()
	}

	s := settings

	if err := i18n.SetLocale(s.Locale); err != nil {
		log.Warningf("settings: %s", err.Error())
	}

	root = museum.CreateRoot(s)
	datasets = state.CreateDatasets()
	museumContext.Store(ctx)

	options, err := GetClientConfiguration(params.InitializationOptions)

	if err == nil {
		err = applyClientConfiguration(&options)
	}

	if err != nil {
		log.Warningf("initializationOptions: %s", err.Error())
	}

	folders := make([]Uri, 0)

	for _, folder := range params.WorkspaceFolders {
		folders = append(folders, folder.URI)
	}

	if len(folders) == 0 && params.RootURI != nil {
		folders = append(folders, *params.RootURI)
	}

	if len(folders) > 0 {
		if err = datasets.SetFolders(folders); err != nil {
			log.Warningf("workspace folders: %s", err.Error())
		}
	}

	updateDatasets()

	current := root

	current.OnUpdate(func() {
		reloadDebouncer(func() {
			notifyReload(current)
		})
	})

	root.Start()

	log.Infof("session %s started", root.Session)

	syncType := proto.TextDocumentSyncKindFull

	return &proto.InitializeResult{
		ServerInfo: &proto.InitializeResultServerInfo{
			Name: ServerName,
		},
		Capabilities: proto.ServerCapabilities{
			TextDocumentSync: proto.TextDocumentSyncOptions{
				OpenClose: &proto.True,
				Change:    &syncType,
			},
			Experimental: MuseumCapabilities{
				Session: root.Session,
				Methods: MuseumMethods,
			},
		},
	}, nil
}

func Initialized(_ *Ctx, _ *proto.InitializedParams) error {
	return nil
}

func Shutdown(_ *Ctx) error {
	if root != nil {
		root.Close()
	}

	return nil
}

func SetTrace(_ *Ctx, params *proto.SetTraceParams) error {
	log.Debugf("SetTrace: %v", params.Value)

	return nil
}

func CancelRequest(_ *Ctx, params *proto.CancelParams) error {
	log.Debugf("CancelRequest: %v", params.ID)

	return nil
}

// Reload tells the client to request a fresh view.
func Reload() {
	notifyReload(root)
}

// notifyReload runs on timer goroutines and must not touch the root global.
func notifyReload(r *museum.Root) {
	ctx := museumContext.Load()

	if ctx == nil || r == nil {
		return
	}

	status := r.Status()

	ctx.Notify(MuseumReloadMethod, &ReloadParams{
		Session: r.Session,
		Status:  status,
		Notice:  status.Notice(),
	})
}

// updateDatasets parses dirty dataset documents and hands the active one to root.
func updateDatasets() bool {
	changed, err := datasets.UpdateDirty()

	if err != nil {
		log.Warningf("datasets: %s", err.Error())
	}

	if changed {
		root.SetMembers(datasets.Current())
	}

	return changed
}

type MuseumCapabilities struct {
	Session string   `json:"session"`
	Methods []string `json:"methods"`
}

type ReloadParams struct {
	Session string         `json:"session"`
	Status  museum.Status  `json:"status"`
	Notice  *museum.Notice `json:"notice,omitempty"`
}

package providers

import (
	"github.com/redexp/familymuseum-lsp/museum"
	"github.com/redexp/familymuseum-lsp/state"
	"github.com/tliron/commonlog"
	serv "github.com/tliron/glsp/server"
)

const ServerName = "familymuseum"

var (
	server   *serv.Server
	root     *museum.Root
	datasets *state.Datasets
	settings = museum.DefaultSettings()
	log      = commonlog.GetLogger("familymuseum.providers")
)

// SetSettings replaces the settings used by the next initialize.
func SetSettings(s museum.Settings) {
	settings = s
}

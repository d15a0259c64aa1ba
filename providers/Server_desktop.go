//go:build !wasm && !wasip1

package providers

import (
	"fmt"

	"github.com/spf13/pflag"
	serv "github.com/tliron/glsp/server"
)

func StartServer() error {
	webSocketPort, err := pflag.CommandLine.GetInt("web-socket")

	if err != nil {
		return err
	}

	server = serv.NewServer(CreateRequestHandler(), ServerName, false)

	if webSocketPort > 0 {
		return server.RunWebSocket(fmt.Sprintf("127.0.0.1:%d", webSocketPort))
	}

	return server.RunStdio()
}

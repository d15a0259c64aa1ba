//go:build wasm || wasip1

package providers

import (
	"context"
	"os"
)

func StartServer() error {
	conn := ServeStream(context.Background(), NewReadWriteCloser(os.Stdin, os.Stdout))

	<-conn.DisconnectNotify()

	return nil
}

package providers

import (
	"context"
	"io"

	"github.com/sourcegraph/jsonrpc2"
	"go.uber.org/multierr"
)

type ReadWriteCloser struct {
	reader io.ReadCloser
	writer io.WriteCloser
}

func NewReadWriteCloser(reader io.ReadCloser, writer io.WriteCloser) *ReadWriteCloser {
	return &ReadWriteCloser{
		reader: reader,
		writer: writer,
	}
}

func (r *ReadWriteCloser) Read(b []byte) (int, error) {
	return r.reader.Read(b)
}

func (r *ReadWriteCloser) Write(b []byte) (int, error) {
	return r.writer.Write(b)
}

func (r *ReadWriteCloser) Close() error {
	return multierr.Append(r.reader.Close(), r.writer.Close())
}

// ServeStream answers JSON-RPC requests on the stream until the peer disconnects.
func ServeStream(ctx context.Context, stream io.ReadWriteCloser) *jsonrpc2.Conn {
	handler := CreateRequestHandler()

	return jsonrpc2.NewConn(
		ctx,
		jsonrpc2.NewBufferedStream(stream, jsonrpc2.VSCodeObjectCodec{}),
		jsonrpc2.HandlerWithError(handler.RpcHandle),
	)
}

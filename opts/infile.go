package opts

import (
	"context"
	"io"
)

// LocalInfileHandler serves LOCAL INFILE requests issued by the server. The
// options subsystem only carries the reference; the connection layer invokes
// it when the server asks for a file.
type LocalInfileHandler interface {
	// ReadFile opens the requested file name as a byte stream. The
	// connection layer closes the stream when the transfer ends.
	ReadFile(ctx context.Context, name string) (io.ReadCloser, error)
}

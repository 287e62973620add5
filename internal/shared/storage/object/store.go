package object

import (
	"context"
	"io"
)

// Reader opens stored objects by key. Risk datasets are produced elsewhere,
// so the service only ever reads.
type Reader interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

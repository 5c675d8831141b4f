package service

import (
	"context"
	"io"
)

// Uploader is the object-store boundary. The core only needs "accept a blob,
// return a stable public URL".
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
}

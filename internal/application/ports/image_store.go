package ports

import (
	"context"
	"io"
)

// ImageStore es el puerto hacia object storage para imágenes de artículos.
// Lo implementa objectstore.S3Store.
type ImageStore interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	// PresignedGetURL devuelve una URL temporal de lectura para el frontend.
	PresignedGetURL(ctx context.Context, key string) (string, error)
}

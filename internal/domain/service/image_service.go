// Package service defines interfaces for external collaborators consumed
// by the application layer through narrow contracts.
package service

import (
	"context"
	"io"
)

// ImageService abstracts the image host: it accepts a binary upload and
// returns a stable public URL. The host is treated as an opaque string
// producer; nothing downstream interprets the URL.
type ImageService interface {
	// Upload stores the image content and returns its public URL.
	Upload(ctx context.Context, fileName string, content io.Reader) (string, error)
}

// Package image implements the image host contract against Cloudinary.
package image

import (
	"context"
	"io"

	"eventify/config"
	"eventify/internal/domain/service"
	"eventify/internal/errors"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

type cloudinaryService struct {
	client *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryService creates an image uploader backed by Cloudinary.
func NewCloudinaryService(cfg *config.CloudinaryConfig) (service.ImageService, error) {
	client, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Cloudinary client")
	}

	return &cloudinaryService{
		client: client,
		folder: cfg.Folder,
	}, nil
}

// Upload stores the image and returns its public URL. The URL is opaque
// to everything downstream. The stored id is a fresh UUID so repeated
// uploads of the same file name never overwrite each other.
func (s *cloudinaryService) Upload(ctx context.Context, fileName string, content io.Reader) (string, error) {
	resp, err := s.client.Upload.Upload(ctx, content, uploader.UploadParams{
		Folder:   s.folder,
		PublicID: uuid.New().String(),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload image")
	}

	return resp.SecureURL, nil
}

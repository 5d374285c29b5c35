package media

//go:generate mockgen -destination=../mocks/mock_uploader.go -package=mocks github.com/ErDev77/pc-configurator-sub001/internal/media Uploader

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

type StorageUsage struct {
	StorageBytes int64   `json:"storageBytes"`
	CreditsUsed  float64 `json:"creditsUsed"`
}

// Uploader is the image-hosting provider surface the handlers depend on.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader) (string, error)
	Usage(ctx context.Context) (*StorageUsage, error)
}

type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryStore(cloudinaryURL, folder string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("invalid cloudinary URL: %w", err)
	}

	return &CloudinaryStore{cld: cld, folder: folder}, nil
}

// Upload stores the file under a random public ID and returns its
// delivery URL.
func (s *CloudinaryStore) Upload(ctx context.Context, file io.Reader) (string, error) {
	res, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: uuid.NewString(),
		Folder:   s.folder,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}

	return res.SecureURL, nil
}

func (s *CloudinaryStore) Usage(ctx context.Context) (*StorageUsage, error) {
	res, err := s.cld.Admin.Usage(ctx, admin.UsageParams{})
	if err != nil {
		return nil, fmt.Errorf("cloudinary usage query failed: %w", err)
	}

	return &StorageUsage{
		StorageBytes: int64(res.Storage.Usage),
		CreditsUsed:  res.Credits.Usage,
	}, nil
}

var ErrNotConfigured = errors.New("image hosting is not configured")

// UnconfiguredStore stands in when no CLOUDINARY_URL is set. Requests
// fail at call time, the same way an unset SMTP host fails at send
// time, instead of aborting startup.
type UnconfiguredStore struct{}

func (UnconfiguredStore) Upload(context.Context, io.Reader) (string, error) {
	return "", ErrNotConfigured
}

func (UnconfiguredStore) Usage(context.Context) (*StorageUsage, error) {
	return nil, ErrNotConfigured
}

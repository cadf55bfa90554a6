package services

import (
	"context"
	"fmt"

	"github.com/krishiu/krishi-cli/internal/client/api"
	"github.com/krishiu/krishi-cli/internal/client/models"
	"github.com/krishiu/krishi-cli/internal/logging"
)

// UploadService sends locally selected files to the service and returns
// stable references for a subsequent profile-creation call.
type UploadService interface {
	Upload(ctx context.Context, token string, files []models.Attachment) ([]string, error)
}

type uploadService struct {
	client api.Client
	log    logging.Logger
}

func NewUploadService(client api.Client, log logging.Logger) UploadService {
	return &uploadService{client: client, log: log}
}

// Upload uploads the files in one request and returns their references in
// service order. An empty input is a cost-free no-op: empty result, no
// network call. Any failure, including a reference count that does not match
// the input, wraps ErrUploadFailed and is fatal to the current attempt.
func (s *uploadService) Upload(ctx context.Context, token string, files []models.Attachment) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	urls, err := s.client.UploadImages(ctx, token, files)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if len(urls) != len(files) {
		return nil, fmt.Errorf("%w: sent %d files, got %d references", ErrUploadFailed, len(files), len(urls))
	}

	s.log.Info(ctx, "attachments uploaded", "count", len(urls))
	return urls, nil
}

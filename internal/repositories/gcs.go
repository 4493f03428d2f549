package repositories

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/api/option"

	"github.com/atlasledger/go-bank-recon/internal/config"
	"github.com/atlasledger/go-bank-recon/internal/models"

	"cloud.google.com/go/storage"
)

type CloudStorageRepository interface {
	NewWriter(ctx context.Context, payload *models.CloudStoragePayload) io.WriteCloser
	NewReader(ctx context.Context, payload *models.CloudStoragePayload) (io.ReadCloser, error)
	WriteStream(ctx context.Context, payload *models.CloudStoragePayload, data <-chan []byte) models.WriteStreamResult
	Close() error
}

type cloudStorageClient struct {
	config *config.CloudStorageConfig
	client *storage.Client
}

func NewCloudStorageRepository(cfg *config.Config, opts ...option.ClientOption) (CloudStorageRepository, error) {
	if cfg.CloudStorageConfig.BucketName == "" {
		return nil, fmt.Errorf("failed to init cloud storage bucket name not set")
	}

	client, err := storage.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, err
	}

	return &cloudStorageClient{client: client, config: &cfg.CloudStorageConfig}, nil
}

func (cs *cloudStorageClient) NewWriter(ctx context.Context, payload *models.CloudStoragePayload) io.WriteCloser {
	dirWithFilename := fmt.Sprintf("%s/%s", payload.Path, payload.Filename)
	obj := cs.client.Bucket(cs.config.BucketName).Object(dirWithFilename)
	writer := obj.NewWriter(ctx)
	writer.ContentDisposition = fmt.Sprintf("attachment; filename=%s", payload.Filename)
	return writer
}

func (cs *cloudStorageClient) WriteStream(ctx context.Context, payload *models.CloudStoragePayload, data <-chan []byte) models.WriteStreamResult {
	ch := make(chan error)
	dirWithFilename := fmt.Sprintf("%s/%s", payload.Path, payload.Filename)
	r := models.NewWriteStreamResult(ch, fmt.Sprintf("%s/%s/%s", cs.config.BaseURL, cs.config.BucketName, dirWithFilename))

	go func() {
		writer := cs.NewWriter(ctx, payload)
		defer func() {
			if err := writer.Close(); err != nil {
				ch <- err
			}
			close(ch)
		}()

		for v := range data {
			if _, err := writer.Write(v); err != nil {
				ch <- err
			}
		}
	}()

	return r
}

func (cs *cloudStorageClient) Close() error {
	return cs.client.Close()
}

func (cs *cloudStorageClient) NewReader(ctx context.Context, payload *models.CloudStoragePayload) (io.ReadCloser, error) {
	dirWithFilename := fmt.Sprintf("%s/%s", payload.Path, payload.Filename)

	rc, err := cs.client.Bucket(cs.config.BucketName).Object(dirWithFilename).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open object in bucket: %v", err)
	}

	return rc, nil
}

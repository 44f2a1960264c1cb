package reports

import (
	"context"
	"io"
	"net/url"
	"time"

	"carebook-service/internal/app/config"
	"carebook-service/internal/app/contracts"
	"carebook-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type reportMinioStorage struct {
	client        *minio.Client
	bucketName    string
	presignExpiry time.Duration
}

func NewReportMinioStorage(client *minio.Client, internalConfig *config.InternalConfig) contracts.ReportObjectStorage {
	return &reportMinioStorage{
		client:        client,
		bucketName:    internalConfig.Reports.BucketName,
		presignExpiry: time.Duration(internalConfig.Reports.PresignExpiryMinutes) * time.Minute,
	}
}

func (s *reportMinioStorage) PresignedObjectURL(ctx context.Context, objectName string) (string, error) {
	presignedURL, err := s.client.PresignedGetObject(ctx, s.bucketName, objectName, s.presignExpiry, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioPresignObjectURL(err, s.bucketName)
	}
	return presignedURL.String(), nil
}

// GetObject stats before streaming so a missing or zero-size object fails
// before any bytes are written to the response.
func (s *reportMinioStorage) GetObject(ctx context.Context, objectName string) (io.ReadCloser, int64, error) {
	object, err := s.client.GetObject(ctx, s.bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, exceptions.ErrMinioGetObject(err, s.bucketName)
	}

	info, err := object.Stat()
	if err != nil {
		object.Close()
		return nil, 0, exceptions.ErrMinioGetObject(err, s.bucketName)
	}
	if info.Size == 0 {
		object.Close()
		return nil, 0, exceptions.ErrMinioObjectEmpty(s.bucketName)
	}
	return object, info.Size, nil
}

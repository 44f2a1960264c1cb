package contracts

import (
	"context"
	"io"
)

// ReportObjectStorage serves the stored report PDFs.
type ReportObjectStorage interface {
	PresignedObjectURL(ctx context.Context, objectName string) (string, error)
	GetObject(ctx context.Context, objectName string) (io.ReadCloser, int64, error)
}

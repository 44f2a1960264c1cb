package contracts

import (
	"context"
	"io"

	"carebook-service/internal/pkg/dto/responses"
)

type ReportUsecase interface {
	ListReports(ctx context.Context) ([]responses.ReportRow, error)
	ViewReport(ctx context.Context, doctorID string) (*responses.ReportLink, error)
	DownloadReport(ctx context.Context, doctorID string) (*responses.ReportDownload, io.ReadCloser, error)
}

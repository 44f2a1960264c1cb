package reports

import (
	"context"
	"fmt"
	"io"
	"strings"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

// ReportUsecase lists one report row per directory doctor and serves the
// stored PDF either as a short-lived presigned link or as a direct stream.
type ReportUsecase struct {
	storage contracts.ReportObjectStorage
	doctors contracts.DoctorUsecase
	log     *zap.Logger
}

func NewReportUsecase(
	objectStorage contracts.ReportObjectStorage,
	doctorUsecase contracts.DoctorUsecase,
	logger *zap.Logger,
) *ReportUsecase {
	return &ReportUsecase{
		storage: objectStorage,
		doctors: doctorUsecase,
		log:     logger,
	}
}

func (u *ReportUsecase) ListReports(ctx context.Context) ([]responses.ReportRow, error) {
	doctors, err := u.doctors.ListDoctors(ctx, "", "")
	if err != nil {
		return nil, err
	}

	rows := make([]responses.ReportRow, 0, len(doctors))
	for i, doctor := range doctors {
		rows = append(rows, responses.ReportRow{
			SerialNumber:     i + 1,
			DoctorID:         doctor.ID,
			DoctorName:       doctor.Name,
			DoctorSpeciality: doctor.Speciality,
		})
	}
	return rows, nil
}

func (u *ReportUsecase) ViewReport(ctx context.Context, doctorID string) (*responses.ReportLink, error) {
	doctor, err := u.doctors.GetDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	presignedURL, err := u.storage.PresignedObjectURL(ctx, reportObjectName(doctor.ID))
	if err != nil {
		return nil, err
	}

	u.log.Info("report link generated", zap.String(constvars.LoggingDoctorIDKey, doctor.ID))
	return &responses.ReportLink{URL: presignedURL}, nil
}

func (u *ReportUsecase) DownloadReport(ctx context.Context, doctorID string) (*responses.ReportDownload, io.ReadCloser, error) {
	doctor, err := u.doctors.GetDoctor(ctx, doctorID)
	if err != nil {
		return nil, nil, err
	}

	body, size, err := u.storage.GetObject(ctx, reportObjectName(doctor.ID))
	if err != nil {
		return nil, nil, err
	}

	download := &responses.ReportDownload{
		FileName:    reportDownloadName(doctor.Name, doctor.ID),
		ContentType: constvars.MIMEApplicationPDF,
		Size:        size,
	}
	return download, body, nil
}

func reportObjectName(doctorID string) string {
	return fmt.Sprintf(constvars.ReportObjectNameFormat, doctorID)
}

// reportDownloadName builds the user-facing filename, with the doctor name
// underscored so it survives Content-Disposition quoting.
func reportDownloadName(doctorName, doctorID string) string {
	underscored := strings.ReplaceAll(strings.TrimSpace(doctorName), " ", "_")
	return fmt.Sprintf(constvars.ReportDownloadNameFormat, underscored, doctorID)
}

package reports

import (
	"context"
	"io"
	"strings"
	"testing"

	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDoctorUsecase struct {
	doctors []models.Doctor
}

func (f *fakeDoctorUsecase) ListDoctors(ctx context.Context, speciality, search string) ([]models.Doctor, error) {
	return f.doctors, nil
}

func (f *fakeDoctorUsecase) GetDoctor(ctx context.Context, doctorID string) (*models.Doctor, error) {
	for _, doctor := range f.doctors {
		if doctor.ID == doctorID {
			d := doctor
			return &d, nil
		}
	}
	return nil, exceptions.ErrDoctorNotFound(doctorID)
}

func (f *fakeDoctorUsecase) RefreshDirectory(ctx context.Context) error { return nil }

type fakeObjectStorage struct {
	objects map[string]string
}

func (f *fakeObjectStorage) PresignedObjectURL(ctx context.Context, objectName string) (string, error) {
	if _, ok := f.objects[objectName]; !ok {
		return "", exceptions.ErrMinioPresignObjectURL(nil, "reports")
	}
	return "https://storage.local/reports/" + objectName + "?signed=1", nil
}

func (f *fakeObjectStorage) GetObject(ctx context.Context, objectName string) (io.ReadCloser, int64, error) {
	content, ok := f.objects[objectName]
	if !ok {
		return nil, 0, exceptions.ErrMinioGetObject(nil, "reports")
	}
	if len(content) == 0 {
		return nil, 0, exceptions.ErrMinioObjectEmpty("reports")
	}
	return io.NopCloser(strings.NewReader(content)), int64(len(content)), nil
}

func newReportFixture() *ReportUsecase {
	doctors := &fakeDoctorUsecase{doctors: []models.Doctor{
		{ID: "doc-1", Name: "Sarah Smith", Speciality: "Cardiology"},
		{ID: "doc-2", Name: "Taylor", Speciality: "Dermatology"},
	}}
	storage := &fakeObjectStorage{objects: map[string]string{
		"patient_report_doc-1.pdf": "%PDF-1.4 fake content",
		"patient_report_doc-2.pdf": "",
	}}
	return NewReportUsecase(storage, doctors, zap.NewNop())
}

func TestListReportsNumbersRows(t *testing.T) {
	usecase := newReportFixture()

	rows, err := usecase.ListReports(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].SerialNumber)
	assert.Equal(t, 2, rows[1].SerialNumber)
	assert.Equal(t, "Sarah Smith", rows[0].DoctorName)
}

func TestViewReportReturnsPresignedURL(t *testing.T) {
	usecase := newReportFixture()

	link, err := usecase.ViewReport(context.Background(), "doc-1")
	require.NoError(t, err)
	assert.Contains(t, link.URL, "patient_report_doc-1.pdf")
	assert.Contains(t, link.URL, "signed=1")
}

func TestDownloadReportFileName(t *testing.T) {
	usecase := newReportFixture()

	download, body, err := usecase.DownloadReport(context.Background(), "doc-1")
	require.NoError(t, err)
	defer body.Close()

	assert.Equal(t, "Medical_Report_Sarah_Smith_doc-1.pdf", download.FileName)
	assert.Equal(t, constvars.MIMEApplicationPDF, download.ContentType)

	content, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), download.Size)
}

func TestDownloadReportEmptyObject(t *testing.T) {
	usecase := newReportFixture()

	_, _, err := usecase.DownloadReport(context.Background(), "doc-2")
	require.Error(t, err)
	assert.True(t, exceptions.IsNotFound(err))
}

func TestReportUnknownDoctor(t *testing.T) {
	usecase := newReportFixture()

	_, err := usecase.ViewReport(context.Background(), "doc-missing")
	require.Error(t, err)
	assert.True(t, exceptions.IsNotFound(err))
}

package reports

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReportController struct {
	ReportUsecase contracts.ReportUsecase
	Log           *zap.Logger
}

func NewReportController(reportUsecase contracts.ReportUsecase, logger *zap.Logger) *ReportController {
	return &ReportController{
		ReportUsecase: reportUsecase,
		Log:           logger,
	}
}

func (ctrl *ReportController) List(w http.ResponseWriter, r *http.Request) {
	rows, err := ctrl.ReportUsecase.ListReports(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReportListSuccess, rows)
}

func (ctrl *ReportController) View(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorID")

	link, err := ctrl.ReportUsecase.ViewReport(r.Context(), doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReportViewSuccess, link)
}

// Download streams the PDF with an attachment disposition so browsers save
// it under the patient-facing filename.
func (ctrl *ReportController) Download(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorID")

	download, body, err := ctrl.ReportUsecase.DownloadReport(r.Context(), doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	defer body.Close()

	w.Header().Set(constvars.HeaderContentType, download.ContentType)
	w.Header().Set(constvars.HeaderContentLength, strconv.FormatInt(download.Size, 10))
	w.Header().Set(constvars.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", download.FileName))
	w.WriteHeader(constvars.StatusOK)

	if _, err := io.Copy(w, body); err != nil {
		ctrl.Log.Error("report stream interrupted",
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
	}
}

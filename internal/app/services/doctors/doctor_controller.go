package doctors

import (
	"net/http"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DoctorController struct {
	DoctorUsecase contracts.DoctorUsecase
	Log           *zap.Logger
}

func NewDoctorController(doctorUsecase contracts.DoctorUsecase, logger *zap.Logger) *DoctorController {
	return &DoctorController{
		DoctorUsecase: doctorUsecase,
		Log:           logger,
	}
}

func (ctrl *DoctorController) List(w http.ResponseWriter, r *http.Request) {
	speciality := r.URL.Query().Get("speciality")
	search := r.URL.Query().Get("search")

	doctors, err := ctrl.DoctorUsecase.ListDoctors(r.Context(), speciality, search)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorListSuccess, doctors)
}

func (ctrl *DoctorController) Get(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorID")

	doctor, err := ctrl.DoctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorListSuccess, doctor)
}

// Refresh forces a directory refresh, bypassing the read-path limiter.
func (ctrl *DoctorController) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := ctrl.DoctorUsecase.RefreshDirectory(r.Context()); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorListSuccess, nil)
}

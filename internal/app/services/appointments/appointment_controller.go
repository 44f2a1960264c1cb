package appointments

import (
	"context"
	"net/http"
	"time"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/exceptions"
	"carebook-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	BookingUsecase contracts.BookingUsecase
	Log            *zap.Logger
}

func NewAppointmentController(bookingUsecase contracts.BookingUsecase, logger *zap.Logger) *AppointmentController {
	return &AppointmentController{
		BookingUsecase: bookingUsecase,
		Log:            logger,
	}
}

func (ctrl *AppointmentController) Book(w http.ResponseWriter, r *http.Request) {
	request := new(requests.BookAppointment)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	appointment, err := ctrl.BookingUsecase.Book(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AppointmentBookedSuccess, appointment)
}

// List returns every appointment, or only one doctor's when the doctorName
// query parameter is present.
func (ctrl *AppointmentController) List(w http.ResponseWriter, r *http.Request) {
	doctorName := r.URL.Query().Get("doctorName")

	appointments, err := ctrl.BookingUsecase.ListForDoctor(r.Context(), doctorName)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentListSuccess, appointments)
}

func (ctrl *AppointmentController) Latest(w http.ResponseWriter, r *http.Request) {
	appointment, err := ctrl.BookingUsecase.Latest(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentListSuccess, appointment)
}

func (ctrl *AppointmentController) Cancel(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "appointmentID")

	appointment, err := ctrl.BookingUsecase.Cancel(r.Context(), appointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentCancelledSuccess, appointment)
}

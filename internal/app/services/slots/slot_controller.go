package slots

import (
	"net/http"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/responses"
	"carebook-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SlotController struct {
	SlotProvider contracts.SlotProvider
	Log          *zap.Logger
}

func NewSlotController(slotProvider contracts.SlotProvider, logger *zap.Logger) *SlotController {
	return &SlotController{
		SlotProvider: slotProvider,
		Log:          logger,
	}
}

// List returns the bookable slot labels for a doctor on a date. A slot
// source failure still answers 200 with an empty list so clients render
// "no slots available" instead of an error page.
func (ctrl *SlotController) List(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorID")
	date := r.URL.Query().Get("date")

	slots, err := ctrl.SlotProvider.SlotsFor(r.Context(), doctorID, date)
	if err != nil {
		ctrl.Log.Warn("slot lookup degraded to empty list",
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ErrClientNoSlotsAvailable, responses.SlotListResponse{
			DoctorID: doctorID,
			Date:     date,
			Slots:    []string{},
		})
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SlotListSuccess, responses.SlotListResponse{
		DoctorID: doctorID,
		Date:     date,
		Slots:    slots,
	})
}

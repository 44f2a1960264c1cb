package reviews

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

type ReviewController struct {
	ReviewUsecase contracts.ReviewUsecase
	Log           *zap.Logger
}

func NewReviewController(reviewUsecase contracts.ReviewUsecase, logger *zap.Logger) *ReviewController {
	return &ReviewController{
		ReviewUsecase: reviewUsecase,
		Log:           logger,
	}
}

func (ctrl *ReviewController) List(w http.ResponseWriter, r *http.Request) {
	rows, err := ctrl.ReviewUsecase.ListDoctorReviews(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReviewListSuccess, rows)
}

func (ctrl *ReviewController) Submit(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SubmitReview)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	review, err := ctrl.ReviewUsecase.SubmitReview(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ReviewSubmittedSuccess, review)
}

// Clear removes a doctor's stored review so a new one can be submitted.
// Admin only.
func (ctrl *ReviewController) Clear(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorID")

	if err := ctrl.ReviewUsecase.ClearReview(r.Context(), doctorID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReviewClearedSuccess, nil)
}

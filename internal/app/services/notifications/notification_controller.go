package notifications

import (
	"net/http"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type NotificationController struct {
	BannerUsecase contracts.BannerUsecase
	Log           *zap.Logger
}

func NewNotificationController(bannerUsecase contracts.BannerUsecase, logger *zap.Logger) *NotificationController {
	return &NotificationController{
		BannerUsecase: bannerUsecase,
		Log:           logger,
	}
}

// GetBanner returns the active acknowledgment banner, or null data once it
// expired or was dismissed.
func (ctrl *NotificationController) GetBanner(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BannerFetchSuccess, ctrl.BannerUsecase.Current())
}

func (ctrl *NotificationController) DismissBanner(w http.ResponseWriter, r *http.Request) {
	ctrl.BannerUsecase.Dismiss()
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BannerDismissSuccess, nil)
}

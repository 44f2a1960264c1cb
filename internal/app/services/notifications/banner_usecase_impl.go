package notifications

import (
	"fmt"
	"sync"
	"time"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// bannerUsecase derives the acknowledgment banner from relay events. Only
// the latest event is displayed; a new event replaces whatever banner is
// currently showing. Booked banners expire after 5 seconds, cancelled
// banners after 10.
type bannerUsecase struct {
	log *zap.Logger
	now func() time.Time

	mu      sync.Mutex
	current *models.Banner
}

func NewBannerUsecase(relay contracts.NotificationRelay, logger *zap.Logger) contracts.BannerUsecase {
	return newBannerUsecase(relay, logger, time.Now)
}

func newBannerUsecase(relay contracts.NotificationRelay, logger *zap.Logger, now func() time.Time) *bannerUsecase {
	usecase := &bannerUsecase{log: logger, now: now}
	relay.Subscribe(usecase.onEvent)
	return usecase
}

func (u *bannerUsecase) onEvent(event models.NotificationEvent) {
	banner := u.buildBanner(event)
	if banner == nil {
		return
	}

	u.mu.Lock()
	u.current = banner
	u.mu.Unlock()

	u.log.Info("notification banner updated",
		zap.String("action", event.Action),
		zap.String("doctor_name", event.Appointment.DoctorName),
	)
}

func (u *bannerUsecase) buildBanner(event models.NotificationEvent) *models.Banner {
	shownAt := u.now()
	appointment := event.Appointment

	banner := &models.Banner{
		Action:      event.Action,
		PatientName: appointment.PatientName,
		DoctorName:  appointment.DoctorName,
		Date:        appointment.Date,
		Slot:        appointment.Slot,
		ShownAt:     shownAt,
	}

	switch event.Action {
	case constvars.NotificationActionBooked:
		banner.Message = fmt.Sprintf("Appointment confirmed with Dr. %s", appointment.DoctorName)
		banner.ExpiresAt = shownAt.Add(constvars.BannerBookedSeconds * time.Second)
	case constvars.NotificationActionCancelled:
		banner.Message = fmt.Sprintf("Appointment with Dr. %s has been cancelled", appointment.DoctorName)
		banner.ExpiresAt = shownAt.Add(constvars.BannerCancelledSeconds * time.Second)
		if appointment.CancelledAt != nil {
			banner.CancelledAtLabel = appointment.CancelledAt.Format(time.RFC3339)
		}
	default:
		u.log.Warn("ignoring notification with unknown action", zap.String("action", event.Action))
		return nil
	}
	return banner
}

// Current returns the active banner, or nil once it has expired or been
// dismissed.
func (u *bannerUsecase) Current() *models.Banner {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.current == nil {
		return nil
	}
	if !u.now().Before(u.current.ExpiresAt) {
		u.current = nil
		return nil
	}
	snapshot := *u.current
	return &snapshot
}

func (u *bannerUsecase) Dismiss() {
	u.mu.Lock()
	u.current = nil
	u.mu.Unlock()
}

package notifications

import (
	"testing"
	"time"

	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func bookedEvent(doctorName string) models.NotificationEvent {
	return models.NotificationEvent{
		Action: constvars.NotificationActionBooked,
		Appointment: models.Appointment{
			PatientName: "Jane Roe",
			DoctorName:  doctorName,
			Date:        "2026-09-01",
			Slot:        "10:00 AM",
		},
	}
}

func TestBannerBookedShowsForFiveSeconds(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	relay := NewNotificationRelay(zap.NewNop())
	banner := newBannerUsecase(relay, zap.NewNop(), clock)

	relay.Publish(bookedEvent("Smith"))

	current := banner.Current()
	assert.NotNil(t, current)
	assert.Equal(t, "Appointment confirmed with Dr. Smith", current.Message)
	assert.Equal(t, now.Add(5*time.Second), current.ExpiresAt)

	now = now.Add(4 * time.Second)
	assert.NotNil(t, banner.Current())

	now = now.Add(time.Second)
	assert.Nil(t, banner.Current())
}

func TestBannerCancelledShowsForTenSeconds(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	relay := NewNotificationRelay(zap.NewNop())
	banner := newBannerUsecase(relay, zap.NewNop(), clock)

	cancelledAt := now.Add(-time.Minute)
	relay.Publish(models.NotificationEvent{
		Action: constvars.NotificationActionCancelled,
		Appointment: models.Appointment{
			DoctorName:  "Taylor",
			CancelledAt: &cancelledAt,
		},
	})

	current := banner.Current()
	assert.NotNil(t, current)
	assert.Equal(t, "Appointment with Dr. Taylor has been cancelled", current.Message)
	assert.Equal(t, cancelledAt.Format(time.RFC3339), current.CancelledAtLabel)

	now = now.Add(9 * time.Second)
	assert.NotNil(t, banner.Current())

	now = now.Add(time.Second)
	assert.Nil(t, banner.Current())
}

func TestBannerNewEventReplacesCurrent(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	relay := NewNotificationRelay(zap.NewNop())
	banner := newBannerUsecase(relay, zap.NewNop(), clock)

	relay.Publish(bookedEvent("Smith"))
	relay.Publish(bookedEvent("Taylor"))

	current := banner.Current()
	assert.NotNil(t, current)
	assert.Equal(t, "Appointment confirmed with Dr. Taylor", current.Message)
}

func TestBannerDismiss(t *testing.T) {
	relay := NewNotificationRelay(zap.NewNop())
	banner := newBannerUsecase(relay, zap.NewNop(), time.Now)

	relay.Publish(bookedEvent("Smith"))
	banner.Dismiss()

	assert.Nil(t, banner.Current())
}

func TestBannerIgnoresUnknownAction(t *testing.T) {
	relay := NewNotificationRelay(zap.NewNop())
	banner := newBannerUsecase(relay, zap.NewNop(), time.Now)

	relay.Publish(models.NotificationEvent{Action: "rescheduled"})

	assert.Nil(t, banner.Current())
}

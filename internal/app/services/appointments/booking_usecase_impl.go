package appointments

import (
	"context"
	"time"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/exceptions"
	"carebook-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingUsecase orchestrates create/cancel against the store and emits one
// relay event per successful operation, after the store write completes.
type BookingUsecase struct {
	store   contracts.AppointmentStore
	doctors contracts.DoctorUsecase
	slots   contracts.SlotProvider
	relay   contracts.NotificationRelay
	log     *zap.Logger
	now     func() time.Time
}

func NewBookingUsecase(
	store contracts.AppointmentStore,
	doctors contracts.DoctorUsecase,
	slots contracts.SlotProvider,
	relay contracts.NotificationRelay,
	logger *zap.Logger,
) *BookingUsecase {
	return &BookingUsecase{
		store:   store,
		doctors: doctors,
		slots:   slots,
		relay:   relay,
		log:     logger,
		now:     time.Now,
	}
}

func (u *BookingUsecase) Book(ctx context.Context, request *requests.BookAppointment) (*models.Appointment, error) {
	utils.SanitizeBookAppointmentRequest(request)

	// Fail-fast field validation: name, phone, date, slot, in that order.
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	doctor, err := u.doctors.GetDoctor(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}

	offered, err := u.slots.SlotsFor(ctx, doctor.ID, request.Date)
	if err != nil {
		return nil, err
	}
	if !slotOffered(offered, request.Slot) {
		return nil, exceptions.ErrSlotNotOffered(request.Slot, doctor.ID)
	}

	appointment := models.Appointment{
		ID:               uuid.NewString(),
		PatientName:      request.Name,
		PhoneNumber:      request.PhoneNumber,
		Date:             request.Date,
		Slot:             request.Slot,
		DoctorName:       doctor.Name,
		DoctorSpeciality: doctor.Speciality,
		Status:           constvars.AppointmentStatusConfirmed,
		BookedAt:         u.now(),
	}

	if err := u.store.Append(ctx, appointment); err != nil {
		return nil, err
	}

	u.relay.Publish(models.NotificationEvent{
		Action:      constvars.NotificationActionBooked,
		Appointment: appointment,
	})

	u.log.Info("appointment booked",
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String(constvars.LoggingDoctorNameKey, appointment.DoctorName),
		zap.String("slot", appointment.Slot),
	)
	return &appointment, nil
}

// Cancel flips the record to cancelled and keeps it in the store; retaining
// the record preserves history and gives the event its cancelled timestamp.
func (u *BookingUsecase) Cancel(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	all, err := u.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	index := -1
	for i, appointment := range all {
		if appointment.ID == appointmentID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, exceptions.ErrAppointmentNotFound(appointmentID)
	}

	cancelledAt := u.now()
	all[index].Status = constvars.AppointmentStatusCancelled
	all[index].CancelledAt = &cancelledAt

	if err := u.store.Save(ctx, all); err != nil {
		return nil, err
	}

	cancelled := all[index]
	u.relay.Publish(models.NotificationEvent{
		Action:      constvars.NotificationActionCancelled,
		Appointment: cancelled,
	})

	u.log.Info("appointment cancelled",
		zap.String(constvars.LoggingAppointmentIDKey, cancelled.ID),
		zap.String(constvars.LoggingDoctorNameKey, cancelled.DoctorName),
	)
	return &cancelled, nil
}

// ListForDoctor filters by exact doctor name; an empty name returns the
// whole collection.
func (u *BookingUsecase) ListForDoctor(ctx context.Context, doctorName string) ([]models.Appointment, error) {
	if doctorName == "" {
		return u.store.GetAll(ctx)
	}
	return u.store.GetForDoctor(ctx, doctorName)
}

// Latest returns the most recently booked appointment, or nil when the store
// is empty. Late relay subscribers re-derive current state through this
// instead of relying on event history.
func (u *BookingUsecase) Latest(ctx context.Context) (*models.Appointment, error) {
	all, err := u.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	latest := all[0]
	for _, appointment := range all[1:] {
		if appointment.BookedAt.After(latest.BookedAt) {
			latest = appointment
		}
	}
	return &latest, nil
}

func slotOffered(offered []string, slot string) bool {
	for _, candidate := range offered {
		if candidate == slot {
			return true
		}
	}
	return false
}

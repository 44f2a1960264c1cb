package contracts

import (
	"context"

	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/dto/requests"
)

// AppointmentStore owns the durable appointment collection. No other
// component writes the same durable key.
type AppointmentStore interface {
	GetAll(ctx context.Context) ([]models.Appointment, error)
	GetForDoctor(ctx context.Context, doctorName string) ([]models.Appointment, error)
	Save(ctx context.Context, appointments []models.Appointment) error
	Append(ctx context.Context, appointment models.Appointment) error
	Remove(ctx context.Context, appointmentID string) error
}

type BookingUsecase interface {
	Book(ctx context.Context, request *requests.BookAppointment) (*models.Appointment, error)
	Cancel(ctx context.Context, appointmentID string) (*models.Appointment, error)
	ListForDoctor(ctx context.Context, doctorName string) ([]models.Appointment, error)
	Latest(ctx context.Context) (*models.Appointment, error)
}

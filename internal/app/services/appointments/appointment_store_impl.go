package appointments

import (
	"context"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// appointmentStore keeps the whole collection under a single durable key.
// Reads self-heal: missing, corrupt, or non-array content is treated as
// empty and the key is reset, so a bad write can never wedge the store.
type appointmentStore struct {
	redis contracts.RedisRepository
	log   *zap.Logger
}

func NewAppointmentStore(redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.AppointmentStore {
	return &appointmentStore{
		redis: redisRepository,
		log:   logger,
	}
}

func (s *appointmentStore) GetAll(ctx context.Context) ([]models.Appointment, error) {
	raw, err := s.redis.Get(ctx, constvars.AppointmentStorageKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		if err := s.reset(ctx); err != nil {
			return nil, err
		}
		return []models.Appointment{}, nil
	}

	var appointments []models.Appointment
	if err := json.Unmarshal([]byte(raw), &appointments); err != nil {
		s.log.Warn(constvars.ErrDevStorageCorruptContent,
			zap.String(constvars.LoggingStorageKeyKey, constvars.AppointmentStorageKey),
			zap.Error(err),
		)
		if err := s.reset(ctx); err != nil {
			return nil, err
		}
		return []models.Appointment{}, nil
	}
	if appointments == nil {
		if err := s.reset(ctx); err != nil {
			return nil, err
		}
		return []models.Appointment{}, nil
	}
	return appointments, nil
}

func (s *appointmentStore) GetForDoctor(ctx context.Context, doctorName string) ([]models.Appointment, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Appointment, 0, len(all))
	for _, appointment := range all {
		if appointment.DoctorName == doctorName {
			filtered = append(filtered, appointment)
		}
	}
	return filtered, nil
}

func (s *appointmentStore) Save(ctx context.Context, appointments []models.Appointment) error {
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	return s.redis.Set(ctx, constvars.AppointmentStorageKey, appointments, 0)
}

func (s *appointmentStore) Append(ctx context.Context, appointment models.Appointment) error {
	all, err := s.GetAll(ctx)
	if err != nil {
		return err
	}
	return s.Save(ctx, append(all, appointment))
}

func (s *appointmentStore) Remove(ctx context.Context, appointmentID string) error {
	all, err := s.GetAll(ctx)
	if err != nil {
		return err
	}
	kept := make([]models.Appointment, 0, len(all))
	for _, appointment := range all {
		if appointment.ID != appointmentID {
			kept = append(kept, appointment)
		}
	}
	return s.Save(ctx, kept)
}

func (s *appointmentStore) reset(ctx context.Context) error {
	return s.Save(ctx, []models.Appointment{})
}

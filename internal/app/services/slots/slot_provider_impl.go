package slots

import (
	"context"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// slotProvider serves the bookable time labels for a doctor. Doctors that
// advertise their own slot list get it (deduped, order preserved); doctors
// that advertise nothing get the default static set. An empty but non-nil
// advertised list means the source explicitly reports zero slots.
type slotProvider struct {
	doctors contracts.DoctorRepository
	log     *zap.Logger
}

func NewSlotProvider(doctorRepository contracts.DoctorRepository, logger *zap.Logger) contracts.SlotProvider {
	return &slotProvider{
		doctors: doctorRepository,
		log:     logger,
	}
}

func (p *slotProvider) SlotsFor(ctx context.Context, doctorID, date string) ([]string, error) {
	doctor, err := p.doctors.FindByID(ctx, doctorID)
	if err != nil {
		p.log.Warn("slot source unavailable, returning no slots",
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return []string{}, err
	}

	if doctor.AvailableSlots == nil {
		return append([]string(nil), constvars.DefaultTimeSlots...), nil
	}
	return dedupe(doctor.AvailableSlots), nil
}

func dedupe(slots []string) []string {
	seen := make(map[string]bool, len(slots))
	unique := make([]string, 0, len(slots))
	for _, slot := range slots {
		if seen[slot] {
			continue
		}
		seen[slot] = true
		unique = append(unique, slot)
	}
	return unique
}

package slots

import (
	"context"
	"testing"

	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDoctorRepository struct {
	doctor *models.Doctor
	err    error
}

func (f *fakeDoctorRepository) ReplaceAll(ctx context.Context, doctors []models.Doctor) error {
	return nil
}

func (f *fakeDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	return nil, nil
}

func (f *fakeDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.doctor, nil
}

func (f *fakeDoctorRepository) FindBySpeciality(ctx context.Context, speciality string) ([]models.Doctor, error) {
	return nil, nil
}

func (f *fakeDoctorRepository) Search(ctx context.Context, text string) ([]models.Doctor, error) {
	return nil, nil
}

func TestSlotsForDefaultsWhenNotAdvertised(t *testing.T) {
	provider := NewSlotProvider(&fakeDoctorRepository{
		doctor: &models.Doctor{ID: "doc-1", AvailableSlots: nil},
	}, zap.NewNop())

	slots, err := provider.SlotsFor(context.Background(), "doc-1", "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, constvars.DefaultTimeSlots, slots)
}

func TestSlotsForDefaultCopyIsIsolated(t *testing.T) {
	provider := NewSlotProvider(&fakeDoctorRepository{
		doctor: &models.Doctor{ID: "doc-1"},
	}, zap.NewNop())

	slots, err := provider.SlotsFor(context.Background(), "doc-1", "2026-09-01")
	require.NoError(t, err)

	slots[0] = "mutated"
	assert.Equal(t, "10:00 AM", constvars.DefaultTimeSlots[0])
}

func TestSlotsForExplicitZeroStaysEmpty(t *testing.T) {
	provider := NewSlotProvider(&fakeDoctorRepository{
		doctor: &models.Doctor{ID: "doc-1", AvailableSlots: []string{}},
	}, zap.NewNop())

	slots, err := provider.SlotsFor(context.Background(), "doc-1", "2026-09-01")
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestSlotsForDedupesPreservingOrder(t *testing.T) {
	provider := NewSlotProvider(&fakeDoctorRepository{
		doctor: &models.Doctor{ID: "doc-1", AvailableSlots: []string{"2:00 PM", "10:00 AM", "2:00 PM", "3:00 PM", "10:00 AM"}},
	}, zap.NewNop())

	slots, err := provider.SlotsFor(context.Background(), "doc-1", "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"2:00 PM", "10:00 AM", "3:00 PM"}, slots)
}

func TestSlotsForSourceFailureReturnsEmptyWithError(t *testing.T) {
	provider := NewSlotProvider(&fakeDoctorRepository{
		err: exceptions.ErrDoctorNotFound("doc-1"),
	}, zap.NewNop())

	slots, err := provider.SlotsFor(context.Background(), "doc-1", "2026-09-01")
	require.Error(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

package appointments

import (
	"context"
	"testing"
	"time"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/app/services/notifications"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDoctorUsecase struct {
	doctors map[string]*models.Doctor
}

func (f *fakeDoctorUsecase) ListDoctors(ctx context.Context, speciality, search string) ([]models.Doctor, error) {
	out := make([]models.Doctor, 0, len(f.doctors))
	for _, d := range f.doctors {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDoctorUsecase) GetDoctor(ctx context.Context, doctorID string) (*models.Doctor, error) {
	doctor, ok := f.doctors[doctorID]
	if !ok {
		return nil, exceptions.ErrDoctorNotFound(doctorID)
	}
	return doctor, nil
}

func (f *fakeDoctorUsecase) RefreshDirectory(ctx context.Context) error { return nil }

type fakeSlotProvider struct {
	slots []string
	err   error
}

func (f *fakeSlotProvider) SlotsFor(ctx context.Context, doctorID, date string) ([]string, error) {
	if f.err != nil {
		return []string{}, f.err
	}
	return f.slots, nil
}

func newBookingFixture(t *testing.T) (*BookingUsecase, contracts.AppointmentStore, contracts.NotificationRelay) {
	t.Helper()

	store := NewAppointmentStore(newFakeRedis(), zap.NewNop())
	doctors := &fakeDoctorUsecase{doctors: map[string]*models.Doctor{
		"doc-1": {ID: "doc-1", Name: "Smith", Speciality: "Cardiology"},
		"doc-2": {ID: "doc-2", Name: "Taylor", Speciality: "Dermatology"},
	}}
	slots := &fakeSlotProvider{slots: []string{"10:00 AM", "11:00 AM"}}
	relay := notifications.NewNotificationRelay(zap.NewNop())

	return NewBookingUsecase(store, doctors, slots, relay, zap.NewNop()), store, relay
}

func tomorrow() string {
	return time.Now().AddDate(0, 0, 1).Format(constvars.CalendarDateLayout)
}

func validBooking() *requests.BookAppointment {
	return &requests.BookAppointment{
		Name:        "Jane Roe",
		PhoneNumber: "1234567890",
		Date:        tomorrow(),
		Slot:        "10:00 AM",
		DoctorID:    "doc-1",
	}
}

func TestBookValidRequestSucceeds(t *testing.T) {
	usecase, store, relay := newBookingFixture(t)

	var events []models.NotificationEvent
	relay.Subscribe(func(event models.NotificationEvent) {
		events = append(events, event)
	})

	appointment, err := usecase.Book(context.Background(), validBooking())
	require.NoError(t, err)

	assert.NotEmpty(t, appointment.ID)
	assert.Equal(t, "Jane Roe", appointment.PatientName)
	assert.Equal(t, "Smith", appointment.DoctorName)
	assert.Equal(t, "Cardiology", appointment.DoctorSpeciality)
	assert.Equal(t, constvars.AppointmentStatusConfirmed, appointment.Status)
	assert.False(t, appointment.BookedAt.IsZero())

	all, err := store.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.Len(t, events, 1)
	assert.Equal(t, constvars.NotificationActionBooked, events[0].Action)
	assert.Equal(t, appointment.ID, events[0].Appointment.ID)
}

func TestBookValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *requests.BookAppointment)
		message string
	}{
		{
			name:    "missing name",
			mutate:  func(r *requests.BookAppointment) { r.Name = "  " },
			message: "name is required",
		},
		{
			name:    "short phone",
			mutate:  func(r *requests.BookAppointment) { r.PhoneNumber = "12345" },
			message: "phonenumber must be a valid 10-digit phone number",
		},
		{
			name:    "alphabetic phone",
			mutate:  func(r *requests.BookAppointment) { r.PhoneNumber = "12345abcde" },
			message: "phonenumber must be a valid 10-digit phone number",
		},
		{
			name:    "past date",
			mutate:  func(r *requests.BookAppointment) { r.Date = "2020-01-01" },
			message: "date must not be in the past",
		},
		{
			name:    "unparseable date",
			mutate:  func(r *requests.BookAppointment) { r.Date = "01/02/2026" },
			message: "date must not be in the past",
		},
		{
			name:    "missing slot",
			mutate:  func(r *requests.BookAppointment) { r.Slot = "" },
			message: "slot is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usecase, store, _ := newBookingFixture(t)

			request := validBooking()
			tt.mutate(request)

			_, err := usecase.Book(context.Background(), request)
			require.Error(t, err)

			var customErr *exceptions.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
			assert.Equal(t, tt.message, customErr.ClientMessage)

			all, storeErr := store.GetAll(context.Background())
			require.NoError(t, storeErr)
			assert.Empty(t, all, "rejected booking must not touch the store")
		})
	}
}

func TestBookPhoneValidatedBeforeDate(t *testing.T) {
	usecase, _, _ := newBookingFixture(t)

	request := validBooking()
	request.PhoneNumber = "12345"
	request.Date = "2020-01-01"

	_, err := usecase.Book(context.Background(), request)
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, "phonenumber must be a valid 10-digit phone number", customErr.ClientMessage)
}

func TestBookTodayIsAccepted(t *testing.T) {
	usecase, _, _ := newBookingFixture(t)

	request := validBooking()
	request.Date = time.Now().Format(constvars.CalendarDateLayout)

	_, err := usecase.Book(context.Background(), request)
	assert.NoError(t, err)
}

func TestBookSlotNotOfferedRejected(t *testing.T) {
	usecase, store, _ := newBookingFixture(t)

	request := validBooking()
	request.Slot = "9:00 PM"

	_, err := usecase.Book(context.Background(), request)
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	assert.Equal(t, constvars.ErrClientSlotNotOffered, customErr.ClientMessage)

	all, storeErr := store.GetAll(context.Background())
	require.NoError(t, storeErr)
	assert.Empty(t, all)
}

func TestBookUnknownDoctorRejected(t *testing.T) {
	usecase, _, _ := newBookingFixture(t)

	request := validBooking()
	request.DoctorID = "doc-missing"

	_, err := usecase.Book(context.Background(), request)
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

func TestBookRelayPanicDoesNotFailBooking(t *testing.T) {
	usecase, store, relay := newBookingFixture(t)

	relay.Subscribe(func(event models.NotificationEvent) {
		panic("listener exploded")
	})
	delivered := 0
	relay.Subscribe(func(event models.NotificationEvent) {
		delivered++
	})

	_, err := usecase.Book(context.Background(), validBooking())
	require.NoError(t, err)
	assert.Equal(t, 1, delivered)

	all, storeErr := store.GetAll(context.Background())
	require.NoError(t, storeErr)
	assert.Len(t, all, 1)
}

func TestCancelRetainsRecordAndPublishes(t *testing.T) {
	usecase, store, relay := newBookingFixture(t)

	appointment, err := usecase.Book(context.Background(), validBooking())
	require.NoError(t, err)

	var events []models.NotificationEvent
	relay.Subscribe(func(event models.NotificationEvent) {
		events = append(events, event)
	})

	cancelled, err := usecase.Cancel(context.Background(), appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, constvars.AppointmentStatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)

	all, err := store.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1, "cancellation keeps the record")
	assert.Equal(t, constvars.AppointmentStatusCancelled, all[0].Status)

	require.Len(t, events, 1)
	assert.Equal(t, constvars.NotificationActionCancelled, events[0].Action)
}

func TestCancelUnknownIDLeavesStoreUntouched(t *testing.T) {
	usecase, store, _ := newBookingFixture(t)

	booked, err := usecase.Book(context.Background(), validBooking())
	require.NoError(t, err)

	_, err = usecase.Cancel(context.Background(), "no-such-id")
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)

	all, storeErr := store.GetAll(context.Background())
	require.NoError(t, storeErr)
	require.Len(t, all, 1)
	assert.Equal(t, booked.ID, all[0].ID)
	assert.Equal(t, constvars.AppointmentStatusConfirmed, all[0].Status)
}

func TestListForDoctorIsolation(t *testing.T) {
	usecase, _, _ := newBookingFixture(t)
	ctx := context.Background()

	first := validBooking()
	_, err := usecase.Book(ctx, first)
	require.NoError(t, err)

	second := validBooking()
	second.DoctorID = "doc-2"
	_, err = usecase.Book(ctx, second)
	require.NoError(t, err)

	forSmith, err := usecase.ListForDoctor(ctx, "Smith")
	require.NoError(t, err)
	require.Len(t, forSmith, 1)
	assert.Equal(t, "Smith", forSmith[0].DoctorName)

	all, err := usecase.ListForDoctor(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestLatestReturnsMostRecentBooking(t *testing.T) {
	usecase, _, _ := newBookingFixture(t)
	ctx := context.Background()

	none, err := usecase.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, none)

	base := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	times := []time.Time{base, base.Add(2 * time.Hour), base.Add(time.Hour)}
	i := 0
	usecase.now = func() time.Time {
		ts := times[i]
		i++
		return ts
	}

	var ids []string
	for range times {
		appointment, err := usecase.Book(ctx, validBooking())
		require.NoError(t, err)
		ids = append(ids, appointment.ID)
	}

	latest, err := usecase.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, ids[1], latest.ID)
}

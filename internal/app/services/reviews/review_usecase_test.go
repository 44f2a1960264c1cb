package reviews

import (
	"context"
	"testing"
	"time"

	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRedis struct {
	data map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) (string, error) {
	return f.data[key], nil
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = string(raw)
	return nil
}

func (f *fakeRedis) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

type fakeDoctorUsecase struct {
	doctors []models.Doctor
}

func (f *fakeDoctorUsecase) ListDoctors(ctx context.Context, speciality, search string) ([]models.Doctor, error) {
	return f.doctors, nil
}

func (f *fakeDoctorUsecase) GetDoctor(ctx context.Context, doctorID string) (*models.Doctor, error) {
	for _, doctor := range f.doctors {
		if doctor.ID == doctorID {
			d := doctor
			return &d, nil
		}
	}
	return nil, exceptions.ErrDoctorNotFound(doctorID)
}

func (f *fakeDoctorUsecase) RefreshDirectory(ctx context.Context) error { return nil }

func newReviewFixture() (*ReviewUsecase, *fakeRedis) {
	redis := newFakeRedis()
	repository := NewReviewRedisRepository(redis, zap.NewNop())
	doctors := &fakeDoctorUsecase{doctors: []models.Doctor{
		{ID: "doc-1", Name: "Smith", Speciality: "Cardiology"},
		{ID: "doc-2", Name: "Taylor", Speciality: "Dermatology"},
	}}
	return NewReviewUsecase(repository, doctors, zap.NewNop()), redis
}

func validReview() *requests.SubmitReview {
	return &requests.SubmitReview{
		DoctorID:     "doc-1",
		ReviewerName: "Jane Roe",
		Review:       "Very thorough and kind.",
		Rating:       5,
	}
}

func TestSubmitReviewStoresUnderDoctorKey(t *testing.T) {
	usecase, redis := newReviewFixture()

	review, err := usecase.SubmitReview(context.Background(), validReview())
	require.NoError(t, err)
	assert.Equal(t, "Very thorough and kind.", review.Review)
	assert.Equal(t, 5, review.Rating)
	assert.False(t, review.LastReviewed.IsZero())

	stored, ok := redis.data["doctor-doc-1-review"]
	require.True(t, ok, "review stored under its doctor key")
	assert.Contains(t, stored, "Jane Roe")
}

func TestSubmitReviewValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *requests.SubmitReview)
	}{
		{name: "review too short", mutate: func(r *requests.SubmitReview) { r.Review = "short" }},
		{name: "rating zero", mutate: func(r *requests.SubmitReview) { r.Rating = 0 }},
		{name: "rating above five", mutate: func(r *requests.SubmitReview) { r.Rating = 6 }},
		{name: "missing reviewer", mutate: func(r *requests.SubmitReview) { r.ReviewerName = " " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usecase, _ := newReviewFixture()

			request := validReview()
			tt.mutate(request)

			_, err := usecase.SubmitReview(context.Background(), request)
			require.Error(t, err)
			assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
		})
	}
}

func TestSubmitReviewOnePerDoctor(t *testing.T) {
	usecase, _ := newReviewFixture()
	ctx := context.Background()

	_, err := usecase.SubmitReview(ctx, validReview())
	require.NoError(t, err)

	_, err = usecase.SubmitReview(ctx, validReview())
	require.Error(t, err)
	assert.True(t, exceptions.IsStatus(err, constvars.StatusConflict))

	// A different doctor is unaffected.
	other := validReview()
	other.DoctorID = "doc-2"
	_, err = usecase.SubmitReview(ctx, other)
	assert.NoError(t, err)
}

func TestSubmitReviewUnknownDoctor(t *testing.T) {
	usecase, _ := newReviewFixture()

	request := validReview()
	request.DoctorID = "doc-missing"

	_, err := usecase.SubmitReview(context.Background(), request)
	require.Error(t, err)
	assert.True(t, exceptions.IsNotFound(err))
}

func TestCorruptReviewKeyIsDiscarded(t *testing.T) {
	usecase, redis := newReviewFixture()
	ctx := context.Background()

	redis.data["doctor-doc-1-review"] = "{{not json"

	rows, err := usecase.ListDoctorReviews(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Nil(t, rows[0].Review, "corrupt review reads as absent")

	_, hasKey := redis.data["doctor-doc-1-review"]
	assert.False(t, hasKey, "corrupt key is deleted")

	// The doctor can be reviewed again afterwards.
	_, err = usecase.SubmitReview(ctx, validReview())
	assert.NoError(t, err)
}

func TestClearReviewAllowsResubmission(t *testing.T) {
	usecase, _ := newReviewFixture()
	ctx := context.Background()

	_, err := usecase.SubmitReview(ctx, validReview())
	require.NoError(t, err)

	require.NoError(t, usecase.ClearReview(ctx, "doc-1"))

	_, err = usecase.SubmitReview(ctx, validReview())
	assert.NoError(t, err)
}

func TestListDoctorReviewsMergesDirectory(t *testing.T) {
	usecase, _ := newReviewFixture()
	ctx := context.Background()

	_, err := usecase.SubmitReview(ctx, validReview())
	require.NoError(t, err)

	rows, err := usecase.ListDoctorReviews(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "doc-1", rows[0].DoctorID)
	require.NotNil(t, rows[0].Review)
	assert.Equal(t, 5, rows[0].Review.Rating)
	assert.Nil(t, rows[1].Review)
}

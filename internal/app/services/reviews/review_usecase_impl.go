package reviews

import (
	"context"
	"time"

	"carebook-service/internal/app/contracts"
	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/dto/responses"
	"carebook-service/internal/pkg/exceptions"
	"carebook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ReviewUsecase struct {
	repository contracts.ReviewRepository
	doctors    contracts.DoctorUsecase
	log        *zap.Logger
	now        func() time.Time
}

func NewReviewUsecase(
	reviewRepository contracts.ReviewRepository,
	doctorUsecase contracts.DoctorUsecase,
	logger *zap.Logger,
) *ReviewUsecase {
	return &ReviewUsecase{
		repository: reviewRepository,
		doctors:    doctorUsecase,
		log:        logger,
		now:        time.Now,
	}
}

// ListDoctorReviews returns one row per directory doctor, attaching the
// stored review where one exists.
func (u *ReviewUsecase) ListDoctorReviews(ctx context.Context) ([]responses.DoctorReviewRow, error) {
	doctors, err := u.doctors.ListDoctors(ctx, "", "")
	if err != nil {
		return nil, err
	}

	rows := make([]responses.DoctorReviewRow, 0, len(doctors))
	for _, doctor := range doctors {
		review, err := u.repository.FindByDoctorID(ctx, doctor.ID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, responses.DoctorReviewRow{
			DoctorID:         doctor.ID,
			DoctorName:       doctor.Name,
			DoctorSpeciality: doctor.Speciality,
			Review:           review,
		})
	}
	return rows, nil
}

// SubmitReview stores the first review for a doctor. A doctor that already
// has one is rejected; the stored review must be cleared before another can
// be submitted.
func (u *ReviewUsecase) SubmitReview(ctx context.Context, request *requests.SubmitReview) (*models.DoctorReview, error) {
	utils.SanitizeSubmitReviewRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	if _, err := u.doctors.GetDoctor(ctx, request.DoctorID); err != nil {
		return nil, err
	}

	existing, err := u.repository.FindByDoctorID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrReviewAlreadyExists(request.DoctorID)
	}

	review := &models.DoctorReview{
		Review:       request.Review,
		Rating:       request.Rating,
		LastReviewed: u.now(),
		ReviewerName: request.ReviewerName,
	}
	if err := u.repository.Save(ctx, request.DoctorID, review); err != nil {
		return nil, err
	}

	u.log.Info("review stored",
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.Int("rating", request.Rating),
	)
	return review, nil
}

func (u *ReviewUsecase) ClearReview(ctx context.Context, doctorID string) error {
	if err := u.repository.Delete(ctx, doctorID); err != nil {
		return err
	}
	u.log.Info("review cleared", zap.String(constvars.LoggingDoctorIDKey, doctorID))
	return nil
}

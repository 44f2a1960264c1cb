package contracts

import (
	"context"

	"carebook-service/internal/app/models"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/dto/responses"
)

// ReviewRepository persists at most one review per doctor, each under its
// own durable key.
type ReviewRepository interface {
	FindByDoctorID(ctx context.Context, doctorID string) (*models.DoctorReview, error)
	Save(ctx context.Context, doctorID string, review *models.DoctorReview) error
	Delete(ctx context.Context, doctorID string) error
}

type ReviewUsecase interface {
	ListDoctorReviews(ctx context.Context) ([]responses.DoctorReviewRow, error)
	SubmitReview(ctx context.Context, request *requests.SubmitReview) (*models.DoctorReview, error)
	ClearReview(ctx context.Context, doctorID string) error
}

package contracts

import (
	"context"

	"carebook-service/internal/app/models"
)

// DoctorDirectoryClient fetches the remote directory feed and normalizes it
// into strict Doctor records at the boundary.
type DoctorDirectoryClient interface {
	FetchDoctors(ctx context.Context) ([]models.Doctor, error)
}

// DoctorRepository is the local snapshot of the directory, treated as
// immutable reference data between refreshes.
type DoctorRepository interface {
	ReplaceAll(ctx context.Context, doctors []models.Doctor) error
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindBySpeciality(ctx context.Context, speciality string) ([]models.Doctor, error)
	Search(ctx context.Context, text string) ([]models.Doctor, error)
}

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, speciality, search string) ([]models.Doctor, error)
	GetDoctor(ctx context.Context, doctorID string) (*models.Doctor, error)
	RefreshDirectory(ctx context.Context) error
}

package responses

import "carebook-service/internal/app/models"

// DoctorReviewRow merges a directory doctor with its stored review, if any.
type DoctorReviewRow struct {
	DoctorID         string               `json:"doctorId"`
	DoctorName       string               `json:"doctorName"`
	DoctorSpeciality string               `json:"doctorSpeciality"`
	Review           *models.DoctorReview `json:"review,omitempty"`
}

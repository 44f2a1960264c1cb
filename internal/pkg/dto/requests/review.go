package requests

type SubmitReview struct {
	DoctorID     string `json:"doctorId" validate:"required"`
	ReviewerName string `json:"reviewerName" validate:"required"`
	Review       string `json:"review" validate:"required,min=10"`
	Rating       int    `json:"rating" validate:"required,gte=1,lte=5"`
}

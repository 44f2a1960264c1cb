package utils

import (
	"strings"

	"carebook-service/internal/pkg/dto/requests"
)

func SanitizeBookAppointmentRequest(request *requests.BookAppointment) {
	request.Name = strings.TrimSpace(request.Name)
	request.PhoneNumber = strings.TrimSpace(request.PhoneNumber)
	request.Date = strings.TrimSpace(request.Date)
	request.Slot = strings.TrimSpace(request.Slot)
	request.DoctorID = strings.TrimSpace(request.DoctorID)
}

func SanitizeRegisterUserRequest(request *requests.RegisterUser) {
	request.Name = strings.TrimSpace(request.Name)
	request.Phone = strings.TrimSpace(request.Phone)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Role = strings.ToLower(strings.TrimSpace(request.Role))
}

func SanitizeLoginUserRequest(request *requests.LoginUser) {
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}

func SanitizeSubmitReviewRequest(request *requests.SubmitReview) {
	request.DoctorID = strings.TrimSpace(request.DoctorID)
	request.ReviewerName = strings.TrimSpace(request.ReviewerName)
	request.Review = strings.TrimSpace(request.Review)
}

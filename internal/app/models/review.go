package models

import "time"

// DoctorReview is stored per doctor under its own durable key.
type DoctorReview struct {
	Review       string    `json:"review"`
	Rating       int       `json:"rating"`
	LastReviewed time.Time `json:"lastReviewed"`
	ReviewerName string    `json:"reviewerName"`
}

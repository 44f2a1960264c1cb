package models

import "time"

// Appointment is one booking. The whole collection is persisted as a single
// JSON array under constvars.AppointmentStorageKey; field names match the
// stored layout.
type Appointment struct {
	ID               string     `json:"id"`
	PatientName      string     `json:"name"`
	PhoneNumber      string     `json:"phoneNumber"`
	Date             string     `json:"date"`
	Slot             string     `json:"slot"`
	DoctorName       string     `json:"doctorName"`
	DoctorSpeciality string     `json:"doctorSpeciality"`
	Status           string     `json:"status"`
	BookedAt         time.Time  `json:"bookedAt"`
	CancelledAt      *time.Time `json:"cancelledAt,omitempty"`
}

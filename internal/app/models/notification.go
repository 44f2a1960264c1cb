package models

import "time"

// NotificationEvent is the ephemeral message broadcast on the relay. It is
// never persisted; Appointment is a snapshot copy taken at publish time.
type NotificationEvent struct {
	Action      string      `json:"action"`
	Appointment Appointment `json:"appointmentData"`
}

// Banner is the user-visible acknowledgment derived from the latest event.
type Banner struct {
	Message          string    `json:"message"`
	Action           string    `json:"action"`
	PatientName      string    `json:"patientName"`
	DoctorName       string    `json:"doctorName"`
	Date             string    `json:"date"`
	Slot             string    `json:"slot"`
	ShownAt          time.Time `json:"shownAt"`
	ExpiresAt        time.Time `json:"expiresAt"`
	CancelledAtLabel string    `json:"cancelledAt,omitempty"`
}

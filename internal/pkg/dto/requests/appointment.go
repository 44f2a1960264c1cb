package requests

// BookAppointment carries the booking form input plus the doctor context.
// Field order fixes the validation order: name, phone, date, slot.
type BookAppointment struct {
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phone_number"`
	Date        string `json:"date" validate:"required,future_date"`
	Slot        string `json:"slot" validate:"required"`

	DoctorID string `json:"doctorId"`
}

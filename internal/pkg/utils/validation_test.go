package utils

import (
	"testing"
	"time"

	"carebook-service/internal/pkg/constvars"
	"carebook-service/internal/pkg/dto/requests"
	"carebook-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBookAppointmentPhoneNumber(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{name: "ten digits", phone: "1234567890", valid: true},
		{name: "too short", phone: "12345", valid: false},
		{name: "too long", phone: "123456789012", valid: false},
		{name: "letters mixed in", phone: "12345abcde", valid: false},
		{name: "with dashes", phone: "123-456-78", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := &requests.BookAppointment{
				Name:        "Jane Roe",
				PhoneNumber: tt.phone,
				Date:        time.Now().AddDate(0, 0, 1).Format(constvars.CalendarDateLayout),
				Slot:        "10:00 AM",
			}
			err := ValidateStruct(request)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateFutureDate(t *testing.T) {
	today := time.Now().Format(constvars.CalendarDateLayout)
	yesterday := time.Now().AddDate(0, 0, -1).Format(constvars.CalendarDateLayout)

	tests := []struct {
		name  string
		date  string
		valid bool
	}{
		{name: "today", date: today, valid: true},
		{name: "yesterday", date: yesterday, valid: false},
		{name: "far future", date: "2030-01-01", valid: true},
		{name: "unparseable", date: "01/02/2030", valid: false},
		{name: "empty", date: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := &requests.BookAppointment{
				Name:        "Jane Roe",
				PhoneNumber: "1234567890",
				Date:        tt.date,
				Slot:        "10:00 AM",
			}
			err := ValidateStruct(request)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

// The first failing field wins, in declaration order.
func TestValidationOrderNamePhoneDataSlot(t *testing.T) {
	request := &requests.BookAppointment{
		Name:        "",
		PhoneNumber: "bad",
		Date:        "2020-01-01",
		Slot:        "",
	}
	err := ValidateStruct(request)
	require.Error(t, err)
	assert.Equal(t, "name is required", exceptions.FormatFirstValidationError(err))

	request.Name = "Jane Roe"
	err = ValidateStruct(request)
	require.Error(t, err)
	assert.Equal(t, "phonenumber must be a valid 10-digit phone number", exceptions.FormatFirstValidationError(err))

	request.PhoneNumber = "1234567890"
	err = ValidateStruct(request)
	require.Error(t, err)
	assert.Equal(t, "date must not be in the past", exceptions.FormatFirstValidationError(err))

	request.Date = time.Now().Format(constvars.CalendarDateLayout)
	err = ValidateStruct(request)
	require.Error(t, err)
	assert.Equal(t, "slot is required", exceptions.FormatFirstValidationError(err))
}

func TestValidateRoleType(t *testing.T) {
	request := &requests.RegisterUser{
		Name:     "Jane Roe",
		Phone:    "1234567890",
		Email:    "jane@example.com",
		Password: "secret123",
		Role:     "superuser",
	}
	require.Error(t, ValidateStruct(request))

	request.Role = constvars.RolePatient
	assert.NoError(t, ValidateStruct(request))

	request.Role = constvars.RoleDoctor
	assert.NoError(t, ValidateStruct(request))
}

func TestSanitizeBookAppointmentRequest(t *testing.T) {
	request := &requests.BookAppointment{
		Name:        "  Jane Roe  ",
		PhoneNumber: " 1234567890 ",
		Date:        " 2026-09-01 ",
		Slot:        " 10:00 AM ",
		DoctorID:    " doc-1 ",
	}
	SanitizeBookAppointmentRequest(request)

	assert.Equal(t, "Jane Roe", request.Name)
	assert.Equal(t, "1234567890", request.PhoneNumber)
	assert.Equal(t, "2026-09-01", request.Date)
	assert.Equal(t, "10:00 AM", request.Slot)
	assert.Equal(t, "doc-1", request.DoctorID)
}

func TestSanitizeRegisterUserLowercasesEmailAndRole(t *testing.T) {
	request := &requests.RegisterUser{
		Name:  " Jane ",
		Phone: "1234567890",
		Email: " Jane@Example.COM ",
		Role:  " Patient ",
	}
	SanitizeRegisterUserRequest(request)

	assert.Equal(t, "jane@example.com", request.Email)
	assert.Equal(t, constvars.RolePatient, request.Role)
}

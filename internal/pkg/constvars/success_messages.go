package constvars

const (
	UserCreatedSuccess   = "Successfully created user"
	LoginSuccess         = "Successfully logged in"
	LogoutSuccess        = "Successfully logged out"
	ProfileFetchSuccess  = "Successfully fetched profile"
	ProfileUpdateSuccess = "Successfully updated profile"

	AppointmentBookedSuccess    = "Appointment booked successfully!"
	AppointmentCancelledSuccess = "Appointment cancelled"
	AppointmentListSuccess      = "Successfully fetched appointments"

	DoctorListSuccess = "Successfully fetched doctors"
	SlotListSuccess   = "Successfully fetched time slots"

	ReviewSubmittedSuccess = "Successfully submitted review"
	ReviewListSuccess      = "Successfully fetched reviews"
	ReviewClearedSuccess   = "Successfully cleared review"

	ReportListSuccess = "Successfully fetched reports"
	ReportViewSuccess = "Successfully generated report link"

	BannerFetchSuccess   = "Successfully fetched notification banner"
	BannerDismissSuccess = "Successfully dismissed notification banner"
)

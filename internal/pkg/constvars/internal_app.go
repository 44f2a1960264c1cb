package constvars

// Durable state layout. AppointmentStorageKey holds the whole appointment
// collection as one JSON array; reviews live under one key per doctor.
const (
	AppointmentStorageKey  = "doctorAppointments"
	ReviewStorageKeyFormat = "doctor-%s-review"
	SessionKeyPrefix       = "session:"
)

const (
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	NotificationActionBooked    = "booked"
	NotificationActionCancelled = "cancelled"
)

// Banner display durations per notification action.
const (
	BannerBookedSeconds    = 5
	BannerCancelledSeconds = 10
)

// DefaultTimeSlots is offered when a doctor does not advertise a slot list.
var DefaultTimeSlots = []string{"10:00 AM", "11:00 AM", "12:00 PM", "1:00 PM"}

const (
	DoctorNamePlaceholder       = "Unknown Doctor"
	DoctorSpecialityPlaceholder = "General"
	DoctorGeneratedIDPrefix     = "doc-"
)

const (
	DoctorCollection = "doctors"
)

const (
	NotificationQueueName           = "appointment_notification_queue"
	NotificationDeadLetterQueueName = "appointment_notification_dlq"
)

const (
	ReportObjectNameFormat   = "patient_report_%s.pdf"
	ReportDownloadNameFormat = "Medical_Report_%s_%s.pdf"
)

const (
	RoleGuest   = "guest"
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

const (
	ContextSessionIDKey   = ContextKey("sessionID")
	ContextSessionDataKey = ContextKey("sessionData")
	ContextAPIKeyAuthKey  = ContextKey("apiKeyAuth")
	ContextRequestIDKey   = ContextKey("requestID")
)

type ContextKey string

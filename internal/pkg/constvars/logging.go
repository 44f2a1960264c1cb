package constvars

const (
	LoggingDoctorIDKey      = "doctor_id"
	LoggingDoctorNameKey    = "doctor_name"
	LoggingAppointmentIDKey = "appointment_id"
	LoggingSessionIDKey     = "session_id"
	LoggingStorageKeyKey    = "storage_key"
	LoggingQueueNameKey     = "queue_name"
	LoggingBucketNameKey    = "bucket_name"
	LoggingObjectNameKey    = "object_name"
	LoggingRefreshSeqKey    = "refresh_seq"
	LoggingActionKey        = "action"
	LoggingEndpointKey      = "endpoint"

	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
)

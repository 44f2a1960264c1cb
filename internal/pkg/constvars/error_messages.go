package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"gte":          "must be greater than or equal to %s",
	"lte":          "must be less than or equal to %s",
	"numeric":      "must be a number",
	"phone_number": "must be a valid 10-digit phone number",
	"future_date":  "must not be in the past",
	"role_type":    "must be either 'patient' or 'doctor'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
	"gte": true,
	"lte": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process request, please check your request"
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again"
	ErrClientNotAuthorized                 = "you are not authorized to do this action"
	ErrClientNotLoggedIn                   = "you are not logged in, please login first"
	ErrClientInvalidAPIKey                 = "invalid api key"
	ErrClientServerLongRespond             = "server takes too long to respond, please try again"

	ErrClientAppointmentNotFound = "appointment not found"
	ErrClientSlotNotOffered      = "selected time slot is not available for this doctor"
	ErrClientDoctorNotFound      = "doctor not found"
	ErrClientNoSlotsAvailable    = "no time slots available, please try again later"

	ErrClientDirectoryUnavailable = "unable to load doctors right now, please retry"
	ErrClientReviewAlreadyExists  = "you have already reviewed this doctor"
	ErrClientReportNotFound       = "report not found for this doctor"
	ErrClientReportEmpty          = "report file is empty"
	ErrClientAuthFailed           = "login failed, please check your credentials"
)

// Error messages for developers
const (
	ErrDevValidationFailed = "request validation failed"
	ErrDevInvalidInput     = "invalid input"

	ErrDevCannotParseJSON   = "failed to parse JSON payload"
	ErrDevCannotMarshalJSON = "failed to marshal value to JSON"
	ErrDevCannotParseDate   = "failed to parse calendar date"

	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	ErrDevStorageCorruptContent = "stored appointment content is corrupt or not an array, resetting to empty"

	ErrDevMongoDBFindDocument   = "failed to find document in mongo database"
	ErrDevMongoDBUpsertDocument = "failed to upsert document to mongo database"

	ErrDevDirectoryFetch       = "failed to fetch doctor directory"
	ErrDevDirectoryBadPayload  = "doctor directory returned a non-array payload"
	ErrDevDirectoryBadStatus   = "doctor directory returned non-success status: %d"
	ErrDevDirectoryStaleResult = "discarding stale directory refresh result"

	ErrDevAuthTokenMissing          = "authorization token is missing from request"
	ErrDevAuthTokenInvalid          = "authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "authorization token is invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate session token"
	ErrDevAuthSigningMethod         = "unexpected token signing method"
	ErrDevAuthInvalidSession        = "session not found or expired"
	ErrDevAuthGatewayRejected       = "auth gateway rejected the request"
	ErrDevAuthGatewayUnreachable    = "failed to reach auth gateway"
	ErrDevInvalidAPIKey             = "provided api key does not match"

	ErrDevAppointmentNotFound = "appointment with id %s does not exist in the store"
	ErrDevDoctorNotFound      = "doctor with id %s does not exist in the directory"
	ErrDevSlotNotOffered      = "slot %q is not in the offered set for doctor %s"

	ErrDevReviewAlreadyExists = "review for doctor %s already stored"

	ErrDevMinioGetObject        = "failed to get object from bucket %s"
	ErrDevMinioObjectEmpty      = "object in bucket %s has zero size"
	ErrDevMinioPresignObjectURL = "failed to presign object URL for bucket %s"

	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"

	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevServerDeadlineExceeded = "server deadline exceeded while processing request"
	ErrDevServerProcess          = "server failed while processing request"
)

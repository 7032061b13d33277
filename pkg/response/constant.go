package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	BadRequestErrorCode      = 1
	InternalServerErrorCode  = 500
	UnauthorizedErrorCode    = 401
	TooManyRequestsErrorCode = 429

	// DateTimeFormat is the layout used for timestamps in JSON bodies.
	DateTimeFormat = "2006-01-02 15:04:05"
)

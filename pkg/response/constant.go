package response

// Messages used in the standard envelope.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong, please try again later"
)

// Error codes.
const (
	InternalServerErrorCode = 500
	NotFoundErrorCode       = 404
)

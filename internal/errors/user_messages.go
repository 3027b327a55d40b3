package errors

// User-friendly error messages
const (
	MsgPropertyNotFound   = "Property not found."
	MsgServiceUnavailable = "We're unable to load properties right now. Please try again in a few minutes."
	MsgRateLimited        = "You're searching too quickly! Please wait a moment and try again."
	MsgInvalidParameters  = "The provided parameters are invalid. Please check your input and try again."
	MsgUnauthorized       = "Please sign in to continue."
	MsgForbidden          = "You do not have permission to view this page."
	MsgInternalError      = "Something went wrong on our end. Please try again later."
)

package utils

import (
	"fmt"
	"net/http"
	"strings"

	"homeinsight-listings/internal/errors"
	"homeinsight-listings/pkg/logger"
)

// LogAndMapError logs technical details and returns a user-friendly AppError.
// params are key/value pairs added to the log line.
func LogAndMapError(err error, operation string, params ...interface{}) *errors.AppError {
	appErr := errors.MapError(err)
	if appErr == nil {
		return nil
	}

	var details strings.Builder
	for i := 0; i+1 < len(params); i += 2 {
		fmt.Fprintf(&details, ", %v=%v", params[i], params[i+1])
	}
	logger.GlobalLogger.Errorf("%s failed: code=%s, error=%s%s", operation, appErr.Code, appErr.TechnicalMessage, details.String())
	return appErr
}

// WrapError adds context to an error while preserving the original.
func WrapError(err error, message string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(message, args...), err)
}

// IsRetryableError determines if an error is transient and worth retrying.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if appErr := errors.MapError(err); appErr.HTTPStatus == http.StatusServiceUnavailable {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "timeout") || strings.Contains(msg, "connection")
}

package errors

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// Sentinel errors raised by repositories and services.
var (
	ErrPropertyNotFound  = stderrors.New("property not found")
	ErrDatabaseQuery     = stderrors.New("database query failed")
	ErrInvalidParameters = stderrors.New("invalid parameters")
)

// NotFound builds the 404 for an unknown or malformed property id.
func NotFound(technical string) *AppError {
	return NewAppError(technical, MsgPropertyNotFound, ErrCodePropertyNotFound, http.StatusNotFound, ErrPropertyNotFound)
}

// InvalidParameters builds a 400 whose user message names the bad input.
func InvalidParameters(userMessage string) *AppError {
	if userMessage == "" {
		userMessage = MsgInvalidParameters
	}
	return NewAppError(userMessage, userMessage, ErrCodeInvalidParameters, http.StatusBadRequest, ErrInvalidParameters)
}

// Unauthorized builds a 401.
func Unauthorized(technical string) *AppError {
	return NewAppError(technical, MsgUnauthorized, ErrCodeUnauthorized, http.StatusUnauthorized, nil)
}

// Forbidden builds a 403.
func Forbidden(technical string) *AppError {
	return NewAppError(technical, MsgForbidden, ErrCodeForbidden, http.StatusForbidden, nil)
}

// RateLimited builds a 429.
func RateLimited() *AppError {
	return NewAppError("rate limit exceeded", MsgRateLimited, ErrCodeRateLimited, http.StatusTooManyRequests, nil)
}

// MapError converts a technical error into a user-friendly AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	technicalMessage := err.Error()

	switch {
	case stderrors.Is(err, mongo.ErrNoDocuments), stderrors.Is(err, ErrPropertyNotFound),
		strings.Contains(technicalMessage, "property not found"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgPropertyNotFound,
			Code:             ErrCodePropertyNotFound,
			HTTPStatus:       http.StatusNotFound,
			OriginalError:    err,
		}
	case stderrors.Is(err, ErrInvalidParameters):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInvalidParameters,
			Code:             ErrCodeInvalidParameters,
			HTTPStatus:       http.StatusBadRequest,
			OriginalError:    err,
		}
	case stderrors.Is(err, ErrDatabaseQuery), stderrors.Is(err, context.DeadlineExceeded),
		mongo.IsTimeout(err), mongo.IsNetworkError(err),
		strings.Contains(technicalMessage, "database query failed"):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgServiceUnavailable,
			Code:             ErrCodeServiceUnavailable,
			HTTPStatus:       http.StatusServiceUnavailable,
			OriginalError:    err,
		}
	default:
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInternalError,
			Code:             ErrCodeInternal,
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	}
}

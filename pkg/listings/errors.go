package listings

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"
)

// ErrorKind classifies why a page fetch failed.
type ErrorKind int

const (
	// KindTransport covers network failures and cancelled requests.
	KindTransport ErrorKind = iota
	// KindStatus is a non-2xx response.
	KindStatus
	// KindDecode is a response body that could not be parsed.
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	}
	return "unknown"
}

// User-facing messages for failed fetches.
const (
	MsgNetworkFailure   = "Unable to reach the server. Check your connection and try again."
	MsgListingsNotFound = "Property not found."
	MsgServerFailure    = "Failed to fetch properties. Please try again."
	MsgBadResponse      = "Received an unexpected response from the server."
)

// FetchError is the single error type the Fetcher surfaces. Every failure is
// reduced to one human-readable message.
type FetchError struct {
	Kind             ErrorKind
	StatusCode       int
	UserMessage      string
	TechnicalMessage string
	Err              error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return e.UserMessage
}

// Message returns the text shown to the user.
func (e *FetchError) Message() string {
	return e.UserMessage
}

// Unwrap returns the underlying error.
func (e *FetchError) Unwrap() error {
	return e.Err
}

func transportError(err error) *FetchError {
	return &FetchError{
		Kind:             KindTransport,
		UserMessage:      MsgNetworkFailure,
		TechnicalMessage: err.Error(),
		Err:              err,
	}
}

func statusError(code int, status string, body []byte) *FetchError {
	msg := MsgServerFailure
	if code == http.StatusNotFound {
		msg = MsgListingsNotFound
	}
	if server := serverMessage(body); server != "" {
		msg = server
	}
	return &FetchError{
		Kind:             KindStatus,
		StatusCode:       code,
		UserMessage:      msg,
		TechnicalMessage: fmt.Sprintf("%s: %s", status, truncate(string(body), 256)),
	}
}

func decodeError(err error) *FetchError {
	return &FetchError{
		Kind:             KindDecode,
		UserMessage:      MsgBadResponse,
		TechnicalMessage: err.Error(),
		Err:              err,
	}
}

// Message returns the user-facing text of err, whatever its type.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.UserMessage
	}
	return err.Error()
}

// serverMessage picks up {"error":{"message":...}} or {"error":"..."} bodies.
func serverMessage(body []byte) string {
	var nested struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &nested) == nil && nested.Error.Message != "" {
		return nested.Error.Message
	}
	var flat struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &flat) == nil && flat.Error != "" {
		return flat.Error
	}
	return ""
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}

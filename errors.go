package storefront

import "fmt"

// ErrAuthentication is returned when the API rejects the presented
// credentials-- a bad email/password pair or a stale access token.
type ErrAuthentication struct {
	Reason string `json:"reason"`
}

func NewErrAuthentication(reason string) *ErrAuthentication {
	return &ErrAuthentication{Reason: reason}
}

func (e *ErrAuthentication) Error() string {
	if e.Reason == "" {
		return "Could not authenticate the request."
	}
	return fmt.Sprintf("Could not authenticate the request: %s", e.Reason)
}

type ErrAuthorization struct {
	Reason string `json:"reason"`
}

func NewErrAuthorization(reason string) *ErrAuthorization {
	return &ErrAuthorization{Reason: reason}
}

func (e *ErrAuthorization) Error() string {
	if e.Reason == "" {
		return "The request is not authorized."
	}
	return fmt.Sprintf("The request is not authorized: %s", e.Reason)
}

type ErrBadRequest struct {
	Reason string `json:"reason"`
}

func NewErrBadRequest(reason string) *ErrBadRequest {
	return &ErrBadRequest{Reason: reason}
}

func (e *ErrBadRequest) Error() string {
	return fmt.Sprintf("Bad request: %s", e.Reason)
}

type ErrNotFound struct {
	Reason string `json:"reason"`
}

func NewErrNotFound(reason string) *ErrNotFound {
	return &ErrNotFound{Reason: reason}
}

func (e *ErrNotFound) Error() string {
	if e.Reason == "" {
		return "The requested resource was not found."
	}
	return fmt.Sprintf("The requested resource was not found: %s", e.Reason)
}

type ErrInternalServer struct{}

func NewErrInternalServer() *ErrInternalServer {
	return &ErrInternalServer{}
}

func (e *ErrInternalServer) Error() string {
	return "An internal server error occurred."
}

// ErrAPI is returned when the API answers the HTTP request itself but reports
// success=false in the response envelope.
type ErrAPI struct {
	Message string `json:"message"`
}

func NewErrAPI(message string) *ErrAPI {
	return &ErrAPI{Message: message}
}

func (e *ErrAPI) Error() string {
	return e.Message
}

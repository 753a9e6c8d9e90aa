package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUpstreamStatus      = errors.New("unexpected upstream status")

	// ErrInvalidResponse is returned when a 2xx response carries a body that
	// cannot be interpreted.
	ErrInvalidResponse = errors.New("invalid response body")
)

package domain

import "errors"

var (
	// ErrInvalidInput marks input rejected at a function boundary: non-finite
	// readings, out-of-range humidity, unknown enum values, bad form fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a lookup that matched nothing, locally or upstream.
	ErrNotFound = errors.New("not found")

	// Weather provider failures.
	ErrUpstreamUnauthorized = errors.New("weather provider rejected credentials")
	ErrUpstreamRateLimited  = errors.New("weather provider rate limit exceeded")
	ErrUpstreamUnavailable  = errors.New("weather provider unavailable")
)

package weather

import "errors"

// Closed set of provider failure kinds. Each provider client maps its
// transport and wire-format failures into this set at the boundary;
// callers never see HTTP statuses or parse errors directly. Match with
// errors.Is.
var (
	// ErrAuthenticationFailed means the remote service rejected the API key.
	ErrAuthenticationFailed = errors.New("provider rejected the API key")

	// ErrLocationNotFound means the remote service could not resolve the
	// requested location.
	ErrLocationNotFound = errors.New("location not found")

	// ErrUnsupportedDate means the requested date is beyond the
	// provider's forecast horizon.
	ErrUnsupportedDate = errors.New("date beyond provider forecast horizon")

	// ErrTransportFailure means the request never produced a usable
	// response (network failure, timeout).
	ErrTransportFailure = errors.New("provider request failed")

	// ErrUnexpectedResponse means the remote service answered with a
	// payload the client could not interpret.
	ErrUnexpectedResponse = errors.New("unexpected provider response")
)

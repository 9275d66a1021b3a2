package counter

import "errors"

var (
	// ErrInvalidParameter indicates that a configuration value is outside its
	// documented range or not a member of its documented enumeration.
	// It is raised before any command is sent for the failing call.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrMissingParameter indicates that a required key is absent from the
	// configuration string.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrMalformedValue indicates that a value could not be parsed as the
	// expected numeric or enum type.
	ErrMalformedValue = errors.New("malformed value")

	// ErrTriggerNotConfigured indicates that a measurement was requested before
	// any successful trigger configuration call.
	ErrTriggerNotConfigured = errors.New("trigger not configured")

	// ErrUnsupportedTransport indicates that the session transport is not
	// supported by the driver. It is raised at construction time.
	ErrUnsupportedTransport = errors.New("unsupported transport")
)

var (
	// ErrConfigNil indicates that a nil driver configuration was provided.
	ErrConfigNil = errors.New("driver config is nil")

	// ErrSessionNil indicates that a nil device session was provided.
	ErrSessionNil = errors.New("device session is nil")
)

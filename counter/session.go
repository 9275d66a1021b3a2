package counter

// Transport identifies the physical transport a device session runs on.
type Transport int

const (
	// TransportTCP is a raw-socket SCPI session, the only transport currently
	// supported by the bundled drivers.
	TransportTCP Transport = iota
	// TransportUSB is a USB-TMC session.
	TransportUSB
	// TransportSerial is an RS-232 session.
	TransportSerial
	// TransportGPIB is an IEEE-488 session.
	TransportGPIB
)

func (t Transport) String() string {
	switch t {
	case TransportTCP:
		return "tcp"
	case TransportUSB:
		return "usb"
	case TransportSerial:
		return "serial"
	case TransportGPIB:
		return "gpib"
	default:
		return "unknown"
	}
}

// Session represents a low-level device session that exchanges plain text
// command lines with an instrument. Implementations own exactly one underlying
// connection; a session is used by a single driver instance at a time, one
// outstanding command or query per round trip.
type Session interface {
	// Write sends a command with no reply expected.
	Write(command string) error

	// Query sends a command and returns the instrument's text reply.
	Query(command string) (string, error)

	// DeviceInfo returns the instrument identification text.
	DeviceInfo() (string, error)

	// Close terminates the session.
	Close() error
}

// MeasuredData is the append-only result sink measurement operations write to.
// Samples are appended in call order and never mutated or removed; drivers
// never read them back.
type MeasuredData interface {
	// AddMeasure appends a measured value.
	AddMeasure(value float64)

	// AddTimedMeasure appends a measured value paired with a host-side
	// timestamp string.
	AddTimedMeasure(timestamp string, value float64)
}

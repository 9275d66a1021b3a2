// Package scpitcp implements counter.Session over a raw TCP socket, the
// plain "SCPI-RAW" service most LAN instruments expose on port 5025.
//
// A session owns exactly one TCP connection and performs one command or query
// round trip at a time. It does not reconnect; when the peer goes away the
// owner decides whether to dial a fresh session.
package scpitcp

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/labkit/go-counter/counter"
	"github.com/labkit/go-counter/logger"
)

// Session is a raw-socket SCPI device session.
type Session struct {
	mu      sync.Mutex
	conn    net.Conn
	reader  *bufio.Reader
	timeout time.Duration
	logger  logger.Logger
}

var _ counter.Session = (*Session)(nil)

// Option represents a functional option for configuring a Session.
type Option interface {
	apply(*Session) error
}

type optFunc func(*Session) error

func (f optFunc) apply(s *Session) error { return f(s) }

// WithTimeout sets the per-round-trip I/O deadline. Zero disables deadlines,
// which is the default: time-interval reads block until an external reference
// edge arrives, with no host timeout by design.
func WithTimeout(d time.Duration) Option {
	return optFunc(func(s *Session) error {
		if d < 0 {
			return errors.New("timeout must not be negative")
		}
		s.timeout = d

		return nil
	})
}

// WithLogger sets the logger for the session.
func WithLogger(l logger.Logger) Option {
	return optFunc(func(s *Session) error {
		if l == nil {
			return errors.New("logger is nil")
		}
		s.logger = l

		return nil
	})
}

// Dial connects to an instrument at addr (host:port) and returns a session.
func Dial(addr string, opts ...Option) (*Session, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}

	return NewSession(conn, opts...)
}

// NewSession wraps an established connection in a session.
func NewSession(conn net.Conn, opts ...Option) (*Session, error) {
	s := &Session{
		conn:   conn,
		reader: bufio.NewReader(conn),
		logger: logger.GetLogger(),
	}

	for _, opt := range opts {
		if err := opt.apply(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Write sends a command line with no reply expected.
func (s *Session) Write(command string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.send(command)
}

// Query sends a command line and returns the instrument's reply line with the
// trailing newline trimmed.
func (s *Session) Query(command string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.send(command); err != nil {
		return "", err
	}

	line, err := s.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read reply for %q: %w", command, err)
	}
	s.logger.Debug("reply received", "command", command, "reply", line)

	return strings.TrimRight(line, "\r\n"), nil
}

// DeviceInfo returns the instrument identification text.
func (s *Session) DeviceInfo() (string, error) {
	return s.Query("*IDN?")
}

// Close terminates the session.
func (s *Session) Close() error {
	return s.conn.Close()
}

func (s *Session) send(command string) error {
	if s.timeout > 0 {
		if err := s.conn.SetDeadline(time.Now().Add(s.timeout)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(s.conn, "%s\n", command); err != nil {
		return fmt.Errorf("send %q: %w", command, err)
	}
	s.logger.Debug("command sent", "command", command)

	return nil
}

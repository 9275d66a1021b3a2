package ks53230

import (
	"fmt"

	"github.com/labkit/go-counter/counter"
	"github.com/labkit/go-counter/logger"
)

// Model is the name this driver registers itself under.
const Model = "KS53230"

func init() {
	counter.Register(Model, func(transport counter.Transport, session counter.Session, log logger.Logger) (counter.Counter, error) {
		var opts []Option
		if log != nil {
			opts = append(opts, WithLogger(log))
		}

		return New(transport, session, opts...)
	})
}

// Counter drives a Keysight 53230A over a device session.
//
// A Counter owns its session exclusively and handles one measurement request
// at a time to completion; it is not safe for concurrent use.
type Counter struct {
	cfg     *Config
	session counter.Session
	logger  logger.Logger
	metrics Metrics

	// Last known good trigger configuration and level, re-applied after every
	// CONFigure-class command. Empty until the first successful call.
	savedTrigCfg string
	savedTrigLev string
}

var _ counter.Counter = (*Counter)(nil)

// New creates a 53230A driver bound to the given device session.
//
// Only counter.TransportTCP sessions are supported; any other transport is
// rejected with counter.ErrUnsupportedTransport.
func New(transport counter.Transport, session counter.Session, opts ...Option) (*Counter, error) {
	if transport != counter.TransportTCP {
		return nil, fmt.Errorf("%s: %w", transport, counter.ErrUnsupportedTransport)
	}

	if session == nil {
		return nil, counter.ErrSessionNil
	}

	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Counter{
		cfg:     cfg,
		session: session,
		logger:  cfg.logger,
	}, nil
}

// Open asks the device for its identification text and returns it.
func (c *Counter) Open() (string, error) {
	info, err := c.session.DeviceInfo()
	if err != nil {
		return "", err
	}
	c.logger.Info("device open", "info", info)

	return info, nil
}

// Close terminates the device session.
func (c *Counter) Close() error {
	c.logger.Info("closing device session")
	return c.session.Close()
}

// Reset restores all device parameters to their default values.
func (c *Counter) Reset() error {
	c.logger.Info("device reset")
	return c.write("*RST")
}

// Metrics returns the atomic metrics of this driver instance.
func (c *Counter) Metrics() *Metrics {
	return &c.metrics
}

func (c *Counter) write(format string, args ...any) error {
	cmd := fmt.Sprintf(format, args...)
	if err := c.session.Write(cmd); err != nil {
		return fmt.Errorf("write %q: %w", cmd, err)
	}
	c.metrics.incCmdSendCount()

	return nil
}

func (c *Counter) query(format string, args ...any) (string, error) {
	cmd := fmt.Sprintf(format, args...)
	resp, err := c.session.Query(cmd)
	if err != nil {
		return "", fmt.Errorf("query %q: %w", cmd, err)
	}
	c.metrics.incQuerySendCount()

	return resp, nil
}

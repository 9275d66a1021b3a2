package ks53230

import (
	"errors"
	"time"

	"github.com/labkit/go-counter/counter"
	"github.com/labkit/go-counter/logger"
)

// Config holds the tunable acquisition parameters of a 53230A driver instance.
type Config struct {
	// step defines how many samples each streaming partial read requests.
	// The device does not guarantee that many fresh samples per poll.
	// Defaults to 5.
	step int

	// deadTime defines how long to wait between consecutive partial reads to
	// let new samples accumulate. Defaults to 1 second.
	deadTime time.Duration

	// gateTime defines the frequency measurement gate time. Defaults to 100ms.
	gateTime time.Duration

	// settleTime defines the fixed wait between arming and reading a period
	// measurement. Defaults to 3 seconds.
	settleTime time.Duration

	// pollInterval defines the sleep between operation-complete status polls
	// in the blocking batch read. Defaults to 1 second.
	pollInterval time.Duration

	// maxPolls bounds the number of operation-complete status polls.
	// Zero means unbounded, which is the production default: an external
	// trigger may arrive arbitrarily late.
	maxPolls int

	// relativeAutoLevel selects the corrected auto trigger level behavior:
	// auto-mode channels are programmed with a relative percentage level
	// instead of replaying the raw digits as an absolute voltage.
	// Defaults to false, which preserves the historical behavior.
	relativeAutoLevel bool

	// sleep is the delay function used by poll loops. Overridable for tests.
	sleep func(time.Duration)

	// logger provides a logger instance for driver events and errors.
	logger logger.Logger
}

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		step:         5,
		deadTime:     time.Second,
		gateTime:     100 * time.Millisecond,
		settleTime:   3 * time.Second,
		pollInterval: time.Second,
		maxPolls:     0,
		sleep:        time.Sleep,
		logger:       logger.GetLogger(),
	}

	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Option represents a functional option for configuring a 53230A driver.
type Option interface {
	apply(*Config) error
}

type optFunc func(*Config) error

func (f optFunc) apply(cfg *Config) error { return f(cfg) }

// WithStep sets how many samples each streaming partial read requests.
// An error is returned if the step is outside the range [1, 1000].
//
// The default value is 5.
func WithStep(step int) Option {
	return optFunc(func(cfg *Config) error {
		if cfg == nil {
			return counter.ErrConfigNil
		}
		if step < 1 || step > 1000 {
			return errors.New("step out of range [1, 1000]")
		}
		cfg.step = step

		return nil
	})
}

// WithDeadTime sets the wait between consecutive streaming partial reads.
// An error is returned if the duration is not positive.
//
// The default value is 1 second.
func WithDeadTime(d time.Duration) Option {
	return optFunc(func(cfg *Config) error {
		if cfg == nil {
			return counter.ErrConfigNil
		}
		if d <= 0 {
			return errors.New("dead-time must be positive")
		}
		cfg.deadTime = d

		return nil
	})
}

// WithGateTime sets the frequency measurement gate time.
// An error is returned if the duration is outside the range (0, 10s].
//
// The default value is 100 milliseconds.
func WithGateTime(d time.Duration) Option {
	return optFunc(func(cfg *Config) error {
		if cfg == nil {
			return counter.ErrConfigNil
		}
		if d <= 0 || d > 10*time.Second {
			return errors.New("gate time out of range (0, 10s]")
		}
		cfg.gateTime = d

		return nil
	})
}

// WithSettleTime sets the wait between arming and reading a period measurement.
// An error is returned if the duration is not positive.
//
// The default value is 3 seconds.
func WithSettleTime(d time.Duration) Option {
	return optFunc(func(cfg *Config) error {
		if cfg == nil {
			return counter.ErrConfigNil
		}
		if d <= 0 {
			return errors.New("settle time must be positive")
		}
		cfg.settleTime = d

		return nil
	})
}

// WithPollInterval sets the sleep between operation-complete status polls.
// An error is returned if the duration is not positive.
//
// The default value is 1 second.
func WithPollInterval(d time.Duration) Option {
	return optFunc(func(cfg *Config) error {
		if cfg == nil {
			return counter.ErrConfigNil
		}
		if d <= 0 {
			return errors.New("poll interval must be positive")
		}
		cfg.pollInterval = d

		return nil
	})
}

// WithMaxPolls bounds the number of operation-complete status polls in the
// blocking batch read. Zero means unbounded.
// An error is returned if the bound is negative.
//
// The default value is 0 (unbounded), since external trigger arrival is
// inherently unbounded in this domain.
func WithMaxPolls(n int) Option {
	return optFunc(func(cfg *Config) error {
		if cfg == nil {
			return counter.ErrConfigNil
		}
		if n < 0 {
			return errors.New("max polls must not be negative")
		}
		cfg.maxPolls = n

		return nil
	})
}

// WithRelativeAutoLevel selects the corrected auto trigger level behavior.
//
// When enabled, a trig<ch>:a<percent> level programs the channel with
// INPut:LEVel:AUTO ON and a relative percentage level. When disabled, the
// historical behavior is preserved: auto level is switched off and the
// percentage digits are replayed as an absolute voltage.
//
// The default value is false.
func WithRelativeAutoLevel(val bool) Option {
	return optFunc(func(cfg *Config) error {
		if cfg == nil {
			return counter.ErrConfigNil
		}
		cfg.relativeAutoLevel = val

		return nil
	})
}

// WithSleepFunc replaces the delay function used by poll loops.
// An error is returned if fn is nil.
//
// The default is time.Sleep. Tests inject a no-op to drive poll loops
// without real delays.
func WithSleepFunc(fn func(time.Duration)) Option {
	return optFunc(func(cfg *Config) error {
		if cfg == nil {
			return counter.ErrConfigNil
		}
		if fn == nil {
			return errors.New("sleep func is nil")
		}
		cfg.sleep = fn

		return nil
	})
}

// WithLogger sets the logger for the driver.
// An error is returned if l is nil.
//
// The default logger is the global logger instance.
func WithLogger(l logger.Logger) Option {
	return optFunc(func(cfg *Config) error {
		if cfg == nil {
			return counter.ErrConfigNil
		}
		if l == nil {
			return errors.New("logger is nil")
		}
		cfg.logger = l

		return nil
	})
}

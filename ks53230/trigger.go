package ks53230

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/labkit/go-counter/counter"
)

// autoMarker prefixes a trigger level value that requests auto mode at a
// percentage of the signal amplitude, e.g. "a50".
const autoMarker = "a"

// triggerConfig carries the validated trigger system settings of one
// ConfigureTrigger call. Nil/empty fields were absent from the input and
// retain the previous device state.
type triggerConfig struct {
	count  *int
	delay  *float64
	source string
	slope  string
}

var (
	validSources = []string{"imm", "bus", "ext"}
	validSlopes  = []string{"pos", "neg"}
)

func parseTriggerConfig(cfg counter.ConfigMap) (*triggerConfig, error) {
	tc := &triggerConfig{}

	if val, ok := cfg["cnt"]; ok {
		count, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("trigger count %q: %w", val, counter.ErrMalformedValue)
		}
		if count < 1 || count > 1000000 {
			return nil, fmt.Errorf("trigger count out of limits (%d): %w", count, counter.ErrInvalidParameter)
		}
		tc.count = &count
	}

	if val, ok := cfg["del"]; ok {
		delay, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("trigger delay %q: %w", val, counter.ErrMalformedValue)
		}
		if delay < 0 || delay > 3600 {
			return nil, fmt.Errorf("trigger delay out of limits (%g): %w", delay, counter.ErrInvalidParameter)
		}
		tc.delay = &delay
	}

	if val, ok := cfg["sou"]; ok {
		if !contains(validSources, val) {
			return nil, fmt.Errorf("trigger source not valid (%s): %w", val, counter.ErrInvalidParameter)
		}
		tc.source = val
	}

	if val, ok := cfg["slo"]; ok {
		if !contains(validSlopes, val) {
			return nil, fmt.Errorf("trigger slope not valid (%s): %w", val, counter.ErrInvalidParameter)
		}
		tc.slope = val
	}

	return tc, nil
}

// ConfigureTrigger applies common trigger system settings from a configuration
// string.
//
// Validation is all-or-nothing: every present key is validated before the
// first command is emitted, so an invalid value leaves the device untouched
// for this call. Effects of earlier successful calls remain.
//
// On success the full input string is retained as the last known good trigger
// configuration and re-applied after every measurement configuration command.
func (c *Counter) ConfigureTrigger(cfgstr string) error {
	cfg := counter.ParseConfig(cfgstr)
	c.logger.Debug("config parsed", "config", cfg)

	tc, err := parseTriggerConfig(cfg)
	if err != nil {
		return err
	}

	if tc.count != nil {
		if err := c.write("TRIGGer:COUNt %d", *tc.count); err != nil {
			return err
		}
	}
	if tc.delay != nil {
		// Microsecond resolution.
		if err := c.write("TRIGGer:DELay %.6f", *tc.delay); err != nil {
			return err
		}
	}
	if tc.source != "" {
		if err := c.write("TRIGGer:SOURce %s", tc.source); err != nil {
			return err
		}
	}
	if tc.slope != "" {
		if err := c.write("TRIGGer:SLOPe %s", tc.slope); err != nil {
			return err
		}
	}

	c.savedTrigCfg = cfgstr

	return nil
}

// trigLevel carries the validated trigger level of one input channel.
type trigLevel struct {
	channel int
	auto    bool
	// percent keeps the last two characters of an auto value, as documented.
	// It is logged but not numerically validated.
	percent string
	volts   float64
}

func (c *Counter) parseTrigLevels(cfg counter.ConfigMap) ([]trigLevel, error) {
	var levels []trigLevel

	for _, ch := range counter.Channels {
		val, ok := cfg[counter.TrigLevelKey(ch)]
		if !ok {
			continue
		}

		level := trigLevel{channel: ch}
		if strings.HasPrefix(val, autoMarker) {
			level.auto = true
			if len(val) >= 2 {
				level.percent = val[len(val)-2:]
			}
			c.logger.Debug("trigger mode auto", "channel", ch, "percent", level.percent)
			if c.cfg.relativeAutoLevel {
				levels = append(levels, level)
				continue
			}
		}

		raw := val
		if level.auto {
			raw = val[len(autoMarker):]
		}
		volts, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("trigger level %q for channel %d: %w", val, ch, counter.ErrMalformedValue)
		}
		level.volts = volts
		if !level.auto {
			c.logger.Debug("trigger mode manual", "channel", ch, "volts", volts)
		}
		levels = append(levels, level)
	}

	if len(levels) == 0 {
		return nil, fmt.Errorf("no trigger level key in config: %w", counter.ErrMissingParameter)
	}

	return levels, nil
}

// TrigLevel sets the trigger mode and level of every channel named in the
// configuration string (keys trig1, trig2).
//
// A value starting with "a" requests auto mode at a percentage of the signal
// amplitude. By default the driver preserves the historical behavior: auto
// level is switched off and the digits after the marker are programmed as an
// absolute voltage. With WithRelativeAutoLevel(true) the channel is programmed
// with a relative percentage level instead.
//
// On success the full input string is retained and re-applied after every
// measurement configuration command.
func (c *Counter) TrigLevel(cfgstr string) error {
	cfg := counter.ParseConfig(cfgstr)
	c.logger.Debug("config parsed", "config", cfg)

	levels, err := c.parseTrigLevels(cfg)
	if err != nil {
		return err
	}

	for _, level := range levels {
		if level.auto && c.cfg.relativeAutoLevel {
			if err := c.write("INPUT%d:LEVEL:AUTO ON", level.channel); err != nil {
				return err
			}
			if err := c.write("INPUT%d:LEVEL:RELative %s", level.channel, level.percent); err != nil {
				return err
			}
			continue
		}

		if err := c.write("INPUT%d:LEVEL:AUTO OFF", level.channel); err != nil {
			return err
		}
		if err := c.write("INPUT%d:LEVEL %1.3f", level.channel, level.volts); err != nil {
			return err
		}
		c.logger.Debug("trigger level set", "channel", level.channel, "volts", level.volts)
	}

	c.savedTrigLev = cfgstr

	return nil
}

// reapplyTrigger re-sends the retained trigger configuration and level.
// Measurement configuration commands overwrite both on this instrument, so
// every measurement method calls this right after its CONFigure command.
func (c *Counter) reapplyTrigger() error {
	if err := c.ConfigureTrigger(c.savedTrigCfg); err != nil {
		return err
	}
	if c.savedTrigLev != "" {
		return c.TrigLevel(c.savedTrigLev)
	}

	return nil
}

// reapplyTrigLevel re-sends the trigger level from cfg when it names one, and
// falls back to the retained level otherwise.
func (c *Counter) reapplyTrigLevel(cfgstr string, cfg counter.ConfigMap) error {
	for _, ch := range counter.Channels {
		if _, ok := cfg[counter.TrigLevelKey(ch)]; ok {
			return c.TrigLevel(cfgstr)
		}
	}
	if c.savedTrigLev != "" {
		return c.TrigLevel(c.savedTrigLev)
	}

	return nil
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}

	return false
}

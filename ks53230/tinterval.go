package ks53230

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/labkit/go-counter/counter"
)

// tintervalConfig carries the validated parameters of one time-interval
// measurement.
type tintervalConfig struct {
	refChan   int
	otherChan int
	coupling  string
	impedance float64
	samples   int
	timestamp bool
}

func parseTintervalConfig(cfg counter.ConfigMap) (*tintervalConfig, error) {
	tic := &tintervalConfig{}

	ref, ok := cfg["ref"]
	if !ok {
		return nil, fmt.Errorf("reference channel (ref) required: %w", counter.ErrMissingParameter)
	}
	if ref == "A" {
		tic.refChan, tic.otherChan = 1, 2
	} else {
		tic.refChan, tic.otherChan = 2, 1
	}

	val, ok := cfg["sampl"]
	if !ok {
		return nil, fmt.Errorf("sample count (sampl) required: %w", counter.ErrMissingParameter)
	}
	samples, err := strconv.Atoi(val)
	if err != nil {
		return nil, fmt.Errorf("sample count %q: %w", val, counter.ErrMalformedValue)
	}
	if samples < 1 || samples > 1000000 {
		return nil, fmt.Errorf("sample count out of limits (%d): %w", samples, counter.ErrInvalidParameter)
	}
	tic.samples = samples

	cou, ok := cfg["cou"]
	if !ok {
		return nil, fmt.Errorf("coupling (cou) required: %w", counter.ErrMissingParameter)
	}
	tic.coupling = cou

	impVal, ok := cfg["imp"]
	if !ok {
		return nil, fmt.Errorf("impedance (imp) required: %w", counter.ErrMissingParameter)
	}
	imp, err := strconv.ParseFloat(impVal, 64)
	if err != nil {
		return nil, fmt.Errorf("impedance %q: %w", impVal, counter.ErrMalformedValue)
	}
	tic.impedance = imp

	tic.timestamp = cfg["tstamp"] == "Y"

	return tic, nil
}

// TimeInterval measures the time interval between the two input channels and
// appends the readings to out.
//
// The channel named by ref:A is used as reference (channel 1, measuring
// against channel 2); any other ref value selects channel 2 as reference.
// The trigger accept count is forced to 1: programming a higher count
// directly is unreliable for this mode on this instrument, so the driver
// loops host-side instead, issuing one blocking read per requested sample.
// Each read blocks until the instrument returns one reading; no host timeout
// is applied, since the external reference edge may arrive arbitrarily late.
//
// With tstamp:Y every reading is paired with a host-side HHMMSS timestamp
// captured immediately before the read.
//
// The trigger system must be configured before calling this method.
func (c *Counter) TimeInterval(cfgstr string, out counter.MeasuredData) error {
	cfg := counter.ParseConfig(cfgstr)
	c.logger.Debug("config parsed", "config", cfg)

	if c.savedTrigCfg == "" {
		c.logger.Error("the trigger must be configured before measuring")
		return counter.ErrTriggerNotConfigured
	}

	tic, err := parseTintervalConfig(cfg)
	if err != nil {
		return err
	}

	if err := c.write("CONFIGURE:TINTERVAL (@%d),(@%d)", tic.refChan, tic.otherChan); err != nil {
		return err
	}

	// The last command overwrites the trigger and input configuration.
	for _, ch := range counter.Channels {
		if err := c.write("INPUT%d:COUPLING %s", ch, tic.coupling); err != nil {
			return err
		}
	}
	for _, ch := range counter.Channels {
		if err := c.write("INPUT%d:IMPedance %f", ch, tic.impedance); err != nil {
			return err
		}
	}
	if err := c.reapplyTrigLevel(cfgstr, cfg); err != nil {
		return err
	}

	if err := c.write("TRIG:COUNT 1"); err != nil {
		return err
	}

	c.logger.Info("taking time-interval samples",
		"samples", tic.samples,
		"refChannel", tic.refChan,
		"otherChannel", tic.otherChan,
	)

	if err := c.write("INIT"); err != nil {
		return err
	}

	for k := 0; k < tic.samples; k++ {
		// Each read waits for a reference edge on the instrument side.
		var stamp string
		if tic.timestamp {
			stamp = time.Now().Format("150405")
		}

		resp, err := c.query("READ?")
		if err != nil {
			return err
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(resp), 64)
		if err != nil {
			return fmt.Errorf("time-interval reading %q: %w", resp, counter.ErrMalformedValue)
		}

		if tic.timestamp {
			out.AddTimedMeasure(stamp, value)
		} else {
			out.AddMeasure(value)
		}
		c.metrics.addSampleRecvCount(1)
	}

	return nil
}

package ks53230

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/labkit/go-counter/counter"
)

// ErrPollLimitExceeded indicates that the operation-complete status poll
// bound set by WithMaxPolls was reached before the acquisition finished.
var ErrPollLimitExceeded = errors.New("operation-complete poll limit exceeded")

// freqConfig carries the validated parameters of one frequency measurement.
type freqConfig struct {
	// expected is the expected frequency value, "DEF" when automatic.
	expected string
	// resolution is the measurement resolution, "DEF" or "1e-<digits>".
	resolution string
	channel    int
	coupling   string
	samples    int
}

func parseFreqConfig(cfg counter.ConfigMap) (*freqConfig, error) {
	fc := &freqConfig{
		expected:   "DEF",
		resolution: "DEF",
		samples:    1,
	}

	val, ok := cfg["ch"]
	if !ok {
		return nil, fmt.Errorf("channel (ch) required: %w", counter.ErrMissingParameter)
	}
	ch, err := strconv.Atoi(val)
	if err != nil {
		return nil, fmt.Errorf("channel %q: %w", val, counter.ErrMalformedValue)
	}
	if ch < 1 || ch > len(counter.Channels) {
		return nil, fmt.Errorf("channel out of limits (%d): %w", ch, counter.ErrInvalidParameter)
	}
	fc.channel = ch

	cou, ok := cfg["cou"]
	if !ok {
		return nil, fmt.Errorf("coupling (cou) required: %w", counter.ErrMissingParameter)
	}
	fc.coupling = cou

	if val, ok := cfg["exp"]; ok {
		fc.expected = val
	}

	if val, ok := cfg["res"]; ok {
		digits, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("resolution %q: %w", val, counter.ErrMalformedValue)
		}
		fc.resolution = fmt.Sprintf("1e-%d", digits)
	}

	if val, ok := cfg["sampl"]; ok {
		samples, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("sample count %q: %w", val, counter.ErrMalformedValue)
		}
		if samples < 1 {
			return nil, fmt.Errorf("sample count out of limits (%d): %w", samples, counter.ErrInvalidParameter)
		}
		fc.samples = samples
	}

	return fc, nil
}

// Freq measures the frequency of the input signal in a channel and appends the
// samples to out.
//
// The trigger system must be configured before calling this method; otherwise
// the call fails with counter.ErrTriggerNotConfigured and emits no commands.
//
// When stream is false, or a single sample is requested, the driver arms the
// instrument, polls the event status register until the acquisition finishes
// and fetches the whole batch at once. When stream is true and more than one
// sample is requested, it instead reads bounded chunks of the most recent
// samples while the acquisition is still running, tolerating polls that
// return fewer samples than requested, until exactly the requested number of
// samples has been appended.
func (c *Counter) Freq(cfgstr string, out counter.MeasuredData, stream bool) error {
	cfg := counter.ParseConfig(cfgstr)
	c.logger.Debug("config parsed", "config", cfg)

	if c.savedTrigCfg == "" {
		c.logger.Error("the trigger must be configured before measuring")
		return counter.ErrTriggerNotConfigured
	}

	fc, err := parseFreqConfig(cfg)
	if err != nil {
		return err
	}

	if err := c.write("CONF:FREQ %s,%s,(@%d)", fc.expected, fc.resolution, fc.channel); err != nil {
		return err
	}
	// One sample per trigger; accept as many triggers as samples requested.
	if err := c.write("SAMP:COUN 1"); err != nil {
		return err
	}
	if err := c.write("TRIG:COUN %d", fc.samples); err != nil {
		return err
	}
	// The CONFigure command overwrites the trigger settings.
	if err := c.reapplyTrigger(); err != nil {
		return err
	}
	if err := c.write("INPUT%d:COUPLING %s", fc.channel, fc.coupling); err != nil {
		return err
	}
	if err := c.write("SENS:FREQ:GATE:TIME %s", gateTimeToken(c.cfg)); err != nil {
		return err
	}

	c.logger.Info("taking frequency samples", "samples", fc.samples, "expected", fc.expected)

	if err := c.write("INIT"); err != nil {
		return err
	}

	if !stream || fc.samples == 1 {
		return c.fetchBatch(out)
	}

	return c.readStream(fc.samples, out)
}

// fetchBatch waits for the acquisition to finish and fetches all samples in
// one blocking read.
func (c *Counter) fetchBatch(out counter.MeasuredData) error {
	polls := 0
	for {
		resp, err := c.query("*ESR?")
		if err != nil {
			return err
		}
		c.metrics.incStatusPollCount()

		esr, err := strconv.Atoi(strings.TrimSpace(resp))
		if err != nil {
			return fmt.Errorf("event status register %q: %w", resp, counter.ErrMalformedValue)
		}
		if esr&0x1 == 0 {
			break
		}

		polls++
		if c.cfg.maxPolls > 0 && polls >= c.cfg.maxPolls {
			return ErrPollLimitExceeded
		}
		c.cfg.sleep(c.cfg.pollInterval)
	}

	resp, err := c.query("FETC?")
	if err != nil {
		return err
	}
	values, err := parseFloatList(resp)
	if err != nil {
		return err
	}
	for _, v := range values {
		out.AddMeasure(v)
	}
	c.metrics.addSampleRecvCount(len(values))
	c.logger.Debug("batch fetched", "samples", len(values))

	return nil
}

// readStream reads bounded chunks of the most recent samples until exactly
// total samples have been appended to out.
//
// The device does not guarantee step fresh samples per poll: a round may
// return fewer, or none at all. The final chunk is truncated so the requested
// total is never exceeded. Chunk parsing errors abort the loop; samples
// already appended stay in the sink.
func (c *Counter) readStream(total int, out counter.MeasuredData) error {
	// Wait long enough for some fresh samples.
	c.cfg.sleep(c.cfg.deadTime)

	collected := 0
	for collected < total {
		resp, err := c.query("R? %d", c.cfg.step)
		if err != nil {
			return err
		}

		values, err := parseChunk(resp)
		if err != nil {
			return err
		}
		if n := total - collected; len(values) > n {
			values = values[:n]
		}
		for _, v := range values {
			out.AddMeasure(v)
		}
		collected += len(values)
		c.metrics.addSampleRecvCount(len(values))
		if len(values) > 0 {
			c.logger.Debug("recent samples read", "count", len(values), "collected", collected)
		}

		c.cfg.sleep(c.cfg.deadTime)
	}

	return nil
}

// gateTimeToken renders the gate time in seconds the way the instrument
// expects it, e.g. "0.100" for 100ms.
func gateTimeToken(cfg *Config) string {
	return strconv.FormatFloat(cfg.gateTime.Seconds(), 'f', 3, 64)
}

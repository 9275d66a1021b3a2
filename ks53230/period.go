package ks53230

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/labkit/go-counter/counter"
)

// Period measures the period of the input signal on each channel named in the
// configuration string (keys ch1, ch2), one blocking reading per channel,
// sequentially. The readings are logged, not collected.
//
// The trigger system must be configured before calling this method.
func (c *Counter) Period(cfgstr string) error {
	cfg := counter.ParseConfig(cfgstr)
	c.logger.Debug("config parsed", "config", cfg)

	if c.savedTrigCfg == "" {
		c.logger.Error("the trigger must be configured before measuring")
		return counter.ErrTriggerNotConfigured
	}

	var channels []int
	for _, ch := range counter.Channels {
		if _, ok := cfg[counter.ChannelKey(ch)]; ok {
			channels = append(channels, ch)
		}
	}
	if len(channels) == 0 {
		return fmt.Errorf("no channel key (ch1/ch2) in config: %w", counter.ErrMissingParameter)
	}

	for _, ch := range channels {
		if err := c.write("CONF:PER DEF,DEF,(@%d)", ch); err != nil {
			return err
		}
		// The CONFigure command overwrites the trigger level.
		if err := c.reapplyTrigLevel(cfgstr, cfg); err != nil {
			return err
		}
		if err := c.write("INPUT%d:COUPLING DC", ch); err != nil {
			return err
		}
		if err := c.write("INIT"); err != nil {
			return err
		}
		c.cfg.sleep(c.cfg.settleTime)

		resp, err := c.query("READ?")
		if err != nil {
			return err
		}
		period, err := strconv.ParseFloat(strings.TrimSpace(resp), 64)
		if err != nil {
			return fmt.Errorf("period reading %q: %w", resp, counter.ErrMalformedValue)
		}
		c.metrics.addSampleRecvCount(1)
		c.logger.Info("period measured", "channel", ch, "seconds", period)
	}

	return nil
}

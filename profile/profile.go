// Package profile loads YAML device profiles describing how to reach and tune
// a counter: instrument model, transport, address and the acquisition knobs of
// the driver.
//
// A minimal profile looks like:
//
//	name: lab-bench-1
//	model: KS53230
//	transport: tcp
//	address: 10.0.0.20:5025
//	trigger: "cnt:10 sou:ext slo:pos"
//	triggerLevel: "trig1:2.5"
//	step: 5
//	deadTime: 1s
package profile

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/labkit/go-counter/counter"
)

// Profile describes one instrument endpoint and its acquisition tuning.
type Profile struct {
	// Name is a free-form identifier for the device.
	Name string `yaml:"name"`

	// Model selects the registered driver, e.g. "KS53230".
	Model string `yaml:"model"`

	// Transport names the session transport: tcp, usb, serial or gpib.
	Transport string `yaml:"transport"`

	// Address is the transport endpoint, e.g. "10.0.0.20:5025" for tcp.
	Address string `yaml:"address"`

	// Trigger is the trigger configuration string applied after opening the
	// device, e.g. "cnt:10 sou:ext slo:pos". Optional.
	Trigger string `yaml:"trigger"`

	// TriggerLevel is the trigger level configuration string applied after
	// Trigger, e.g. "trig1:2.5". Optional.
	TriggerLevel string `yaml:"triggerLevel"`

	// Step overrides how many samples each streaming partial read requests.
	// Zero keeps the driver default.
	Step int `yaml:"step"`

	// DeadTime overrides the wait between streaming partial reads, as a Go
	// duration string ("1s"). Empty keeps the driver default.
	DeadTime string `yaml:"deadTime"`

	// GateTime overrides the frequency gate time ("100ms").
	GateTime string `yaml:"gateTime"`

	// SettleTime overrides the period measurement settle time ("3s").
	SettleTime string `yaml:"settleTime"`
}

// Load reads and parses a profile file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	return Parse(data)
}

// Parse parses and validates YAML profile data.
func Parse(data []byte) (*Profile, error) {
	p := &Profile{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}

	if p.Model == "" {
		return nil, fmt.Errorf("profile: model is required")
	}
	if p.Address == "" {
		return nil, fmt.Errorf("profile: address is required")
	}
	if _, err := p.TransportKind(); err != nil {
		return nil, err
	}
	for _, field := range []struct {
		name  string
		value string
	}{
		{"deadTime", p.DeadTime},
		{"gateTime", p.GateTime},
		{"settleTime", p.SettleTime},
	} {
		if field.value == "" {
			continue
		}
		if _, err := time.ParseDuration(field.value); err != nil {
			return nil, fmt.Errorf("profile: %s: %w", field.name, err)
		}
	}

	return p, nil
}

// TransportKind maps the profile transport name to a counter.Transport.
// An empty name defaults to tcp.
func (p *Profile) TransportKind() (counter.Transport, error) {
	switch p.Transport {
	case "", "tcp":
		return counter.TransportTCP, nil
	case "usb":
		return counter.TransportUSB, nil
	case "serial":
		return counter.TransportSerial, nil
	case "gpib":
		return counter.TransportGPIB, nil
	default:
		return 0, fmt.Errorf("profile: transport %q: %w", p.Transport, counter.ErrUnsupportedTransport)
	}
}

// Duration returns a parsed duration field, or def when the field is empty.
// Parse validates the fields, so this cannot fail on a loaded profile.
func Duration(value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return def
	}

	return d
}

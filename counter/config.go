package counter

import (
	"strconv"
	"strings"
)

// ConfigMap holds the key:value pairs extracted from a configuration string.
//
// Keys are not case-normalized, duplicate keys overwrite (last wins), and the
// token order is irrelevant. A ConfigMap is created fresh per parse call and
// discarded after the caller extracts what it needs; only state derived from
// it is persisted by drivers.
type ConfigMap map[string]string

// ParseConfig splits text on whitespace into tokens and turns each well-formed
// "key:value" token into an entry of the returned ConfigMap.
//
// A token must contain exactly one ':' separating key and value, otherwise it
// is dropped without error. Whether a configuration string that yields no
// usable key is an error is decided by the caller against its required keys.
// An empty input yields an empty map.
//
// ParseConfig is a pure function with no side effects and no I/O.
func ParseConfig(text string) ConfigMap {
	cfg := ConfigMap{}
	for _, token := range strings.Fields(text) {
		key, value, ok := strings.Cut(token, ":")
		if !ok || key == "" || strings.Contains(value, ":") {
			continue
		}
		cfg[key] = value
	}

	return cfg
}

// Channels lists the input channel indices of a two-channel counter.
// Drivers iterate over this fixed set and check key membership instead of
// pattern-matching serialized key names.
var Channels = [2]int{1, 2}

// ChannelKey returns the configuration key naming an input channel, e.g. "ch1".
func ChannelKey(ch int) string {
	return "ch" + strconv.Itoa(ch)
}

// TrigLevelKey returns the configuration key carrying the trigger level of an
// input channel, e.g. "trig1".
func TrigLevelKey(ch int) string {
	return "trig" + strconv.Itoa(ch)
}

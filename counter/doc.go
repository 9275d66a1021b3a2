// Package counter provides the common abstractions for driving laboratory
// frequency/time-interval counters over a text command protocol.
//
// It defines the generic pieces every instrument driver builds on:
//
//   - Counter: the measurement interface (trigger setup, frequency, period and
//     time-interval acquisition).
//   - Session: the device session collaborator that sends commands and returns
//     query replies as plain text lines.
//   - MeasuredData: the append-only result sink that collects numeric samples.
//   - ConfigMap and ParseConfig: the compact space-delimited "key:value"
//     configuration string syntax shared by all drivers.
//   - A driver registry, so host programs can construct a Counter from a model
//     name found in a device profile.
//
// Concrete drivers live in their own packages (for example ks53230 for the
// Keysight 53230A) and register themselves with Register at init time.
//
// Configuration String Syntax:
//
// Configuration strings are space-separated key:value tokens with short fixed
// keys, for example:
//
//	cnt:10 del:0 sou:ext slo:pos
//	ch:1 cou:ac exp:125E6 res:12 sampl:100
//	trig1:a50 trig2:2.5
//
// Tokens that do not contain exactly one ':' are silently dropped; whether a
// missing key is an error is decided by the operation that consumes the map.
package counter

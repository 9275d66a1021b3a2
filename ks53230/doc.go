// Package ks53230 implements the counter.Counter acquisition engine for the
// Keysight 53230A Universal Frequency Counter/Timer.
//
// The driver translates compact configuration strings into ordered SCPI
// command sequences and collects numeric samples back from the instrument.
// It builds on the abstractions of the counter package and talks to the
// device through an injected counter.Session.
//
// Trigger Precondition:
//
// Issuing a CONFigure-class command on this instrument silently resets the
// trigger settings as a side effect of the device firmware. The driver
// compensates by retaining the last known good trigger configuration and
// trigger level, and re-sending both after every measurement configuration
// command. For the same reason ConfigureTrigger must have succeeded once
// before any measurement method is accepted.
//
// Usage Example:
//
//	session, err := scpitcp.Dial("10.0.0.20:5025")
//	// ... handle error ...
//	cnt, err := ks53230.New(counter.TransportTCP, session,
//	    ks53230.WithLogger(log),
//	    ks53230.WithStep(5),
//	)
//	// ... handle error ...
//	err = cnt.ConfigureTrigger("cnt:10 sou:ext slo:pos")
//	err = cnt.TrigLevel("trig1:2.5")
//	out := measure.NewSet()
//	err = cnt.Freq("ch:1 cou:ac exp:10E6 sampl:10", out, true)
package ks53230

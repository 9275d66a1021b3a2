package ks53230

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/labkit/go-counter/counter"
	"github.com/labkit/go-counter/measure"
)

func TestTimeIntervalChannelAssignment(t *testing.T) {
	require := require.New(t)

	t.Run("Reference A", func(t *testing.T) {
		cnt, session, _ := newTestCounter(t)
		require.NoError(cnt.ConfigureTrigger("cnt:1"))
		session.reset()

		session.reply("READ?", "+1.2E-9")

		out := measure.NewSet()
		err := cnt.TimeInterval("ref:A sampl:1 cou:dc imp:50", out)
		require.NoError(err)
		require.Equal("CONFIGURE:TINTERVAL (@1),(@2)", session.writes[0])
	})

	t.Run("Reference Other", func(t *testing.T) {
		cnt, session, _ := newTestCounter(t)
		require.NoError(cnt.ConfigureTrigger("cnt:1"))
		session.reset()

		session.reply("READ?", "+1.2E-9")

		out := measure.NewSet()
		err := cnt.TimeInterval("ref:B sampl:1 cou:dc imp:50", out)
		require.NoError(err)
		require.Equal("CONFIGURE:TINTERVAL (@2),(@1)", session.writes[0])
	})
}

func TestTimeIntervalValidation(t *testing.T) {
	require := require.New(t)

	cnt, _, _ := newTestCounter(t)
	require.NoError(cnt.ConfigureTrigger("cnt:1"))
	out := measure.NewSet()

	t.Run("Trigger Precondition", func(t *testing.T) {
		fresh, session, _ := newTestCounter(t)
		err := fresh.TimeInterval("ref:A sampl:1 cou:dc imp:50", out)
		require.ErrorIs(err, counter.ErrTriggerNotConfigured)
		require.Empty(session.writes)
	})

	t.Run("Missing Keys", func(t *testing.T) {
		for _, cfgstr := range []string{
			"sampl:1 cou:dc imp:50", // no ref
			"ref:A cou:dc imp:50",   // no sampl
			"ref:A sampl:1 imp:50",  // no cou
			"ref:A sampl:1 cou:dc",  // no imp
		} {
			err := cnt.TimeInterval(cfgstr, out)
			require.ErrorIs(err, counter.ErrMissingParameter)
		}
	})

	t.Run("Sample Count Out of Limits", func(t *testing.T) {
		err := cnt.TimeInterval("ref:A sampl:0 cou:dc imp:50", out)
		require.ErrorIs(err, counter.ErrInvalidParameter)

		err = cnt.TimeInterval("ref:A sampl:1000001 cou:dc imp:50", out)
		require.ErrorIs(err, counter.ErrInvalidParameter)
	})

	t.Run("Malformed Impedance", func(t *testing.T) {
		err := cnt.TimeInterval("ref:A sampl:1 cou:dc imp:low", out)
		require.ErrorIs(err, counter.ErrMalformedValue)
	})

	require.Zero(out.Len())
}

func TestTimeIntervalAcquisition(t *testing.T) {
	require := require.New(t)

	t.Run("Command Sequence", func(t *testing.T) {
		cnt, session, _ := newTestCounter(t)
		require.NoError(cnt.ConfigureTrigger("cnt:1"))
		session.reset()

		session.reply("READ?", "+1.0E-9", "+2.0E-9", "+3.0E-9")

		out := measure.NewSet()
		err := cnt.TimeInterval("ref:A sampl:3 cou:dc imp:50 trig1:2.5", out)
		require.NoError(err)
		require.Equal([]string{
			"CONFIGURE:TINTERVAL (@1),(@2)",
			"INPUT1:COUPLING dc",
			"INPUT2:COUPLING dc",
			"INPUT1:IMPedance 50.000000",
			"INPUT2:IMPedance 50.000000",
			"INPUT1:LEVEL:AUTO OFF",
			"INPUT1:LEVEL 2.500",
			"TRIG:COUNT 1", // forced to 1, host loops per sample
			"INIT",
		}, session.writes)
		require.Equal([]string{"READ?", "READ?", "READ?"}, session.queries)
		require.Equal([]float64{1.0e-9, 2.0e-9, 3.0e-9}, out.Values())
	})

	t.Run("With Timestamps", func(t *testing.T) {
		cnt, session, _ := newTestCounter(t)
		require.NoError(cnt.ConfigureTrigger("cnt:1"))

		session.reply("READ?", "+1.0E-9", "+2.0E-9")

		out := measure.NewSet()
		err := cnt.TimeInterval("ref:A sampl:2 cou:dc imp:50 tstamp:Y", out)
		require.NoError(err)

		samples := out.Samples()
		require.Len(samples, 2)
		for _, sample := range samples {
			require.Len(sample.Timestamp, 6) // HHMMSS
		}
	})

	t.Run("Without Timestamps", func(t *testing.T) {
		cnt, session, _ := newTestCounter(t)
		require.NoError(cnt.ConfigureTrigger("cnt:1"))

		session.reply("READ?", "+1.0E-9")

		out := measure.NewSet()
		err := cnt.TimeInterval("ref:A sampl:1 cou:dc imp:50 tstamp:N", out)
		require.NoError(err)

		samples := out.Samples()
		require.Len(samples, 1)
		require.Empty(samples[0].Timestamp)
	})

	t.Run("Falls Back To Saved Trigger Level", func(t *testing.T) {
		cnt, session, _ := newTestCounter(t)
		require.NoError(cnt.ConfigureTrigger("cnt:1"))
		require.NoError(cnt.TrigLevel("trig2:1.5"))
		session.reset()

		session.reply("READ?", "+1.0E-9")

		out := measure.NewSet()
		err := cnt.TimeInterval("ref:A sampl:1 cou:dc imp:50", out)
		require.NoError(err)
		require.Contains(session.writes, "INPUT2:LEVEL:AUTO OFF")
		require.Contains(session.writes, "INPUT2:LEVEL 1.500")
	})
}

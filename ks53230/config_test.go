package ks53230

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/labkit/go-counter/counter"
)

func TestNew(t *testing.T) {
	require := require.New(t)

	t.Run("Valid Configuration", func(t *testing.T) {
		session := newFakeSession(t)
		cnt, err := New(counter.TransportTCP, session,
			WithStep(10),
			WithDeadTime(500*time.Millisecond),
			WithGateTime(time.Second),
			WithSettleTime(time.Second),
			WithPollInterval(100*time.Millisecond),
			WithMaxPolls(60),
			WithRelativeAutoLevel(true),
		)
		require.NoError(err)
		require.Equal(10, cnt.cfg.step)
		require.Equal(500*time.Millisecond, cnt.cfg.deadTime)
		require.Equal(time.Second, cnt.cfg.gateTime)
		require.Equal(60, cnt.cfg.maxPolls)
		require.True(cnt.cfg.relativeAutoLevel)
	})

	t.Run("Unsupported Transport", func(t *testing.T) {
		session := newFakeSession(t)
		for _, transport := range []counter.Transport{
			counter.TransportUSB,
			counter.TransportSerial,
			counter.TransportGPIB,
		} {
			_, err := New(transport, session)
			require.ErrorIs(err, counter.ErrUnsupportedTransport)
		}
	})

	t.Run("Nil Session", func(t *testing.T) {
		_, err := New(counter.TransportTCP, nil)
		require.ErrorIs(err, counter.ErrSessionNil)
	})

	t.Run("Invalid Step", func(t *testing.T) {
		session := newFakeSession(t)
		_, err := New(counter.TransportTCP, session, WithStep(0))
		require.Error(err)
		require.EqualError(err, "step out of range [1, 1000]")

		_, err = New(counter.TransportTCP, session, WithStep(1001))
		require.Error(err)
	})

	t.Run("Invalid Durations", func(t *testing.T) {
		session := newFakeSession(t)

		_, err := New(counter.TransportTCP, session, WithDeadTime(0))
		require.EqualError(err, "dead-time must be positive")

		_, err = New(counter.TransportTCP, session, WithGateTime(11*time.Second))
		require.EqualError(err, "gate time out of range (0, 10s]")

		_, err = New(counter.TransportTCP, session, WithSettleTime(-time.Second))
		require.EqualError(err, "settle time must be positive")

		_, err = New(counter.TransportTCP, session, WithPollInterval(0))
		require.EqualError(err, "poll interval must be positive")
	})

	t.Run("Invalid Max Polls", func(t *testing.T) {
		session := newFakeSession(t)
		_, err := New(counter.TransportTCP, session, WithMaxPolls(-1))
		require.EqualError(err, "max polls must not be negative")
	})

	t.Run("Nil Logger", func(t *testing.T) {
		session := newFakeSession(t)
		_, err := New(counter.TransportTCP, session, WithLogger(nil))
		require.EqualError(err, "logger is nil")
	})

	t.Run("Nil Sleep Func", func(t *testing.T) {
		session := newFakeSession(t)
		_, err := New(counter.TransportTCP, session, WithSleepFunc(nil))
		require.EqualError(err, "sleep func is nil")
	})

	t.Run("Nil Config Option Target", func(t *testing.T) {
		err := WithStep(5).apply(nil)
		require.ErrorIs(err, counter.ErrConfigNil)
	})
}

func TestCounterLifecycle(t *testing.T) {
	require := require.New(t)

	cnt, session, _ := newTestCounter(t)

	info, err := cnt.Open()
	require.NoError(err)
	require.Contains(info, "53230A")

	require.NoError(cnt.Reset())
	require.Equal([]string{"*RST"}, session.writes)

	require.NoError(cnt.Close())
	require.True(session.closed)
}

func TestDriverRegistration(t *testing.T) {
	require := require.New(t)

	require.Contains(counter.Models(), Model)

	session := newFakeSession(t)
	cnt, err := counter.New(Model, counter.TransportTCP, session, nil)
	require.NoError(err)
	require.NotNil(cnt)

	_, err = counter.New("FCA3103", counter.TransportTCP, session, nil)
	require.Error(err)
}

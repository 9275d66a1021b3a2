package ks53230

import (
	"testing"
	"time"

	"github.com/labkit/go-counter/counter"
)

// fakeSession is a scripted counter.Session that records every command and
// serves queued replies per query command.
type fakeSession struct {
	t       *testing.T
	writes  []string
	queries []string
	replies map[string][]string
	closed  bool
}

var _ counter.Session = (*fakeSession)(nil)

func newFakeSession(t *testing.T) *fakeSession {
	t.Helper()

	return &fakeSession{
		t:       t,
		replies: make(map[string][]string),
	}
}

// reply queues responses for the given query command, served in order.
func (s *fakeSession) reply(cmd string, responses ...string) {
	s.replies[cmd] = append(s.replies[cmd], responses...)
}

// reset clears the recorded commands, keeping the queued replies.
func (s *fakeSession) reset() {
	s.writes = nil
	s.queries = nil
}

func (s *fakeSession) Write(command string) error {
	s.writes = append(s.writes, command)
	return nil
}

func (s *fakeSession) Query(command string) (string, error) {
	s.queries = append(s.queries, command)

	queue := s.replies[command]
	if len(queue) == 0 {
		s.t.Fatalf("unexpected query %q", command)
	}
	s.replies[command] = queue[1:]

	return queue[0], nil
}

func (s *fakeSession) DeviceInfo() (string, error) {
	return "Keysight Technologies,53230A,MY50000000,02.10", nil
}

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}

// sleepRecorder collects the delays a driver would have slept.
type sleepRecorder struct {
	delays []time.Duration
}

func (r *sleepRecorder) sleep(d time.Duration) {
	r.delays = append(r.delays, d)
}

// newTestCounter creates a driver bound to a fake session with sleeping
// disabled.
func newTestCounter(t *testing.T, opts ...Option) (*Counter, *fakeSession, *sleepRecorder) {
	t.Helper()

	session := newFakeSession(t)
	rec := &sleepRecorder{}

	defaults := []Option{WithSleepFunc(rec.sleep)}
	cnt, err := New(counter.TransportTCP, session, append(defaults, opts...)...)
	if err != nil {
		t.Fatalf("newTestCounter: %v", err)
	}

	return cnt, session, rec
}

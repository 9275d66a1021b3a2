package ks53230

import (
	"sync/atomic"
)

// Metrics contains atomic metrics for a driver instance.
// Metrics can be used as the value of a prometheus CounterFunc or GaugeFunc.
type Metrics struct {
	// CmdSendCount indicates the number of commands written to the device.
	CmdSendCount atomic.Uint64
	// QuerySendCount indicates the number of queries sent to the device.
	QuerySendCount atomic.Uint64
	// SampleRecvCount indicates the number of samples appended to result sinks.
	SampleRecvCount atomic.Uint64
	// StatusPollCount indicates the number of operation-complete status polls.
	StatusPollCount atomic.Uint64
}

func (m *Metrics) incCmdSendCount() {
	m.CmdSendCount.Add(1)
}

func (m *Metrics) incQuerySendCount() {
	m.QuerySendCount.Add(1)
}

func (m *Metrics) addSampleRecvCount(n int) {
	m.SampleRecvCount.Add(uint64(n)) //nolint:gosec
}

func (m *Metrics) incStatusPollCount() {
	m.StatusPollCount.Add(1)
}

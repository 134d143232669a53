package hammingheap

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	var m BasicMetricsCollector

	assert.Equal(t, int64(0), m.GetStats().SearchAvgNanos)

	m.RecordAdd(time.Millisecond, nil)
	m.RecordAdd(time.Millisecond, errors.New("boom"))
	m.RecordSearch(10, 100*time.Nanosecond, nil)
	m.RecordSearch(10, 300*time.Nanosecond, errors.New("boom"))
	m.RecordBatchSearch(8, 1, time.Second)

	stats := m.GetStats()
	assert.Equal(t, BasicMetricsStats{
		AddCount:          2,
		AddErrors:         1,
		SearchCount:       2,
		SearchErrors:      1,
		SearchAvgNanos:    200,
		BatchSearchCount:  1,
		BatchSearchItems:  8,
		BatchSearchFailed: 1,
	}, stats)
}

func TestNoopMetricsCollector(t *testing.T) {
	var m MetricsCollector = NoopMetricsCollector{}
	assert.NotPanics(t, func() {
		m.RecordAdd(time.Second, nil)
		m.RecordSearch(1, time.Second, nil)
		m.RecordBatchSearch(1, 0, time.Second)
	})
}

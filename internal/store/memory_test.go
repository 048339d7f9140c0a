package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeLogEmpty(t *testing.T) {
	l := NewProbeLog(3)

	_, err := l.Latest()
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, l.Recent())
	assert.Zero(t, l.FailureRate())
}

func TestProbeLogRetention(t *testing.T) {
	l := NewProbeLog(3)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		l.Record(ProbeResult{Query: fmt.Sprint(i), Timestamp: base.Add(time.Duration(i) * time.Minute), OK: i%2 == 0})
	}

	recent := l.Recent()
	require.Len(t, recent, 3)
	assert.Equal(t, "2", recent[0].Query)
	assert.Equal(t, "4", recent[2].Query)

	latest, err := l.Latest()
	require.NoError(t, err)
	assert.Equal(t, "4", latest.Query)

	// 2 and 4 succeeded, 3 failed.
	assert.InDelta(t, 1.0/3.0, l.FailureRate(), 1e-9)
}

func TestProbeLogKeepsAtLeastOne(t *testing.T) {
	l := NewProbeLog(0)
	l.Record(ProbeResult{Query: "a"})
	l.Record(ProbeResult{Query: "b"})

	assert.Len(t, l.Recent(), 1)
	latest, err := l.Latest()
	require.NoError(t, err)
	assert.Equal(t, "b", latest.Query)
}

func TestProbeLogConcurrentUse(t *testing.T) {
	l := NewProbeLog(10)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Record(ProbeResult{Query: fmt.Sprint(i), OK: true})
			_, _ = l.Latest()
		}()
	}
	wg.Wait()

	assert.Len(t, l.Recent(), 10)
}

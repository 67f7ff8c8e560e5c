package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_Snapshot(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.AddTermsGenerated(3)
			m.IncrementVerified()
		}()
	}
	wg.Wait()
	m.IncrementFailures()

	s := m.GetSnapshot()
	assert.EqualValues(t, 24, s.TermsGenerated)
	assert.EqualValues(t, 8, s.TermsVerified)
	assert.EqualValues(t, 1, s.VerificationFailures)
	assert.GreaterOrEqual(t, int64(s.Elapsed), int64(0))
}

func TestGetMetrics_Singleton(t *testing.T) {
	assert.Same(t, GetMetrics(), GetMetrics())
}

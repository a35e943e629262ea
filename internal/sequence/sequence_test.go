package sequence_test

import (
	"sync"
	"testing"

	"github.com/souyave/payments-engine/internal/sequence"
	"github.com/stretchr/testify/assert"
)

func TestSequenceStartsAtOneAndIncrements(t *testing.T) {
	seq := sequence.New()

	for want := int64(1); want <= 5; want++ {
		assert.Equal(t, want, seq.Next())
	}
}

func TestSequenceResetRewindsToOne(t *testing.T) {
	seq := sequence.New()
	seq.Next()
	seq.Next()

	seq.Reset()

	assert.Equal(t, int64(1), seq.Next())
}

func TestSequenceConcurrentCallersGetDistinctValues(t *testing.T) {
	const callers = 200
	const callsPerCaller = 50

	seq := sequence.New()
	results := make(chan int64, callers*callsPerCaller)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < callsPerCaller; j++ {
				results <- seq.Next()
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int64]bool, callers*callsPerCaller)
	for id := range results {
		assert.False(t, seen[id], "identifier %d issued twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, callers*callsPerCaller)
}

package simulation

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
)

func TestStatisticRecordsSuccessAndFailureCounts(t *testing.T) {
	var stats Statistic
	stats.recordSuccess()
	stats.recordSuccess()
	stats.recordFailure(errors.New("boom"))

	if got := stats.Succeeded(); got != 2 {
		t.Errorf("Succeeded() = %d, want 2", got)
	}
	if got := stats.Failed(); got != 1 {
		t.Errorf("Failed() = %d, want 1", got)
	}
	if stats.Errors() == nil {
		t.Error("Errors() = nil, want the recorded failure")
	}
}

func TestStatisticErrorsNilWhenNoFailures(t *testing.T) {
	var stats Statistic
	stats.recordSuccess()
	if err := stats.Errors(); err != nil {
		t.Errorf("Errors() = %v, want nil", err)
	}
}

func TestStatisticConcurrentRecordingIsRaceFree(t *testing.T) {
	var stats Statistic
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				stats.recordSuccess()
			} else {
				stats.recordFailure(errors.Errorf("failure %d", i))
			}
		}(i)
	}
	wg.Wait()

	if got := stats.Succeeded() + stats.Failed(); got != 100 {
		t.Errorf("total recorded = %d, want 100", got)
	}
}

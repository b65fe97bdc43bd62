package hashing

import (
	"sync"
	"testing"

	"github.com/lgbarn/octad-go/internal/game"
	"github.com/lgbarn/octad-go/internal/testutil"
)

var (
	_ DuplicateChecker = (*DuplicateDetector)(nil)
	_ DuplicateChecker = (*ThreadSafeDuplicateDetector)(nil)
)

func TestThreadSafeDuplicateDetector_Concurrent(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)

	const numStates = 100
	const numWorkers = 10
	statesPerWorker := numStates / numWorkers

	states := make([]*game.State, numStates)
	for i := range states {
		states[i] = game.New()
	}

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			start := workerID * statesPerWorker
			for j := start; j < start+statesPerWorker; j++ {
				detector.CheckAndAdd(states[j])
			}
		}(i)
	}
	wg.Wait()

	if detector.DuplicateCount() != 99 {
		t.Errorf("Expected 99 duplicates, got %d", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 1 {
		t.Errorf("Expected 1 unique, got %d", detector.UniqueCount())
	}
}

func TestThreadSafeDuplicateDetector_DifferentPositions(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)
	records := []string{
		testutil.StartRecord,
		testutil.AfterC2Record,
		testutil.MidgameRecord,
		testutil.NoCastlingRecord,
	}

	var wg sync.WaitGroup
	for _, record := range records {
		s := mustState(t, record)
		wg.Add(1)
		go func() {
			defer wg.Done()
			detector.CheckAndAdd(s)
		}()
	}
	wg.Wait()

	testutil.AssertEqual(t, detector.UniqueCount(), len(records))
	testutil.AssertEqual(t, detector.DuplicateCount(), 0)
}

func TestThreadSafeDuplicateDetector_IsFull(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 2)
	testutil.AssertFalse(t, detector.IsFull())

	detector.CheckAndAdd(mustState(t, testutil.StartRecord))
	detector.CheckAndAdd(mustState(t, testutil.AfterC2Record))
	testutil.AssertTrue(t, detector.IsFull())
}

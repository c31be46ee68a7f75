package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	for _, n := range []int{1, 3, 4, 7, 100, 1081} {
		pool := New(4)

		results := make([]int, n)
		pool.ParallelFor(n, func(start, end int) {
			for i := start; i < end; i++ {
				results[i]++
			}
		})
		pool.Close()

		for i, r := range results {
			if r != 1 {
				t.Fatalf("n=%d: index %d visited %d times, want 1", n, i, r)
			}
		}
	}
}

func TestParallelForRanges(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	var mu sync.Mutex
	var calls int
	pool.ParallelFor(10, func(start, end int) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if start >= end {
			t.Errorf("empty range [%d, %d)", start, end)
		}
	})

	if calls > 3 {
		t.Errorf("fn called %d times, want at most 3", calls)
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.ParallelFor(0, func(start, end int) {
		called = true
	})

	if called {
		t.Error("ParallelFor with n=0 should not call fn")
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()
}

func TestParallelForAfterClose(t *testing.T) {
	pool := New(4)
	pool.Close()

	var count atomic.Int32
	pool.ParallelFor(50, func(start, end int) {
		count.Add(int32(end - start))
	})

	if count.Load() != 50 {
		t.Errorf("count = %d, want 50", count.Load())
	}
}

func TestNilPool(t *testing.T) {
	var pool *Pool

	var gotStart, gotEnd int
	pool.ParallelFor(9, func(start, end int) {
		gotStart, gotEnd = start, end
	})

	if gotStart != 0 || gotEnd != 9 {
		t.Errorf("range = [%d, %d), want [0, 9)", gotStart, gotEnd)
	}
}

func TestConcurrentParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var total atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool.ParallelFor(100, func(start, end int) {
				total.Add(int64(end - start))
			})
		}()
	}
	wg.Wait()

	if total.Load() != 800 {
		t.Errorf("total = %d, want 800", total.Load())
	}
}

func TestCloseDuringParallelFor(t *testing.T) {
	// given
	pool := New(4)
	var total atomic.Int64
	var wg sync.WaitGroup

	// when
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				pool.ParallelFor(64, func(start, end int) {
					total.Add(int64(end - start))
				})
			}
		}()
	}
	pool.Close()
	wg.Wait()

	// then
	if want := int64(16 * 50 * 64); total.Load() != want {
		t.Errorf("total = %d, want %d", total.Load(), want)
	}
}

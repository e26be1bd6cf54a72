package tasklock

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAcquireSerializesSameKey(t *testing.T) {
	r := New()
	const workers = 10

	var active, overlaps int32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := r.Acquire("task-a")
			defer unlock()

			if atomic.AddInt32(&active, 1) > 1 {
				atomic.AddInt32(&overlaps, 1)
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&active, -1)
		}()
	}
	wg.Wait()

	assert.Zero(t, overlaps, "holders of the same key must not overlap")
}

func TestAcquireDifferentKeysDoNotBlock(t *testing.T) {
	r := New()
	unlockA := r.Acquire("task-a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := r.Acquire("task-b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("acquiring an unrelated key blocked")
	}
}

func TestAcquireReusesMutexPerKey(t *testing.T) {
	r := New()
	unlock := r.Acquire("task-a")
	unlock()
	unlock = r.Acquire("task-a")
	unlock()
	assert.Len(t, r.locks, 1)
}

package dash

import (
	"sync"
	"time"
)

// Queue runs functions one after the other on a single goroutine. It plays the
// role of the UI thread: every state change of the dashboard happens on it.
type Queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	funcs  []func()
	closed bool
	done   chan struct{}
}

func NewQueue() *Queue {
	q := Queue{
		done: make(chan struct{}),
	}
	q.cond = sync.NewCond(&q.mu)
	go q.run()
	return &q
}

// Post schedules fn after all the functions already posted. It reports false
// when the queue is closed.
func (q *Queue) Post(fn func()) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.funcs = append(q.funcs, fn)
	q.cond.Signal()
	return true
}

// After posts fn once d has elapsed.
func (q *Queue) After(d time.Duration, fn func()) *time.Timer {
	return time.AfterFunc(d, func() {
		q.Post(fn)
	})
}

// Sync posts fn and waits for it to complete. It must not be called from the
// queue itself.
func (q *Queue) Sync(fn func()) bool {
	done := make(chan struct{})
	ok := q.Post(func() {
		defer close(done)
		fn()
	})
	if ok {
		<-done
	}
	return ok
}

// Close stops the queue once the pending functions have run.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.cond.Broadcast()
	q.mu.Unlock()
	<-q.done
}

func (q *Queue) run() {
	defer close(q.done)
	for {
		q.mu.Lock()
		for len(q.funcs) == 0 && !q.closed {
			q.cond.Wait()
		}
		if len(q.funcs) == 0 {
			q.mu.Unlock()
			return
		}
		fn := q.funcs[0]
		q.funcs[0] = nil
		q.funcs = q.funcs[1:]
		q.mu.Unlock()

		fn()
	}
}

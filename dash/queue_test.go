package dash

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_Order(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	var got []int
	for i := 0; i < 100; i++ {
		i := i
		require.True(t, q.Post(func() {
			got = append(got, i)
		}))
	}
	q.Sync(func() {})

	require.Len(t, got, 100)
	for i := range got {
		assert.Equal(t, i, got[i])
	}
}

func TestQueue_PostFromQueue(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	var (
		mu  sync.Mutex
		got []string
	)
	add := func(s string) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, s)
	}
	done := make(chan struct{})
	q.Post(func() {
		add("first")
		q.Post(func() {
			add("deferred")
			close(done)
		})
		add("second")
	})
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("deferred function never ran")
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"first", "second", "deferred"}, got)
}

func TestQueue_After(t *testing.T) {
	q := NewQueue()
	defer q.Close()

	fired := make(chan time.Time, 1)
	start := time.Now()
	q.After(20*time.Millisecond, func() {
		fired <- time.Now()
	})
	select {
	case when := <-fired:
		assert.GreaterOrEqual(t, when.Sub(start), 20*time.Millisecond)
	case <-time.After(time.Second):
		t.Fatal("timer never fired")
	}
}

func TestQueue_Close(t *testing.T) {
	q := NewQueue()
	var count int
	for i := 0; i < 10; i++ {
		q.Post(func() {
			count++
		})
	}
	q.Close()
	assert.Equal(t, 10, count)
	assert.False(t, q.Post(func() {}))
	assert.False(t, q.Sync(func() {}))
}

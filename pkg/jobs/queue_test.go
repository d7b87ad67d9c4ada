package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueDeliversTasks(t *testing.T) {
	var mu sync.Mutex
	seen := make([]string, 0)
	done := make(chan struct{})

	q := NewQueue("exports", func(ctx context.Context, task Task) error {
		mu.Lock()
		seen = append(seen, task.ExportID)
		mu.Unlock()
		if len(seen) == 2 {
			close(done)
		}
		return nil
	}, QueueConfig{Workers: 1})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Task{ExportID: "exp-1", Kind: "STUDENT_ROSTER"}))
	require.NoError(t, q.Enqueue(Task{ExportID: "exp-2", Kind: "TUITION_LEDGER"}))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("tasks not processed in time")
	}
	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []string{"exp-1", "exp-2"}, seen)
}

func TestQueueRequeuesFailedTask(t *testing.T) {
	attempts := make(chan int, 8)

	q := NewQueue("exports", func(ctx context.Context, task Task) error {
		attempts <- task.Attempt
		if task.Attempt == 0 {
			return errors.New("transient")
		}
		return nil
	}, QueueConfig{Workers: 1, MaxRetries: 2, RetryDelay: 10 * time.Millisecond})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Task{ExportID: "exp-1"}))

	deadline := time.After(2 * time.Second)
	var got []int
	for len(got) < 2 {
		select {
		case a := <-attempts:
			got = append(got, a)
		case <-deadline:
			t.Fatal("retry did not happen in time")
		}
	}
	assert.Equal(t, []int{0, 1}, got)
}

func TestQueueRejectsWhenNotStarted(t *testing.T) {
	q := NewQueue("exports", func(ctx context.Context, task Task) error { return nil }, QueueConfig{})
	require.Error(t, q.Enqueue(Task{ExportID: "exp-1"}))
}

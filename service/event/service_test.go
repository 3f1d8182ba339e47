package event

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPublisher_PublishConsume(t *testing.T) {
	service := New[string]()
	ctx := context.Background()

	err := service.Publish(ctx, NewEvent[string](&Context{
		RunID:   "run-1",
		Machine: "binary",
		StateID: "a",
		Type:    TypeRunStarted,
	}, "started"))
	assert.Nil(t, err)

	anEvent, err := service.Publisher().Consume(ctx)
	assert.Nil(t, err)
	assert.Equal(t, TypeRunStarted, anEvent.Context.Type)
	assert.Equal(t, "run-1", anEvent.Context.RunID)
	assert.Equal(t, "started", anEvent.Data)
	assert.False(t, anEvent.CreatedAt.IsZero())
}

func TestListener_DispatchAndStop(t *testing.T) {
	service := New[int]()
	ctx := context.Background()

	var mu sync.Mutex
	var seen []int
	service.SetListener(ctx, func(anEvent *Event[int]) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, anEvent.Data)
	})

	for i := 1; i <= 3; i++ {
		assert.Nil(t, service.Publish(ctx, NewEvent[int](&Context{RunID: "run-2", Type: TypeSymbolAccepted}, i)))
	}

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 3
	}, time.Second, 5*time.Millisecond)

	service.Shutdown()
	mu.Lock()
	assert.Equal(t, []int{1, 2, 3}, seen)
	mu.Unlock()
}

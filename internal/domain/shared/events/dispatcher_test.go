package events

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

func TestInMemoryEventDispatcher_DeliversToMatchingHandlers(t *testing.T) {
	d := NewInMemoryEventDispatcher(10, logger.NewNopLogger())

	var mu sync.Mutex
	var got []string

	require.NoError(t, d.Subscribe("case.archived", NewSimpleEventHandler("case.archived", func(e DomainEvent) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e.GetAggregateID())
		return nil
	})))
	require.NoError(t, d.Subscribe("other", NewSimpleEventHandler("other", func(DomainEvent) error {
		return errors.New("must not run")
	})))

	require.NoError(t, d.Start())
	require.NoError(t, d.Publish(NewBaseEvent("CASE-abc123-acme", "case.archived", time.Now())))
	require.NoError(t, d.Stop())

	assert.Equal(t, []string{"CASE-abc123-acme"}, got)
}

func TestInMemoryEventDispatcher_PublishBeforeStart(t *testing.T) {
	d := NewInMemoryEventDispatcher(1, logger.NewNopLogger())
	err := d.Publish(NewBaseEvent("x", "y", time.Now()))
	assert.Error(t, err)
}

func TestInMemoryEventDispatcher_FullBuffer(t *testing.T) {
	d := NewInMemoryEventDispatcher(1, logger.NewNopLogger())
	d.running = true
	require.NoError(t, d.Publish(NewBaseEvent("a", "t", time.Now())))
	assert.Error(t, d.Publish(NewBaseEvent("b", "t", time.Now())))
}

func TestInMemoryEventDispatcher_SubscribeValidation(t *testing.T) {
	d := NewInMemoryEventDispatcher(1, logger.NewNopLogger())
	assert.Error(t, d.Subscribe("", NewSimpleEventHandler("", nil)))
	assert.Error(t, d.Subscribe("t", nil))
}

func TestInMemoryEventDispatcher_HandlerPanicIsContained(t *testing.T) {
	d := NewInMemoryEventDispatcher(4, logger.NewNopLogger())
	require.NoError(t, d.Subscribe("t", NewSimpleEventHandler("t", func(DomainEvent) error {
		panic("handler exploded")
	})))
	require.NoError(t, d.Start())
	require.NoError(t, d.Publish(NewBaseEvent("a", "t", time.Now())))
	assert.NoError(t, d.Stop())
}

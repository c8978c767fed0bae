package goroutine

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

func TestSafeGoWithWaitGroup_RecoversPanic(t *testing.T) {
	var wg sync.WaitGroup
	var ran atomic.Int32

	SafeGoWithWaitGroup(&wg, logger.NewNopLogger(), "panicker", func() {
		ran.Add(1)
		panic("boom")
	})
	SafeGoWithWaitGroup(&wg, logger.NewNopLogger(), "worker", func() {
		ran.Add(1)
	})

	wg.Wait()
	assert.Equal(t, int32(2), ran.Load())
}

func TestSafeGo_Runs(t *testing.T) {
	done := make(chan struct{})
	SafeGo(logger.NewNopLogger(), "worker", func() { close(done) })
	<-done
}

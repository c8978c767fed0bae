// Package goroutine provides utilities for safely launching goroutines with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/hartlaw/hartlaw/internal/shared/logger"
)

// SafeGo launches a goroutine with panic recovery. If the goroutine panics,
// the panic is caught and logged with stack trace instead of crashing the process.
func SafeGo(log logger.Interface, name string, fn func()) {
	go run(log, name, fn)
}

// SafeGoWithWaitGroup is SafeGo tracked by wg, so owners can wait for the work on shutdown.
func SafeGoWithWaitGroup(wg *sync.WaitGroup, log logger.Interface, name string, fn func()) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		run(log, name, fn)
	}()
}

func run(log logger.Interface, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("goroutine panicked",
				"goroutine", name,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
		}
	}()
	fn()
}

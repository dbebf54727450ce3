package recoveryx

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
)

var ErrPanic = errors.New("recovered panic")

// PanicError is returned by Do when fn panicked.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%v: %v", ErrPanic, e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return errors.Join(ErrPanic, err)
	}
	return ErrPanic
}

type PanicHandler func(r any)

var (
	mu                 sync.RWMutex
	buildPanicHandlers []PanicHandler
)

// RegisterPanicHandler adds a handler run for every recovered panic, after
// the per-call handlers.
func RegisterPanicHandler(handler PanicHandler) {
	mu.Lock()
	defer mu.Unlock()
	buildPanicHandlers = append(buildPanicHandlers, handler)
}

func registered() []PanicHandler {
	mu.RLock()
	defer mu.RUnlock()
	return buildPanicHandlers
}

func stack() []byte {
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)
	return buf[:n]
}

func handle(r any, st []byte, handlers []PanicHandler) {
	slog.Error("panic recover", "err", r, "stack", string(st))
	for _, h := range handlers {
		h(r)
	}
	for _, h := range registered() {
		h(r)
	}
}

// Recover is deferred directly: defer recoveryx.Recover().
func Recover() {
	if r := recover(); r != nil {
		handle(r, stack(), nil)
	}
}

// Do runs fn and turns a panic into a *PanicError.
func Do(fn func() error, handlers ...PanicHandler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			st := stack()
			handle(r, st, handlers)
			err = &PanicError{Value: r, Stack: st}
		}
	}()
	return fn()
}

package writer

import (
	"errors"
	"fmt"
	"runtime/debug"
)

var (
	// ErrPanicked is matched by every *PanicError.
	ErrPanicked = errors.New("writer: computation panicked")
)

// PanicError records a panic raised while running a Writer.
//
// When the panic value is an error it can be accessed via errors.Unwrap.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("writer: computation panicked: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Is reports whether target is ErrPanicked.
func (e *PanicError) Is(target error) bool { return target == ErrPanicked }

func newPanicError(v any) *PanicError {
	if pe, ok := v.(*PanicError); ok {
		return pe
	}
	return &PanicError{Value: v, Stack: debug.Stack()}
}

// TryRun runs w like Run, but a panic raised inside the computation is
// recovered and returned as a *PanicError. The returned value and log are
// zero when err is non-nil.
func (w Writer[V, L]) TryRun() (v V, l L, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zv V
			var zl L
			v, l, err = zv, zl, newPanicError(r)
		}
	}()
	v, l = w.Run()
	return v, l, nil
}

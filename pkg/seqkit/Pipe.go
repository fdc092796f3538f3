package seqkit

import (
	"context"
	"sync"
	"sync/atomic"
)

// Pipe returns a feeder and a single use Sequence connected to each other.
// The consumer's Next suspends until the feeder sends a value, reports an error, or closes the pipe.
// This can be used to bridge push based producers, such as callbacks or goroutines, into a Sequence.
func Pipe[T any]() (*PipeIn[T], Sequence[T]) {
	var (
		values  = make(chan T)
		closing = make(chan struct{})
		done    = make(chan struct{})
		errs    = make(chan error, 1)
	)
	in := &PipeIn[T]{values: values, closing: closing, done: done, errs: errs}
	var used int32
	out := SequenceFunc[T](func() Cursor[T] {
		if !atomic.CompareAndSwapInt32(&used, 0, 1) {
			return &ErrorCursor[T]{Err: ErrAlreadyIterated}
		}
		return &PipeOut[T]{values: values, closing: closing, done: done, errs: errs}
	})
	return in, out
}

// PipeIn provides access to feed a pipe receiver with values.
type PipeIn[T any] struct {
	values  chan<- T
	closing chan struct{}
	done    <-chan struct{}
	errs    chan<- error

	closeOnce sync.Once
}

// Value sends a value to the PipeOut side.
// It returns false when the pipe is closed, the receiver stopped listening, or ctx is done.
func (in *PipeIn[T]) Value(ctx context.Context, v T) (ok bool) {
	select {
	case <-in.closing:
		return false
	default:
	}
	select {
	case in.values <- v:
		return true
	case <-in.closing:
		return false
	case <-in.done:
		return false
	case <-ctx.Done():
		return false
	}
}

// Error sends an error to the PipeOut side, which will be the fault of its next Next call.
// Only the first error is kept.
func (in *PipeIn[T]) Error(err error) {
	if err == nil {
		return
	}
	select {
	case in.errs <- err:
	default:
	}
}

// Close notifies the receiver that no more value is expected.
// Value calls after Close report false.
func (in *PipeIn[T]) Close() error {
	in.closeOnce.Do(func() { close(in.closing) })
	return nil
}

// PipeOut is the receiving cursor of a Pipe.
type PipeOut[T any] struct {
	values  <-chan T
	closing <-chan struct{}
	done    chan<- struct{}
	errs    <-chan error

	value     T
	err       error
	closed    bool
	closeOnce sync.Once
}

func (out *PipeOut[T]) Next(ctx context.Context) (bool, error) {
	if out.closed {
		return false, nil
	}
	if out.err != nil {
		return false, out.err
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	select {
	case v := <-out.values:
		out.value = v
		return true, nil
	case <-out.closing:
		select {
		case err := <-out.errs:
			out.err = err
			return false, err
		default:
			return false, nil
		}
	case err := <-out.errs:
		out.err = err
		return false, err
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func (out *PipeOut[T]) Value() T {
	return out.value
}

// Close sends a signal back that no more value should be sent because the receiver stopped listening.
func (out *PipeOut[T]) Close() error {
	out.closed = true
	out.closeOnce.Do(func() { close(out.done) })
	return nil
}

package seqkit

import (
	"context"

	uuid "github.com/satori/go.uuid"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

// Trace passes every element through unchanged, while logging the lifecycle of each cursor.
// Every cursor gets its own id, so interleaved iterations of the same sequence can be told apart.
// Acquire, exhaustion and close are logged on debug level, faults on warn level.
func Trace[T any](src Sequence[T], name string) Sequence[T] {
	if IsNil(src) {
		return Error[T](errNilArg("source"))
	}
	return SequenceFunc[T](func() Cursor[T] {
		c := &traceCursor[T]{
			cursor: src.Iterate(),
			fields: logging.Fields{
				"sequence":  name,
				"cursor_id": uuid.NewV4().String(),
			},
		}
		logger.Debug(context.Background(), "seqkit cursor acquired", c.fields)
		return c
	})
}

type traceCursor[T any] struct {
	cursor Cursor[T]
	fields logging.Fields
	count  int
	closed bool
}

func (c *traceCursor[T]) Next(ctx context.Context) (bool, error) {
	ok, err := c.cursor.Next(ctx)
	switch {
	case err != nil:
		logger.Warn(ctx, "seqkit cursor faulted", c.fields, logging.ErrField(err))
	case ok:
		c.count++
	case !c.closed:
		logger.Debug(ctx, "seqkit cursor exhausted", c.fields, logging.Field("count", c.count))
	}
	return ok, err
}

func (c *traceCursor[T]) Value() T { return c.cursor.Value() }

func (c *traceCursor[T]) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	err := c.cursor.Close()
	if err != nil {
		logger.Warn(context.Background(), "seqkit cursor close failed", c.fields, logging.ErrField(err))
		return err
	}
	logger.Debug(context.Background(), "seqkit cursor closed", c.fields, logging.Field("count", c.count))
	return nil
}

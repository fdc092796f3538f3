package seqkit

import (
	"context"
	"math"
)

// Range returns a Sequence of count integers, starting from start.
// A negative count, or a range that would go past math.MaxInt, is an ErrInvalidArgument.
func Range(start, count int) Sequence[int] {
	if count < 0 {
		return Error[int](errNegativeCount("count", count))
	}
	if 0 < count && math.MaxInt-(count-1) < start {
		return Error[int](ErrInvalidArgument.F("range overflows int: start %d, count %d", start, count))
	}
	return SequenceFunc[int](func() Cursor[int] {
		return &rangeCursor{start: start, count: count}
	})
}

type rangeCursor struct {
	start, count int
	index        int
	value        int
	closed       bool
}

func (c *rangeCursor) Close() error {
	c.closed = true
	return nil
}

func (c *rangeCursor) Next(ctx context.Context) (bool, error) {
	if c.closed {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if c.count <= c.index {
		return false, nil
	}
	c.value = c.start + c.index
	c.index++
	return true, nil
}

func (c *rangeCursor) Value() int { return c.value }

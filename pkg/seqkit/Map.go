package seqkit

import "context"

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
//
// The transform function is evaluated on every Value call,
// so reading Value twice for the same element invokes it twice.
// Use MapE when the transformation is expensive or has side effects.
func Map[To, From any](src Sequence[From], transform func(From) To) Sequence[To] {
	if IsNil(src) {
		return Error[To](errNilArg("source"))
	}
	if transform == nil {
		return Error[To](errNilArg("transform"))
	}
	return SequenceFunc[To](func() Cursor[To] {
		return &MapCursor[To, From]{Cursor: src.Iterate(), Transform: transform}
	})
}

type MapCursor[To, From any] struct {
	Cursor    Cursor[From]
	Transform func(From) To

	closed bool
}

func (c *MapCursor[To, From]) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.Cursor.Close()
}

func (c *MapCursor[To, From]) Next(ctx context.Context) (bool, error) {
	if c.closed {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return c.Cursor.Next(ctx)
}

func (c *MapCursor[To, From]) Value() To {
	return c.Transform(c.Cursor.Value())
}

// MapE is the asynchronous variant of Map.
// The transform function receives the context of Next, it runs once per element,
// and its result is buffered until the next Next call.
// An error from transform becomes the fault of Next.
func MapE[To, From any](src Sequence[From], transform func(context.Context, From) (To, error)) Sequence[To] {
	if IsNil(src) {
		return Error[To](errNilArg("source"))
	}
	if transform == nil {
		return Error[To](errNilArg("transform"))
	}
	return SequenceFunc[To](func() Cursor[To] {
		return &mapECursor[To, From]{cursor: src.Iterate(), transform: transform}
	})
}

type mapECursor[To, From any] struct {
	cursor    Cursor[From]
	transform func(context.Context, From) (To, error)

	value  To
	closed bool
}

func (c *mapECursor[To, From]) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.cursor.Close()
}

func (c *mapECursor[To, From]) Next(ctx context.Context) (bool, error) {
	if c.closed {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	ok, err := c.cursor.Next(ctx)
	if err != nil || !ok {
		return false, err
	}
	v, err := c.transform(ctx, c.cursor.Value())
	if err != nil {
		return false, err
	}
	c.value = v
	return true, nil
}

func (c *mapECursor[To, From]) Value() To { return c.value }

package seqkit

import "context"

// NewMock wraps a Cursor, so its methods can be stubbed and its calls counted.
func NewMock[T any](c Cursor[T]) *Mock[T] {
	return &Mock[T]{
		Cursor:    c,
		StubNext:  c.Next,
		StubValue: c.Value,
		StubClose: c.Close,
	}
}

type Mock[T any] struct {
	Cursor    Cursor[T]
	StubNext  func(context.Context) (bool, error)
	StubValue func() T
	StubClose func() error

	NextCalls  int
	CloseCalls int
}

// wrapper

func (m *Mock[T]) Next(ctx context.Context) (bool, error) {
	m.NextCalls++
	return m.StubNext(ctx)
}

func (m *Mock[T]) Value() T {
	return m.StubValue()
}

func (m *Mock[T]) Close() error {
	m.CloseCalls++
	return m.StubClose()
}

// Reseting stubs

func (m *Mock[T]) ResetNext() {
	m.StubNext = m.Cursor.Next
}

func (m *Mock[T]) ResetValue() {
	m.StubValue = m.Cursor.Value
}

func (m *Mock[T]) ResetClose() {
	m.StubClose = m.Cursor.Close
}

// MockSequence hands out a new Mock for every Iterate call, wrapping the cursors of Sequence.
// Configure is applied to every Mock before it is returned.
type MockSequence[T any] struct {
	Sequence  Sequence[T]
	Configure func(*Mock[T])

	Mocks []*Mock[T]
}

func (ms *MockSequence[T]) Iterate() Cursor[T] {
	m := NewMock(ms.Sequence.Iterate())
	if ms.Configure != nil {
		ms.Configure(m)
	}
	ms.Mocks = append(ms.Mocks, m)
	return m
}

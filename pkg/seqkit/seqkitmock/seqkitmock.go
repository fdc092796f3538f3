// Package seqkitmock provides gomock based mocks for seqkit.Sequence and seqkit.Cursor.
//
// The mocks follow the layout of mockgen output,
// but they are generic, so a single mock serves every element type.
package seqkitmock

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"go.llib.dev/asyncseq/pkg/seqkit"
)

var (
	_ seqkit.Cursor[int]   = (*MockCursor[int])(nil)
	_ seqkit.Sequence[int] = (*MockSequence[int])(nil)
)

// MockCursor is a mock of the seqkit.Cursor interface.
type MockCursor[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockCursorMockRecorder[T]
}

// MockCursorMockRecorder is the mock recorder for MockCursor.
type MockCursorMockRecorder[T any] struct {
	mock *MockCursor[T]
}

// NewMockCursor creates a new mock instance.
func NewMockCursor[T any](ctrl *gomock.Controller) *MockCursor[T] {
	mock := &MockCursor[T]{ctrl: ctrl}
	mock.recorder = &MockCursorMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCursor[T]) EXPECT() *MockCursorMockRecorder[T] {
	return m.recorder
}

// Next mocks base method.
func (m *MockCursor[T]) Next(ctx context.Context) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Next", ctx)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Next indicates an expected call of Next.
func (mr *MockCursorMockRecorder[T]) Next(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Next", reflect.TypeOf((*MockCursor[T])(nil).Next), ctx)
}

// Value mocks base method.
func (m *MockCursor[T]) Value() T {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Value")
	ret0, _ := ret[0].(T)
	return ret0
}

// Value indicates an expected call of Value.
func (mr *MockCursorMockRecorder[T]) Value() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Value", reflect.TypeOf((*MockCursor[T])(nil).Value))
}

// Close mocks base method.
func (m *MockCursor[T]) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

// Close indicates an expected call of Close.
func (mr *MockCursorMockRecorder[T]) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockCursor[T])(nil).Close))
}

// MockSequence is a mock of the seqkit.Sequence interface.
type MockSequence[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockSequenceMockRecorder[T]
}

// MockSequenceMockRecorder is the mock recorder for MockSequence.
type MockSequenceMockRecorder[T any] struct {
	mock *MockSequence[T]
}

// NewMockSequence creates a new mock instance.
func NewMockSequence[T any](ctrl *gomock.Controller) *MockSequence[T] {
	mock := &MockSequence[T]{ctrl: ctrl}
	mock.recorder = &MockSequenceMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSequence[T]) EXPECT() *MockSequenceMockRecorder[T] {
	return m.recorder
}

// Iterate mocks base method.
func (m *MockSequence[T]) Iterate() seqkit.Cursor[T] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Iterate")
	ret0, _ := ret[0].(seqkit.Cursor[T])
	return ret0
}

// Iterate indicates an expected call of Iterate.
func (mr *MockSequenceMockRecorder[T]) Iterate() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Iterate", reflect.TypeOf((*MockSequence[T])(nil).Iterate))
}

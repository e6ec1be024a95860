package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine_Nil(t *testing.T) {
	assert.Nil(t, Combine(nil, nil))

	err := New("boom")
	assert.Equal(t, err, Combine(err, nil))
	assert.Equal(t, err, Combine(nil, err))
}

func TestCombine_Flattens(t *testing.T) {
	a, b, c := New("a"), New("b"), New("c")

	err := Combine(Combine(a, b), c)
	require.Error(t, err)

	m, ok := err.(multi)
	require.True(t, ok)
	assert.Len(t, m.Slice(), 3)
	assert.Equal(t, "a\nb\nc", err.Error())
}

func TestDefer(t *testing.T) {
	var err error
	func() {
		defer Defer(&err, func() error { return New("close failed") })
	}()
	require.Error(t, err)
	assert.Equal(t, "close failed", err.Error())
}

func TestWrapf(t *testing.T) {
	assert.EqualError(t, Wrapf(nil, "context %d", 1), "context 1")
	assert.EqualError(t, Wrapf(New("inner"), "outer"), "outer: inner")
	assert.Nil(t, WrapfOrNil(nil, "unused"))
}

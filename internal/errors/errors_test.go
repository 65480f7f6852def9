package errors

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	sentinel := New("feed fetch failed")

	err := Wrap(Mark(io.ErrUnexpectedEOF, sentinel), "area Uppland")

	assert.True(t, Is(err, sentinel))
	assert.True(t, Is(err, io.ErrUnexpectedEOF))
	assert.Equal(t, "area Uppland: feed fetch failed: unexpected EOF", err.Error())
}

func TestMark_NilCause(t *testing.T) {
	assert.NoError(t, Mark(nil, New("x")))
}

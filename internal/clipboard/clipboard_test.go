package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopy_Memory(t *testing.T) {
	m := &Memory{}
	require.NoError(t, Copy(m, "hello"))
	assert.Equal(t, "hello", m.Text())
}

func TestCopy_Failure(t *testing.T) {
	boom := errors.New("no display")
	m := &Memory{Err: boom}

	err := Copy(m, "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, m.Text())
}

func TestCopy_NilWriter(t *testing.T) {
	assert.ErrorIs(t, Copy(nil, "x"), ErrUnsupported)
}

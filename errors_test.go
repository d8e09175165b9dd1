package writer

import (
	"errors"
	"io"
	"testing"

	"github.com/hupe1980/writer/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryRun(t *testing.T) {
	t.Run("NoPanic", func(t *testing.T) {
		v, l, err := Chain(halve(16), halve).TryRun()

		require.NoError(t, err)
		assert.Equal(t, 4, v)
		assert.Len(t, l, 2)
	})

	t.Run("PanicValue", func(t *testing.T) {
		w := Map(halve(16), func(int) int { panic("boom") })

		v, l, err := w.TryRun()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPanicked)
		assert.Equal(t, 0, v)
		assert.Nil(t, l)

		var pe *PanicError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "boom", pe.Value)
		assert.NotEmpty(t, pe.Stack)
		assert.Nil(t, pe.Unwrap())
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("PanicError", func(t *testing.T) {
		w := Chain(Of(1, testutil.Sum(0)), func(int) Writer[int, testutil.Sum] {
			panic(io.ErrUnexpectedEOF)
		})

		_, _, err := w.TryRun()
		assert.ErrorIs(t, err, ErrPanicked)
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}

func TestRunPropagatesPanic(t *testing.T) {
	w := Map(Of(1, testutil.Sum(0)), func(int) int { panic("boom") })

	assert.PanicsWithValue(t, "boom", func() { w.Run() })
}

func TestPanicErrorIs(t *testing.T) {
	pe := &PanicError{Value: "x"}

	assert.True(t, errors.Is(pe, ErrPanicked))
	assert.False(t, errors.Is(pe, io.EOF))
}

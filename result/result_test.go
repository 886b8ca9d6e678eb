package result_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcoll/result"
)

func TestResult_Tags(t *testing.T) {
	t.Run("ok result", func(t *testing.T) {
		r := result.Ok(42)
		assert.True(t, r.IsOk())
		assert.False(t, r.IsErr())
		assert.NoError(t, r.Err())
	})

	t.Run("err result", func(t *testing.T) {
		r := result.Err[int]("boom")
		assert.False(t, r.IsOk())
		assert.True(t, r.IsErr())
		require.Error(t, r.Err())
		assert.Equal(t, "boom", r.Err().Error())
	})

	t.Run("zero value is ok of zero", func(t *testing.T) {
		var r result.Result[string]
		assert.True(t, r.IsOk())
		assert.Equal(t, "", r.Unwrap())
	})
}

func TestResult_Unwrap(t *testing.T) {
	t.Run("returns the value on ok", func(t *testing.T) {
		assert.Equal(t, "hello", result.Ok("hello").Unwrap())
	})

	t.Run("panics with ErrUnwrapOnErr on err", func(t *testing.T) {
		r := result.Err[string]("x")
		defer func() {
			rec := recover()
			require.NotNil(t, rec, "Unwrap on Err must panic")
			err, ok := rec.(error)
			require.True(t, ok, "panic value must be an error")
			assert.ErrorIs(t, err, result.ErrUnwrapOnErr)
			assert.Contains(t, err.Error(), "x", "panic must carry the stored message")
		}()
		_ = r.Unwrap()
	})
}

func TestResult_UnwrapOr(t *testing.T) {
	assert.Equal(t, 7, result.Ok(7).UnwrapOr(0))
	assert.Equal(t, 0, result.Err[int]("nope").UnwrapOr(0))
}

func TestResult_UnwrapOrElse(t *testing.T) {
	t.Run("ok skips the fallback", func(t *testing.T) {
		called := false
		got := result.Ok(3).UnwrapOrElse(func(error) int {
			called = true
			return -1
		})
		assert.Equal(t, 3, got)
		assert.False(t, called)
	})

	t.Run("err invokes the fallback with the stored error", func(t *testing.T) {
		got := result.Err[int]("bad input").UnwrapOrElse(func(err error) int {
			assert.Equal(t, "bad input", err.Error())
			return -1
		})
		assert.Equal(t, -1, got)
	})
}

func TestResult_MapShortCircuit(t *testing.T) {
	t.Run("map on ok applies the function", func(t *testing.T) {
		r := result.Ok(5).Map(func(v int) int { return v * 2 })
		require.True(t, r.IsOk())
		assert.Equal(t, 10, r.Unwrap())
	})

	t.Run("map on err never invokes f and keeps the error", func(t *testing.T) {
		invoked := false
		orig := result.Err[int]("x")
		got := orig.Map(func(v int) int {
			invoked = true
			return v
		})

		assert.False(t, invoked, "f must not run on an Err result")
		require.True(t, got.IsErr())
		assert.Equal(t, "x", got.Err().Error())
		// The propagated error is the very same value, untouched.
		assert.Same(t, orig.Err(), got.Err())
	})

	t.Run("maps chain until the first err", func(t *testing.T) {
		steps := 0
		double := func(v int) int { steps++; return v * 2 }

		r := result.Ok(1).Map(double).Map(double)
		assert.Equal(t, 4, r.Unwrap())
		assert.Equal(t, 2, steps)
	})
}

func TestResult_PackageLevelMap(t *testing.T) {
	t.Run("converts the value type on ok", func(t *testing.T) {
		r := result.Map(result.Ok(21), func(v int) string {
			if v > 20 {
				return "big"
			}
			return "small"
		})
		require.True(t, r.IsOk())
		assert.Equal(t, "big", r.Unwrap())
	})

	t.Run("carries the error across the type change", func(t *testing.T) {
		invoked := false
		r := result.Map(result.Err[int]("x"), func(int) string {
			invoked = true
			return ""
		})
		assert.False(t, invoked)
		require.True(t, r.IsErr())
		assert.Equal(t, "x", r.Err().Error())
	})
}

func TestResult_Bridges(t *testing.T) {
	t.Run("from nil error is ok", func(t *testing.T) {
		r := result.From(9, nil)
		require.True(t, r.IsOk())
		assert.Equal(t, 9, r.Unwrap())
	})

	t.Run("from non-nil error keeps the error value", func(t *testing.T) {
		sentinel := errors.New("io failed")
		r := result.From(0, sentinel)
		require.True(t, r.IsErr())
		assert.ErrorIs(t, r.Err(), sentinel)
	})

	t.Run("get returns the stored pair", func(t *testing.T) {
		v, err := result.Ok("v").Get()
		assert.NoError(t, err)
		assert.Equal(t, "v", v)

		_, err = result.Err[string]("gone").Get()
		require.Error(t, err)
	})

	t.Run("errf wraps for errors.Is", func(t *testing.T) {
		sentinel := errors.New("root cause")
		r := result.Errf[int]("loading config: %w", sentinel)
		assert.ErrorIs(t, r.Err(), sentinel)
	})
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "Ok(5)", result.Ok(5).String())
	assert.Equal(t, "Err(boom)", result.Err[int]("boom").String())
}

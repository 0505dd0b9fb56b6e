package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkInvariants asserts the structural invariants every live vector must
// satisfy after every successful operation.
func checkInvariants(t *testing.T, v *Vector) {
	t.Helper()
	require.NoError(t, v.validate())
	assert.LessOrEqual(t, v.length, v.capacity)
	assert.GreaterOrEqual(t, v.capacity, MinCapacity)
	assert.LessOrEqual(t, v.capacity, MaxCapacity)
	assert.Len(t, v.buf, v.capacity*v.elemSize)
}

// pushN appends n distinct 4-byte elements.
func pushN(t *testing.T, v *Vector, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, v.Push([]byte{byte(i), byte(i >> 8), 0, 0}))
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		elemSize int
		hint     int
		wantCap  int
	}{
		{"default hint", 4, 0, MinCapacity},
		{"hint below floor", 4, 8, MinCapacity},
		{"hint above floor", 4, 100, 100},
		{"one byte elements", 1, 0, MinCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := New(tt.elemSize, tt.hint)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCap, v.capacity)
			assert.Equal(t, 0, v.length)
			assert.Equal(t, tt.elemSize, v.elemSize)
			checkInvariants(t, v)
		})
	}

	t.Run("rejects zero element size", func(t *testing.T) {
		_, err := New(0, 10)
		assert.ErrorIs(t, err, ErrInvalidSize)
		assert.ErrorIs(t, err, ErrInvalidOperation)
	})

	t.Run("rejects oversized elements", func(t *testing.T) {
		_, err := New(MaxElemSize+1, 0)
		assert.ErrorIs(t, err, ErrInvalidSize)
	})

	t.Run("rejects hint above ceiling", func(t *testing.T) {
		_, err := New(4, MaxCapacity+1)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestGrowthTrigger(t *testing.T) {
	v, err := New(4, 0)
	require.NoError(t, err)
	require.Equal(t, MinCapacity, v.capacity)

	pushN(t, v, 16)
	assert.Equal(t, 16, v.capacity, "pushes up to capacity must not grow")

	pushN(t, v, 1)
	assert.Equal(t, 32, v.capacity, "17th push must double the capacity once")
	assert.Equal(t, 17, v.length)
	checkInvariants(t, v)
}

func TestShrinkTrigger(t *testing.T) {
	t.Run("quarter full shrinks on next pop", func(t *testing.T) {
		v, err := New(4, 64)
		require.NoError(t, err)
		pushN(t, v, 16)
		require.Equal(t, 64, v.capacity)

		require.NoError(t, v.Pop(nil))
		assert.Equal(t, 32, v.capacity)
		assert.Equal(t, 15, v.length)
		checkInvariants(t, v)
	})

	t.Run("above quarter full does not shrink", func(t *testing.T) {
		v, err := New(4, 64)
		require.NoError(t, err)
		pushN(t, v, 17)

		require.NoError(t, v.Pop(nil))
		assert.Equal(t, 64, v.capacity)
		assert.Equal(t, 16, v.length)
	})

	t.Run("never shrinks below the floor", func(t *testing.T) {
		v, err := New(4, 0)
		require.NoError(t, err)
		pushN(t, v, 2)
		require.NoError(t, v.Pop(nil))
		require.NoError(t, v.Pop(nil))
		assert.Equal(t, MinCapacity, v.capacity)
	})

	t.Run("disabled shrink keeps capacity", func(t *testing.T) {
		v, err := New(4, 64, WithShrinkDisabled())
		require.NoError(t, err)
		pushN(t, v, 16)

		require.NoError(t, v.Pop(nil))
		assert.Equal(t, 64, v.capacity)
		checkInvariants(t, v)
	})
}

func TestResize(t *testing.T) {
	t.Run("exact reallocation", func(t *testing.T) {
		v, err := New(4, 0)
		require.NoError(t, err)
		require.NoError(t, v.Resize(100))
		assert.Equal(t, 100, v.capacity)
		checkInvariants(t, v)
	})

	t.Run("shrinking below length truncates", func(t *testing.T) {
		v, err := New(4, 0)
		require.NoError(t, err)
		pushN(t, v, 30)
		require.NoError(t, v.Resize(20))
		assert.Equal(t, 20, v.capacity)
		assert.Equal(t, 20, v.length)
		checkInvariants(t, v)
	})

	t.Run("rejects out-of-range capacity", func(t *testing.T) {
		v, err := New(4, 0)
		require.NoError(t, err)
		assert.ErrorIs(t, v.Resize(MinCapacity), ErrInvalidRange)
		assert.ErrorIs(t, v.Resize(0), ErrInvalidRange)
		assert.ErrorIs(t, v.Resize(MaxCapacity+1), ErrInvalidRange)
		assert.Equal(t, MinCapacity, v.capacity, "failed resize must not mutate")
	})
}

func TestShrinkToFit(t *testing.T) {
	t.Run("reallocates to length", func(t *testing.T) {
		v, err := New(4, 64)
		require.NoError(t, err)
		pushN(t, v, 20)
		require.NoError(t, v.ShrinkToFit())
		assert.Equal(t, 20, v.capacity)
		checkInvariants(t, v)
	})

	t.Run("floors at minimum capacity", func(t *testing.T) {
		v, err := New(4, 64)
		require.NoError(t, err)
		pushN(t, v, 5)
		require.NoError(t, v.ShrinkToFit())
		assert.Equal(t, MinCapacity, v.capacity)
		assert.Equal(t, 5, v.length)
	})

	t.Run("rejects empty vector", func(t *testing.T) {
		v, err := New(4, 0)
		require.NoError(t, err)
		assert.ErrorIs(t, v.ShrinkToFit(), ErrEmptyVector)
	})
}

func TestClear(t *testing.T) {
	t.Run("releases excess storage", func(t *testing.T) {
		v, err := New(4, 64)
		require.NoError(t, err)
		pushN(t, v, 40)
		require.NoError(t, v.Clear())
		assert.Equal(t, 0, v.length)
		assert.Equal(t, MinCapacity, v.capacity)
		checkInvariants(t, v)
	})

	t.Run("at the floor only resets length", func(t *testing.T) {
		v, err := New(4, 0)
		require.NoError(t, err)
		pushN(t, v, 10)
		require.NoError(t, v.Clear())
		assert.Equal(t, 0, v.length)
		assert.Equal(t, MinCapacity, v.capacity)
	})
}

func TestClone(t *testing.T) {
	t.Run("copies contents with independent storage", func(t *testing.T) {
		src, err := New(4, 0)
		require.NoError(t, err)
		pushN(t, src, 20)

		dst, err := src.Clone()
		require.NoError(t, err)
		assert.Equal(t, src.length, dst.length)
		assert.Equal(t, 20, dst.capacity, "clone capacity equals source length")

		got := make([]byte, 4)
		want := make([]byte, 4)
		for i := 0; i < src.length; i++ {
			require.NoError(t, src.Get(i, want))
			require.NoError(t, dst.Get(i, got))
			assert.Equal(t, want, got)
		}

		// Mutating the clone must not touch the source.
		require.NoError(t, dst.Set(0, []byte{0xff, 0xff, 0xff, 0xff}))
		require.NoError(t, src.Get(0, got))
		assert.NotEqual(t, []byte{0xff, 0xff, 0xff, 0xff}, got)
	})

	t.Run("empty source clones at the floor", func(t *testing.T) {
		src, err := New(4, 0)
		require.NoError(t, err)
		dst, err := src.Clone()
		require.NoError(t, err)
		assert.Equal(t, 0, dst.length)
		assert.Equal(t, MinCapacity, dst.capacity)
	})
}

func TestCloneInto(t *testing.T) {
	t.Run("reuses destination storage when it fits", func(t *testing.T) {
		src, err := New(4, 0)
		require.NoError(t, err)
		pushN(t, src, 10)
		dst, err := New(4, 32)
		require.NoError(t, err)

		require.NoError(t, src.CloneInto(dst))
		assert.Equal(t, 10, dst.length)
		assert.Equal(t, 32, dst.capacity, "sufficient capacity must not reallocate")
	})

	t.Run("reallocates a small destination", func(t *testing.T) {
		src, err := New(4, 64)
		require.NoError(t, err)
		pushN(t, src, 50)
		dst, err := New(4, 0)
		require.NoError(t, err)

		require.NoError(t, src.CloneInto(dst))
		assert.Equal(t, 50, dst.length)
		assert.Equal(t, 50, dst.capacity)
		checkInvariants(t, dst)
	})

	t.Run("rejects element size mismatch", func(t *testing.T) {
		src, err := New(4, 0)
		require.NoError(t, err)
		dst, err := New(8, 0)
		require.NoError(t, err)
		assert.ErrorIs(t, src.CloneInto(dst), ErrSizeMismatch)
	})

	t.Run("rejects cloning onto itself", func(t *testing.T) {
		v, err := New(4, 0)
		require.NoError(t, err)
		assert.ErrorIs(t, v.CloneInto(v), ErrSameVector)
	})
}

func TestDestroy(t *testing.T) {
	v, err := New(4, 0)
	require.NoError(t, err)
	pushN(t, v, 3)

	require.NoError(t, v.Destroy())

	t.Run("second destroy is rejected", func(t *testing.T) {
		assert.ErrorIs(t, v.Destroy(), ErrInvalidHandle)
	})

	t.Run("operations after destroy are rejected", func(t *testing.T) {
		assert.ErrorIs(t, v.Push([]byte{1, 2, 3, 4}), ErrInvalidHandle)
		assert.ErrorIs(t, v.Pop(nil), ErrInvalidHandle)
		_, err := v.Len()
		assert.ErrorIs(t, err, ErrInvalidHandle)
	})
}

func TestValidate(t *testing.T) {
	t.Run("nil vector", func(t *testing.T) {
		var v *Vector
		assert.ErrorIs(t, v.Push([]byte{1}), ErrNilReference)
		_, err := v.Len()
		assert.ErrorIs(t, err, ErrNilReference)
	})

	t.Run("foreign memory", func(t *testing.T) {
		v := &Vector{tag: 0xdeadbeef, capacity: 16, elemSize: 4}
		assert.ErrorIs(t, v.validate(), ErrInvalidHandle)
	})

	t.Run("missing storage", func(t *testing.T) {
		v := &Vector{tag: liveTag, capacity: 16, elemSize: 4}
		assert.ErrorIs(t, v.validate(), ErrInvalidHandle)
	})
}

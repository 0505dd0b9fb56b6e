package vec

import (
	"math"

	"go.uber.org/zap"
)

// Capacity and element size limits for every vector.
const (
	// MinCapacity is the floor below which a live vector's capacity never
	// drops, regardless of its length.
	MinCapacity = 16
	// MaxCapacity is the ceiling above which no vector grows.
	MaxCapacity = math.MaxInt / 2

	// MinElemSize and MaxElemSize bound the per-element byte size accepted
	// by New.
	MinElemSize = 1
	MaxElemSize = 1 << 20
)

// Resizing policy: grow by doubling when full, shrink by halving when at most
// a quarter full. The asymmetric thresholds keep repeated push/pop pairs near
// a capacity boundary from thrashing the allocator.
const (
	growthPolicy = 1
	growthFactor = 2
	shrinkPolicy = 4
	shrinkFactor = 2
)

// liveTag marks a block of memory as a genuine, still-live vector handle.
// Destroy clears it so use-after-destroy is detected instead of undefined.
const liveTag uint32 = 0x7665635f // "vec_"

// Vector is a growable container of fixed-size opaque elements.
// Not goroutine-safe; callers needing concurrent access must serialize
// externally around the whole handle.
type Vector struct {
	tag      uint32
	buf      []byte // capacity*elemSize bytes; bytes past length*elemSize are unspecified
	length   int
	capacity int
	elemSize int
	noShrink bool
	logger   *zap.Logger
}

// New creates a vector holding elements of elemSize bytes each, with capacity
// for max(capacityHint, MinCapacity) elements and length zero.
func New(elemSize, capacityHint int, opts ...Option) (*Vector, error) {
	if elemSize < MinElemSize || elemSize > MaxElemSize {
		return nil, ErrInvalidSize
	}
	capacity := capacityHint
	if capacity < MinCapacity {
		capacity = MinCapacity
	}
	if capacity > MaxCapacity {
		return nil, ErrInvalidRange
	}
	size, ok := byteSize(capacity, elemSize)
	if !ok {
		return nil, ErrOutOfMemory
	}
	v := &Vector{
		tag:      liveTag,
		buf:      make([]byte, size),
		capacity: capacity,
		elemSize: elemSize,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// validate confirms the handle is live and well-formed. Every exported
// operation runs it before touching any state.
func (v *Vector) validate() error {
	if v == nil {
		return ErrNilReference
	}
	if v.tag != liveTag || (v.capacity > 0 && v.buf == nil) {
		return ErrInvalidHandle
	}
	return nil
}

// byteSize returns capacity*elemSize, reporting false when the product would
// overflow int.
func byteSize(capacity, elemSize int) (int, bool) {
	if capacity > 0 && elemSize > math.MaxInt/capacity {
		return 0, false
	}
	return capacity * elemSize, true
}

// reallocate swaps in a fresh buffer sized for exactly capacity elements,
// preserving the first min(length, capacity) elements byte for byte. When
// capacity is below the current length, length is clamped down to it. On
// failure the vector is unchanged.
func (v *Vector) reallocate(capacity int) error {
	size, ok := byteSize(capacity, v.elemSize)
	if !ok {
		return ErrOutOfMemory
	}
	buf := make([]byte, size)
	keep := v.length
	if capacity < keep {
		keep = capacity
	}
	copy(buf, v.buf[:keep*v.elemSize])
	v.buf = buf
	v.capacity = capacity
	v.length = keep
	return nil
}

// checkGrow doubles the capacity once the vector is full. Called by every
// operation that may raise length before it writes.
func (v *Vector) checkGrow() error {
	if v.length < v.capacity*growthPolicy {
		return nil
	}
	if v.capacity > MaxCapacity/growthFactor {
		return ErrCapacityExceeded
	}
	capacity := v.capacity * growthFactor
	if capacity < MinCapacity {
		capacity = MinCapacity
	}
	if err := v.reallocate(capacity); err != nil {
		return err
	}
	v.logger.Debug("vector grown",
		zap.Int("len", v.length),
		zap.Int("cap", v.capacity))
	return nil
}

// checkShrink halves the capacity once the vector is less than a quarter
// full, never dropping below MinCapacity. Called by every operation that may
// lower length, after the effect. Disabled by WithShrinkDisabled.
func (v *Vector) checkShrink() error {
	if v.noShrink {
		return nil
	}
	if v.length >= v.capacity/shrinkPolicy || v.capacity <= MinCapacity {
		return nil
	}
	capacity := v.capacity / shrinkFactor
	if capacity < MinCapacity {
		capacity = MinCapacity
	}
	if capacity < v.length {
		// Unreachable unless the policy constants are inconsistent.
		panic("vec: shrink target below length")
	}
	if err := v.reallocate(capacity); err != nil {
		return err
	}
	v.logger.Debug("vector shrunk",
		zap.Int("len", v.length),
		zap.Int("cap", v.capacity))
	return nil
}

// Resize reallocates the vector to hold exactly capacity elements. The
// capacity must be above MinCapacity and at most MaxCapacity. Shrinking below
// the current length truncates the vector to capacity elements.
func (v *Vector) Resize(capacity int) error {
	if err := v.validate(); err != nil {
		return err
	}
	if capacity <= MinCapacity || capacity > MaxCapacity {
		return ErrInvalidRange
	}
	return v.reallocate(capacity)
}

// ShrinkToFit reallocates the vector down to exactly its current length,
// floored at MinCapacity. No-op when the capacity already matches.
func (v *Vector) ShrinkToFit() error {
	if err := v.validate(); err != nil {
		return err
	}
	if v.length == 0 {
		return ErrEmptyVector
	}
	capacity := v.length
	if capacity < MinCapacity {
		capacity = MinCapacity
	}
	if capacity == v.capacity {
		return nil
	}
	return v.reallocate(capacity)
}

// Clear resets the length to zero and releases excess storage, bringing the
// capacity back down to MinCapacity when it was above the floor.
func (v *Vector) Clear() error {
	if err := v.validate(); err != nil {
		return err
	}
	v.length = 0
	if v.capacity > MinCapacity {
		return v.reallocate(MinCapacity)
	}
	return nil
}

// Clone returns a new vector holding a copy of v's elements. The clone's
// capacity is v's length, floored at MinCapacity, and its storage is fully
// independent of v's.
func (v *Vector) Clone() (*Vector, error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	capacity := v.length
	if capacity < MinCapacity {
		capacity = MinCapacity
	}
	dst := &Vector{
		tag:      liveTag,
		buf:      make([]byte, capacity*v.elemSize),
		length:   v.length,
		capacity: capacity,
		elemSize: v.elemSize,
		noShrink: v.noShrink,
		logger:   v.logger,
	}
	copy(dst.buf, v.buf[:v.length*v.elemSize])
	return dst, nil
}

// CloneInto copies all of v's elements into dst, replacing dst's contents.
// dst must hold elements of the same size and must not be v itself. dst's
// storage is reused when its capacity suffices; otherwise it is reallocated
// to v's length (floored at MinCapacity).
func (v *Vector) CloneInto(dst *Vector) error {
	if err := v.validate(); err != nil {
		return err
	}
	if err := dst.validate(); err != nil {
		return err
	}
	if dst == v {
		return ErrSameVector
	}
	if dst.elemSize != v.elemSize {
		return ErrSizeMismatch
	}
	if dst.capacity < v.length {
		dst.length = 0
		if err := dst.reallocate(v.length); err != nil {
			return err
		}
	}
	copy(dst.buf, v.buf[:v.length*v.elemSize])
	dst.length = v.length
	return nil
}

// Destroy releases the vector's storage and invalidates the handle. Any
// later operation on it, including a second Destroy, fails with
// ErrInvalidHandle.
func (v *Vector) Destroy() error {
	if err := v.validate(); err != nil {
		return err
	}
	v.tag = 0
	v.buf = nil
	v.length = 0
	v.capacity = 0
	return nil
}

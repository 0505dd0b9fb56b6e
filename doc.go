// Package vec implements a growable contiguous container ("vector") for
// elements of a fixed, caller-chosen byte size.
//
// # Overview
//
// A vector owns a single contiguous buffer of capacity*elemSize bytes and
// tracks how many elements are logically present. Elements are opaque byte
// blocks: the container never interprets them. All operations have value
// semantics - bytes are copied in and out - because the buffer may be
// relocated by any operation that changes capacity. This is useful for:
//
//   - Homogeneous collections of fixed-width records
//   - Binary protocol and file-format element tables
//   - Workloads that need explicit control over capacity and memory release
//
// # Basic Usage
//
//	v, err := vec.New(4, 0) // 4-byte elements, default capacity
//	if err != nil {
//		// handle error
//	}
//	defer v.Destroy()
//
//	err = v.Push([]byte{1, 2, 3, 4})
//
//	out := make([]byte, 4)
//	err = v.Get(0, out)
//
// Or through the typed front-end, which derives the element size from the
// type:
//
//	v, err := vec.NewOf[uint64](0)
//	err = vec.PushOf(v, uint64(42))
//	val, err := vec.GetOf[uint64](v, 0)
//
// # Resizing Policy
//
// Capacity starts at max(hint, MinCapacity) and changes automatically:
// a write that finds the vector full doubles the capacity, and a removal
// that leaves it less than a quarter full halves it, never below
// MinCapacity. The asymmetric thresholds give amortized O(1) push/pop
// without thrashing near a boundary. Automatic shrinking can be disabled
// per vector with WithShrinkDisabled.
//
// # Error Handling
//
// Every operation returns an explicit error and never partially mutates the
// vector on failure. Errors wrap a small set of kinds (ErrIndexOutOfBounds,
// ErrInvalidOperation, ...) matchable with errors.Is. Destroy invalidates
// the handle, so use-after-destroy is reported as ErrInvalidHandle rather
// than being undefined.
//
// # Thread Safety
//
// Vectors are not goroutine-safe and provide no internal locking. Callers
// needing concurrent access must serialize externally around the whole
// handle.
package vec

package vec

import "unsafe"

// Typed front-end over the byte-level operations. The element size is derived
// from unsafe.Sizeof(T) and value bytes move through the same copy-in/copy-out
// paths as the []byte surface, so a vector created with NewOf can also be used
// through the raw operations and vice versa.
//
// T must not contain pointers: the vector stores raw bytes, which the garbage
// collector does not scan.

func sizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// valueBytes reinterprets val's storage as a byte slice without copying.
func valueBytes[T any](val *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(val)), unsafe.Sizeof(*val))
}

// checkType verifies the vector is live and holds elements of T's size.
func checkType[T any](v *Vector) error {
	if err := v.validate(); err != nil {
		return err
	}
	if want := sizeOf[T](); v.elemSize != want {
		return errValueSize(want, v.elemSize)
	}
	return nil
}

// NewOf creates a vector holding elements of type T.
func NewOf[T any](capacityHint int, opts ...Option) (*Vector, error) {
	return New(sizeOf[T](), capacityHint, opts...)
}

// PushOf appends val at the end of the vector.
func PushOf[T any](v *Vector, val T) error {
	if err := checkType[T](v); err != nil {
		return err
	}
	return v.Push(valueBytes(&val))
}

// PopOf removes and returns the last element.
func PopOf[T any](v *Vector) (T, error) {
	var out T
	if err := checkType[T](v); err != nil {
		return out, err
	}
	err := v.Pop(valueBytes(&out))
	return out, err
}

// GetOf returns a copy of the element at idx.
func GetOf[T any](v *Vector, idx int) (T, error) {
	var out T
	if err := checkType[T](v); err != nil {
		return out, err
	}
	err := v.Get(idx, valueBytes(&out))
	return out, err
}

// SetOf overwrites the element at idx with val.
func SetOf[T any](v *Vector, idx int, val T) error {
	if err := checkType[T](v); err != nil {
		return err
	}
	return v.Set(idx, valueBytes(&val))
}

// InsertOf writes val at position idx, shifting later elements right.
func InsertOf[T any](v *Vector, idx int, val T) error {
	if err := checkType[T](v); err != nil {
		return err
	}
	return v.Insert(idx, valueBytes(&val))
}

// RemoveOf deletes and returns the element at idx, shifting later elements
// left.
func RemoveOf[T any](v *Vector, idx int) (T, error) {
	var out T
	if err := checkType[T](v); err != nil {
		return out, err
	}
	err := v.Remove(idx, valueBytes(&out))
	return out, err
}

// FillOf writes val into positions [0, n).
func FillOf[T any](v *Vector, val T, n int) error {
	if err := checkType[T](v); err != nil {
		return err
	}
	return v.Fill(valueBytes(&val), n)
}

// FirstOf returns a copy of the first element.
func FirstOf[T any](v *Vector) (T, error) {
	var out T
	if err := checkType[T](v); err != nil {
		return out, err
	}
	err := v.First(valueBytes(&out))
	return out, err
}

// LastOf returns a copy of the last element.
func LastOf[T any](v *Vector) (T, error) {
	var out T
	if err := checkType[T](v); err != nil {
		return out, err
	}
	err := v.Last(valueBytes(&out))
	return out, err
}

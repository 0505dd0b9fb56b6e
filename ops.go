package vec

import "fmt"

// slot returns the backing bytes of element idx. Callers must have bounds
// checked idx already; the returned slice is only valid until the next
// reallocation.
func (v *Vector) slot(idx int) []byte {
	off := idx * v.elemSize
	return v.buf[off : off+v.elemSize]
}

// checkValue verifies a required value argument carries exactly one element.
func (v *Vector) checkValue(val []byte) error {
	if val == nil {
		return fmt.Errorf("%w: value", ErrNilReference)
	}
	if len(val) != v.elemSize {
		return errValueSize(len(val), v.elemSize)
	}
	return nil
}

// checkOut verifies an optional output buffer, which may be nil to skip the
// copy-out.
func (v *Vector) checkOut(out []byte) error {
	if out != nil && len(out) != v.elemSize {
		return errValueSize(len(out), v.elemSize)
	}
	return nil
}

// Set overwrites the element at idx with val. The previous bytes are
// discarded; use Replace to recover them.
func (v *Vector) Set(idx int, val []byte) error {
	if err := v.validate(); err != nil {
		return err
	}
	if err := v.checkValue(val); err != nil {
		return err
	}
	if idx < 0 || idx >= v.length {
		return errIndex(idx, v.length)
	}
	copy(v.slot(idx), val)
	return nil
}

// Replace overwrites the element at idx with val, first copying the previous
// bytes into old when old is non-nil.
func (v *Vector) Replace(idx int, val, old []byte) error {
	if err := v.validate(); err != nil {
		return err
	}
	if err := v.checkValue(val); err != nil {
		return err
	}
	if err := v.checkOut(old); err != nil {
		return err
	}
	if idx < 0 || idx >= v.length {
		return errIndex(idx, v.length)
	}
	if old != nil {
		copy(old, v.slot(idx))
	}
	copy(v.slot(idx), val)
	return nil
}

// Swap exchanges the elements at i and j. Swapping an element with itself is
// rejected.
func (v *Vector) Swap(i, j int) error {
	if err := v.validate(); err != nil {
		return err
	}
	if i == j {
		return fmt.Errorf("%w: swap indices are equal", ErrInvalidOperation)
	}
	if i < 0 || i >= v.length {
		return errIndex(i, v.length)
	}
	if j < 0 || j >= v.length {
		return errIndex(j, v.length)
	}
	tmp := make([]byte, v.elemSize)
	copy(tmp, v.slot(i))
	copy(v.slot(i), v.slot(j))
	copy(v.slot(j), tmp)
	return nil
}

// Insert writes val at position idx, shifting the elements at [idx, length)
// one slot right. Inserting at idx == length appends. Grows the vector first
// when it is full.
func (v *Vector) Insert(idx int, val []byte) error {
	if err := v.validate(); err != nil {
		return err
	}
	if err := v.checkValue(val); err != nil {
		return err
	}
	if idx < 0 || idx > v.length {
		return errIndex(idx, v.length)
	}
	if err := v.checkGrow(); err != nil {
		return err
	}
	copy(v.buf[(idx+1)*v.elemSize:(v.length+1)*v.elemSize], v.buf[idx*v.elemSize:v.length*v.elemSize])
	copy(v.slot(idx), val)
	v.length++
	return nil
}

// Push appends val at the end of the vector, growing it first when full.
func (v *Vector) Push(val []byte) error {
	if err := v.validate(); err != nil {
		return err
	}
	return v.Insert(v.length, val)
}

// Remove deletes the element at idx, shifting the elements at [idx+1, length)
// one slot left. The removed bytes are copied into removed when it is
// non-nil. May shrink the vector afterwards.
func (v *Vector) Remove(idx int, removed []byte) error {
	if err := v.validate(); err != nil {
		return err
	}
	if err := v.checkOut(removed); err != nil {
		return err
	}
	if idx < 0 || idx >= v.length {
		return errIndex(idx, v.length)
	}
	if removed != nil {
		copy(removed, v.slot(idx))
	}
	copy(v.buf[idx*v.elemSize:], v.buf[(idx+1)*v.elemSize:v.length*v.elemSize])
	v.length--
	return v.checkShrink()
}

// Pop removes the last element, copying its bytes into popped when it is
// non-nil. May shrink the vector afterwards.
func (v *Vector) Pop(popped []byte) error {
	if err := v.validate(); err != nil {
		return err
	}
	if v.length == 0 {
		return ErrEmptyVector
	}
	return v.Remove(v.length-1, popped)
}

// Fill writes val into positions [0, n), growing the capacity to n first
// when needed and raising the length to n when it was smaller. Elements past
// n are untouched. Fill with n == 0 is a no-op.
//
// The buffer is filled by copying a doubling run of already-written bytes,
// so n elements take O(log n) copy calls.
func (v *Vector) Fill(val []byte, n int) error {
	if err := v.validate(); err != nil {
		return err
	}
	if err := v.checkValue(val); err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("%w: negative fill count %d", ErrInvalidOperation, n)
	}
	if n == 0 {
		return nil
	}
	if n > MaxCapacity {
		return ErrCapacityExceeded
	}
	if v.capacity < n {
		if err := v.reallocate(n); err != nil {
			return err
		}
	}
	if v.length < n {
		v.length = n
	}
	copy(v.buf[:v.elemSize], val)
	total := n * v.elemSize
	for filled := v.elemSize; filled < total; filled *= 2 {
		copy(v.buf[filled:total], v.buf[:filled])
	}
	return nil
}

// Truncate keeps the first n elements and discards the rest. No-op when n is
// at least the current length. May shrink the vector afterwards.
func (v *Vector) Truncate(n int) error {
	if err := v.validate(); err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrInvalidOperation, n)
	}
	if n >= v.length {
		return nil
	}
	v.length = n
	return v.checkShrink()
}

// Extend appends all of other's elements after v's current contents, growing
// v first when its remaining space is insufficient. other must hold elements
// of the same size and must not be v itself; it is read but never mutated.
func (v *Vector) Extend(other *Vector) error {
	if err := v.validate(); err != nil {
		return err
	}
	if err := other.validate(); err != nil {
		return err
	}
	if other == v {
		return ErrSameVector
	}
	if other.elemSize != v.elemSize {
		return ErrSizeMismatch
	}
	need := v.length + other.length
	if need > MaxCapacity {
		return ErrCapacityExceeded
	}
	if v.capacity < need {
		if err := v.reallocate(need); err != nil {
			return err
		}
	}
	copy(v.buf[v.length*v.elemSize:need*v.elemSize], other.buf[:other.length*other.elemSize])
	v.length = need
	return nil
}

// Get copies the element at idx into dst, which must hold exactly one
// element.
func (v *Vector) Get(idx int, dst []byte) error {
	if err := v.validate(); err != nil {
		return err
	}
	if err := v.checkValue(dst); err != nil {
		return err
	}
	if idx < 0 || idx >= v.length {
		return errIndex(idx, v.length)
	}
	copy(dst, v.slot(idx))
	return nil
}

// First copies the first element into dst.
func (v *Vector) First(dst []byte) error {
	if err := v.validate(); err != nil {
		return err
	}
	if v.length == 0 {
		return ErrEmptyVector
	}
	return v.Get(0, dst)
}

// Last copies the last element into dst.
func (v *Vector) Last(dst []byte) error {
	if err := v.validate(); err != nil {
		return err
	}
	if v.length == 0 {
		return ErrEmptyVector
	}
	return v.Get(v.length-1, dst)
}

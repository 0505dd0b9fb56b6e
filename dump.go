package vec

import (
	"fmt"
	"io"
	"strings"
)

// Display writes a human-readable rendering of the live elements to w, one
// hex group per element. Read-only; the vector is never mutated.
func (v *Vector) Display(w io.Writer) error {
	if err := v.validate(); err != nil {
		return err
	}
	if v.length == 0 {
		_, err := fmt.Fprintln(w, "[ ]")
		return err
	}
	var b strings.Builder
	b.WriteString("[ ")
	for i := 0; i < v.length; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%x", v.slot(i))
	}
	b.WriteString(" ]")
	_, err := fmt.Fprintln(w, b.String())
	return err
}

// Debug writes a rendering of the full allocated region to w, including the
// unused tail slots, which are shown zero-filled regardless of the bytes
// actually present there.
func (v *Vector) Debug(w io.Writer) error {
	if err := v.validate(); err != nil {
		return err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "len: %d, cap: %d\n[ ", v.length, v.capacity)
	zero := strings.Repeat("00", v.elemSize)
	for i := 0; i < v.capacity; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		if i < v.length {
			fmt.Fprintf(&b, "%x", v.slot(i))
		} else {
			b.WriteString(zero)
		}
	}
	b.WriteString(" ]")
	_, err := fmt.Fprintln(w, b.String())
	return err
}

// String implements fmt.Stringer with the Display rendering. Invalid handles
// render as a placeholder instead of failing.
func (v *Vector) String() string {
	var b strings.Builder
	if err := v.Display(&b); err != nil {
		return "vec(invalid)"
	}
	return strings.TrimSuffix(b.String(), "\n")
}

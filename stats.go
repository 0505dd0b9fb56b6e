package vec

// Len returns the number of logically present elements.
func (v *Vector) Len() (int, error) {
	if err := v.validate(); err != nil {
		return 0, err
	}
	return v.length, nil
}

// Cap returns the number of element slots currently allocated.
func (v *Vector) Cap() (int, error) {
	if err := v.validate(); err != nil {
		return 0, err
	}
	return v.capacity, nil
}

// Space returns the number of free slots left before the next growth.
func (v *Vector) Space() (int, error) {
	if err := v.validate(); err != nil {
		return 0, err
	}
	return v.capacity - v.length, nil
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector) IsEmpty() (bool, error) {
	if err := v.validate(); err != nil {
		return false, err
	}
	return v.length == 0, nil
}

// ElemSize returns the fixed byte size of one element.
func (v *Vector) ElemSize() (int, error) {
	if err := v.validate(); err != nil {
		return 0, err
	}
	return v.elemSize, nil
}

// Metrics contains statistical information about a vector.
type Metrics struct {
	Len         int     // Logically present elements
	Cap         int     // Allocated element slots
	ElemSize    int     // Bytes per element
	SizeInUse   int     // Bytes holding live elements
	Utilization float64 // Ratio of length to capacity (0.0-1.0)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector) Metrics() (Metrics, error) {
	if err := v.validate(); err != nil {
		return Metrics{}, err
	}
	m := Metrics{
		Len:       v.length,
		Cap:       v.capacity,
		ElemSize:  v.elemSize,
		SizeInUse: v.length * v.elemSize,
	}
	if v.capacity > 0 {
		m.Utilization = float64(v.length) / float64(v.capacity)
	}
	return m, nil
}

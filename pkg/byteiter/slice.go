package byteiter

import "slices"

// Of creates an iterator that yields the given values in order.
// Without values it returns Empty.
func Of(values ...byte) Iterator {
	if len(values) == 0 {
		return Empty()
	}
	return &sliceIter{values: slices.Clone(values)}
}

// FromSlice creates an iterator over a snapshot of values.
// Changing values after the call doesn't affect the iteration.
// A nil slice is rejected with ErrInvalidArgument, an empty one results in Empty.
func FromSlice(values []byte) (Iterator, error) {
	if values == nil {
		return nil, ErrInvalidArgument.F("nil values")
	}
	return Of(values...), nil
}

type sliceIter struct {
	values []byte
	index  int
}

func (i *sliceIter) iterator() {}

func (i *sliceIter) HasNext() bool {
	return i.index < len(i.values)
}

func (i *sliceIter) NextByte() (byte, error) {
	if !i.HasNext() {
		return 0, ErrExhausted
	}
	v := i.values[i.index]
	i.index++
	return v, nil
}

func (i *sliceIter) Next() (*byte, error) {
	return box(i.NextByte())
}

func (i *sliceIter) Remove() error {
	return ErrUnsupported
}

func (i *sliceIter) Err() error {
	return nil
}

func (i *sliceIter) Close() error {
	return nil
}

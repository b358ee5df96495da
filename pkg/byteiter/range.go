package byteiter

// Range returns an iterator over the half-open interval [from, to) in ascending order.
// When from >= to, the interval is empty and Empty is returned.
func Range(from, to byte) Iterator {
	if from >= to {
		return Empty()
	}
	return &rangeIter{cursor: from, to: to}
}

type rangeIter struct {
	cursor byte
	to     byte
}

func (i *rangeIter) iterator() {}

func (i *rangeIter) HasNext() bool {
	return i.cursor < i.to
}

func (i *rangeIter) NextByte() (byte, error) {
	if !i.HasNext() {
		return 0, ErrExhausted
	}
	// to is at most 255, so the cursor can't wrap around
	v := i.cursor
	i.cursor++
	return v, nil
}

func (i *rangeIter) Next() (*byte, error) {
	return box(i.NextByte())
}

func (i *rangeIter) Remove() error {
	return ErrUnsupported
}

func (i *rangeIter) Err() error {
	return nil
}

func (i *rangeIter) Close() error {
	return nil
}

package byteiter

var empty Iterator = emptyIter{}

// Empty returns the shared iterator that has no elements.
// It holds no state, so the same value can be used from any goroutine.
func Empty() Iterator {
	return empty
}

type emptyIter struct{}

func (emptyIter) iterator() {}

func (emptyIter) HasNext() bool {
	return false
}

func (emptyIter) NextByte() (byte, error) {
	return 0, ErrExhausted
}

func (i emptyIter) Next() (*byte, error) {
	return box(i.NextByte())
}

func (emptyIter) Remove() error {
	return ErrUnsupported
}

func (emptyIter) Err() error {
	return nil
}

func (emptyIter) Close() error {
	return nil
}

package byteiter

// Single creates an iterator that yields v once.
func Single(v byte) Iterator {
	return &singleIter{value: v}
}

type singleIter struct {
	value    byte
	consumed bool
}

func (i *singleIter) iterator() {}

func (i *singleIter) HasNext() bool {
	return !i.consumed
}

func (i *singleIter) NextByte() (byte, error) {
	if i.consumed {
		return 0, ErrExhausted
	}
	i.consumed = true
	return i.value, nil
}

func (i *singleIter) Next() (*byte, error) {
	return box(i.NextByte())
}

func (i *singleIter) Remove() error {
	return ErrUnsupported
}

func (i *singleIter) Err() error {
	return nil
}

func (i *singleIter) Close() error {
	return nil
}

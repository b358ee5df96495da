package byteiter

import (
	"go.llib.dev/frameless/pkg/iterkit"
)

// ToPullIter exposes an Iterator through the iterkit.PullIter interface.
// A failed read stops the iteration, and its cause is reported by Err.
func ToPullIter(it Iterator) iterkit.PullIter[byte] {
	return &pullIter{it: it}
}

type pullIter struct {
	it    Iterator
	value byte
	err   error
}

func (i *pullIter) Next() bool {
	if i.err != nil || !i.it.HasNext() {
		return false
	}
	v, err := i.it.NextByte()
	if err != nil {
		i.err = err
		return false
	}
	i.value = v
	return true
}

func (i *pullIter) Value() byte {
	return i.value
}

func (i *pullIter) Err() error {
	if i.err != nil {
		return i.err
	}
	return i.it.Err()
}

func (i *pullIter) Close() error {
	return i.it.Close()
}

// Seq returns a single use sequence of the remaining values of the iterator.
//
//	for v, err := range byteiter.Seq(it) {
//		if err != nil {
//			return err
//		}
//		// use v
//	}
func Seq(it Iterator) iterkit.SingleUseErrSeq[byte] {
	return iterkit.FromPullIter(ToPullIter(it))
}

// Collect reads all remaining values of the iterator, then closes it.
func Collect(it Iterator) ([]byte, error) {
	return iterkit.CollectPullIter(ToPullIter(it))
}

// Count reads the remaining values and tells how many there were.
func Count(it Iterator) (int, error) {
	var n int
	for it.HasNext() {
		if _, err := it.NextByte(); err != nil {
			return n, err
		}
		n++
	}
	return n, it.Err()
}

package byteiter

//go:generate mockgen -destination source_mocks_test.go -source source.go -package byteiter_test

import (
	"iter"
	"slices"

	"go.llib.dev/frameless/pkg/iterkit"
)

// Source is a boxed iterator of bytes.
// A nil element with a nil error represents a missing value.
//
// Every Iterator is also a Source.
type Source interface {
	// HasNext reports whether the next call to Next will yield an element.
	HasNext() bool
	// Next returns the next element in its boxed form.
	Next() (*byte, error)
}

// Remover is implemented by a Source that can remove the element it returned last.
type Remover interface {
	Remove() error
}

// NewSliceSource returns a Source over a copy of values.
// Elements may be nil.
func NewSliceSource(values ...*byte) *SliceSource {
	return &SliceSource{values: slices.Clone(values)}
}

// SliceSource is a boxed Source backed by a slice, with removal support.
type SliceSource struct {
	values    []*byte
	index     int
	removable bool
}

func (s *SliceSource) HasNext() bool {
	return s.index < len(s.values)
}

func (s *SliceSource) Next() (*byte, error) {
	if !s.HasNext() {
		return nil, ErrExhausted
	}
	v := s.values[s.index]
	s.index++
	s.removable = true
	return v, nil
}

// Remove deletes the element returned by the last Next call.
// It returns ErrIllegalState when Next wasn't called yet,
// or the last element was already removed.
func (s *SliceSource) Remove() error {
	if !s.removable {
		return ErrIllegalState
	}
	s.index--
	s.values = slices.Delete(s.values, s.index, s.index+1)
	s.removable = false
	return nil
}

// Values returns the elements that are currently in the source, including the already iterated ones.
func (s *SliceSource) Values() []*byte {
	return slices.Clone(s.values)
}

// FromSeq turns a sequence of boxed bytes into a Source.
//
// The sequence is consumed through iter.Pull,
// and one element is read ahead so HasNext can answer without losing it.
// Close must be called if the Source is abandoned before it is exhausted.
func FromSeq(seq iter.Seq[*byte]) *SeqSource {
	if seq == nil {
		seq = iterkit.Empty[*byte]()
	}
	next, stop := iter.Pull(seq)
	return &SeqSource{next: next, stop: stop}
}

// SeqSource is a boxed Source over an iter.Seq. Make it with FromSeq.
// The zero value has no elements.
type SeqSource struct {
	next func() (*byte, bool)
	stop func()

	value  *byte
	peeked bool
	done   bool
}

func (s *SeqSource) fetch() {
	if s.peeked || s.done {
		return
	}
	if s.next == nil {
		s.done = true
		return
	}
	v, ok := s.next()
	if !ok {
		s.done = true
		s.stop()
		return
	}
	s.value, s.peeked = v, true
}

func (s *SeqSource) HasNext() bool {
	s.fetch()
	return s.peeked
}

func (s *SeqSource) Next() (*byte, error) {
	s.fetch()
	if !s.peeked {
		return nil, ErrExhausted
	}
	v := s.value
	s.value, s.peeked = nil, false
	return v, nil
}

func (s *SeqSource) Close() error {
	s.done = true
	s.value, s.peeked = nil, false
	if s.stop != nil {
		s.stop()
	}
	return nil
}

// Package byteiter provides pull iterators over byte values.
//
// # Summary
//
// A generic iterator over bytes usually hands out every element in a boxed form,
// which means one allocation per element when large buffers or ranges are walked.
// The iterators of this package produce raw bytes through NextByte,
// and only box a value when the caller explicitly asks for it with Next.
// Both accessors move the same cursor, so call styles can be mixed freely.
//
// The set of iterator kinds is closed:
//
//   - Empty: never yields anything.
//   - Single: yields one value.
//   - Of / FromSlice: yields a fixed sequence of values.
//   - Range: yields the values of a half-open interval.
//   - Adapt: unboxes the elements of an existing boxed Source.
//
// Iterators are not safe for concurrent use, except the shared Empty iterator.
package byteiter

import (
	"io"

	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	// ErrExhausted is returned when a read is attempted on an iterator that has no more elements.
	ErrExhausted errorkit.Error = "byteiter: no more elements"
	// ErrUnsupported is returned for operations that the iterator can't perform, like Remove.
	ErrUnsupported errorkit.Error = "byteiter: unsupported operation"
	// ErrNullElement is returned when an adapted Source yields a nil element and no fallback was configured.
	ErrNullElement errorkit.Error = "byteiter: nil element"
	// ErrInvalidArgument is returned when a constructor receives a missing input.
	ErrInvalidArgument errorkit.Error = "byteiter: invalid argument"
	// ErrIllegalState is returned when a removal is requested without a preceding read.
	ErrIllegalState errorkit.Error = "byteiter: illegal state"
)

// Iterator is an unboxed iterator of byte values.
type Iterator interface {
	Source
	// NextByte returns the next value and advances the iterator by exactly one element.
	// When no element is left, it returns ErrExhausted and the iterator state stays unchanged.
	NextByte() (byte, error)
	// Remove removes the last returned element from the underlying collection.
	// Iterators are read-only views, so only an adapted Source with removal support can do this.
	Remove() error
	// Err returns the cause that stopped the iteration early, if any.
	Err() error
	// Closer is required to release a wrapped Source that holds resources.
	// For every other iterator it is a no-op.
	io.Closer

	iterator()
}

// box is the only place where a value gets its boxed form,
// thus Next is always the boxed result of NextByte.
func box(v byte, err error) (*byte, error) {
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Variant tells which kind of iterator is behind an Iterator value.
type Variant int

const (
	// VariantEmpty is the shared iterator without elements.
	VariantEmpty Variant = iota
	// VariantAdapter unboxes a Source.
	VariantAdapter
	// VariantSingle yields one value.
	VariantSingle
	// VariantSequence yields a snapshot of a byte slice.
	VariantSequence
	// VariantRange yields the values of a half-open interval.
	VariantRange
)

func (v Variant) String() string {
	switch v {
	case VariantEmpty:
		return "empty"
	case VariantAdapter:
		return "adapter"
	case VariantSingle:
		return "single"
	case VariantSequence:
		return "sequence"
	case VariantRange:
		return "range"
	default:
		return "unknown"
	}
}

// Kind returns the Variant of the iterator.
func Kind(it Iterator) Variant {
	switch it.(type) {
	case emptyIter:
		return VariantEmpty
	case *adapterIter:
		return VariantAdapter
	case *singleIter:
		return VariantSingle
	case *sliceIter:
		return VariantSequence
	case *rangeIter:
		return VariantRange
	default:
		panic(ErrInvalidArgument.F("unknown iterator type: %T", it))
	}
}

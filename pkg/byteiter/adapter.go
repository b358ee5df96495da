package byteiter

import (
	"context"
	"io"
	"reflect"

	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/port/option"
)

// AdapterConfig holds the settings of an adapter made by Adapt.
type AdapterConfig struct {
	// Fallback is returned in place of a nil element.
	// When Fallback is nil, a nil element makes the read fail with ErrNullElement.
	Fallback *byte
	// Logger receives debug events about fallback substitution
	// and a warning when the adapter fails on a nil element.
	// Logging is disabled when Logger is nil.
	Logger *logging.Logger
}

// Configure lets an AdapterConfig value be passed as an AdapterOption.
// Only its non-nil fields are applied.
func (c AdapterConfig) Configure(t *AdapterConfig) {
	if c.Fallback != nil {
		t.Fallback = c.Fallback
	}
	if c.Logger != nil {
		t.Logger = c.Logger
	}
}

type AdapterOption option.Option[AdapterConfig]

// WithFallback sets the value that replaces nil elements of the Source.
func WithFallback(v byte) AdapterOption {
	return option.Func[AdapterConfig](func(c *AdapterConfig) {
		c.Fallback = &v
	})
}

// WithLogger sets the logger that reports nil element handling.
func WithLogger(l *logging.Logger) AdapterOption {
	return option.Func[AdapterConfig](func(c *AdapterConfig) {
		c.Logger = l
	})
}

// Adapt unboxes the elements of a Source.
//
// The adapter becomes the sole consumer of src.
// If src has no elements at the time of the call, Empty is returned.
// Otherwise, if src is already an Iterator, it is returned as is.
//
// A nil element from src is replaced with the configured fallback,
// or when there is none, the read fails with ErrNullElement.
// The nil element is consumed by that failed read,
// and the adapter stays failed: every later read returns the same error.
// From then on HasNext reports false even though the source may have elements left,
// so a false HasNext on a failed adapter means ErrNullElement, not ErrExhausted.
// Err tells the two cases apart.
func Adapt(src Source, opts ...AdapterOption) (Iterator, error) {
	if src == nil || reflectkit.IsNil(reflect.ValueOf(src)) {
		return nil, ErrInvalidArgument.F("nil source")
	}
	if !src.HasNext() {
		return Empty(), nil
	}
	if it, ok := src.(Iterator); ok {
		return it, nil
	}
	return &adapterIter{
		src:    src,
		config: option.ToConfig[AdapterConfig](opts),
	}, nil
}

type adapterIter struct {
	src    Source
	config AdapterConfig
	err    error
}

func (i *adapterIter) iterator() {}

func (i *adapterIter) HasNext() bool {
	return i.err == nil && i.src.HasNext()
}

func (i *adapterIter) NextByte() (byte, error) {
	if i.err != nil {
		return 0, i.err
	}
	if !i.src.HasNext() {
		return 0, ErrExhausted
	}
	v, err := i.src.Next()
	if err != nil {
		return 0, err
	}
	if v != nil {
		return *v, nil
	}
	ctx := context.Background()
	if i.config.Fallback != nil {
		if i.config.Logger != nil {
			i.config.Logger.Debug(ctx, "byteiter: nil element replaced with fallback",
				logging.Field("fallback", *i.config.Fallback))
		}
		return *i.config.Fallback, nil
	}
	i.err = ErrNullElement
	if i.config.Logger != nil {
		i.config.Logger.Warn(ctx, "byteiter: adapted source yielded a nil element",
			logging.ErrField(i.err))
	}
	return 0, i.err
}

func (i *adapterIter) Next() (*byte, error) {
	return box(i.NextByte())
}

func (i *adapterIter) Remove() error {
	r, ok := i.src.(Remover)
	if !ok {
		return ErrUnsupported
	}
	return r.Remove()
}

func (i *adapterIter) Err() error {
	return i.err
}

func (i *adapterIter) Close() error {
	c, ok := i.src.(io.Closer)
	if !ok {
		return nil
	}
	return c.Close()
}

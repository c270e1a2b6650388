package stdin

import (
	"fmt"

	"github.com/pkg/errors"
)

// SourceUnmarshaler is implemented by types that parse themselves from a
// live Source, choosing their own reading strategy. Unlike the string
// parsing methods, the implementation sees the Source before anything has
// been read, so it can consume stdin line by line (via Source.Lines)
// instead of as a single blob, and can treat an argument payload however
// it likes (via Source.Contents).
type SourceUnmarshaler interface {
	UnmarshalSource(src *Source) error
}

// SourceValue wraps a single value of type T that may be supplied either
// as an argument string or via standard input, selected by the "-"
// sentinel. The pointer type *T must implement SourceUnmarshaler; parsing
// is delegated to it entirely, with the live Source.
type SourceValue[T any] struct {
	// Context overrides DefaultContext when non-nil.
	Context *Context

	inner   T
	isStdin bool
}

func (v *SourceValue[T]) context() *Context {
	if v.Context != nil {
		return v.Context
	}
	return DefaultContext
}

// Set parses a raw argument string by handing the resolved Source to the
// wrapped type's UnmarshalSource method. Set implements Setter and,
// together with String, flag.Value.
func (v *SourceValue[T]) Set(raw string) error {
	src := v.context().ParseSource(raw)
	isStdin := src.IsStdin()
	var inner T
	u, ok := any(&inner).(SourceUnmarshaler)
	if !ok {
		return errors.Errorf("type %T does not implement SourceUnmarshaler", inner)
	}
	if err := u.UnmarshalSource(&src); err != nil {
		return errors.Wrapf(err, "parsing %T from source", inner)
	}
	v.inner = inner
	v.isStdin = isStdin
	return nil
}

// UnmarshalText is an alias for Set, for frameworks that resolve values
// via encoding.TextUnmarshaler.
func (v *SourceValue[T]) UnmarshalText(text []byte) error {
	return v.Set(string(text))
}

// IsStdin reports whether the value was read from standard input.
func (v *SourceValue[T]) IsStdin() bool {
	return v.isStdin
}

// Value returns the wrapped value.
func (v *SourceValue[T]) Value() T {
	return v.inner
}

func (v *SourceValue[T]) String() string {
	return fmt.Sprintf("%v", v.inner)
}

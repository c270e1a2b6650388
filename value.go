package stdin

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Value wraps a single value of type T that may be supplied either as an
// argument string or via standard input, selected by the "-" sentinel.
// Stdin input is read in full before parsing; use SourceValue if the
// wrapped type needs to read line by line instead.
//
// T must be parseable from a string: a string, a scanf-able primitive,
// a time.Duration, or a type whose pointer implements Setter,
// encoding.TextUnmarshaler, or encoding.BinaryUnmarshaler.
//
// The zero Value is ready to use and reads os.Stdin under the process-wide
// guard; set Context to bind it elsewhere.
type Value[T any] struct {
	// Context overrides DefaultContext when non-nil.
	Context *Context

	inner   T
	isStdin bool
}

func (v *Value[T]) context() *Context {
	if v.Context != nil {
		return v.Context
	}
	return DefaultContext
}

// Set parses a raw argument string, reading standard input in full if raw
// is the "-" sentinel. The parsed text is trimmed of surrounding
// whitespace before conversion. Set implements Setter and, together with
// String, flag.Value.
func (v *Value[T]) Set(raw string) error {
	src := v.context().ParseSource(raw)
	text, err := src.Contents()
	if err != nil {
		return errors.Wrap(err, "reading value")
	}
	var inner T
	p := parserFor(&inner)
	if p == nil {
		return errors.Errorf("no parser for type %T", inner)
	}
	if err := p.Set(strings.TrimSpace(text)); err != nil {
		return errors.Wrapf(err, "parsing %T", inner)
	}
	v.inner = inner
	v.isStdin = src.IsStdin()
	return nil
}

// UnmarshalText is an alias for Set, for frameworks that resolve values
// via encoding.TextUnmarshaler.
func (v *Value[T]) UnmarshalText(text []byte) error {
	return v.Set(string(text))
}

// IsStdin reports whether the value was read from standard input.
func (v *Value[T]) IsStdin() bool {
	return v.isStdin
}

// Value returns the wrapped value.
func (v *Value[T]) Value() T {
	return v.inner
}

func (v *Value[T]) String() string {
	return fmt.Sprintf("%v", v.inner)
}

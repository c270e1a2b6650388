package stdin

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// List wraps a sequence of values of type T that may be supplied either
// as a delimited argument string or via standard input, selected by the
// "-" sentinel. Argument input is split on Delim; stdin input is split on
// newlines, so the natural shell usage is one element per line.
//
// Element parsing is fail-fast: the first element that fails conversion
// aborts the whole parse and no partial sequence is stored.
//
// T must be parseable from a string; see Value for the supported parsing
// methods.
type List[T any] struct {
	// Context overrides DefaultContext when non-nil.
	Context *Context

	// Delim is the single-rune delimiter used to split argument input.
	// The zero value means comma. It is ignored for stdin input, which is
	// always split on newlines.
	Delim rune

	inner   []T
	isStdin bool
}

func (l *List[T]) context() *Context {
	if l.Context != nil {
		return l.Context
	}
	return DefaultContext
}

func (l *List[T]) delim() rune {
	if l.Delim == 0 {
		return ','
	}
	return l.Delim
}

// Set parses a raw argument string, reading standard input in full if raw
// is the "-" sentinel. The text is trimmed of surrounding whitespace
// before splitting, so trailing newlines do not produce empty elements.
// Set implements Setter and, together with String, flag.Value.
func (l *List[T]) Set(raw string) error {
	src := l.context().ParseSource(raw)
	text, err := src.Contents()
	if err != nil {
		return errors.Wrap(err, "reading list")
	}
	text = strings.TrimSpace(text)
	var parts []string
	if src.IsStdin() {
		if text != "" {
			parts = splitLines(text)
		}
	} else {
		parts = strings.Split(text, string(l.delim()))
	}
	inner, err := parseAll[T](parts)
	if err != nil {
		return err
	}
	l.inner = inner
	l.isStdin = src.IsStdin()
	return nil
}

// UnmarshalText is an alias for Set, for frameworks that resolve values
// via encoding.TextUnmarshaler.
func (l *List[T]) UnmarshalText(text []byte) error {
	return l.Set(string(text))
}

// IsStdin reports whether the sequence was read from standard input.
func (l *List[T]) IsStdin() bool {
	return l.isStdin
}

// Value returns the wrapped sequence.
func (l *List[T]) Value() []T {
	return l.inner
}

func (l *List[T]) String() string {
	return fmt.Sprintf("%v", l.inner)
}

// MustList constructs a List directly from already-materialized element
// strings, bypassing source resolution entirely; IsStdin is false. It is
// meant for programmatic and test construction, not user input: any
// element that fails to parse panics.
func MustList[T any](values []string) List[T] {
	inner, err := parseAll[T](values)
	if err != nil {
		panic(fmt.Sprintf("stdin: failed to parse input: %s", err))
	}
	return List[T]{inner: inner}
}

func parseAll[T any](parts []string) ([]T, error) {
	inner := make([]T, 0, len(parts))
	for _, part := range parts {
		var elem T
		p := parserFor(&elem)
		if p == nil {
			return nil, errors.Errorf("no parser for type %T", elem)
		}
		if err := p.Set(part); err != nil {
			return nil, errors.Wrapf(err, "parsing element %q", part)
		}
		inner = append(inner, elem)
	}
	return inner, nil
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

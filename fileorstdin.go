package stdin

import (
	"io"

	"github.com/pkg/errors"
)

// FileOrStdin holds a value supplied as a file path, or via standard
// input when the argument is the "-" sentinel. Unlike the other adapters
// it is lazy: Set only records the source, so a flag defaulting to "-"
// does not claim stdin unless the value is actually read. Contents or
// Open consume the source later, at most once.
type FileOrStdin struct {
	// Context overrides DefaultContext when non-nil.
	Context *Context

	raw     string
	source  Source
	set     bool
	isStdin bool
}

func (f *FileOrStdin) context() *Context {
	if f.Context != nil {
		return f.Context
	}
	return DefaultContext
}

// Set records a raw argument string as the pending source without reading
// anything. Set implements Setter and, together with String, flag.Value.
func (f *FileOrStdin) Set(raw string) error {
	src := f.context().ParseSource(raw)
	f.raw = raw
	f.source = src
	f.isStdin = src.IsStdin()
	f.set = true
	return nil
}

// UnmarshalText is an alias for Set, for frameworks that resolve values
// via encoding.TextUnmarshaler.
func (f *FileOrStdin) UnmarshalText(text []byte) error {
	return f.Set(string(text))
}

// IsStdin reports whether the pending source is standard input.
func (f *FileOrStdin) IsStdin() bool {
	return f.isStdin
}

// Open consumes the pending source and returns a stream of its contents:
// the input stream for stdin, an opened file for a path argument. The
// caller is responsible for closing it.
func (f *FileOrStdin) Open() (io.ReadCloser, error) {
	if !f.set {
		return nil, errors.New("no source has been set")
	}
	return f.source.Open()
}

// Contents consumes the pending source and returns everything it holds:
// the whole input stream for stdin, the whole file for a path argument.
func (f *FileOrStdin) Contents() (string, error) {
	r, err := f.Open()
	if err != nil {
		return "", err
	}
	defer r.Close()
	b, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, "reading source")
	}
	return string(b), nil
}

func (f *FileOrStdin) String() string {
	return f.raw
}

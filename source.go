package stdin

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Token is the sentinel argument value that selects standard input as the
// source of a value.
const Token = "-"

// Guard tracks whether standard input has been consumed. There is no reset:
// once consumed, it stays consumed for the life of the guard. Safe for
// concurrent use.
type Guard struct {
	consumed atomic.Bool
}

// TryConsume attempts to claim the input stream and reports whether this
// call won the claim. Exactly one call per guard ever returns true.
func (g *Guard) TryConsume() bool {
	return g.consumed.CompareAndSwap(false, true)
}

// Context binds sources to an input stream and a consumption guard.
//
// The zero-configuration entry points (ParseSource and adapters with a nil
// Context field) all share DefaultContext, which reads os.Stdin and allows a
// single read per process. Tests should build isolated contexts with
// NewContext so they neither consume real stdin nor interfere with each
// other.
type Context struct {
	// Input is the stream read when a source is stdin. Nil means os.Stdin.
	Input io.Reader

	// Guard enforces the single-read rule for Input. Nil means a guard is
	// allocated on first use.
	Guard *Guard
}

// DefaultContext is the process-wide context used by package-level
// functions and by adapters with no explicit Context.
var DefaultContext = &Context{
	Input: os.Stdin,
	Guard: &Guard{},
}

// NewContext returns a context reading from input with a fresh guard.
func NewContext(input io.Reader) *Context {
	return &Context{
		Input: input,
		Guard: &Guard{},
	}
}

func (ctx *Context) input() io.Reader {
	if ctx.Input == nil {
		return os.Stdin
	}
	return ctx.Input
}

func (ctx *Context) guard() *Guard {
	if ctx.Guard == nil {
		ctx.Guard = &Guard{}
	}
	return ctx.Guard
}

// Source is the resolved origin of a value: either the context's input
// stream, or a literal argument string.
//
// A Source is single-use. Whichever consumption method is called first
// (Contents, Open, or Lines) claims the value; later calls return
// ErrConsumed. Stdin sources are additionally subject to the context
// guard, so at most one stdin source per context can ever be consumed.
type Source struct {
	ctx      *Context
	arg      string
	stdin    bool
	consumed bool
}

// ParseSource interprets a raw argument string using DefaultContext. The
// exact token "-" selects standard input; any other string is carried
// verbatim as a literal argument. ParseSource never fails.
func ParseSource(token string) Source {
	return DefaultContext.ParseSource(token)
}

// ParseSource interprets a raw argument string against this context. See
// the package-level ParseSource.
func (ctx *Context) ParseSource(token string) Source {
	if token == Token {
		return Source{ctx: ctx, stdin: true}
	}
	return Source{ctx: ctx, arg: token}
}

// IsStdin reports whether the source is standard input.
func (s *Source) IsStdin() bool {
	return s.stdin
}

func (s *Source) consume() error {
	if s.consumed {
		return ErrConsumed
	}
	s.consumed = true
	if s.stdin && !s.ctx.guard().TryConsume() {
		return ErrConsumed
	}
	return nil
}

// Contents consumes the source and returns its value as a string. For a
// stdin source the input stream is read to EOF. For an argument source the
// payload is the value itself and is returned with no I/O.
//
// Note the asymmetry with Open, which treats an argument payload as a file
// path. The two are deliberately distinct operations; see the package
// documentation.
func (s *Source) Contents() (string, error) {
	if err := s.consume(); err != nil {
		return "", err
	}
	if !s.stdin {
		return s.arg, nil
	}
	b, err := io.ReadAll(s.ctx.input())
	if err != nil {
		return "", errors.Wrap(err, "reading stdin")
	}
	return string(b), nil
}

// Open consumes the source and returns a stream of its contents. For a
// stdin source this is the live input stream; closing it is a no-op. For
// an argument source the payload is treated as a file path and opened.
func (s *Source) Open() (io.ReadCloser, error) {
	if err := s.consume(); err != nil {
		return nil, err
	}
	if s.stdin {
		return io.NopCloser(s.ctx.input()), nil
	}
	f, err := os.Open(s.arg)
	if err != nil {
		return nil, errors.Wrap(err, "opening source")
	}
	return f, nil
}

// Lines consumes the source and returns a scanner over it, line by line.
// For a stdin source the scanner reads the input stream directly, so lines
// become available as they arrive rather than after EOF. For an argument
// source the scanner reads the literal payload.
func (s *Source) Lines() (*bufio.Scanner, error) {
	if err := s.consume(); err != nil {
		return nil, err
	}
	if s.stdin {
		return bufio.NewScanner(s.ctx.input()), nil
	}
	return bufio.NewScanner(strings.NewReader(s.arg)), nil
}

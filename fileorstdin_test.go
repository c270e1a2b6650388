package stdin

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileOrStdinFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("file contents\n"), 0o644))

	f := FileOrStdin{Context: NewContext(strings.NewReader("unused"))}
	require.NoError(t, f.Set(path))
	assert.False(t, f.IsStdin())
	assert.Equal(t, path, f.String())

	v, err := f.Contents()
	require.NoError(t, err)
	assert.Equal(t, "file contents\n", v)
}

func TestFileOrStdinFromStdin(t *testing.T) {
	f := FileOrStdin{Context: NewContext(strings.NewReader("piped contents"))}
	require.NoError(t, f.Set("-"))
	assert.True(t, f.IsStdin())

	v, err := f.Contents()
	require.NoError(t, err)
	assert.Equal(t, "piped contents", v)
}

func TestFileOrStdinLazy(t *testing.T) {
	ctx := NewContext(strings.NewReader("42\n"))

	// Setting "-" must not claim stdin; only reading does.
	f := FileOrStdin{Context: ctx}
	require.NoError(t, f.Set("-"))

	v := Value[int]{Context: ctx}
	require.NoError(t, v.Set("-"))
	assert.Equal(t, 42, v.Value())

	_, err := f.Contents()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConsumed))
}

func TestFileOrStdinContentsTwice(t *testing.T) {
	f := FileOrStdin{Context: NewContext(strings.NewReader("once"))}
	require.NoError(t, f.Set("-"))

	_, err := f.Contents()
	require.NoError(t, err)

	_, err = f.Contents()
	assert.True(t, errors.Is(err, ErrConsumed))
}

func TestFileOrStdinOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("stream me"), 0o644))

	f := FileOrStdin{}
	require.NoError(t, f.Set(path))

	r, err := f.Open()
	require.NoError(t, err)
	defer r.Close()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "stream me", string(b))
}

func TestFileOrStdinUnset(t *testing.T) {
	f := FileOrStdin{}
	_, err := f.Contents()
	assert.Error(t, err)
}

package stdin

import (
	"encoding"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Setter is implemented by types that can parse themselves from a string,
// in the style of flag.Value. All adapters in this package implement it,
// which is how they plug into flag.FlagSet and compatible argument
// frameworks. Wrapped types may implement it too, as one of the supported
// parsing methods (see parserFor).
type Setter interface {
	Set(s string) error
}

// parserFor returns a Setter that parses text into the value pointed to by
// v, or nil if the type is not supported. Resolution order: Setter,
// encoding.TextUnmarshaler, encoding.BinaryUnmarshaler, then native
// handling for time.Duration, string, and scanf-able primitives.
func parserFor(v interface{}) Setter {
	switch v := v.(type) {
	case Setter:
		return v
	case encoding.TextUnmarshaler:
		return textParser{v}
	case encoding.BinaryUnmarshaler:
		return binaryParser{v}
	case *time.Duration:
		return durationParser{v}
	case *string:
		return stringParser{v}
	case
		*bool,
		*int, *int8, *int16, *int32, *int64,
		*uint, *uint8, *uint16, *uint32, *uint64,
		*float32, *float64:
		return scanfParser{v}
	default:
		return nil
	}
}

// string

type stringParser struct {
	v *string
}

func (p stringParser) Set(s string) error {
	*p.v = s
	return nil
}

// TextUnmarshaler

type textParser struct {
	encoding.TextUnmarshaler
}

func (p textParser) Set(s string) error {
	return p.UnmarshalText([]byte(s))
}

// BinaryUnmarshaler

type binaryParser struct {
	encoding.BinaryUnmarshaler
}

func (p binaryParser) Set(s string) error {
	return p.UnmarshalBinary([]byte(s))
}

// time.Duration

type durationParser struct {
	duration *time.Duration
}

func (p durationParser) Set(s string) error {
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*p.duration = v
	return nil
}

// Primitives (scanf)

type scanfParser struct {
	v interface{}
}

func (p scanfParser) Set(s string) error {
	n, err := fmt.Sscanf(s, "%v", p.v)
	if err != nil {
		return err
	} else if n == 0 {
		return errors.New("scanf did not scan any items")
	}
	return nil
}

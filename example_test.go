package stdin_test

import (
	"flag"
	"fmt"
	"strings"

	"github.com/isobit/stdin"
)

func ExampleValue() {
	var port stdin.Value[int]

	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.Var(&port, "port", "port number, or - to read stdin")
	fs.Parse([]string{"-port", "8080"})

	fmt.Println(port.Value(), port.IsStdin())
	// Output: 8080 false
}

func ExampleList() {
	var names stdin.List[string]
	names.Set("banana,apple")
	fmt.Println(names.Value())
	// Output: [banana apple]
}

func ExampleList_customDelim() {
	names := stdin.List[string]{Delim: '-'}
	names.Set("banana-apple")
	fmt.Println(names.Value())
	// Output: [banana apple]
}

// Basket reads one item per line from stdin, or a comma-delimited list
// from an argument.
type Basket struct {
	Items []string
}

func (b *Basket) UnmarshalSource(src *stdin.Source) error {
	if src.IsStdin() {
		sc, err := src.Lines()
		if err != nil {
			return err
		}
		for sc.Scan() {
			b.Items = append(b.Items, sc.Text())
		}
		return sc.Err()
	}
	v, err := src.Contents()
	if err != nil {
		return err
	}
	b.Items = strings.Split(v, ",")
	return nil
}

func ExampleSourceValue() {
	// An isolated Context stands in for real stdin here; production code
	// omits it and reads os.Stdin.
	ctx := stdin.NewContext(strings.NewReader("banana\napple\n"))

	basket := stdin.SourceValue[Basket]{Context: ctx}
	basket.Set("-")

	fmt.Println(basket.Value().Items, basket.IsStdin())
	// Output: [banana apple] true
}

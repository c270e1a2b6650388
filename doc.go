/*
Package stdin lets command-line values be read from standard input instead
of an argument string, selected by the conventional "-" sentinel.

Example

A program that accepts a message as a flag value or piped input:

		package main

		import (
			"flag"
			"fmt"

			"github.com/isobit/stdin"
		)

		func main() {
			var message stdin.Value[string]
			flag.Var(&message, "message", "message text, or - to read stdin")
			flag.Parse()
			fmt.Println(message.Value())
		}

Usage:

		$ prog -message hello
		hello
		$ echo hello | prog -message -
		hello

Adapters

Three adapters cover the common shapes. Value[T] reads stdin in full and
parses one value. List[T] parses a sequence: argument input is split on a
configurable delimiter (comma by default), stdin input on newlines.
SourceValue[T] hands the wrapped type the live Source so it can choose its
own reading strategy, such as consuming stdin line by line.

Every adapter implements Set and String (the flag.Value contract) as well
as encoding.TextUnmarshaler, so they work with the standard flag package
and with struct-tag CLI frameworks that resolve values through either
method. Each records provenance, reported by IsStdin.

Wrapped Types

Value and List parse elements of type T using the first supported method:
a Set(string) error method, encoding.TextUnmarshaler,
encoding.BinaryUnmarshaler, native handling for time.Duration and string,
or fmt.Sscanf for primitives. SourceValue requires *T to implement
SourceUnmarshaler instead.

Single Read

Standard input is a single position-advancing stream, so this package
permits exactly one logical read of it per process. The first stdin-
sourced value wins; every later attempt fails with ErrConsumed. The rule
is enforced by a Guard owned by a Context; DefaultContext carries the
process-wide guard, and tests can isolate themselves by constructing
their own Context with NewContext.

Strings Versus Paths

Source.Contents treats an argument payload as the literal value, while
Source.Open treats it as a file path. Value, SourceValue, and List use
the literal interpretation; FileOrStdin uses the path interpretation.
These are deliberately separate operations — do not build helpers that
guess between them.
*/
package stdin

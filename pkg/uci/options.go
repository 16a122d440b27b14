package uci

import (
	"errors"
	"fmt"
	"iter"
	"sort"
	"strings"
)

// ErrUnknownOption is returned when a setoption command names an option
// the engine never registered. Unlike a bad value, an unknown name is
// reported back to the caller.
var ErrUnknownOption = errors.New("unknown option")

// Options is the registry of engine settings. Registration order is
// preserved and drives the declaration dump; lookups ignore ASCII case.
// The registry is append-only and not safe for concurrent use: the UCI
// loop feeds it one command at a time.
type Options struct {
	cells []*Option
}

func NewOptions() *Options {
	return &Options{}
}

// Register appends a freshly constructed option. Registering the same
// name twice (in any case) is a programming error.
func (om *Options) Register(o *Option) {
	if om.Find(o.name) != nil {
		panic(fmt.Sprintf("uci: option %q registered twice", o.name))
	}
	om.cells = append(om.cells, o)
}

// Find resolves a host-supplied name, ignoring ASCII case. Returns nil
// when no option matches; nothing is created on lookup.
func (om *Options) Find(name string) *Option {
	for _, o := range om.cells {
		if foldEqual(o.name, name) {
			return o
		}
	}
	return nil
}

// Set routes a host assignment to the named option. An unknown name
// yields ErrUnknownOption; a known option that rejects the value is
// silent, matching the protocol's lenient stance on bad input.
func (om *Options) Set(name, value string) error {
	var o = om.Find(name)
	if o == nil {
		return fmt.Errorf("%w: %q", ErrUnknownOption, name)
	}
	o.Assign(value)
	return nil
}

func (om *Options) Len() int {
	return len(om.cells)
}

// All enumerates the registry in registration order.
func (om *Options) All() iter.Seq2[string, *Option] {
	return func(yield func(string, *Option) bool) {
		for _, o := range om.cells {
			if !yield(o.name, o) {
				return
			}
		}
	}
}

// Names lists the registered names ordered case-insensitively.
func (om *Options) Names() []string {
	var names = make([]string, len(om.cells))
	for i, o := range om.cells {
		names[i] = o.name
	}
	sort.Slice(names, func(i, j int) bool {
		return foldCompare(names[i], names[j]) < 0
	})
	return names
}

// String renders the whole registry in registration order, each
// declaration on its own newline-prefixed line.
func (om *Options) String() string {
	var sb = &strings.Builder{}
	for _, o := range om.cells {
		sb.WriteString("\n")
		sb.WriteString(o.String())
	}
	return sb.String()
}

// ASCII-only case folding. The protocol compares option names with a
// byte-wise tolower; Unicode folding would accept names the reference
// engines reject.

func foldByte(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func foldEqual(a, b string) bool {
	return foldCompare(a, b) == 0
}

func foldCompare(a, b string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		var ca, cb = foldByte(a[i]), foldByte(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

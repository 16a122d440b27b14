package uci

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the closed set of option types defined by the UCI protocol.
type Kind int

const (
	String Kind = iota
	Check
	Button
	Spin
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Check:
		return "check"
	case Button:
		return "button"
	case Spin:
		return "spin"
	}
	panic(fmt.Sprintf("uci: unknown option kind %d", int(k)))
}

// Option is a single named engine setting: a kind tag, a default and a
// current value in their textual form, spin bounds, and an optional
// change handler invoked after every accepted assignment.
type Option struct {
	name         string
	kind         Kind
	defaultValue string
	currentValue string
	min, max     int
	onChange     func(*Option)
}

func NewStringOption(name, value string, onChange func(*Option)) *Option {
	return &Option{
		name:         name,
		kind:         String,
		defaultValue: value,
		currentValue: value,
		onChange:     onChange,
	}
}

func NewCheckOption(name string, value bool, onChange func(*Option)) *Option {
	var s = strconv.FormatBool(value)
	return &Option{
		name:         name,
		kind:         Check,
		defaultValue: s,
		currentValue: s,
		onChange:     onChange,
	}
}

func NewButtonOption(name string, onChange func(*Option)) *Option {
	return &Option{
		name:     name,
		kind:     Button,
		onChange: onChange,
	}
}

// The default must already lie inside [min, max]; that is the caller's
// contract and is not re-checked.
func NewSpinOption(name string, value, min, max int, onChange func(*Option)) *Option {
	if min > max {
		panic(fmt.Sprintf("uci: option %q has inverted bounds [%d, %d]", name, min, max))
	}
	var s = strconv.Itoa(value)
	return &Option{
		name:         name,
		kind:         Spin,
		defaultValue: s,
		currentValue: s,
		min:          min,
		max:          max,
		onChange:     onChange,
	}
}

func (o *Option) Name() string {
	return o.name
}

func (o *Option) Kind() Kind {
	return o.kind
}

// Int returns the current value of a spin option, or 1/0 for a check
// option. Calling it on any other kind is a contract violation.
func (o *Option) Int() int {
	switch o.kind {
	case Check:
		if o.currentValue == "true" {
			return 1
		}
		return 0
	case Spin:
		var v, err = strconv.Atoi(o.currentValue)
		if err != nil {
			panic(fmt.Sprintf("uci: option %q holds non-numeric value %q", o.name, o.currentValue))
		}
		return v
	}
	panic(fmt.Sprintf("uci: option %q of type %v read as int", o.name, o.kind))
}

// Text returns the current value of a string option. Calling it on any
// other kind is a contract violation.
func (o *Option) Text() string {
	if o.kind != String {
		panic(fmt.Sprintf("uci: option %q of type %v read as string", o.name, o.kind))
	}
	return o.currentValue
}

// Assign validates value against the option's kind and, if accepted,
// stores it and fires the change handler before returning. The GUI is
// supposed to respect the declared bounds, but the value may come from a
// console user, so the bounds are checked anyway; a bad value is dropped
// without touching the current one. A button accepts any value, stores
// nothing and fires the handler on every call.
func (o *Option) Assign(value string) (applied bool) {
	if o.kind != Button && value == "" {
		return false
	}
	switch o.kind {
	case Check:
		if value != "true" && value != "false" {
			return false
		}
	case Spin:
		var v, err = strconv.Atoi(value)
		if err != nil || v < o.min || v > o.max {
			return false
		}
	}
	if o.kind != Button {
		o.currentValue = value
	}
	if o.onChange != nil {
		o.onChange(o)
	}
	return true
}

// String renders the declaration line sent in reply to "uci". The
// default shown is the registration-time default, not the current value.
func (o *Option) String() string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "option name %v type %v", o.name, o.kind)
	if o.kind != Button {
		fmt.Fprintf(sb, " default %v", o.defaultValue)
	}
	if o.kind == Spin {
		fmt.Fprintf(sb, " min %v max %v", o.min, o.max)
	}
	return sb.String()
}

package dialog

import (
	"math"
	"reflect"
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// Type selects the dialog shape.
type Type int

const (
	TypeAlert Type = iota
	TypeConfirm
	TypePrompt
)

var typeNames = [...]string{
	TypeAlert:   "alert",
	TypeConfirm: "confirm",
	TypePrompt:  "prompt",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return typeNames[TypeAlert]
	}
	return typeNames[t]
}

// ParseType returns the Type named s and whether s was recognized.
func ParseType(s string) (Type, bool) {
	for i, name := range typeNames {
		if name == s {
			return Type(i), true
		}
	}
	return TypeAlert, false
}

// Types returns every valid type name.
func Types() []string {
	return typeNames[:]
}

// From is the direction a dialog enters from and exits to.
type From int

const (
	FromMiddle From = iota
	FromTop
	FromBottom
	FromLeft
	FromRight
)

var fromNames = [...]string{
	FromMiddle: "middle",
	FromTop:    "top",
	FromBottom: "bottom",
	FromLeft:   "left",
	FromRight:  "right",
}

func (f From) String() string {
	if f < 0 || int(f) >= len(fromNames) {
		return fromNames[FromMiddle]
	}
	return fromNames[f]
}

// ParseFrom returns the From named s and whether s was recognized.
func ParseFrom(s string) (From, bool) {
	for i, name := range fromNames {
		if name == s {
			return From(i), true
		}
	}
	return FromMiddle, false
}

// Froms returns every valid direction name.
func Froms() []string {
	return fromNames[:]
}

// Attr is a rendered attribute.
type Attr struct {
	Name  string
	Value string
}

// Button is a resolved button definition.
type Button struct {
	Label      string
	Attrs      []Attr
	Suppressed bool
}

// Attr returns the value of the named attribute.
func (b Button) Attr(name string) (string, bool) {
	for _, a := range b.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Callback signatures. A prompt passes the input text as the only variadic
// argument; other types pass none.
type (
	SuccessFunc   func(input ...string)
	CancelledFunc func()
	CompleteFunc  func(status bool, input ...string)
)

// Options is the resolved, typed form of a merged configuration tree.
type Options struct {
	Type       Type
	Heading    string
	SubHeading string
	Message    string
	OK         Button
	Cancel     Button
	Overlay    bool
	Effect     string
	Wait       time.Duration
	From       From

	// Footer is false when the caller explicitly passed buttons: false.
	Footer bool

	Success   SuccessFunc
	Cancelled CancelledFunc
	Complete  CompleteFunc
}

// Resolve decodes a merged tree into Options. raw is the caller's original
// configuration, consulted for intent the merge cannot preserve.
func Resolve(merged, raw Values, logger zerolog.Logger) Options {
	r := resolver{logger: logger}

	typ, ok := ParseType(toText(merged[KeyType]))
	if !ok {
		r.logger.Warn().Interface("type", merged[KeyType]).Msg("invalid dialog type, using alert")
	}

	from, ok := ParseFrom(toText(merged[KeyFrom]))
	if !ok {
		r.logger.Warn().Interface("from", merged[KeyFrom]).Msg("invalid from direction, using middle")
	}

	opts := Options{
		Type:       typ,
		Heading:    toText(merged[KeyHeading]),
		SubHeading: toText(merged[KeySubHeading]),
		Message:    toText(merged[KeyMessage]),
		Overlay:    truthy(merged[KeyOverlay]),
		Effect:     toText(merged[KeyEffect]),
		Wait:       r.duration(merged[KeyWait]),
		From:       from,
		Footer:     !isFalse(raw[KeyButtons]),
		Success:    r.success(merged[KeySuccess]),
		Cancelled:  r.cancelled(merged[KeyCancelled]),
		Complete:   r.complete(merged[KeyComplete]),
	}

	if buttons, ok := asMap(merged[KeyButtons]); ok {
		opts.OK = r.button(buttons[ButtonOK], false)
		opts.Cancel = r.button(buttons[ButtonCancel], true)
	} else {
		if opts.Footer {
			r.logger.Warn().Interface("buttons", merged[KeyButtons]).Msg("buttons must be a map or false, using an unlabeled OK button")
		} else {
			opts.OK = Button{Suppressed: true}
		}
		opts.Cancel = Button{Suppressed: true}
	}

	typ.shape().normalize(&opts)
	return opts
}

func isFalse(val any) bool {
	b, ok := val.(bool)
	return ok && !b
}

type resolver struct {
	logger zerolog.Logger
}

// button resolves one button spec. Only a hideable button is suppressed by a
// false or nil spec; otherwise those values become the label text.
func (r resolver) button(val any, hideable bool) Button {
	switch v := val.(type) {
	case nil:
		if hideable {
			return Button{Suppressed: true}
		}
		return Button{}
	case bool:
		if !v && hideable {
			return Button{Suppressed: true}
		}
		return Button{Label: toText(v)}
	case string:
		return Button{Label: v}
	}

	spec, ok := asMap(val)
	if !ok {
		return Button{Label: toText(val)}
	}

	b := Button{Label: toText(spec[keyLabel])}
	if attrs, ok := asMap(spec[keyAttrs]); ok {
		names := make([]string, 0, len(attrs))
		for name, av := range attrs {
			if isCallable(av) {
				continue
			}
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b.Attrs = append(b.Attrs, Attr{Name: name, Value: toText(attrs[name])})
		}
	}
	return b
}

// duration reads a millisecond count. time.Duration values are taken as-is.
// Negative or unreadable values resolve to zero.
func (r resolver) duration(val any) time.Duration {
	if d, ok := val.(time.Duration); ok {
		return max(d, 0)
	}

	var ms float64
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		ms = float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		ms = float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		ms = rv.Float()
	case reflect.Invalid:
		return 0
	default:
		r.logger.Warn().Interface("wait", val).Msg("wait must be a number of milliseconds, using 0")
		return 0
	}

	if ms < 0 || math.IsNaN(ms) {
		r.logger.Warn().Float64("wait", ms).Msg("wait must not be negative, using 0")
		return 0
	}
	return time.Duration(ms * float64(time.Millisecond))
}

func (r resolver) success(val any) SuccessFunc {
	switch fn := val.(type) {
	case nil:
		return nil
	case SuccessFunc:
		return fn
	case func(...string):
		return fn
	case func():
		return func(...string) { fn() }
	case func(string):
		return func(input ...string) { fn(first(input)) }
	}
	r.invalidCallback(KeySuccess, val)
	return nil
}

func (r resolver) cancelled(val any) CancelledFunc {
	switch fn := val.(type) {
	case nil:
		return nil
	case CancelledFunc:
		return fn
	case func():
		return fn
	}
	r.invalidCallback(KeyCancelled, val)
	return nil
}

func (r resolver) complete(val any) CompleteFunc {
	switch fn := val.(type) {
	case nil:
		return nil
	case CompleteFunc:
		return fn
	case func(bool, ...string):
		return fn
	case func(bool):
		return func(status bool, _ ...string) { fn(status) }
	case func(bool, string):
		return func(status bool, input ...string) { fn(status, first(input)) }
	}
	r.invalidCallback(KeyComplete, val)
	return nil
}

func (r resolver) invalidCallback(key string, val any) {
	r.logger.Warn().
		Str("option", key).
		Type("value", val).
		Msg("callback has an unsupported type and will not be invoked")
}

func first(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

package dialog

import (
	"fmt"
	"reflect"
	"strconv"
)

// Values is a configuration tree as supplied by callers or decoded from YAML.
// Nested trees may be Values or map[string]any.
type Values map[string]any

// Option keys recognized in a configuration tree.
const (
	KeyType       = "type"
	KeyHeading    = "heading"
	KeySubHeading = "subHeading"
	KeyMessage    = "message"
	KeyButtons    = "buttons"
	KeyOverlay    = "overlay"
	KeyEffect     = "effect"
	KeyWait       = "wait"
	KeyFrom       = "from"
	KeySuccess    = "success"
	KeyCancelled  = "cancelled"
	KeyComplete   = "complete"

	ButtonOK     = "OK"
	ButtonCancel = "CANCEL"

	keyLabel = "label"
	keyAttrs = "attrs"
	keyClass = "class"
)

// Defaults returns a fresh copy of the built-in configuration tree.
func Defaults() Values {
	return Values{
		KeyType:       TypeAlert.String(),
		KeyHeading:    "",
		KeySubHeading: "",
		KeyMessage:    "",
		KeyButtons: Values{
			ButtonOK: Values{
				keyLabel: "Ok",
				keyAttrs: Values{
					"id":     "btn_ok",
					keyClass: "alert-js-btn alert-js-btn-ok",
				},
			},
			ButtonCancel: Values{
				keyLabel: "Cancel",
				keyAttrs: Values{
					"id":     "btn_cancel",
					keyClass: "alert-js-btn alert-js-btn-cancel",
				},
			},
		},
		KeyOverlay:   true,
		KeyEffect:    "ease-in",
		KeyWait:      0,
		KeyFrom:      FromMiddle.String(),
		KeySuccess:   nil,
		KeyCancelled: nil,
		KeyComplete:  nil,
	}
}

// Clone returns a deep copy of v. Nested maps are copied as Values; leaves
// and slices are shared.
func (v Values) Clone() Values {
	if v == nil {
		return nil
	}
	out := make(Values, len(v))
	for k, val := range v {
		if m, ok := asMap(val); ok {
			out[k] = m.Clone()
			continue
		}
		out[k] = val
	}
	return out
}

// asMap returns val as Values when it is a string keyed map.
func asMap(val any) (Values, bool) {
	switch m := val.(type) {
	case Values:
		return m, true
	case map[string]any:
		return Values(m), true
	default:
		return nil, false
	}
}

func isCallable(val any) bool {
	return val != nil && reflect.TypeOf(val).Kind() == reflect.Func
}

func isScalar(val any) bool {
	if val == nil {
		return false
	}
	switch reflect.TypeOf(val).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func isList(val any) bool {
	if val == nil {
		return false
	}
	k := reflect.TypeOf(val).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// toText converts a leaf value to display text.
func toText(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// truthy follows loose truthiness: zero numbers, empty strings, false and nil
// are false.
func truthy(val any) bool {
	if val == nil {
		return false
	}
	if b, ok := val.(bool); ok {
		return b
	}
	if s, ok := val.(string); ok {
		return s != ""
	}
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	default:
		return true
	}
}

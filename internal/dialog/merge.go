package dialog

import (
	"slices"
	"sort"

	"github.com/rs/zerolog"
)

var callbackKeys = []string{KeySuccess, KeyCancelled, KeyComplete}

func isCallbackKey(key string) bool {
	return slices.Contains(callbackKeys, key)
}

// Merger reconciles user configuration with a default tree.
type Merger struct {
	logger zerolog.Logger
}

// NewMerger creates a Merger that reports dropped values to logger.
func NewMerger(logger zerolog.Logger) *Merger {
	return &Merger{logger: logger}
}

// Merge merges user onto defaults and returns the result. It never mutates
// either argument: the walk operates on a deep copy of defaults.
func Merge(defaults, user Values) Values {
	return NewMerger(zerolog.Nop()).Merge(defaults, user)
}

// Merge merges user onto a clone of defaults using these rules:
//
//   - keys absent from defaults are dropped
//   - scalar and callable values replace the default, except "class" which is
//     appended to the default, space joined
//   - nested maps are merged recursively, except under callback keys
//   - nil is a no-op
//   - lists and other shapes are dropped
func (m *Merger) Merge(defaults, user Values) Values {
	out := defaults.Clone()
	if out == nil {
		out = Values{}
	}
	m.mergeInto(out, user, "")
	return out
}

func (m *Merger) mergeInto(dst, src Values, path string) {
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		uv := src[key]
		field := joinPath(path, key)

		dv, known := dst[key]
		if !known {
			m.logger.Warn().Str("option", field).Msg("unknown option ignored")
			continue
		}

		switch {
		case uv == nil:
			continue
		case isScalar(uv) || isCallable(uv):
			if key == keyClass {
				dst[key] = toText(dv) + " " + toText(uv)
				continue
			}
			dst[key] = uv
		case isCallbackKey(key):
			m.logger.Warn().Str("option", field).Msg("callback option is not callable, ignored")
		default:
			um, ok := asMap(uv)
			if !ok {
				if isList(uv) {
					m.logger.Warn().Str("option", field).Msg("list values are not merged, ignored")
				} else {
					m.logger.Warn().Str("option", field).Type("value", uv).Msg("unsupported option value, ignored")
				}
				continue
			}

			dm, ok := asMap(dv)
			if !ok {
				m.logger.Warn().Str("option", field).Msg("nested options given for a scalar option, ignored")
				continue
			}
			m.mergeInto(dm, um, field)
		}
	}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

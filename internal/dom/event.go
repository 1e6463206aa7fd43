package dom

// EventTarget is implemented by elements with standard event registration.
type EventTarget interface {
	AddEventListener(event string, fn func())
}

// LegacyEventTarget is implemented by elements that only support the older
// "on"-prefixed attach mechanism.
type LegacyEventTarget interface {
	AttachEvent(event string, fn func())
}

// Listen binds fn to event on el. It prefers AddEventListener and falls back
// to AttachEvent with an "on" prefixed event name. It returns false when el
// supports neither.
func Listen(el any, event string, fn func()) bool {
	switch t := el.(type) {
	case EventTarget:
		t.AddEventListener(event, fn)
		return true
	case LegacyEventTarget:
		t.AttachEvent("on"+event, fn)
		return true
	default:
		return false
	}
}

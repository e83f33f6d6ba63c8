package codec

// EventKind identifies a lexical element reported by the tokenizer.
type EventKind uint8

const (
	EventNull EventKind = iota
	EventBoolean
	EventInteger
	EventDouble
	EventString
	EventMapStart
	EventMapKey
	EventMapEnd
	EventArrayStart
	EventArrayEnd
)

// String returns the name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNull:
		return "null"
	case EventBoolean:
		return "boolean"
	case EventInteger:
		return "integer"
	case EventDouble:
		return "double"
	case EventString:
		return "string"
	case EventMapStart:
		return "map_start"
	case EventMapKey:
		return "map_key"
	case EventMapEnd:
		return "map_end"
	case EventArrayStart:
		return "array_start"
	case EventArrayEnd:
		return "array_end"
	default:
		return "unknown"
	}
}

// Event is one lexical element of a JSON document.
//
// Only the field matching Kind is meaningful: Bool for EventBoolean, Int for
// EventInteger, Double for EventDouble and Text for EventString and
// EventMapKey.
type Event struct {
	Kind   EventKind
	Bool   bool
	Int    int64
	Double float64
	Text   string
}

// EventHandler receives events in document order. Returning a non-nil error
// stops the walk and the error is returned to the caller unchanged.
type EventHandler func(ev Event) error

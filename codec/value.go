package codec

// Value encodes and decodes one wire shape held in a Go value of type T.
//
// The zero state of T (a nil pointer, slice or map) means the value is
// absent: Struct omits absent fields when writing, List and Map drop absent
// elements, and Read returns the zero state for JSON null.
type Value[T any] interface {
	Write(w *Writer, v T)
	Read(r *Reader) T
	Absent(v T) bool
}

// Kind classifies the JSON a Value writes, for code that compares stored
// members outside Go.
type Kind int

const (
	// KindOther covers objects, lists, maps and custom Values.
	KindOther Kind = iota
	KindString
	KindNumber
	KindBool
	// KindTimestamp is an epoch-seconds number or an ISO 8601 string.
	KindTimestamp
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindTimestamp:
		return "timestamp"
	default:
		return "other"
	}
}

// kinded is implemented by the built-in scalar Values.
type kinded interface {
	wireKind() Kind
}

func kindOf(v any) Kind {
	if k, ok := v.(kinded); ok {
		return k.wireKind()
	}
	return KindOther
}

// Package failure classifies domain errors so the transport layer can map
// them without knowing every domain package.
package failure

import "errors"

type Kind int

const (
	Unhandled Kind = iota
	NotFound
	Conflict
	Invalid
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	case Invalid:
		return "invalid"
	default:
		return "unhandled"
	}
}

// Error is a domain error tagged with its Kind. Values are used as sentinels
// and wrapped with fmt.Errorf("%w: ...") to add the offending key.
type Error struct {
	Kind Kind
	Msg  string
}

func New(kind Kind, msg string) *Error { return &Error{Kind: kind, Msg: msg} }

func (e *Error) Error() string { return e.Msg }

// KindOf returns the Kind of the first *Error in err's chain, or Unhandled.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Unhandled
}

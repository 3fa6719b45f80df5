package types

import "errors"

// Kind identifies the value type an argument converts its raw token to.
type Kind int

const (
	KindEmpty Kind = iota // KindEmpty denotes an undeclared kind
	KindInt               // KindInt converts to int
	KindFloat             // KindFloat converts to float64
	KindStr               // KindStr keeps the raw string
	KindBool              // KindBool denotes a flag which takes no value
	KindList              // KindList accumulates converted items of an item kind
	KindTime              // KindTime converts to time.Time
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindStr:
		return "str"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindTime:
		return "time"
	case KindEmpty:
		fallthrough
	default:
		return "empty"
	}
}

// KeyValue denotes Key Value pairs
type KeyValue[K, V any] struct {
	Key   K
	Value V
}

// Sentinel errors for the definition and parse failure families. Every error
// produced by the parser wraps one of these so callers can branch with
// errors.Is without matching on message text.
var (
	ErrDefinition        = errors.New("invalid argument definition")
	ErrTypeMismatch      = errors.New("value type mismatch")
	ErrNotInChoices      = errors.New("value not in choices")
	ErrValidation        = errors.New("validation failed")
	ErrUnknownFlag       = errors.New("unknown flag")
	ErrMissingValue      = errors.New("missing flag value")
	ErrUnknownPositional = errors.New("unknown positional argument")
	ErrMissingPositional = errors.New("missing required positional arguments")
	ErrRequireNotMet     = errors.New("required argument not provided")
	ErrConflict          = errors.New("conflicting arguments provided")
	ErrConfig            = errors.New("config file error")
)

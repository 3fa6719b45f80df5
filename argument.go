package argman

import (
	"fmt"
	"strings"
	"time"

	"github.com/argman-dev/argman/types"
	"github.com/argman-dev/argman/util"
)

// ValidatorFunc is a custom validation predicate applied to a converted
// value. Returning a non-nil error rejects the value with the error message
// attached; returning false rejects it without one.
type ValidatorFunc func(value interface{}) (bool, error)

// Arg defines a flag-style argument (-x / --xyz).
type Arg struct {
	Short       string
	Long        string // normalized: '-' replaced by '_'
	Kind        types.Kind
	ItemKind    types.Kind // element kind, list only
	Default     interface{}
	Choices     []interface{}
	Validator   ValidatorFunc
	Parsed      bool
	Description string
}

// PosArg defines an argument identified by its position in the token stream.
type PosArg struct {
	Name        string
	Kind        types.Kind
	Default     interface{}
	Required    bool
	Parsed      bool
	Description string
}

// convert coerces a raw token to the argument's kind. For list arguments the
// conversion applies to a single item.
func (a *Arg) convert(value string) (interface{}, error) {
	if a.Kind == types.KindList {
		return util.ConvertString(value, a.ItemKind)
	}
	return util.ConvertString(value, a.Kind)
}

// validateChoices reports whether value is an accepted choice. List arguments
// check item membership.
func (a *Arg) validateChoices(value interface{}) bool {
	if a.Choices == nil {
		return true
	}
	for _, c := range a.Choices {
		if c == value {
			return true
		}
	}
	return false
}

// validateCustom runs the custom validator, if any.
func (a *Arg) validateCustom(value interface{}) (bool, error) {
	if a.Validator == nil {
		return true, nil
	}
	return a.Validator(value)
}

// choicesString renders the accepted choices for error messages.
func (a *Arg) choicesString() string {
	parts := make([]string, 0, len(a.Choices))
	for _, c := range a.Choices {
		parts = append(parts, fmt.Sprintf("%v", c))
	}
	return strings.Join(parts, ", ")
}

// helpName renders the argument's flag spellings and kind for help output.
func (a *Arg) helpName() string {
	var name string
	switch {
	case a.Short != "" && a.Long != "":
		name = fmt.Sprintf("-%s, --%s", a.Short, a.Long)
	case a.Short != "":
		name = "-" + a.Short
	case a.Long != "":
		name = "--" + a.Long
	}
	if a.Kind == types.KindList {
		name += fmt.Sprintf(" <%s[%s]>", a.Kind, a.ItemKind)
	} else if a.Kind != types.KindEmpty {
		name += fmt.Sprintf(" <%s>", a.Kind)
	}

	return name
}

// kindOfValue maps a declared default to its kind, or KindEmpty when the
// value is not of a supported kind.
func kindOfValue(value interface{}) types.Kind {
	switch value.(type) {
	case int:
		return types.KindInt
	case float64:
		return types.KindFloat
	case string:
		return types.KindStr
	case bool:
		return types.KindBool
	case time.Time:
		return types.KindTime
	default:
		return types.KindEmpty
	}
}

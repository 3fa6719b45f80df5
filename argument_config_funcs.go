package argman

import "github.com/argman-dev/argman/types"

// ConfigureArgumentFunc configures an argument declaration. Used by the
// ArgInt/ArgFloat/ArgStr/ArgBool/ArgList/ArgTime and ArgPos declaration
// calls.
type ConfigureArgumentFunc func(spec *argSpec)

// argSpec collects declaration settings before they are validated and turned
// into an Arg or PosArg.
type argSpec struct {
	short       string
	long        string
	defaultVal  interface{}
	choices     []interface{}
	validator   ValidatorFunc
	description string
	itemKind    types.Kind
	kind        types.Kind
	required    bool
}

// WithShortFlag sets the single-character short form of a flag (e.g. "n" for
// -n).
func WithShortFlag(short string) ConfigureArgumentFunc {
	return func(spec *argSpec) {
		spec.short = short
	}
}

// WithLongFlag sets the long form of a flag (e.g. "node" for --node). Dashes
// in the name are normalized to underscores in the canonical key; both
// spellings resolve to the same value.
func WithLongFlag(long string) ConfigureArgumentFunc {
	return func(spec *argSpec) {
		spec.long = long
	}
}

// WithDefaultValue sets the value returned when the argument is not supplied.
// The value must match the declared kind.
func WithDefaultValue(value interface{}) ConfigureArgumentFunc {
	return func(spec *argSpec) {
		spec.defaultVal = value
	}
}

// WithChoices restricts the accepted values. For list arguments the check
// applies per item.
func WithChoices(choices ...interface{}) ConfigureArgumentFunc {
	return func(spec *argSpec) {
		spec.choices = choices
	}
}

// WithValidator sets a custom validation predicate run after conversion and
// the choices check. The default value, if any, must pass it.
func WithValidator(validator ValidatorFunc) ConfigureArgumentFunc {
	return func(spec *argSpec) {
		spec.validator = validator
	}
}

// WithDescription sets the text shown in help output.
func WithDescription(description string) ConfigureArgumentFunc {
	return func(spec *argSpec) {
		spec.description = description
	}
}

// WithItemKind sets the element kind of a list argument. Defaults to KindStr.
func WithItemKind(kind types.Kind) ConfigureArgumentFunc {
	return func(spec *argSpec) {
		spec.itemKind = kind
	}
}

// OfKind sets the kind of a positional argument. Defaults to KindStr.
// Ignored by the flag declaration calls, whose kind is fixed.
func OfKind(kind types.Kind) ConfigureArgumentFunc {
	return func(spec *argSpec) {
		spec.kind = kind
	}
}

// SetRequired marks a positional argument as required (the default) or
// optional. Flags are always optional; declaring one required is expressed
// through Requires on another flag.
func SetRequired(required bool) ConfigureArgumentFunc {
	return func(spec *argSpec) {
		spec.required = required
	}
}

func newArgSpec(configs ...ConfigureArgumentFunc) *argSpec {
	spec := &argSpec{itemKind: types.KindStr, kind: types.KindStr, required: true}
	for _, config := range configs {
		config(spec)
	}

	return spec
}

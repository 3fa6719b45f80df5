// Package argman provides declarative command-line argument parsing.
//
// Arguments are declared per kind (ArgInt, ArgFloat, ArgStr, ArgBool,
// ArgList, ArgTime) with short and/or long spellings, defaults, choices and
// custom validators. Positional arguments are declared in order with ArgPos.
// Subcommands are nested Cmd instances created with AddCmd; recognizing a
// subcommand name hands the rest of the token stream to the child parser.
//
// Parse walks the token stream once, converting and validating each value as
// it is matched, and returns a Result whose slots are readable through every
// alias of an argument:
//
//	am := argman.New()
//	_ = am.ArgInt(argman.WithShortFlag("n"), argman.WithLongFlag("node"),
//		argman.WithDefaultValue(3), argman.WithDescription("number of nodes"))
//	args, err := am.Parse()
//	if err == nil {
//		n, _ := args.GetInt("node")
//		_ = n
//	}
//
// By default a parse failure prints the message and help and exits the
// process; WithExitOnError(false) turns failures into returned errors
// instead.
package argman

import (
	"io"
	"os"
	"strings"

	deque "github.com/ef-ds/deque/v2"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/argman-dev/argman/internal/parse"
	"github.com/argman-dev/argman/types"
)

// osExit is swapped out in tests.
var osExit = os.Exit

// Cmd is a parser instance: the argument registry, alias table, positional
// queue, constraint maps and result store for one command. The root parser
// and every subcommand share this type. A Cmd is built once, parsed once,
// and must not be shared across concurrent parse passes.
type Cmd struct {
	program       string
	description   string
	exitOnErr     bool
	posOnly       bool
	errorMessages map[string]string
	args          *orderedmap.OrderedMap[string, *Arg]
	posArgs       *orderedmap.OrderedMap[string, *PosArg]
	aliases       map[string]string
	result        *Result
	commands      *orderedmap.OrderedMap[string, *Cmd]
	requireArgs   map[string][]string
	conflictArgs  map[string][]string
	reqQueue      *deque.Deque[*PosArg]
	optQueue      *deque.Deque[*PosArg]
	stdout        io.Writer
	stderr        io.Writer
}

// New creates a root parser. The program name defaults to os.Args[0] and
// parse failures terminate the process unless WithExitOnError(false) is set.
func New(configs ...ConfigureCmdFunc) *Cmd {
	cmd := &Cmd{
		program:       os.Args[0],
		exitOnErr:     true,
		errorMessages: defaultErrors,
		args:          orderedmap.New[string, *Arg](),
		posArgs:       orderedmap.New[string, *PosArg](),
		aliases:       map[string]string{},
		commands:      orderedmap.New[string, *Cmd](),
		requireArgs:   map[string][]string{},
		conflictArgs:  map[string][]string{},
		stdout:        os.Stdout,
		stderr:        os.Stderr,
	}
	cmd.result = newResult(cmd.aliases)
	cmd.result.set(SubCmdKey, nil)
	for _, config := range configs {
		config(cmd)
	}

	return cmd
}

// AddCmd registers a named subcommand and returns its parser. The child
// inherits the error message table, exit policy and writers, and derives its
// program name from the parent's.
func (c *Cmd) AddCmd(name string, description string) *Cmd {
	sub := New(
		WithProgram(c.program+" "+name),
		WithExitOnError(c.exitOnErr),
		WithStdout(c.stdout),
		WithStderr(c.stderr),
	)
	sub.errorMessages = c.errorMessages
	sub.description = description
	c.commands.Set(name, sub)

	return sub
}

// ArgInt declares an integer option.
func (c *Cmd) ArgInt(configs ...ConfigureArgumentFunc) error {
	spec := newArgSpec(configs...)
	if spec.defaultVal != nil {
		if _, ok := spec.defaultVal.(int); !ok {
			return c.errf(types.ErrDefinition, errDefaultMismatch, types.KindInt)
		}
	}
	return c.setArg(types.KindInt, spec)
}

// ArgFloat declares a float option. An int default is widened to float64.
func (c *Cmd) ArgFloat(configs ...ConfigureArgumentFunc) error {
	spec := newArgSpec(configs...)
	if spec.defaultVal != nil {
		switch v := spec.defaultVal.(type) {
		case float64:
		case int:
			spec.defaultVal = float64(v)
		default:
			return c.errf(types.ErrDefinition, errDefaultMismatch, types.KindFloat)
		}
	}
	return c.setArg(types.KindFloat, spec)
}

// ArgStr declares a string option.
func (c *Cmd) ArgStr(configs ...ConfigureArgumentFunc) error {
	spec := newArgSpec(configs...)
	if spec.defaultVal != nil {
		if _, ok := spec.defaultVal.(string); !ok {
			return c.errf(types.ErrDefinition, errDefaultMismatch, types.KindStr)
		}
	}
	return c.setArg(types.KindStr, spec)
}

// ArgBool declares a boolean flag. The flag takes no value: its presence
// sets true. When the default is true and a long name exists, a synthetic
// --no-<long> spelling is registered which sets false.
func (c *Cmd) ArgBool(configs ...ConfigureArgumentFunc) error {
	spec := newArgSpec(configs...)
	if spec.defaultVal == nil {
		spec.defaultVal = false
	}
	value, ok := spec.defaultVal.(bool)
	if !ok {
		return c.errf(types.ErrDefinition, errDefaultMismatch, types.KindBool)
	}
	if err := c.setArg(types.KindBool, spec); err != nil {
		return err
	}
	if value && spec.long != "" {
		c.aliases["no-"+spec.long] = canonicalName(spec.short, spec.long)
	}
	return nil
}

// ArgList declares a list option. Each occurrence of the flag converts one
// item of the item kind (KindStr unless WithItemKind says otherwise) and
// appends it; accumulation starts from a copy of the default, never the
// default slice itself.
func (c *Cmd) ArgList(configs ...ConfigureArgumentFunc) error {
	spec := newArgSpec(configs...)
	if spec.defaultVal == nil {
		spec.defaultVal = []interface{}{}
	} else {
		normalized, ok := normalizeList(spec.defaultVal)
		if !ok {
			return c.errf(types.ErrDefinition, errDefaultMismatch, types.KindList)
		}
		spec.defaultVal = normalized
	}
	return c.setArg(types.KindList, spec)
}

// ArgTime declares a timestamp option. Values are parsed leniently (RFC3339,
// common date layouts, unix timestamps) in local time.
func (c *Cmd) ArgTime(configs ...ConfigureArgumentFunc) error {
	spec := newArgSpec(configs...)
	if spec.defaultVal != nil {
		if kindOfValue(spec.defaultVal) != types.KindTime {
			return c.errf(types.ErrDefinition, errDefaultMismatch, types.KindTime)
		}
	}
	return c.setArg(types.KindTime, spec)
}

// ArgPos declares a positional argument. Positionals are required by default
// (SetRequired(false) makes one optional) and are assigned in declaration
// order, required slots first. A required positional may not be declared
// after an optional one.
func (c *Cmd) ArgPos(name string, configs ...ConfigureArgumentFunc) error {
	spec := newArgSpec(configs...)
	if spec.defaultVal != nil && kindOfValue(spec.defaultVal) != spec.kind {
		return c.errf(types.ErrDefinition, errPosDefaultMismatch)
	}
	if spec.required {
		for pair := c.posArgs.Oldest(); pair != nil; pair = pair.Next() {
			if !pair.Value.Required {
				return c.errf(types.ErrDefinition, errRequiredAfterOptional)
			}
		}
	}
	c.posArgs.Set(name, &PosArg{
		Name:        name,
		Kind:        spec.kind,
		Default:     spec.defaultVal,
		Required:    spec.required,
		Description: spec.description,
	})
	c.result.set(name, spec.defaultVal)

	return nil
}

// Requires declares that supplying name also requires supplying every
// argument in required. All names must already be declared.
func (c *Cmd) Requires(name string, required []string) error {
	if _, ok := c.aliases[name]; !ok {
		return c.errf(types.ErrDefinition, errRequireArgNotFound, name)
	}
	for _, dep := range required {
		if _, ok := c.aliases[dep]; !ok {
			return c.errf(types.ErrDefinition, errRequireArgNotFound, dep)
		}
	}
	c.requireArgs[c.resolveName(name)] = required

	return nil
}

// Conflicts declares that supplying name forbids supplying any argument in
// conflicting. All names must already be declared.
func (c *Cmd) Conflicts(name string, conflicting []string) error {
	if _, ok := c.aliases[name]; !ok {
		return c.errf(types.ErrDefinition, errConflictArgNotFound, name)
	}
	for _, other := range conflicting {
		if _, ok := c.aliases[other]; !ok {
			return c.errf(types.ErrDefinition, errConflictArgNotFound, other)
		}
	}
	c.conflictArgs[c.resolveName(name)] = conflicting

	return nil
}

// Parse consumes the process argument vector (os.Args without the program
// name) and returns the result store. With the default exit-on-error policy
// a failure prints the message and help and terminates the process;
// otherwise the failure is returned.
func (c *Cmd) Parse() (*Result, error) {
	return c.ParseArgs(os.Args[1:])
}

// ParseArgs consumes an explicit token slice, excluding the program name.
func (c *Cmd) ParseArgs(argv []string) (*Result, error) {
	return c.run(argv)
}

// ParseString lexes a command-line string with shell-like quoting rules and
// parses the resulting tokens.
func (c *Cmd) ParseString(cmdLine string) (*Result, error) {
	argv, err := parse.Split(cmdLine)
	if err != nil {
		return nil, err
	}
	return c.run(argv)
}

// PrintHelp writes usage, options, arguments and subcommands to stdout.
func (c *Cmd) PrintHelp() {
	c.writeHelp(c.stdout)
}

// setArg validates a declaration and registers it: definition-time identity
// checks, then the default through the same choice/validator pipeline that
// parsed values go through.
func (c *Cmd) setArg(kind types.Kind, spec *argSpec) error {
	if spec.short == "" && spec.long == "" {
		return c.errf(types.ErrDefinition, errNoShortOrLong)
	}
	if spec.short != "" && len([]rune(spec.short)) != 1 {
		return c.errf(types.ErrDefinition, errShortNotOneChar)
	}
	if spec.long != "" && len([]rune(spec.long)) < 2 {
		return c.errf(types.ErrDefinition, errLongTooShort)
	}
	itemKind := types.KindEmpty
	if kind == types.KindList {
		itemKind = spec.itemKind
	}
	if spec.choices != nil {
		want := kind
		if kind == types.KindList {
			want = itemKind
		}
		for _, choice := range spec.choices {
			if kindOfValue(choice) != want {
				return c.errf(types.ErrDefinition, errChoicesTypeMismatch)
			}
		}
		if spec.defaultVal != nil && kind != types.KindList && !containsValue(spec.choices, spec.defaultVal) {
			return c.errf(types.ErrDefinition, errDefaultNotInChoices)
		}
	}
	if spec.validator != nil && spec.defaultVal != nil {
		if ok, err := spec.validator(spec.defaultVal); err != nil || !ok {
			return c.errf(types.ErrDefinition, errDefaultFailedValidator)
		}
	}

	canonical := canonicalName(spec.short, spec.long)
	arg := &Arg{
		Short:       spec.short,
		Long:        normalizeLong(spec.long),
		Kind:        kind,
		ItemKind:    itemKind,
		Default:     spec.defaultVal,
		Choices:     spec.choices,
		Validator:   spec.validator,
		Description: spec.description,
	}
	c.args.Set(canonical, arg)
	if spec.long != "" {
		c.aliases[spec.long] = canonical
		c.aliases[normalizeLong(spec.long)] = canonical
	}
	if spec.short != "" {
		c.aliases[spec.short] = canonical
	}
	c.result.set(canonical, spec.defaultVal)

	return nil
}

// canonicalName is the identity an argument's value is stored under: the
// normalized long name, or the short name when no long exists.
func canonicalName(short, long string) string {
	if long != "" {
		return normalizeLong(long)
	}
	return short
}

func normalizeLong(long string) string {
	return strings.ReplaceAll(long, "-", "_")
}

func (c *Cmd) resolveName(name string) string {
	if key, ok := c.aliases[name]; ok {
		return key
	}
	return name
}

// lookupArg resolves any alias to its argument definition.
func (c *Cmd) lookupArg(name string) *Arg {
	key, ok := c.aliases[name]
	if !ok {
		return nil
	}
	arg, _ := c.args.Get(key)
	return arg
}

func containsValue(values []interface{}, value interface{}) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// normalizeList widens the supported default slice types to []interface{}.
func normalizeList(value interface{}) ([]interface{}, bool) {
	switch v := value.(type) {
	case []interface{}:
		return v, true
	case []string:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = item
		}
		return out, true
	case []int:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = item
		}
		return out, true
	case []float64:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = item
		}
		return out, true
	default:
		return nil, false
	}
}

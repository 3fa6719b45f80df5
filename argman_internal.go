package argman

import (
	"fmt"
	"strings"

	deque "github.com/ef-ds/deque/v2"
	"github.com/fatih/color"

	"github.com/argman-dev/argman/types"
	"github.com/argman-dev/argman/util"
)

var errColor = color.New(color.FgRed)

// run is the token-consumption loop. Each consumer reports how many tokens
// it swallowed ("jump") and the cursor advances by that amount; this is what
// distinguishes a bare flag (jump 1) from an option+value pair (jump 2) and
// a cluster (jump 1 for the whole token). Seeing a bare "--" switches the
// loop permanently into positional-only mode.
func (c *Cmd) run(argv []string) (*Result, error) {
	c.fillPosQueues()

	for i := 0; i < len(argv); {
		arg := argv[i]

		if c.posOnly {
			i++
			if err := c.parsePosArg(arg); err != nil {
				return nil, c.fail(err)
			}
			continue
		}

		if arg == "--help" {
			c.PrintHelp()
			osExit(0)
			return c.result, nil
		}

		if arg == "--" {
			c.posOnly = true
			i++
			continue
		}

		if !strings.HasPrefix(arg, "-") {
			if sub, ok := c.commands.Get(arg); ok {
				// The subcommand swallows the rest of the line; no
				// root-level tokens are processed past its name.
				res, err := sub.run(argv[i+1:])
				if err != nil {
					return nil, err
				}
				c.result.set(arg, res)
				c.result.set(SubCmdKey, arg)
				break
			}
		}

		if strings.HasPrefix(arg, "--") {
			var jump int
			var err error
			if eq := strings.Index(arg, "="); eq >= 0 {
				// name=value is exclusively a long-option form and
				// consumes the single combined token.
				_, err = c.parseLongArg(arg[:eq], arg[eq+1:], true)
				jump = 1
			} else {
				next, hasNext := "", false
				if i+1 < len(argv) {
					next, hasNext = argv[i+1], true
				}
				jump, err = c.parseLongArg(arg, next, hasNext)
			}
			if err != nil {
				return nil, c.fail(err)
			}
			i += jump
			continue
		}

		if strings.HasPrefix(arg, "-") {
			next, hasNext := "", false
			if i+1 < len(argv) {
				next, hasNext = argv[i+1], true
			}
			jump, err := c.parseShortArg(arg, next, hasNext)
			if err != nil {
				return nil, c.fail(err)
			}
			i += jump
			continue
		}

		if !strings.HasPrefix(arg, "-") {
			i++
			if err := c.parsePosArg(arg); err != nil {
				return nil, c.fail(err)
			}
			continue
		}

		// All token classes are handled above; reaching this is a
		// programming error, not a user input error.
		panic(c.errf(nil, errParseUnreachable, arg).Error())
	}

	if err := c.checkMissingPositionals(); err != nil {
		return nil, c.fail(err)
	}
	if err := c.checkRequires(); err != nil {
		return nil, c.fail(err)
	}
	if err := c.checkConflicts(); err != nil {
		return nil, c.fail(err)
	}

	return c.result, nil
}

// fail applies the command's error policy: print and exit, or hand the error
// back to the caller.
func (c *Cmd) fail(err error) error {
	if c.exitOnErr {
		errColor.Fprintln(c.stderr, err.Error())
		c.PrintHelp()
		osExit(1)
	}
	return err
}

// parseLongArg consumes a --name token. next is the lookahead token used as
// the value for non-boolean options; hasNext is false at the end of the
// stream. Returns the number of tokens consumed.
func (c *Cmd) parseLongArg(longArg string, next string, hasNext bool) (int, error) {
	name := strings.TrimPrefix(longArg, "--")
	arg := c.lookupArg(name)
	if arg == nil {
		return 0, c.errf(types.ErrUnknownFlag, errUnknownLong, name)
	}
	if arg.Kind == types.KindBool {
		// The token spelling decides the value: the synthetic no-<long>
		// alias of a default-true flag negates it.
		value := !strings.HasPrefix(name, "no-")
		c.setValue(arg, value)
		return 1, nil
	}
	if !hasNext {
		return 0, c.errf(types.ErrMissingValue, errMissingValueLong, name)
	}
	if err := c.applyValue(arg, name, next, true); err != nil {
		return 0, err
	}

	return 2, nil
}

// parseShortArg consumes a -x or -xyz token. A remainder longer than one
// character is a cluster: every character must resolve to a boolean option.
func (c *Cmd) parseShortArg(shortArg string, next string, hasNext bool) (int, error) {
	if strings.Contains(shortArg, "=") {
		option := strings.SplitN(shortArg, "=", 2)[0]
		return 0, c.errf(types.ErrUnknownFlag, errShortWithEqualSign, option)
	}
	name := strings.TrimPrefix(shortArg, "-")
	if len([]rune(name)) > 1 {
		for _, r := range name {
			flag := string(r)
			arg := c.lookupArg(flag)
			if arg == nil {
				return 0, c.errf(types.ErrUnknownFlag, errUnknownShortInCluster, flag, name)
			}
			if arg.Kind != types.KindBool {
				return 0, c.errf(types.ErrUnknownFlag, errShortClusterNoBool, flag)
			}
			c.setValue(arg, true)
		}
		return 1, nil
	}

	arg := c.lookupArg(name)
	if arg == nil {
		return 0, c.errf(types.ErrUnknownFlag, errUnknownSingleShort, name)
	}
	if arg.Kind == types.KindBool {
		c.setValue(arg, true)
		return 1, nil
	}
	if !hasNext {
		return 0, c.errf(types.ErrMissingValue, errMissingValueShort, name)
	}
	if err := c.applyValue(arg, name, next, false); err != nil {
		return 0, err
	}

	return 2, nil
}

// applyValue runs the fixed per-value pipeline: convert, choices check,
// custom validator, then store (accumulating for list arguments).
func (c *Cmd) applyValue(arg *Arg, name string, raw string, long bool) error {
	value, err := arg.convert(raw)
	if err != nil {
		if arg.Kind == types.KindList {
			return c.errf(types.ErrTypeMismatch, errListItemTypeMismatch, raw, arg.ItemKind)
		}
		return c.errf(types.ErrTypeMismatch, errValueTypeMismatch, arg.Kind, flagSpelling(name, long))
	}
	if !arg.validateChoices(value) {
		if long {
			return c.errf(types.ErrNotInChoices, errNotInChoicesLong, name, arg.choicesString())
		}
		return c.errf(types.ErrNotInChoices, errNotInChoicesShort, name, arg.choicesString())
	}
	valid, verr := arg.validateCustom(value)
	if verr != nil {
		if long {
			return c.errf(types.ErrValidation, errValidationLongMsg, name, value, verr.Error())
		}
		return c.errf(types.ErrValidation, errValidationShortMsg, name, value, verr.Error())
	}
	if !valid {
		if long {
			return c.errf(types.ErrValidation, errValidationLong, name, value)
		}
		return c.errf(types.ErrValidation, errValidationShort, name, value)
	}

	if arg.Kind == types.KindList {
		value = c.accumulate(arg, value)
	}
	c.setValue(arg, value)

	return nil
}

// accumulate appends a converted item to the list argument's current value.
// The first occurrence in a parse pass starts from a copy of the declared
// default so the default slice is never mutated in place.
func (c *Cmd) accumulate(arg *Arg, item interface{}) []interface{} {
	var values []interface{}
	if arg.Parsed {
		current, _ := c.result.Get(canonicalName(arg.Short, arg.Long))
		values, _ = current.([]interface{})
	} else if def, ok := arg.Default.([]interface{}); ok {
		values = make([]interface{}, len(def))
		copy(values, def)
	}
	return append(values, item)
}

// setValue stores the value under the argument's canonical key (readable
// through every alias) and marks the argument parsed.
func (c *Cmd) setValue(arg *Arg, value interface{}) {
	c.result.set(canonicalName(arg.Short, arg.Long), value)
	arg.Parsed = true
}

// fillPosQueues snapshots the unparsed positional slots into the two queues
// the assignment rule consumes: required slots drain first, in declaration
// order, then optional slots.
func (c *Cmd) fillPosQueues() {
	c.reqQueue = deque.New[*PosArg]()
	c.optQueue = deque.New[*PosArg]()
	for pair := c.posArgs.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Parsed {
			continue
		}
		if pair.Value.Required {
			c.reqQueue.PushBack(pair.Value)
		} else {
			c.optQueue.PushBack(pair.Value)
		}
	}
}

// parsePosArg assigns a raw token to the next unparsed positional slot.
func (c *Cmd) parsePosArg(token string) error {
	if c.posArgs.Len() < 1 {
		return c.errf(types.ErrUnknownPositional, errUnknownPositional, token)
	}
	slot, ok := c.reqQueue.PopFront()
	if !ok {
		slot, ok = c.optQueue.PopFront()
	}
	if !ok {
		return c.errf(types.ErrUnknownPositional, errUnknownPositional, token)
	}
	slot.Parsed = true

	value, err := c.convertPositional(slot, token)
	if err != nil {
		return err
	}
	c.result.set(slot.Name, value)

	return nil
}

func (c *Cmd) convertPositional(slot *PosArg, token string) (interface{}, error) {
	value, err := util.ConvertString(token, slot.Kind)
	if err != nil {
		return nil, c.errf(types.ErrTypeMismatch, errPosTypeMismatch, slot.Name, slot.Kind)
	}
	return value, nil
}

// checkMissingPositionals reports every required, defaultless positional the
// token stream left unparsed, aggregated into one error.
func (c *Cmd) checkMissingPositionals() error {
	var missing []string
	for pair := c.posArgs.Oldest(); pair != nil; pair = pair.Next() {
		pos := pair.Value
		if !pos.Parsed && pos.Required && pos.Default == nil {
			missing = append(missing, pos.Name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	lines := make([]string, 0, len(missing)+1)
	lines = append(lines, c.message(errMissingPosHeader))
	for _, name := range missing {
		lines = append(lines, fmt.Sprintf(c.message(errMissingPosItem), name))
	}
	return &ParseError{
		Key: errMissingPosHeader,
		msg: strings.Join(lines, "\n"),
		err: types.ErrMissingPositional,
	}
}

// checkRequires validates the requires relations over every parsed option,
// listing all missing dependencies of a violating option at once.
func (c *Cmd) checkRequires() error {
	if len(c.requireArgs) == 0 {
		return nil
	}
	for pair := c.args.Oldest(); pair != nil; pair = pair.Next() {
		if !pair.Value.Parsed {
			continue
		}
		var missing []string
		for _, dep := range c.requireArgs[pair.Key] {
			if arg := c.lookupArg(dep); arg != nil && !arg.Parsed {
				missing = append(missing, dep)
			}
		}
		if len(missing) > 0 {
			return c.errf(types.ErrRequireNotMet, errRequireNotProvided,
				pair.Key, strings.Join(missing, ", "))
		}
	}
	return nil
}

// checkConflicts validates the conflicts relations over every parsed option,
// listing all conflicting options that were actually supplied.
func (c *Cmd) checkConflicts() error {
	if len(c.conflictArgs) == 0 {
		return nil
	}
	for pair := c.args.Oldest(); pair != nil; pair = pair.Next() {
		if !pair.Value.Parsed {
			continue
		}
		var provided []string
		for _, other := range c.conflictArgs[pair.Key] {
			if arg := c.lookupArg(other); arg != nil && arg.Parsed {
				provided = append(provided, other)
			}
		}
		if len(provided) > 0 {
			return c.errf(types.ErrConflict, errConflictProvided,
				pair.Key, strings.Join(provided, ", "))
		}
	}
	return nil
}

func (c *Cmd) message(key string) string {
	if tmpl, ok := c.errorMessages[key]; ok {
		return tmpl
	}
	return defaultErrors[key]
}

func flagSpelling(name string, long bool) string {
	if long {
		return "--" + name
	}
	return "-" + name
}

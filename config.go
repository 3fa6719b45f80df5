package argman

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/argman-dev/argman/types"
	"github.com/argman-dev/argman/util"
)

// LoadConfig merges a flat JSON object of name→value pairs into the result.
// Keys resolve through the alias table (an unknown key is an error naming the
// key and file). Options already set by the token pass keep their value: the
// command line takes precedence over the file. Values are coerced to the
// option's kind where the JSON representation differs.
func (c *Cmd) LoadConfig(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return c.errf(types.ErrConfig, errConfigRead, filePath, err)
	}
	var entries map[string]interface{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return c.errf(types.ErrConfig, errConfigRead, filePath, err)
	}
	for name, raw := range entries {
		key, ok := c.aliases[name]
		if !ok {
			return c.errf(types.ErrConfig, errUnknownInConfig, name, filePath)
		}
		arg, _ := c.args.Get(key)
		if arg.Parsed {
			continue
		}
		value, err := c.coerceConfigValue(arg, name, raw)
		if err != nil {
			return err
		}
		c.result.set(key, value)
	}

	return nil
}

// coerceConfigValue maps a decoded JSON value onto the option's kind. JSON
// numbers decode as float64, so integral floats narrow to int for KindInt;
// strings convert through the same per-kind conversion tokens use.
func (c *Cmd) coerceConfigValue(arg *Arg, name string, raw interface{}) (interface{}, error) {
	mismatch := func() error {
		return c.errf(types.ErrTypeMismatch, errValueTypeMismatch, arg.Kind, name)
	}

	if arg.Kind == types.KindList {
		items, ok := raw.([]interface{})
		if !ok {
			return nil, mismatch()
		}
		values := make([]interface{}, 0, len(items))
		for _, item := range items {
			value, err := c.coerceScalar(arg.ItemKind, item)
			if err != nil {
				return nil, mismatch()
			}
			values = append(values, value)
		}
		return values, nil
	}

	value, err := c.coerceScalar(arg.Kind, raw)
	if err != nil {
		return nil, mismatch()
	}
	return value, nil
}

func (c *Cmd) coerceScalar(kind types.Kind, raw interface{}) (interface{}, error) {
	switch kind {
	case types.KindInt:
		switch v := raw.(type) {
		case float64:
			if v == float64(int(v)) {
				return int(v), nil
			}
		case string:
			return util.ConvertString(v, kind)
		}
	case types.KindFloat:
		switch v := raw.(type) {
		case float64:
			return v, nil
		case string:
			return util.ConvertString(v, kind)
		}
	case types.KindStr:
		if v, ok := raw.(string); ok {
			return v, nil
		}
	case types.KindBool:
		switch v := raw.(type) {
		case bool:
			return v, nil
		case string:
			return util.ConvertString(v, kind)
		}
	case types.KindTime:
		if v, ok := raw.(string); ok {
			return util.ConvertString(v, kind)
		}
	}

	return nil, fmt.Errorf("cannot coerce %v to %s", raw, kind)
}

// DumpArgs serializes the canonical (key, value) pairs of the result as
// indented JSON, to filePath or, when filePath is empty, to stdout.
func (c *Cmd) DumpArgs(filePath string) error {
	data, err := json.MarshalIndent(c.result, "", "  ")
	if err != nil {
		return c.errf(types.ErrConfig, errSerializeFailed, err)
	}
	if filePath == "" {
		fmt.Fprintln(c.stdout, string(data))
		return nil
	}
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return c.errf(types.ErrConfig, errConfigWrite, filePath, err)
	}

	return nil
}

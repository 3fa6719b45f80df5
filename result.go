package argman

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/argman-dev/argman/types"
)

// SubCmdKey is the distinguished result slot holding the name of the invoked
// subcommand, or nil when none was invoked.
const SubCmdKey = "sub_cmd"

// Result holds parsed values addressable by any alias of an argument. Values
// are stored once under the canonical key; reads through a short or long
// alias resolve to the same slot, so writes are visible through every
// spelling. Iteration follows declaration order.
type Result struct {
	values  *orderedmap.OrderedMap[string, interface{}]
	aliases map[string]string
}

// newResult creates a Result sharing the command's alias table. The table is
// shared by reference so aliases registered after the Result is created
// still resolve.
func newResult(aliases map[string]string) *Result {
	return &Result{
		values:  orderedmap.New[string, interface{}](),
		aliases: aliases,
	}
}

// resolve maps any recognized spelling to the canonical key.
func (r *Result) resolve(name string) string {
	if key, ok := r.aliases[name]; ok {
		return key
	}
	return name
}

func (r *Result) set(name string, value interface{}) {
	r.values.Set(r.resolve(name), value)
}

// Get returns the value stored under any alias of an argument. The second
// return value is false when no such argument exists.
func (r *Result) Get(name string) (interface{}, bool) {
	return r.values.Get(r.resolve(name))
}

// GetInt returns the int value of an argument, or false when the argument is
// unknown, unset, or not an int.
func (r *Result) GetInt(name string) (int, bool) {
	value, ok := r.Get(name)
	if !ok {
		return 0, false
	}
	v, ok := value.(int)
	return v, ok
}

// GetFloat returns the float value of an argument.
func (r *Result) GetFloat(name string) (float64, bool) {
	value, ok := r.Get(name)
	if !ok {
		return 0, false
	}
	v, ok := value.(float64)
	return v, ok
}

// GetStr returns the string value of an argument.
func (r *Result) GetStr(name string) (string, bool) {
	value, ok := r.Get(name)
	if !ok {
		return "", false
	}
	v, ok := value.(string)
	return v, ok
}

// GetBool returns the bool value of an argument.
func (r *Result) GetBool(name string) (bool, bool) {
	value, ok := r.Get(name)
	if !ok {
		return false, false
	}
	v, ok := value.(bool)
	return v, ok
}

// GetList returns the accumulated items of a list argument.
func (r *Result) GetList(name string) ([]interface{}, bool) {
	value, ok := r.Get(name)
	if !ok {
		return nil, false
	}
	v, ok := value.([]interface{})
	return v, ok
}

// GetTime returns the time value of an argument.
func (r *Result) GetTime(name string) (time.Time, bool) {
	value, ok := r.Get(name)
	if !ok {
		return time.Time{}, false
	}
	v, ok := value.(time.Time)
	return v, ok
}

// Sub returns the nested result of an invoked subcommand.
func (r *Result) Sub(name string) (*Result, bool) {
	value, ok := r.Get(name)
	if !ok {
		return nil, false
	}
	v, ok := value.(*Result)
	return v, ok
}

// SubCmd returns the name of the invoked subcommand, or "" when none was.
func (r *Result) SubCmd() string {
	value, ok := r.Get(SubCmdKey)
	if !ok {
		return ""
	}
	name, _ := value.(string)
	return name
}

// Items returns the canonical (key, value) pairs in declaration order.
func (r *Result) Items() []types.KeyValue[string, interface{}] {
	items := make([]types.KeyValue[string, interface{}], 0, r.values.Len())
	for pair := r.values.Oldest(); pair != nil; pair = pair.Next() {
		items = append(items, types.KeyValue[string, interface{}]{Key: pair.Key, Value: pair.Value})
	}
	return items
}

// MarshalJSON serializes the result as a flat object in declaration order.
// Nested subcommand results serialize as nested objects.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.values)
}

// String returns a compact representation for debugging.
func (r *Result) String() string {
	parts := make([]string, 0, r.values.Len())
	for pair := r.values.Oldest(); pair != nil; pair = pair.Next() {
		parts = append(parts, fmt.Sprintf("%s=%v", pair.Key, pair.Value))
	}
	return "<Result " + strings.Join(parts, ", ") + ">"
}

package util

import (
	"fmt"
	"strconv"

	"github.com/araddon/dateparse"

	"github.com/argman-dev/argman/types"
)

// ConvertString coerces a raw token to the value type of the given kind.
// List kinds are converted one item at a time by the caller, so KindList is
// not a valid argument here.
func ConvertString(value string, kind types.Kind) (interface{}, error) {
	switch kind {
	case types.KindInt:
		val, err := strconv.Atoi(value)
		if err != nil {
			return nil, err
		}
		return val, nil
	case types.KindFloat:
		val, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, err
		}
		return val, nil
	case types.KindStr:
		return value, nil
	case types.KindBool:
		val, err := strconv.ParseBool(value)
		if err != nil {
			return nil, err
		}
		return val, nil
	case types.KindTime:
		val, err := dateparse.ParseLocal(value)
		if err != nil {
			return nil, err
		}
		return val, nil
	default:
		return nil, fmt.Errorf("cannot convert to kind %s", kind)
	}
}

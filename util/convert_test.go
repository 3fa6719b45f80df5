package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argman-dev/argman/types"
)

func TestConvertString_Int(t *testing.T) {
	v, err := ConvertString("42", types.KindInt)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = ConvertString("4.2", types.KindInt)
	assert.Error(t, err)
	_, err = ConvertString("forty", types.KindInt)
	assert.Error(t, err)
}

func TestConvertString_Float(t *testing.T) {
	v, err := ConvertString("4.2", types.KindFloat)
	require.NoError(t, err)
	assert.Equal(t, 4.2, v)

	v, err = ConvertString("4", types.KindFloat)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}

func TestConvertString_Str(t *testing.T) {
	v, err := ConvertString("06", types.KindStr)
	require.NoError(t, err)
	assert.Equal(t, "06", v, "numeric strings stay strings for the str kind")
}

func TestConvertString_Bool(t *testing.T) {
	v, err := ConvertString("true", types.KindBool)
	require.NoError(t, err)
	assert.Equal(t, true, v)

	_, err = ConvertString("yep", types.KindBool)
	assert.Error(t, err)
}

func TestConvertString_Time(t *testing.T) {
	v, err := ConvertString("2023-04-05", types.KindTime)
	require.NoError(t, err)
	ts, ok := v.(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2023, ts.Year())
	assert.Equal(t, time.April, ts.Month())
	assert.Equal(t, 5, ts.Day())

	_, err = ConvertString("not a date", types.KindTime)
	assert.Error(t, err)
}

func TestConvertString_UnsupportedKind(t *testing.T) {
	_, err := ConvertString("x", types.KindList)
	assert.Error(t, err, "list conversion happens per item, never on the list kind itself")
}

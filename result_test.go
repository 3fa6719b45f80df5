package argman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_UnknownNameIsNotOK(t *testing.T) {
	am := newTestCmd(t)
	require.NoError(t, am.ArgInt(WithLongFlag("num")))

	args, err := am.ParseArgs(nil)
	require.NoError(t, err)

	_, ok := args.Get("nope")
	assert.False(t, ok)
	_, ok = args.GetInt("nope")
	assert.False(t, ok)
}

func TestResult_TypedGetterRejectsWrongKind(t *testing.T) {
	am := newTestCmd(t)
	require.NoError(t, am.ArgStr(WithLongFlag("name"), WithDefaultValue("ada")))

	args, err := am.ParseArgs(nil)
	require.NoError(t, err)

	_, ok := args.GetInt("name")
	assert.False(t, ok, "GetInt on a string slot reports !ok")
	v, ok := args.GetStr("name")
	assert.True(t, ok)
	assert.Equal(t, "ada", v)
}

func TestResult_ItemsFollowDeclarationOrder(t *testing.T) {
	am := newTestCmd(t)
	require.NoError(t, am.ArgStr(WithLongFlag("alpha"), WithDefaultValue("a")))
	require.NoError(t, am.ArgStr(WithLongFlag("beta"), WithDefaultValue("b")))
	require.NoError(t, am.ArgPos("gamma", SetRequired(false), WithDefaultValue("c")))

	args, err := am.ParseArgs(nil)
	require.NoError(t, err)

	items := args.Items()
	require.Len(t, items, 4) // sub_cmd + three declarations
	assert.Equal(t, SubCmdKey, items[0].Key)
	assert.Equal(t, "alpha", items[1].Key)
	assert.Equal(t, "beta", items[2].Key)
	assert.Equal(t, "gamma", items[3].Key)
}

func TestResult_UnsetDefaultReadsNil(t *testing.T) {
	am := newTestCmd(t)
	require.NoError(t, am.ArgInt(WithLongFlag("num")))

	args, err := am.ParseArgs(nil)
	require.NoError(t, err)

	v, ok := args.Get("num")
	assert.True(t, ok, "the slot exists even without a default")
	assert.Nil(t, v)
}

func TestResult_StringRendersPairs(t *testing.T) {
	am := newTestCmd(t)
	require.NoError(t, am.ArgInt(WithLongFlag("num"), WithDefaultValue(3)))

	args, err := am.ParseArgs(nil)
	require.NoError(t, err)

	assert.Contains(t, args.String(), "num=3")
}

package argman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argman-dev/argman/types"
)

func TestSubcommand_BasicDispatch(t *testing.T) {
	am := newTestCmd(t)
	require.NoError(t, am.ArgBool(WithLongFlag("verbose")))
	helper := am.AddCmd("helper", "helper things")
	require.NoError(t, helper.ArgInt(WithLongFlag("num")))

	args, err := am.ParseArgs([]string{"helper", "--num", "42"})
	require.NoError(t, err)

	assert.Equal(t, "helper", args.SubCmd())
	sub, ok := args.Sub("helper")
	require.True(t, ok, "the child result is nested under the command name")
	num, _ := sub.GetInt("num")
	assert.Equal(t, 42, num)
}

func TestSubcommand_Positionals(t *testing.T) {
	am := newTestCmd(t)
	process := am.AddCmd("process", "")
	require.NoError(t, process.ArgPos("input_file"))
	require.NoError(t, process.ArgPos("output_file", SetRequired(false)))

	args, err := am.ParseArgs([]string{"process", "input.txt", "output.txt"})
	require.NoError(t, err)

	sub, _ := args.Sub("process")
	in, _ := sub.GetStr("input_file")
	out, _ := sub.GetStr("output_file")
	assert.Equal(t, "input.txt", in)
	assert.Equal(t, "output.txt", out)
}

func TestSubcommand_DefaultsApply(t *testing.T) {
	am := newTestCmd(t)
	config := am.AddCmd("config", "")
	require.NoError(t, config.ArgStr(WithLongFlag("mode"), WithDefaultValue("dev")))

	args, err := am.ParseArgs([]string{"config"})
	require.NoError(t, err)

	sub, _ := args.Sub("config")
	mode, _ := sub.GetStr("mode")
	assert.Equal(t, "dev", mode)
}

func TestSubcommand_RootOnlyParse(t *testing.T) {
	am := newTestCmd(t)
	require.NoError(t, am.ArgStr(WithLongFlag("global-opt")))
	unused := am.AddCmd("unused", "")
	require.NoError(t, unused.ArgInt(WithLongFlag("cmd_arg")))

	args, err := am.ParseArgs([]string{"--global-opt", "value"})
	require.NoError(t, err)

	v, _ := args.GetStr("global_opt")
	assert.Equal(t, "value", v)
	assert.Equal(t, "", args.SubCmd())
}

func TestSubcommand_SwallowsRestOfLine(t *testing.T) {
	am := newTestCmd(t)
	require.NoError(t, am.ArgBool(WithLongFlag("verbose")))
	run := am.AddCmd("run", "")
	require.NoError(t, run.ArgInt(WithLongFlag("jobs")))

	// --verbose is declared on the root but appears after the command
	// name, so the child must reject it.
	_, err := am.ParseArgs([]string{"run", "--verbose"})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrUnknownFlag,
		"root options are not parsed retroactively past a subcommand name")
}

func TestSubcommand_ErrorsRunIndependently(t *testing.T) {
	am := newTestCmd(t)
	deploy := am.AddCmd("deploy", "")
	require.NoError(t, deploy.ArgPos("target"))

	_, err := am.ParseArgs([]string{"deploy"})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrMissingPositional,
		"the child's own missing-positional check runs")
}

func TestSubcommand_ProgramNameDerived(t *testing.T) {
	am := newTestCmd(t)
	sub := am.AddCmd("fetch", "")
	assert.Equal(t, "prog fetch", sub.program)
}

func TestSubcommand_NestedDispatch(t *testing.T) {
	am := newTestCmd(t)
	remote := am.AddCmd("remote", "")
	add := remote.AddCmd("add", "")
	require.NoError(t, add.ArgPos("name"))

	args, err := am.ParseArgs([]string{"remote", "add", "origin"})
	require.NoError(t, err)

	remoteRes, ok := args.Sub("remote")
	require.True(t, ok)
	assert.Equal(t, "add", remoteRes.SubCmd())
	addRes, ok := remoteRes.Sub("add")
	require.True(t, ok)
	name, _ := addRes.GetStr("name")
	assert.Equal(t, "origin", name)
}

func TestSubcommand_NameAfterPositionalTokenIsPositional(t *testing.T) {
	am := newTestCmd(t)
	require.NoError(t, am.ArgPos("word"))
	am.AddCmd("build", "")

	args, err := am.ParseArgs([]string{"--", "build"})
	require.NoError(t, err)
	word, _ := args.GetStr("word")
	assert.Equal(t, "build", word, "after -- a command name is an ordinary positional")
	assert.Equal(t, "", args.SubCmd())
}

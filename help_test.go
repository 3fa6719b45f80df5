package argman

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argman-dev/argman/types"
)

func TestHelp_UsageHeader(t *testing.T) {
	out := &bytes.Buffer{}
	am := New(WithProgram("prog"), WithExitOnError(false), WithStdout(out), WithStderr(&bytes.Buffer{}))
	require.NoError(t, am.ArgInt(WithShortFlag("n"), WithLongFlag("node"), WithDescription("number of nodes")))
	require.NoError(t, am.ArgPos("input", WithDescription("input file")))
	require.NoError(t, am.ArgPos("output", SetRequired(false), WithDefaultValue("out.txt")))
	am.AddCmd("fetch", "fetch things")

	am.PrintHelp()
	help := out.String()

	assert.Contains(t, help, "Usage: prog <command> [OPTIONS] input [output]")
	assert.Contains(t, help, "Options:")
	assert.Contains(t, help, "-n, --node <int>")
	assert.Contains(t, help, "Number of nodes")
	assert.Contains(t, help, "Arguments:")
	assert.Contains(t, help, "input <str>")
	assert.Contains(t, help, "(optional, default: out.txt)")
	assert.Contains(t, help, "Commands:")
	assert.Contains(t, help, "fetch")
	assert.Contains(t, help, "Fetch things")
}

func TestHelp_NoSectionsWithoutDeclarations(t *testing.T) {
	out := &bytes.Buffer{}
	am := New(WithProgram("prog"), WithExitOnError(false), WithStdout(out), WithStderr(&bytes.Buffer{}))

	am.PrintHelp()
	help := out.String()

	assert.Contains(t, help, "Usage: prog\n")
	assert.NotContains(t, help, "Options:")
	assert.NotContains(t, help, "Arguments:")
	assert.NotContains(t, help, "Commands:")
}

func TestHelp_ListKindAnnotated(t *testing.T) {
	out := &bytes.Buffer{}
	am := New(WithProgram("prog"), WithExitOnError(false), WithStdout(out), WithStderr(&bytes.Buffer{}))
	require.NoError(t, am.ArgList(WithLongFlag("files"), WithItemKind(types.KindStr)))

	am.PrintHelp()
	assert.Contains(t, out.String(), "--files <list[str]>")
}

func TestHelp_MissingDescriptionFallback(t *testing.T) {
	out := &bytes.Buffer{}
	am := New(WithProgram("prog"), WithExitOnError(false), WithStdout(out), WithStderr(&bytes.Buffer{}))
	require.NoError(t, am.ArgBool(WithShortFlag("v")))

	am.PrintHelp()
	assert.Contains(t, out.String(), "No description")
}

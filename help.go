package argman

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/argman-dev/argman/util"
)

const minNameColumn = 22

// writeHelp renders the usage header followed by the options, arguments and
// commands sections. Descriptions wrap to the terminal width when w is a
// terminal.
func (c *Cmd) writeHelp(w io.Writer) {
	width := util.DefaultTermWidth
	if f, ok := w.(*os.File); ok {
		width = util.TermWidth(int(f.Fd()))
	}

	var reqPoses, optPoses []*PosArg
	for pair := c.posArgs.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Required {
			reqPoses = append(reqPoses, pair.Value)
		} else {
			optPoses = append(optPoses, pair.Value)
		}
	}

	header := "Usage: " + c.program
	if c.commands.Len() > 0 {
		header += " <command>"
	}
	if c.args.Len() > 0 {
		header += " [OPTIONS]"
	}
	for _, pos := range reqPoses {
		header += " " + pos.Name
	}
	for _, pos := range optPoses {
		header += " [" + pos.Name + "]"
	}
	fmt.Fprintln(w, header)

	nameLen := minNameColumn
	for pair := c.args.Oldest(); pair != nil; pair = pair.Next() {
		if l := len(pair.Value.helpName()); l > nameLen {
			nameLen = l
		}
	}

	if c.args.Len() > 0 {
		fmt.Fprintln(w, "\nOptions:")
		for pair := c.args.Oldest(); pair != nil; pair = pair.Next() {
			writeHelpLine(w, pair.Value.helpName(), describe(pair.Value.Description), nameLen, width)
		}
	}

	if len(reqPoses) > 0 || len(optPoses) > 0 {
		fmt.Fprintln(w, "\nArguments:")
		for _, pos := range append(reqPoses, optPoses...) {
			name := fmt.Sprintf("%s <%s>", pos.Name, pos.Kind)
			text := describe(pos.Description)
			switch {
			case pos.Default != nil && !pos.Required:
				text += fmt.Sprintf(" (optional, default: %v)", pos.Default)
			case pos.Default != nil:
				text += fmt.Sprintf(" [default: %v]", pos.Default)
			case !pos.Required:
				text += " (optional)"
			}
			writeHelpLine(w, name, text, nameLen, width)
		}
	}

	if c.commands.Len() > 0 {
		fmt.Fprintln(w, "\nCommands:")
		for pair := c.commands.Oldest(); pair != nil; pair = pair.Next() {
			writeHelpLine(w, pair.Key, describe(pair.Value.description), nameLen, width)
		}
	}
}

// writeHelpLine prints one aligned "  name : description" entry, wrapping the
// description onto indented continuation lines when it exceeds the width.
func writeHelpLine(w io.Writer, name, text string, nameLen, width int) {
	prefix := fmt.Sprintf("  %-*s : ", nameLen, name)
	avail := width - len(prefix)
	if avail < 16 {
		avail = 16
	}
	lines := wrapText(text, avail)
	fmt.Fprintf(w, "%s%s\n", prefix, lines[0])
	indent := strings.Repeat(" ", len(prefix))
	for _, line := range lines[1:] {
		fmt.Fprintf(w, "%s%s\n", indent, line)
	}
}

func describe(description string) string {
	if description == "" {
		return "No description"
	}
	runes := []rune(description)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}

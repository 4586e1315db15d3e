package cli

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the number of unchanged lines shown around a change
const contextLines = 2

// colorEnabled determines if color should be enabled based on mode and writer.
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := w.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// writeDiff prints a line diff between before and after
func writeDiff(w io.Writer, name string, before, after []byte, colored bool) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	removed := color.New(color.FgRed)
	added := color.New(color.FgGreen)
	header := color.New(color.Bold)
	hunk := color.New(color.FgCyan)
	for _, c := range []*color.Color{removed, added, header, hunk} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	header.Fprintf(w, "--- %s\n", name)
	header.Fprintf(w, "+++ %s (formatted)\n", name)

	for i, d := range diffs {
		text := splitLines(d.Text)

		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, line := range text {
				removed.Fprintf(w, "-%s\n", line)
			}
		case diffmatchpatch.DiffInsert:
			for _, line := range text {
				added.Fprintf(w, "+%s\n", line)
			}
		case diffmatchpatch.DiffEqual:
			head, tail := 0, 0
			if i > 0 {
				head = contextLines
			}
			if i < len(diffs)-1 {
				tail = contextLines
			}

			if head+tail >= len(text) {
				writeContext(w, text)
				continue
			}
			writeContext(w, text[:head])
			hunk.Fprintln(w, "@@")
			writeContext(w, text[len(text)-tail:])
		}
	}
}

func writeContext(w io.Writer, lines []string) {
	for _, line := range lines {
		io.WriteString(w, " "+line+"\n")
	}
}

// splitLines splits diff text into lines without their terminators
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/danieljhkim/tagsync/internal/tagset"
)

var (
	// fatih/color disables these automatically when output is not a TTY
	headerColor   = color.New(color.FgBlue, color.Bold)
	labelColor    = color.New(color.FgWhite, color.Bold)
	changeColor   = color.New(color.FgGreen)
	readOnlyColor = color.New(color.FgYellow)
	dimColor      = color.New(color.FgHiBlack)
)

// consoleObserver renders per-file diagnostics.
type consoleObserver struct {
	out io.Writer
}

func newConsoleObserver(out io.Writer) *consoleObserver {
	return &consoleObserver{out: out}
}

func (o *consoleObserver) File(path string) {
	_, _ = headerColor.Fprintf(o.out, "File %s:\n", path)
}

func (o *consoleObserver) Original(path string, shell, embedded tagset.TagSet) {
	_, _ = labelColor.Fprint(o.out, "  shell ")
	_, _ = dimColor.Fprint(o.out, shell.String())
	_, _ = labelColor.Fprint(o.out, " embedded ")
	_, _ = dimColor.Fprintln(o.out, embedded.String())
}

func (o *consoleObserver) NewShell(path string, tags tagset.TagSet) {
	_, _ = labelColor.Fprint(o.out, "  new shell ")
	_, _ = changeColor.Fprintln(o.out, tags.String())
}

func (o *consoleObserver) NewEmbedded(path string, tags tagset.TagSet) {
	_, _ = labelColor.Fprint(o.out, "  new embedded ")
	_, _ = readOnlyColor.Fprintln(o.out, tags.String())
}

// PrintCount formats a count with a singular or plural noun.
func PrintCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

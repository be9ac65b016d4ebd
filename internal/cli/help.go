package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/tagsync/internal/reconcile"
)

var sectionTitleColor = color.New(color.FgCyan, color.Bold)

// sourceHelp describes each --source value in help order.
var sourceHelp = map[string]string{
	reconcile.SourceShell:    "shell tags are authoritative; embedded keywords are reported",
	reconcile.SourceEmbedded: "embedded keywords replace the shell tags",
	reconcile.SourceBoth:     "both stores receive the union (default)",
}

// customHelpFunc renders help with colored section titles.
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	help.WriteString(sectionTitleColor.Sprint("Sources:"))
	help.WriteString("\n")
	for _, name := range reconcile.SourceNames {
		fmt.Fprintf(&help, "  %-10s %s\n", name, sourceHelp[name])
	}
	help.WriteString("\n")

	if cmd.Example != "" {
		help.WriteString(sectionTitleColor.Sprint("Examples:"))
		help.WriteString("\n")
		help.WriteString(cmd.Example)
		help.WriteString("\n\n")
	}

	if cmd.HasAvailableLocalFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
	}

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

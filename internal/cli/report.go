package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/danieljhkim/tagsync/internal/engine"
)

// writeReport prints the end-of-run report. The text format prints a
// summary line only when summary is set.
func writeReport(out io.Writer, format string, report *engine.RunReport, summary bool) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		_, err = out.Write(data)
		return err
	default:
		if summary {
			printSummary(out, report)
		}
		return nil
	}
}

func printSummary(out io.Writer, report *engine.RunReport) {
	files := PrintCount(report.Visited(), "file", "files")
	if report.DryRun {
		_, _ = dimColor.Fprintf(out, "Dry run: %s, %s would change, %s would change (embedded metadata is read-only)\n",
			files,
			PrintCount(report.ShellChanges(), "shell tag set", "shell tag sets"),
			PrintCount(report.EmbeddedPending(), "embedded tag set", "embedded tag sets"))
	} else {
		_, _ = dimColor.Fprintf(out, "Processed %s: wrote %s, %s not written (embedded metadata is read-only)\n",
			files,
			PrintCount(report.ShellWrites(), "shell tag set", "shell tag sets"),
			PrintCount(report.EmbeddedPending(), "embedded tag set", "embedded tag sets"))
	}
	if n := len(report.Failures); n > 0 {
		_, _ = readOnlyColor.Fprintf(out, "%s failed\n", PrintCount(n, "path", "paths"))
	}
}

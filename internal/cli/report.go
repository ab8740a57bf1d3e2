package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/pkghelper/pkg/overlay"
	"github.com/arthur-debert/pkghelper/pkg/ui/output"
	"github.com/arthur-debert/pkghelper/pkg/ui/output/styles"
	"github.com/pterm/pterm"
)

// statusStyles names the style of each problem status
var statusStyles = map[overlay.EntryStatus]string{
	overlay.StatusSkipped: "Warning",
	overlay.StatusFailed:  "Error",
}

// painter renders text in a named style, or leaves it alone
type painter func(style, text string) string

func newPainter(styled bool) painter {
	if !styled {
		return func(_, text string) string { return text }
	}
	return func(style, text string) string {
		return styles.GetStyle(style).Render(text)
	}
}

// printReport prints the overlay summary and, when entries were left
// out, a table of them
func printReport(w io.Writer, printer output.Printer, report *overlay.Report, paint painter) error {
	printer.Info(overlaySummary(report))

	problems := report.Problems()
	if len(problems) == 0 {
		return nil
	}

	table, err := problemTable(problems, paint)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n%s\n", paint("Header", MsgProblemsHeader), table)
	return err
}

func problemTable(problems []overlay.EntryResult, paint painter) (string, error) {
	data := pterm.TableData{{"Status", "Entry", "Reason"}}
	for _, p := range problems {
		reason := ""
		if p.Err != nil {
			reason = p.Err.Error()
		}
		data = append(data, []string{
			paint(statusStyles[p.Status], string(p.Status)),
			paint("Path", p.Path),
			paint("Muted", reason),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

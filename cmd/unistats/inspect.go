package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/k0kubun/pp/v3"

	"github.com/yurifrl/unistats/pkg/models"
)

var (
	keptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	droppedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray
)

func printOutcomes(w io.Writer, outcomes []models.Outcome) {
	kept := 0
	for _, o := range outcomes {
		if o.Accepted {
			kept++
			fmt.Fprintln(w, keptStyle.Render("+ "+o.Record.String()))
			continue
		}
		fmt.Fprintln(w, droppedStyle.Render(fmt.Sprintf("- %s (%s)", o.Record.String(), o.Reason)))
	}
	fmt.Fprintf(w, "\n%d row(s) kept, %d dropped\n", kept, len(outcomes)-kept)
}

// dumpOutcomes prints the outcomes with their record fields spelled out.
func dumpOutcomes(w io.Writer, outcomes []models.Outcome) error {
	type row struct {
		Date      string
		Applicant string
		Officer   string
		Action    string
		Accepted  bool
		Reason    string
	}

	rows := make([]row, 0, len(outcomes))
	for _, o := range outcomes {
		rows = append(rows, row{
			Date:      o.Record.Date().Format("2006-01-02"),
			Applicant: o.Record.Applicant(),
			Officer:   o.Record.Officer(),
			Action:    o.Record.Action(),
			Accepted:  o.Accepted,
			Reason:    string(o.Reason),
		})
	}

	printer := pp.New()
	printer.SetOutput(w)
	printer.SetColoringEnabled(false)
	_, err := printer.Println(rows)
	return err
}

package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/client/services"
	"github.com/dmitrijs2005/jobtracker/internal/common"
	"github.com/dmitrijs2005/jobtracker/internal/filex"
)

// AddColumn registers a custom report column and prompts for the question
// the assistant should answer for it.
func (a *App) AddColumn(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usage("addcol <text|number|date|status> <name>")
	}
	prompt, err := GetSimpleText(a.reader, "Question to extract this column", a.out)
	if err != nil {
		return err
	}
	col, err := a.reports.AddColumn(strings.Join(args[1:], " "), models.ColumnType(args[0]), prompt)
	if err != nil {
		return err
	}
	a.printf("Added column %s (%s)\n", col.Name, col.Type)
	return nil
}

func (a *App) RemoveColumn(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("rmcol <name>")
	}
	if !a.reports.RemoveColumn(strings.Join(args, " ")) {
		a.println("No such column.")
	}
	return nil
}

// Report generates a report with the default base columns and every custom
// column. "report csv [file]" writes the last generated report as CSV.
func (a *App) Report(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "csv" {
		return a.exportReport(args[1:])
	}
	r, err := a.reports.Generate(ctx, nil)
	if err != nil {
		return err
	}
	a.lastReport = r
	a.println(renderReport(r))
	return nil
}

func (a *App) exportReport(args []string) error {
	if a.lastReport == nil {
		return fmt.Errorf("no report generated yet, run 'report' first")
	}
	name := services.ReportFileName(time.Now())
	if len(args) > 0 {
		name = args[0]
	}
	f, err := filex.CreateAll(name)
	if err != nil {
		return err
	}
	if err := services.WriteCSV(f, a.lastReport); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	a.printf("Wrote %d row(s) to %s\n", len(a.lastReport.Rows), name)
	return nil
}

func (a *App) StatusReport(ctx context.Context) error {
	r, err := a.reports.Status(ctx)
	if err != nil {
		return err
	}
	a.printf("%d application(s)\n", r.TotalApplications)
	for _, c := range r.StatusDistribution {
		a.printf("  %-16s %d\n", c.Status, c.Count)
	}
	return nil
}

// Columns prints the base columns used by "report", or replaces them.
func (a *App) Columns(ctx context.Context, args []string) error {
	if len(args) > 0 {
		if err := a.reports.SetBaseColumns(args); err != nil {
			return err
		}
	}
	a.printf("Report columns: %s\n", strings.Join(a.reports.BaseColumns(), ", "))
	if len(args) == 0 {
		a.printf("Available: %s\n", strings.Join(models.BaseReportColumns, ", "))
	}
	return nil
}

// Provider prints or switches the LLM provider used by chat and reports.
func (a *App) Provider(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printf("Provider: %s (available: %s)\n", a.chat.Provider(), strings.Join(models.Providers, ", "))
		return nil
	}
	if len(args) > 1 {
		return usage("provider [" + strings.Join(models.Providers, "|") + "]")
	}
	if err := models.ValidateProvider(args[0]); err != nil {
		return fmt.Errorf("%w: provider: %v", common.ErrorValidation, err)
	}
	a.chat.SetProvider(args[0])
	a.reports.SetProvider(args[0])
	a.printf("Provider: %s\n", args[0])
	return nil
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"jobtrack/internal/domain"
)

// ListCmd prints a page of applications to stdout, using the same
// filter and pagination semantics as the TUI
type ListCmd struct {
	Page     int    `help:"Page number (1-based)" default:"1"`
	PageSize int    `help:"Applications per page (5, 10 or 25)" default:"0"`
	Search   string `help:"Case-insensitive match on company, title or location" short:"s"`
	Status   string `help:"Only show applications with this status"`
}

// Run fetches and prints the requested page
func (l *ListCmd) Run(cli *CLI) error {
	pageSize, err := cli.resolvePageSize(l.PageSize)
	if err != nil {
		return err
	}

	status := domain.Status(l.Status)
	if status != "" && !domain.IsValidStatus(status) {
		return fmt.Errorf("invalid status %q (valid: %v)", l.Status, domain.Statuses)
	}

	engine := cli.Container.NewViewEngine(pageSize, nil)
	if err := engine.Refresh(context.Background()); err != nil {
		return err
	}
	engine.SetSearch(l.Search)
	engine.SetStatusFilter(status)
	engine.SetPage(l.Page - 1)

	view := engine.Snapshot()
	if len(view.Visible) == 0 {
		fmt.Println("No applications found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COMPANY\tTITLE\tTYPE\tLOCATION\tAPPLIED\tSTATUS")
	for _, app := range view.Visible {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			app.CompanyName,
			app.JobTitle,
			app.JobType,
			app.Location,
			app.DateApplied.Format(domain.DateLayout),
			app.Status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nPage %d/%d (%d matching, %d total)\n",
		view.Page+1, view.PageCount, view.FilteredCount, view.TotalCount)
	return nil
}

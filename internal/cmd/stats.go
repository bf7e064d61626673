package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"jobtrack/internal/domain"
)

// StatsCmd shows the server-side per-status counts
type StatsCmd struct{}

// Run fetches and prints the aggregate counts
func (s *StatsCmd) Run(cli *CLI) error {
	counts, err := cli.Container.APIClient.StatusCounts(context.Background())
	if err != nil {
		return err
	}

	total := 0
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, status := range domain.Statuses {
		fmt.Fprintf(w, "%s\t%d\n", status, counts[status])
		total += counts[status]
	}
	fmt.Fprintf(w, "Total\t%d\n", total)
	return w.Flush()
}

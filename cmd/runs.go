package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/internal/store"
)

var (
	runsStatus string
	runsLimit  int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List prospecting runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		s, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		runs, err := s.ListRuns(ctx, store.RunFilter{
			Status: model.RunStatus(runsStatus),
			Limit:  runsLimit,
		})
		if err != nil {
			return err
		}

		if len(runs) == 0 {
			fmt.Println("No runs found")
			return nil
		}

		fmt.Printf("%-36s  %-20s  %-10s  %9s  %8s  %s\n",
			"ID", "INDUSTRY", "STATUS", "COMPANIES", "CONTACTS", "CREATED")
		for _, r := range runs {
			fmt.Printf("%-36s  %-20s  %-10s  %9d  %8d  %s\n",
				r.ID, r.Industry, r.Status, r.Companies, r.Contacts,
				r.CreatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	runsCmd.Flags().StringVar(&runsStatus, "status", "", "filter by status (running|complete|failed)")
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "max runs to list")
	rootCmd.AddCommand(runsCmd)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/discovery"
)

var (
	discoverIndustry string
	discoverSize     string
	discoverLocation string
	discoverLimit    int
	discoverNoAI     bool
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover companies matching an ICP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		serpClient, err := newSerpClient()
		if err != nil {
			return err
		}

		judge := newJudge()
		if discoverNoAI {
			judge = nil
		}

		s, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		run, err := s.CreateRun(ctx, discoverIndustry, discoverSize, discoverLocation)
		if err != nil {
			return err
		}

		orch := discovery.NewOrchestrator(serpClient, judge, &cfg.Discovery)
		companies := orch.Discover(ctx, discovery.Request{
			Industry:  discoverIndustry,
			SizeRange: discoverSize,
			Location:  discoverLocation,
			Limit:     discoverLimit,
		})

		if len(companies) == 0 {
			if err := s.FailRun(ctx, run.ID); err != nil {
				zap.L().Warn("mark run failed", zap.Error(err))
			}
			return fmt.Errorf("no companies found for industry %q in %q", discoverIndustry, discoverLocation)
		}

		if err := s.SaveCompanies(ctx, run.ID, companies); err != nil {
			return err
		}
		if err := s.CompleteRun(ctx, run.ID, len(companies), 0); err != nil {
			return err
		}

		fmt.Printf("Run %s: %d companies\n", run.ID, len(companies))
		for _, c := range companies {
			fmt.Printf("  %-40s %s\n", c.Name, c.Domain)
		}
		return nil
	},
}

func init() {
	discoverCmd.Flags().StringVar(&discoverIndustry, "industry", "", "target industry (required)")
	discoverCmd.Flags().StringVar(&discoverSize, "size", "", "company size range, e.g. 51-200")
	discoverCmd.Flags().StringVar(&discoverLocation, "location", "", "target location")
	discoverCmd.Flags().IntVar(&discoverLimit, "limit", 0, "max companies (default from config)")
	discoverCmd.Flags().BoolVar(&discoverNoAI, "no-ai-filter", false, "skip the AI company filter")
	discoverCmd.MarkFlagRequired("industry") //nolint:errcheck
	rootCmd.AddCommand(discoverCmd)
}

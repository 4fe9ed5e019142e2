package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sells-group/prospect-cli/internal/discovery"
)

var (
	pipelineIndustry string
	pipelineSize     string
	pipelineLocation string
	pipelineLimit    int
	pipelineRoles    []string
	pipelineOutput   string
	pipelineFormat   string
)

var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Run the full prospecting pipeline end to end",
	Long:  "Discovers companies, resolves contacts, enriches via Apollo, verifies emails, scores, persists the run, and exports the lead sheet.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initPipeline(ctx, true)
		if err != nil {
			return err
		}
		defer env.Close()

		roles := pipelineRoles
		if len(roles) == 0 {
			roles = cfg.Contacts.Roles
		}

		result, err := env.Pipeline.Run(ctx, discovery.Request{
			Industry:  pipelineIndustry,
			SizeRange: pipelineSize,
			Location:  pipelineLocation,
			Limit:     pipelineLimit,
		}, roles)
		if err != nil {
			return err
		}

		output := pipelineOutput
		if output == "" {
			output = cfg.Export.Path
		}
		format := pipelineFormat
		if format == "" {
			format = cfg.Export.Format
		}
		if err := writeExport(output, format, result.Companies); err != nil {
			return err
		}

		fmt.Printf("Run %s: %d companies, %d contacts → %s\n",
			result.RunID, len(result.Companies), result.Contacts, output)
		return nil
	},
}

func init() {
	pipelineCmd.Flags().StringVar(&pipelineIndustry, "industry", "", "target industry (required)")
	pipelineCmd.Flags().StringVar(&pipelineSize, "size", "", "company size range, e.g. 51-200")
	pipelineCmd.Flags().StringVar(&pipelineLocation, "location", "", "target location")
	pipelineCmd.Flags().IntVar(&pipelineLimit, "limit", 0, "max companies (default from config)")
	pipelineCmd.Flags().StringSliceVar(&pipelineRoles, "roles", nil, "target roles (default from config)")
	pipelineCmd.Flags().StringVarP(&pipelineOutput, "output", "o", "", "export file (default from config)")
	pipelineCmd.Flags().StringVar(&pipelineFormat, "format", "", "csv or xlsx (default from config)")
	pipelineCmd.MarkFlagRequired("industry") //nolint:errcheck
	rootCmd.AddCommand(pipelineCmd)
}

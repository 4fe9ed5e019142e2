package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/prospect-cli/internal/export"
	"github.com/sells-group/prospect-cli/internal/model"
)

var (
	exportRunID  string
	exportOutput string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a run's prospect list to CSV or XLSX",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		s, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		companies, err := s.ListCompanies(ctx, exportRunID)
		if err != nil {
			return err
		}
		if len(companies) == 0 {
			return fmt.Errorf("run %s has no companies", exportRunID)
		}

		output := exportOutput
		if output == "" {
			output = cfg.Export.Path
		}
		format := exportFormat
		if format == "" {
			format = cfg.Export.Format
		}

		if err := writeExport(output, format, companies); err != nil {
			return err
		}
		fmt.Printf("Wrote %s (%d companies)\n", output, len(companies))
		return nil
	},
}

func writeExport(path, format string, companies []model.Company) error {
	switch format {
	case "csv":
		return export.WriteCSV(path, companies)
	case "xlsx":
		return export.WriteXLSX(path, companies)
	default:
		return eris.Errorf("unknown export format %q", format)
	}
}

func init() {
	exportCmd.Flags().StringVar(&exportRunID, "run", "", "run ID (required)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default from config)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "csv or xlsx (default from config)")
	exportCmd.MarkFlagRequired("run") //nolint:errcheck
	rootCmd.AddCommand(exportCmd)
}

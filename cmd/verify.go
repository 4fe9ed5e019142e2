package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/prospect-cli/internal/pipeline"
	"github.com/sells-group/prospect-cli/internal/resilience"
)

var verifyRunID string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify email deliverability for a stored run",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		checker := newEmailChecker()
		if checker == nil {
			return eris.New("emailcheck.key is required for verification")
		}

		s, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		companies, err := s.ListCompanies(ctx, verifyRunID)
		if err != nil {
			return err
		}

		pipeline.VerifyEmails(ctx, checker, resilience.DefaultPolicy(), companies)

		if err := s.SaveCompanies(ctx, verifyRunID, companies); err != nil {
			return err
		}

		valid, total := 0, 0
		for _, c := range companies {
			for _, contact := range c.Contacts {
				if contact.Email == "" {
					continue
				}
				total++
				if contact.EmailValid {
					valid++
				}
			}
		}
		fmt.Printf("Run %s: %d/%d emails verified deliverable\n", verifyRunID, valid, total)
		return nil
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifyRunID, "run", "", "run ID (required)")
	verifyCmd.MarkFlagRequired("run") //nolint:errcheck
	rootCmd.AddCommand(verifyCmd)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sells-group/prospect-cli/internal/contacts"
	"github.com/sells-group/prospect-cli/internal/ner"
)

var (
	contactsRunID string
	contactsRoles []string
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Resolve decision-maker contacts for a stored run",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		serpClient, err := newSerpClient()
		if err != nil {
			return err
		}

		expander, err := newExpander()
		if err != nil {
			return err
		}

		s, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		companies, err := s.ListCompanies(ctx, contactsRunID)
		if err != nil {
			return err
		}
		if len(companies) == 0 {
			return fmt.Errorf("run %s has no companies", contactsRunID)
		}

		roles := contactsRoles
		if len(roles) == 0 {
			roles = cfg.Contacts.Roles
		}

		resolver := contacts.NewResolver(serpClient, ner.NewProse(), expander)
		companies = resolver.Resolve(ctx, companies, roles)

		contactCount := 0
		for _, c := range companies {
			contactCount += len(c.Contacts)
		}

		if err := s.SaveCompanies(ctx, contactsRunID, companies); err != nil {
			return err
		}
		if err := s.CompleteRun(ctx, contactsRunID, len(companies), contactCount); err != nil {
			return err
		}

		fmt.Printf("Run %s: %d contacts across %d companies\n", contactsRunID, contactCount, len(companies))
		for _, c := range companies {
			for _, contact := range c.Contacts {
				fmt.Printf("  %-30s %-25s %s\n", contact.FullName(), contact.Title, c.Name)
			}
		}
		return nil
	},
}

func init() {
	contactsCmd.Flags().StringVar(&contactsRunID, "run", "", "run ID (required)")
	contactsCmd.Flags().StringSliceVar(&contactsRoles, "roles", nil, "target roles (default from config)")
	contactsCmd.MarkFlagRequired("run") //nolint:errcheck
	rootCmd.AddCommand(contactsCmd)
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"inkbound-server/internal/models"
)

func newAddCmd(opts *options) *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a character",
		Long:  `Append a character to the store. Duplicate names are allowed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := opts.openStore()
			if err != nil {
				return err
			}

			if err := s.Append(models.Character{Name: name, Description: description}); err != nil {
				return fmt.Errorf("failed to save character: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Character '%s' saved to %s\n", name, s.Path())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Character name")
	cmd.Flags().StringVar(&description, "description", "", "Character description")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPersonaCmd(opts *options) *cobra.Command {
	var genre, character string

	cmd := &cobra.Command{
		Use:   "persona",
		Short: "Print the system prompt",
		Long:  `Print the system prompt that /chat would send for the given genre and character.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := opts.openBuilder()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), builder.ComposeFor(genre, character))
			return nil
		},
	}

	cmd.Flags().StringVar(&genre, "genre", "", "Story genre")
	cmd.Flags().StringVar(&character, "character", "", "Character to focus on")
	_ = cmd.MarkFlagRequired("genre")

	return cmd
}

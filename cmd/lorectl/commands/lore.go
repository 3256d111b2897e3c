package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoreCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lore [character]",
		Short: "Print the lore blurb",
		Long:  `Print the aggregated lore blurb, or a single character profile when a name is given.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := opts.openBuilder()
			if err != nil {
				return err
			}

			text := builder.Context()
			if len(args) == 1 {
				text = builder.Info(args[0])
				if text == "" {
					return fmt.Errorf("character '%s' not found", args[0])
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

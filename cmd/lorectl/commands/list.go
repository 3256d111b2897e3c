package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List characters",
		Long:  `List all characters in storage order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := opts.openStore()
			if err != nil {
				return err
			}

			res, err := s.Load()
			if err != nil {
				return fmt.Errorf("error reading characters: %w", err)
			}
			characters := res.Document.Characters

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "    ")
				return enc.Encode(characters)
			}

			if len(characters) == 0 {
				fmt.Fprintln(out, "No characters found.")
				return nil
			}
			fmt.Fprintf(out, "Found %d characters in '%s':\n", len(characters), s.Path())
			for _, c := range characters {
				fmt.Fprintf(out, "- %s: %s\n", c.Name, c.Description)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print characters as JSON")
	return cmd
}

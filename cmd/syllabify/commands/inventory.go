package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func inventoryCmd(opts *options) *cobra.Command {
	var lint bool
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "List the phoneme inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := opts.loadInventory()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			stats := inv.Stats()
			fmt.Fprintf(w, "%s\n", inv.Identifier)
			fmt.Fprintf(w, "consonants (%d): %s\n", stats.Consonants, strings.Join(inv.Consonants(), " "))
			fmt.Fprintf(w, "nuclei (%d): %s\n", stats.Nuclei, strings.Join(inv.Nuclei(), " "))
			onsets := inv.Onsets()
			for i, onset := range onsets {
				if onset == "" {
					onsets[i] = "∅"
				}
			}
			fmt.Fprintf(w, "onsets (%d): %s\n", stats.Onsets, strings.Join(onsets, " "))
			if !lint {
				return nil
			}
			findings := inv.Lint()
			for _, f := range findings {
				fmt.Fprintf(w, "warning: %s\n", f)
			}
			if len(findings) > 0 {
				return fmt.Errorf("inventory has %d problem(s)", len(findings))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&lint, "lint", false, "check the inventory for ordering and classification problems")
	return cmd
}

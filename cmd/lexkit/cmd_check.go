package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/lexkit/checker"
)

func newCheckCmd() *cobra.Command {
	var flags grammarFlags

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Check files against the grammar and report diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := flags.load()
			if err != nil {
				return err
			}
			c := checker.New(g)

			total := 0
			for _, path := range args {
				diags, err := c.CheckFile(path)
				if err != nil {
					return err
				}
				for _, d := range diags {
					fmt.Println(d)
				}
				total += len(diags)
			}

			if total > 0 {
				return fmt.Errorf("%d problem(s) found", total)
			}
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

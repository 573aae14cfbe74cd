package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/lexkit/checker"
)

func newLSPCmd() *cobra.Command {
	var flags grammarFlags

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := flags.load()
			if err != nil {
				return err
			}
			server := checker.NewLSPServer("0.1.0", checker.New(g))
			return server.RunStdio()
		},
	}

	flags.register(cmd)

	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/lexkit/grammar"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the default rules file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := yaml.Marshal(grammar.DefaultRules())
			if err != nil {
				return fmt.Errorf("marshal rules: %w", err)
			}
			fmt.Print(string(out))
			return nil
		},
	}
}

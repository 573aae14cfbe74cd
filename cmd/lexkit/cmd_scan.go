package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/lexkit/grammar"
)

type grammarFlags struct {
	rulesFile  string
	ebnfFile   string
	production string
}

func (f *grammarFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.rulesFile, "rules", "r", "", "YAML rules file")
	cmd.Flags().StringVar(&f.ebnfFile, "ebnf", "", "EBNF grammar file")
	cmd.Flags().StringVar(&f.production, "production", "ident", "identifier production in the EBNF grammar")
}

func (f *grammarFlags) load() (*grammar.Grammar, error) {
	switch {
	case f.rulesFile != "" && f.ebnfFile != "":
		return nil, fmt.Errorf("--rules and --ebnf are mutually exclusive")
	case f.rulesFile != "":
		return grammar.Load(f.rulesFile)
	case f.ebnfFile != "":
		return grammar.LoadEBNF(f.ebnfFile, f.production)
	}
	return grammar.Default(), nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func newScanCmd() *cobra.Command {
	var flags grammarFlags

	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "Tokenize a file and print the tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := flags.load()
			if err != nil {
				return err
			}

			input, err := readInput(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			tokens, diags := g.Scan(input, args[0])
			for _, tok := range tokens {
				fmt.Println(tok)
			}
			for _, d := range diags {
				fmt.Fprintln(os.Stderr, d)
			}
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

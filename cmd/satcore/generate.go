package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xDarkicex/satcore/cnf"
	"github.com/xDarkicex/satcore/internal/puzzle"
)

// newGenerateCommand builds fixture CNF instances and writes them in
// DIMACS format, either to a file (--out) or stdout.
func newGenerateCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "generate <einstein>",
		Short: "Generate a fixture CNF instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var f *cnf.Formula
			switch args[0] {
			case "einstein":
				f = puzzle.Einstein()
			default:
				return fmt.Errorf("satcore generate: unknown fixture %q: want einstein", args[0])
			}

			w := os.Stdout
			if out != "" {
				file, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("satcore generate: %w", err)
				}
				defer file.Close()
				return cnf.Write(file, f)
			}
			return cnf.Write(w, f)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

// Command satcore reads a DIMACS CNF formula and runs the CDCL solver
// against it, reporting SATISFIABLE with a witness assignment, or
// UNSATISFIABLE, on stdout (§6).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

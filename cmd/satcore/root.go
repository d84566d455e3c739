package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xDarkicex/satcore/cnf"
	"github.com/xDarkicex/satcore/sat"
)

// newRootCommand builds the satcore CLI: solving a CNF file is the
// default action; "generate" produces fixture instances.
func newRootCommand() *cobra.Command {
	var heuristicName string
	var logLevel string
	var seed int64

	root := &cobra.Command{
		Use:   "satcore [flags] <file.cnf>",
		Short: "A CDCL SAT solver",
		Long: `satcore reads a DIMACS CNF file and determines satisfiability using a
conflict-driven clause-learning search. It reports SATISFIABLE with a
witness assignment, or UNSATISFIABLE, and exits 0 in both cases: a
nonzero exit means the input could not be opened or parsed, or the
heuristic name is unknown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(args[0], heuristicName, logLevel, seed)
		},
	}

	root.Flags().StringVarP(&heuristicName, "heuristic", "H", "ordered",
		"branching heuristic: ordered|random|frequency|dlis")
	root.Flags().StringVarP(&logLevel, "log-level", "l", "warning",
		"log level: trace|debug|info|warning|error")
	root.Flags().Int64Var(&seed, "seed", 1,
		"random seed, only used by the random heuristic")

	root.AddCommand(newGenerateCommand())
	return root
}

func runSolve(path, heuristicName, logLevel string, seed int64) error {
	logger := newLogger(logLevel)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("satcore: %w", err)
	}
	defer f.Close()

	logger.Infof("reading from %s", path)
	formula, err := cnf.Read(f)
	if err != nil {
		return fmt.Errorf("satcore: %w", err)
	}

	heuristic, err := newHeuristic(heuristicName, seed)
	if err != nil {
		return fmt.Errorf("satcore: %w", err)
	}

	solver := sat.NewSolver(formula, heuristic, logger)
	satisfiable, assignment := solver.Solve()
	if logger.IsLevelEnabled(logrus.TraceLevel) {
		logger.Trace("final state:\n" + solver.Dump())
	}

	fmt.Println("c =========================================")
	fmt.Printf("c satcore reading from %s\n", path)
	if satisfiable {
		fmt.Println("s SATISFIABLE")
		fmt.Println("v " + formatAssignment(assignment))
	} else {
		fmt.Println("s UNSATISFIABLE")
	}
	fmt.Println("c " + solver.Report(satisfiable))
	return nil
}

func formatAssignment(a cnf.Assignment) string {
	vars := make([]int, 0, len(a)-1)
	for v := 1; v < len(a); v++ {
		vars = append(vars, v)
	}
	sort.Ints(vars)

	lits := make([]string, 0, len(vars)+1)
	for _, v := range vars {
		if a[v] == cnf.True {
			lits = append(lits, fmt.Sprintf("%d", v))
		} else {
			lits = append(lits, fmt.Sprintf("-%d", v))
		}
	}
	lits = append(lits, "0")
	return strings.Join(lits, " ")
}

func newHeuristic(name string, seed int64) (sat.Heuristic, error) {
	switch name {
	case "ordered":
		return sat.OrderedHeuristic{}, nil
	case "random":
		return sat.NewRandomHeuristic(seed), nil
	case "frequency":
		return &sat.FrequencyHeuristic{}, nil
	case "dlis":
		return sat.DLISHeuristic{}, nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q: want ordered|random|frequency|dlis", name)
	}
}

func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	logger.SetLevel(lvl)
	return logger
}

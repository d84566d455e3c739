package cnf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xDarkicex/satcore/core"
)

// Read parses a DIMACS CNF file per §4.1: lines beginning with 'c', '%',
// '0', or blank lines are skipped; the first remaining line must be
// "p cnf <nvars> <nclauses>"; every following line is a clause of signed
// integers terminated by 0. Duplicate literals within a clause and
// duplicate clauses across the file are collapsed.
//
// Read fails with a *core.SolverError (malformed-input) if the header is
// missing or malformed, a clause does not end in 0, or the distinct
// variable/clause counts disagree with the header.
func Read(r io.Reader) (*Formula, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	var header []string
	var clauseLines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch line[0] {
		case 'c', '%', '0':
			continue
		}
		if header == nil {
			header = strings.Fields(line)
			continue
		}
		clauseLines = append(clauseLines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(header) != 4 || header[0] != "p" || header[1] != "cnf" {
		return nil, core.NewError("cnf", "Read", "missing or malformed \"p cnf <nvars> <nclauses>\" header")
	}
	numVars, err := strconv.Atoi(header[2])
	if err != nil {
		return nil, core.NewError("cnf", "Read", fmt.Sprintf("invalid variable count in header: %s", header[2]))
	}
	numClauses, err := strconv.Atoi(header[3])
	if err != nil {
		return nil, core.NewError("cnf", "Read", fmt.Sprintf("invalid clause count in header: %s", header[3]))
	}

	formula := NewFormula(numVars)
	seenVars := make(map[Var]struct{})

	for _, line := range clauseLines {
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[len(fields)-1] != "0" {
			return nil, core.NewError("cnf", "Read", fmt.Sprintf("clause line does not end with 0: %q", line))
		}
		lits := make([]Literal, 0, len(fields)-1)
		for _, f := range fields[:len(fields)-1] {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, core.NewError("cnf", "Read", fmt.Sprintf("invalid literal %q in clause %q", f, line))
			}
			if n == 0 {
				return nil, core.NewError("cnf", "Read", fmt.Sprintf("literal 0 before end of clause: %q", line))
			}
			lits = append(lits, Literal(n))
			seenVars[Literal(n).Var()] = struct{}{}
		}
		formula.AddOriginal(NewClause(lits...))
	}

	if len(seenVars) != numVars {
		return nil, core.NewError("cnf", "Read", fmt.Sprintf(
			"unmatched literal count: header declares %d variables, file uses %d", numVars, len(seenVars)))
	}
	if len(formula.Original) != numClauses {
		return nil, core.NewError("cnf", "Read", fmt.Sprintf(
			"unmatched clause count: header declares %d clauses, file has %d distinct", numClauses, len(formula.Original)))
	}

	return formula, nil
}

// Write re-emits a formula's original clauses in DIMACS CNF format. This
// supports the round-trip testable property (P7); it is never used by
// the solver itself.
func Write(w io.Writer, f *Formula) error {
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", f.NumVars, len(f.Original)); err != nil {
		return err
	}
	for _, c := range f.Original {
		parts := make([]string, 0, len(c.Lits)+1)
		for _, l := range c.Lits {
			parts = append(parts, l.String())
		}
		parts = append(parts, "0")
		if _, err := fmt.Fprintln(w, strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return nil
}

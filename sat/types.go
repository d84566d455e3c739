// Package sat implements the CDCL search kernel: the assignment trail,
// the implication graph, Boolean constraint propagation, conflict
// analysis, non-chronological backtracking, and the branching-heuristic
// interface described in the specification. It consumes a *cnf.Formula
// built by the cnf package and produces a satisfying assignment or a
// proof of unsatisfiability.
package sat

import (
	"fmt"
	"strings"

	"github.com/xDarkicex/satcore/cnf"
)

// ImplicationNode is the per-variable node of the implication graph
// (§3). Index 0 is unused so that Var values (1-based) index directly;
// see Solver.Nodes.
type ImplicationNode struct {
	Var        cnf.Var
	Value      cnf.Value
	Level      int         // -1 when unassigned
	Antecedent *cnf.Clause // nil for decisions and unassigned variables
	Parents    []cnf.Var   // other variables appearing in Antecedent
	Children   []cnf.Var   // variables whose antecedent includes this one
}

func newNode(v cnf.Var) ImplicationNode {
	return ImplicationNode{Var: v, Value: cnf.Unassign, Level: -1}
}

// reset clears the node back to unassigned, used by backtrack.
func (n *ImplicationNode) reset() {
	n.Value = cnf.Unassign
	n.Level = -1
	n.Antecedent = nil
	n.Parents = nil
	n.Children = nil
}

// IsDecision reports whether the node was assigned by branching rather
// than propagation (invariant I2: decision nodes have no antecedent).
func (n *ImplicationNode) IsDecision() bool {
	return n.Level >= 0 && n.Antecedent == nil
}

func (n ImplicationNode) String() string {
	sign := "?"
	switch n.Value {
	case cnf.True:
		sign = "+"
	case cnf.False:
		sign = "-"
	}
	return fmt.Sprintf("[%s%d:L%d, %dp, %dc]", sign, n.Var, n.Level, len(n.Parents), len(n.Children))
}

// parentsOf returns the variables of a clause's literals other than v,
// used when a clause c forces v via unit propagation.
func parentsOf(c *cnf.Clause, v cnf.Var) []cnf.Var {
	parents := make([]cnf.Var, 0, len(c.Lits)-1)
	for _, l := range c.Lits {
		if pv := l.Var(); pv != v {
			parents = append(parents, pv)
		}
	}
	return parents
}

// Dump renders every node's current state, one per line; used only
// under trace-level logging to mirror the reference solver's debug
// dumps of its implication graph.
func Dump(nodes []ImplicationNode) string {
	var b strings.Builder
	for _, n := range nodes[1:] {
		fmt.Fprintln(&b, n)
	}
	return b.String()
}

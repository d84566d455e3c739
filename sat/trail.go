package sat

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xDarkicex/satcore/cnf"
)

// Trail holds the per-level history required by conflict analysis (§3):
// for each decision level, the variable branched on and the literals
// propagation derived at that level, in the order BCP derived them.
//
// This is deliberately a thin, level-indexed log rather than an
// O(1)-lookup index: conflict analysis only ever needs "what happened
// at level L, in order", and keeping that shape close to the spec's own
// H = [branching_var[L]] ++ propagated[L] construction keeps analyze
// readable.
type Trail struct {
	branchVar  map[int]cnf.Var
	propagated map[int][]cnf.Literal
}

// NewTrail creates an empty trail.
func NewTrail() *Trail {
	return &Trail{
		branchVar:  make(map[int]cnf.Var),
		propagated: make(map[int][]cnf.Literal),
	}
}

// StartLevel records that level was entered by branching on v.
func (t *Trail) StartLevel(level int, v cnf.Var) {
	t.branchVar[level] = v
	if _, ok := t.propagated[level]; !ok {
		t.propagated[level] = nil
	}
}

// RecordPropagation appends a BCP-derived literal to level's history, in
// derivation order.
func (t *Trail) RecordPropagation(level int, lit cnf.Literal) {
	t.propagated[level] = append(t.propagated[level], lit)
}

// BranchVar returns the variable branched on at level, and whether level
// has a recorded decision (level 0 never does: it holds only the
// top-level unit propagations performed before the first branch).
func (t *Trail) BranchVar(level int) (cnf.Var, bool) {
	v, ok := t.branchVar[level]
	return v, ok
}

// Propagated returns the literals BCP derived at level, in derivation
// order.
func (t *Trail) Propagated(level int) []cnf.Literal {
	return t.propagated[level]
}

// History builds H = [branching_var[level]] ++ propagated[level] as used
// by conflict analysis to rank variables by recency within a level. The
// decision variable, if any, is always first (position 0).
func (t *Trail) History(level int) []cnf.Var {
	var h []cnf.Var
	if v, ok := t.branchVar[level]; ok {
		h = append(h, v)
	}
	for _, l := range t.propagated[level] {
		h = append(h, l.Var())
	}
	return h
}

// PruneAbove discards history for every level above target, used by
// backtrack.
func (t *Trail) PruneAbove(target int) {
	for level := range t.branchVar {
		if level > target {
			delete(t.branchVar, level)
		}
	}
	for level := range t.propagated {
		if level > target {
			delete(t.propagated, level)
		}
	}
}

// String renders every recorded level's decision and propagation
// history, one level per line. Used only under trace-level logging, in
// the same spirit as the reference solver's pprint.pformat(self.nodes)
// debug dumps.
func (t *Trail) String() string {
	levels := make([]int, 0, len(t.propagated))
	seen := make(map[int]struct{})
	for l := range t.branchVar {
		if _, ok := seen[l]; !ok {
			levels = append(levels, l)
			seen[l] = struct{}{}
		}
	}
	for l := range t.propagated {
		if _, ok := seen[l]; !ok {
			levels = append(levels, l)
			seen[l] = struct{}{}
		}
	}
	sort.Ints(levels)

	var b strings.Builder
	for _, l := range levels {
		fmt.Fprintf(&b, "level %d: branch=", l)
		if v, ok := t.branchVar[l]; ok {
			fmt.Fprintf(&b, "%d", v)
		} else {
			b.WriteString("-")
		}
		b.WriteString(" propagated=[")
		for i, lit := range t.propagated[l] {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(lit.String())
		}
		b.WriteString("]\n")
	}
	return b.String()
}

package sat

import "github.com/xDarkicex/satcore/cnf"

// analyze derives a learned clause and a backjump level from a conflict
// clause found at the current decision level (§4.5).
//
// The working clause is split into curr (literals whose variable sits at
// the conflict level) and prev (literals at earlier levels). While curr
// holds more than one literal, the most recently assigned variable in
// curr (by position in this level's history H = [branching_var] ++
// propagated) is resolved away using its antecedent clause. The process
// halts with exactly one literal in curr: the asserting literal (the
// first Unique Implication Point). The learned clause is curr ∪ prev;
// the backjump level is the highest level among prev's literals, or
// level-1 if prev is empty (prev only ever holds unit/ground facts at
// decision level 0 in that case).
//
// analyze returns level -1 when the conflict occurs with no decisions on
// the trail (decision level 0): the formula is unsatisfiable.
func (s *Solver) analyze(conflict *cnf.Clause) (int, *cnf.Clause, error) {
	level := s.Level
	if level == 0 {
		return -1, nil, nil
	}

	history := s.Trail.History(level)
	pos := make(map[cnf.Var]int, len(history))
	for i, v := range history {
		pos[v] = i
	}

	inClause := make(map[cnf.Var]cnf.Literal)
	var curr []cnf.Var
	var prev []cnf.Literal
	done := make(map[cnf.Var]bool)

	classify := func(l cnf.Literal) {
		v := l.Var()
		if _, ok := inClause[v]; ok {
			return
		}
		if done[v] {
			return
		}
		inClause[v] = l
		if s.Nodes[v].Level == level {
			curr = append(curr, v)
		} else {
			prev = append(prev, l)
		}
	}

	for _, l := range conflict.Lits {
		classify(l)
	}

	for len(curr) > 1 {
		bestIdx, bestPos := -1, -1
		for i, v := range curr {
			if p, ok := pos[v]; ok && p > bestPos {
				bestPos, bestIdx = p, i
			}
		}
		if bestIdx == -1 {
			return 0, nil, newInternalError("analyze", "no variable in curr appears in this level's history")
		}
		vStar := curr[bestIdx]
		curr = append(curr[:bestIdx], curr[bestIdx+1:]...)
		delete(inClause, vStar)
		done[vStar] = true

		antecedent := s.Nodes[vStar].Antecedent
		if antecedent == nil {
			return 0, nil, newInternalError("analyze", "resolved variable has no antecedent: it was a decision")
		}
		for _, l := range antecedent.Lits {
			if done[l.Var()] {
				continue
			}
			classify(l)
		}
	}

	if len(curr) != 1 {
		return 0, nil, newInternalError("analyze", "conflict analysis did not converge to a single asserting literal")
	}

	lits := make([]cnf.Literal, 0, 1+len(prev))
	lits = append(lits, inClause[curr[0]])
	lits = append(lits, prev...)

	backjump := level - 1
	if len(prev) > 0 {
		backjump = s.Nodes[prev[0].Var()].Level
		for _, l := range prev[1:] {
			if lv := s.Nodes[l.Var()].Level; lv > backjump {
				backjump = lv
			}
		}
	}

	return backjump, cnf.NewClause(lits...), nil
}

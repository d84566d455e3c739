package sat

import "github.com/xDarkicex/satcore/cnf"

// backtrack undoes every assignment made at a decision level above
// target, then sets the current level to target (§4.6). Variables
// assigned at or below target keep their value, level, and antecedent;
// their Children lists are pruned of any variable being unassigned.
func (s *Solver) backtrack(target int) {
	for v := 1; v <= s.Formula.NumVars; v++ {
		node := &s.Nodes[cnf.Var(v)]
		if node.Level <= target {
			continue
		}
		s.Assign[cnf.Var(v)] = cnf.Unassign
		node.reset()
	}
	for v := 1; v <= s.Formula.NumVars; v++ {
		node := &s.Nodes[cnf.Var(v)]
		if len(node.Children) == 0 {
			continue
		}
		kept := node.Children[:0]
		for _, c := range node.Children {
			if s.Nodes[c].Level != -1 {
				kept = append(kept, c)
			}
		}
		node.Children = kept
	}
	s.Trail.PruneAbove(target)
	s.Level = target
	s.log.WithField("level", target).Trace("backtrack")
}

package sat

import (
	"github.com/sirupsen/logrus"

	"github.com/xDarkicex/satcore/cnf"
)

// unitPair is a unit clause found during a single BCP pass together with
// the literal it forces.
type unitPair struct {
	lit    cnf.Literal
	clause *cnf.Clause
}

// propagate runs Boolean constraint propagation to a fixed point (§4.3).
// Each pass scans every clause exactly once against the assignment as it
// stood at the start of the pass; any clause already FALSE ends
// propagation immediately with that clause as the conflict. Otherwise
// every unit clause found this pass is queued, duplicate (literal,
// clause) pairs are suppressed, and the queued literals are applied in
// order: a pair that targets a variable a prior pair in the same pass
// already assigned consistently is a no-op, one that targets a variable
// already assigned to the opposite value is itself a conflict. BCP
// terminates because every pass with a non-empty queue assigns at least
// one previously-unassigned variable.
func (s *Solver) propagate() (*cnf.Clause, error) {
	for {
		var queue []unitPair
		seenPair := make(map[cnf.Literal]map[int]struct{})

		for _, c := range s.Formula.Clauses() {
			switch c.ValueOf(s.Assign) {
			case cnf.False:
				return c, nil
			case cnf.True:
				continue
			}
			lit, ok := c.UnitLiteral(s.Assign)
			if !ok {
				continue
			}
			clauses, ok := seenPair[lit]
			if !ok {
				clauses = make(map[int]struct{})
				seenPair[lit] = clauses
			}
			if _, dup := clauses[c.ID]; dup {
				continue
			}
			clauses[c.ID] = struct{}{}
			queue = append(queue, unitPair{lit: lit, clause: c})
		}

		if len(queue) == 0 {
			return nil, nil
		}

		for _, qp := range queue {
			v := qp.lit.Var()
			want := cnf.False
			if qp.lit.Positive() {
				want = cnf.True
			}

			if s.Assign[v] != cnf.Unassign {
				if s.Assign[v] == want {
					continue
				}
				return qp.clause, nil
			}

			s.Assign[v] = want
			node := &s.Nodes[v]
			node.Value = want
			node.Level = s.Level
			node.Antecedent = qp.clause
			node.Parents = parentsOf(qp.clause, v)
			for _, p := range node.Parents {
				s.Nodes[p].Children = append(s.Nodes[p].Children, v)
			}
			s.Trail.RecordPropagation(s.Level, qp.lit)
			s.Stats.Propagations++
			s.log.WithFields(logrus.Fields{
				"var": v, "value": want, "level": s.Level, "clause": qp.clause.String(),
			}).Trace("propagation")
		}
	}
}

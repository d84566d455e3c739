package sat

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/xDarkicex/satcore/cnf"
	"github.com/xDarkicex/satcore/core"
)

// Statistics tracks counters over a single Solve call, reported in the
// CLI's "Done" summary line (§6).
type Statistics struct {
	Decisions      int
	Propagations   int
	Conflicts      int
	LearnedClauses int
	Elapsed        time.Duration
}

// Solver is a CDCL engine over a single formula. It owns the
// implication graph, the assignment, the trail, and the branching
// heuristic; Solve runs the decide/propagate/analyze/backtrack loop to
// a fixed point.
type Solver struct {
	Formula   *cnf.Formula
	Assign    cnf.Assignment
	Nodes     []ImplicationNode
	Trail     *Trail
	Heuristic Heuristic
	Level     int
	Stats     Statistics

	log *logrus.Entry
}

// NewSolver builds a solver over f using the given branching heuristic.
// If logger is nil, a logger that discards output is used.
func NewSolver(f *cnf.Formula, h Heuristic, logger *logrus.Logger) *Solver {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(discardWriter{})
	}
	nodes := make([]ImplicationNode, f.NumVars+1)
	for v := 1; v <= f.NumVars; v++ {
		nodes[v] = newNode(cnf.Var(v))
	}
	return &Solver{
		Formula:   f,
		Assign:    cnf.NewAssignment(f.NumVars),
		Nodes:     nodes,
		Trail:     NewTrail(),
		Heuristic: h,
		Level:     0,
		log:       logger.WithField("component", "sat"),
	}
}

// Solve runs the CDCL main loop (§4.7) to completion and returns whether
// the formula is satisfiable, along with the satisfying assignment when
// it is.
func (s *Solver) Solve() (bool, cnf.Assignment) {
	start := time.Now()
	defer func() { s.Stats.Elapsed = time.Since(start) }()

	s.Heuristic.Preprocess(s.Formula)

	for {
		conflict, err := s.propagate()
		if err != nil {
			s.log.WithError(err).Error("propagation failed")
			return false, nil
		}
		if conflict != nil {
			s.Stats.Conflicts++
			level, learned, err := s.analyze(conflict)
			if err != nil {
				s.log.WithError(err).Error("conflict analysis failed")
				return false, nil
			}
			if level < 0 {
				s.log.Debug("conflict at decision level 0: unsatisfiable")
				return false, nil
			}
			if s.Formula.AddLearned(learned) {
				s.Stats.LearnedClauses++
				s.log.WithFields(logrus.Fields{
					"clause": learned.String(),
					"level":  level,
				}).Trace("learned clause")
			}
			s.backtrack(level)
			continue
		}

		if s.allAssigned() {
			s.log.WithField("decisions", s.Stats.Decisions).Debug("all variables assigned: satisfiable")
			return true, s.Assign
		}

		s.Level++
		v, val := s.Heuristic.Pick(s)
		s.assignDecision(v, val)
		s.Stats.Decisions++
	}
}

// allAssigned reports whether every variable has a value, the
// heuristic-agnostic termination check in §4.7.
func (s *Solver) allAssigned() bool {
	for v := 1; v <= s.Formula.NumVars; v++ {
		if s.Assign[cnf.Var(v)] == cnf.Unassign {
			return false
		}
	}
	return true
}

// assignDecision applies a branching decision: v is assigned val at the
// current level with no antecedent (invariant I2).
func (s *Solver) assignDecision(v cnf.Var, val cnf.Value) {
	s.Assign[v] = val
	node := &s.Nodes[v]
	node.Value = val
	node.Level = s.Level
	node.Antecedent = nil
	node.Parents = nil
	s.Trail.StartLevel(s.Level, v)
	s.log.WithFields(logrus.Fields{"var": v, "value": val, "level": s.Level}).Trace("decision")
}

// Dump renders the current implication graph and trail, used only
// under trace-level logging to inspect a solver mid-run or after it
// returns.
func (s *Solver) Dump() string {
	return Dump(s.Nodes) + s.Trail.String()
}

// Report formats the run summary line the CLI prints after solving,
// mirroring the reference solver's "Done (time: ..., picked: ... times)"
// line.
func (s *Solver) Report(sat bool) string {
	status := "UNSATISFIABLE"
	if sat {
		status = "SATISFIABLE"
	}
	return fmt.Sprintf("Done (time: %.6f s, picked: %d times) -> %s",
		s.Stats.Elapsed.Seconds(), s.Stats.Decisions, status)
}

func newInternalError(op, msg string) error {
	return core.NewInvariantError(op, msg)
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

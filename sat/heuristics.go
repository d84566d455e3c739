package sat

import (
	"math/rand"
	"sort"

	"github.com/xDarkicex/satcore/cnf"
)

// Heuristic chooses the next branching variable and its trial value
// (§4.4). Preprocess runs once before search begins and may build any
// static ordering the strategy needs; Pick is called once per decision
// and must return an unassigned variable.
type Heuristic interface {
	Preprocess(f *cnf.Formula)
	Pick(s *Solver) (cnf.Var, cnf.Value)
	Name() string
}

// noPreprocess is embedded by strategies with nothing to precompute.
type noPreprocess struct{}

func (noPreprocess) Preprocess(*cnf.Formula) {}

// OrderedHeuristic always picks the first unassigned variable in the
// formula's first-seen order (then, for variables no clause mentions, the
// lowest-numbered one) and tries it TRUE first.
type OrderedHeuristic struct{ noPreprocess }

func (OrderedHeuristic) Name() string { return "ordered" }

func (h OrderedHeuristic) Pick(s *Solver) (cnf.Var, cnf.Value) {
	for _, v := range s.Formula.VarOrder() {
		if s.Assign[v] == cnf.Unassign {
			return v, cnf.True
		}
	}
	for v := 1; v <= s.Formula.NumVars; v++ {
		if s.Assign[cnf.Var(v)] == cnf.Unassign {
			return cnf.Var(v), cnf.True
		}
	}
	panic("Pick called with no unassigned variables")
}

// RandomHeuristic picks uniformly among the unassigned variables and
// flips a coin for the trial value, mirroring the reference solver's
// RandomChoiceSolver.
type RandomHeuristic struct {
	noPreprocess
	rng *rand.Rand
}

// NewRandomHeuristic builds a RandomHeuristic seeded for reproducible
// runs; callers that want non-deterministic behavior should seed from
// the current time themselves.
func NewRandomHeuristic(seed int64) *RandomHeuristic {
	return &RandomHeuristic{rng: rand.New(rand.NewSource(seed))}
}

func (*RandomHeuristic) Name() string { return "random" }

func (h *RandomHeuristic) Pick(s *Solver) (cnf.Var, cnf.Value) {
	var unassigned []cnf.Var
	for v := 1; v <= s.Formula.NumVars; v++ {
		if s.Assign[cnf.Var(v)] == cnf.Unassign {
			unassigned = append(unassigned, cnf.Var(v))
		}
	}
	if len(unassigned) == 0 {
		panic("Pick called with no unassigned variables")
	}
	v := unassigned[h.rng.Intn(len(unassigned))]
	val := cnf.False
	if h.rng.Intn(2) == 1 {
		val = cnf.True
	}
	return v, val
}

// FrequencyHeuristic orders variables once, up front, by how many
// literal occurrences they have across the original clauses (most
// frequent first), then always picks the earliest unassigned variable
// in that static order. The trial value is the polarity the variable
// appeared with more often. Grounded on the reference solver's
// FrequentVarsFirstSolver, which precomputes the same kind of order in
// preprocess().
type FrequencyHeuristic struct {
	order     []cnf.Var
	preferred map[cnf.Var]cnf.Value
}

func (h *FrequencyHeuristic) Preprocess(f *cnf.Formula) {
	posCount := make(map[cnf.Var]int)
	negCount := make(map[cnf.Var]int)
	for _, c := range f.Original {
		for _, l := range c.Lits {
			if l.Positive() {
				posCount[l.Var()]++
			} else {
				negCount[l.Var()]++
			}
		}
	}

	vars := append([]cnf.Var(nil), f.VarOrder()...)
	total := func(v cnf.Var) int { return posCount[v] + negCount[v] }
	sort.SliceStable(vars, func(i, j int) bool { return total(vars[i]) > total(vars[j]) })
	h.order = vars

	h.preferred = make(map[cnf.Var]cnf.Value, len(vars))
	for _, v := range vars {
		if posCount[v] >= negCount[v] {
			h.preferred[v] = cnf.True
		} else {
			h.preferred[v] = cnf.False
		}
	}
}

func (*FrequencyHeuristic) Name() string { return "frequency" }

func (h *FrequencyHeuristic) Pick(s *Solver) (cnf.Var, cnf.Value) {
	for _, v := range h.order {
		if s.Assign[v] == cnf.Unassign {
			return v, h.preferred[v]
		}
	}
	panic("Pick called with no unassigned variables")
}

// DLISHeuristic (Dynamic Largest Individual Sum) recomputes, at every
// decision, how many not-yet-satisfied clauses each unassigned literal
// would satisfy, and picks the literal with the largest such count. Ties
// break on the lower variable id for determinism (§5).
type DLISHeuristic struct{ noPreprocess }

func (DLISHeuristic) Name() string { return "dlis" }

func (DLISHeuristic) Pick(s *Solver) (cnf.Var, cnf.Value) {
	posCount := make(map[cnf.Var]int)
	negCount := make(map[cnf.Var]int)

	for _, c := range s.Formula.Clauses() {
		if c.ValueOf(s.Assign) != cnf.Unassign {
			continue
		}
		for _, l := range c.Lits {
			if s.Assign.ValueOfLiteral(l) != cnf.Unassign {
				continue
			}
			if l.Positive() {
				posCount[l.Var()]++
			} else {
				negCount[l.Var()]++
			}
		}
	}

	bestVar, bestCount := cnf.Var(0), -1
	bestVal := cnf.True
	for v := 1; v <= s.Formula.NumVars; v++ {
		cv := cnf.Var(v)
		if s.Assign[cv] != cnf.Unassign {
			continue
		}
		p, n := posCount[cv], negCount[cv]
		count, val := p, cnf.True
		if n > p {
			count, val = n, cnf.False
		}
		if count > bestCount {
			bestCount, bestVar, bestVal = count, cv, val
		}
	}
	if bestVar == 0 {
		panic("Pick called with no unassigned variables")
	}
	return bestVar, bestVal
}

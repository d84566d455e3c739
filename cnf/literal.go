// Package cnf provides the literal/clause/formula representation for a
// propositional formula in Conjunctive Normal Form, plus the DIMACS CNF
// input contract used to build one.
package cnf

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Var is a propositional variable: a positive integer identifier drawn
// from the input. The variable set is fixed once a Formula is built.
type Var int

// Literal is a signed, non-zero integer. l.Var() = |l| and
// l.Positive() = (l > 0). The literal 0 never appears in memory; it is
// reserved as the DIMACS end-of-clause sentinel.
type Literal int

// NewLiteral builds the literal for v with the given polarity.
func NewLiteral(v Var, positive bool) Literal {
	if positive {
		return Literal(v)
	}
	return Literal(-v)
}

// Var returns the variable underlying a literal.
func (l Literal) Var() Var {
	if l < 0 {
		return Var(-l)
	}
	return Var(l)
}

// Positive reports whether the literal is unnegated.
func (l Literal) Positive() bool { return l > 0 }

// Negate returns the complementary literal.
func (l Literal) Negate() Literal { return -l }

func (l Literal) String() string {
	if l < 0 {
		return "-" + strconv.Itoa(int(-l))
	}
	return strconv.Itoa(int(l))
}

// Value is an assignment value: TRUE, FALSE, or UNASSIGN, per §3 of the
// specification. The representation matches the spec exactly so XOR-style
// polarity flips (Value ^ negated) fall out of the arithmetic.
type Value int8

const (
	Unassign Value = -1
	False    Value = 0
	True     Value = 1
)

func (v Value) String() string {
	switch v {
	case True:
		return "TRUE"
	case False:
		return "FALSE"
	default:
		return "UNASSIGN"
	}
}

// Assignment maps every variable to its current value. Index 0 is unused
// so that Var values (1-based, as DIMACS numbers them) index directly.
type Assignment []Value

// NewAssignment allocates an assignment for variables [1, numVars],
// all UNASSIGN.
func NewAssignment(numVars int) Assignment {
	a := make(Assignment, numVars+1)
	for i := range a {
		a[i] = Unassign
	}
	return a
}

// ValueOfLiteral computes the value of a literal under this assignment,
// per §4.2: UNASSIGN if the variable is unassigned, else the variable's
// value flipped by the literal's polarity.
func (a Assignment) ValueOfLiteral(l Literal) Value {
	v := a[l.Var()]
	if v == Unassign {
		return Unassign
	}
	if l.Positive() {
		return v
	}
	return v ^ 1
}

// Clause is a set of distinct, non-zero literals: an ordered slice kept
// sorted and de-duplicated by literal value so that two clauses with the
// same literal set compare equal by content.
type Clause struct {
	Lits    []Literal
	ID      int
	Learned bool
}

// NewClause builds a clause from literals, deduplicating and sorting them
// for a stable iteration order (required for BCP determinism, §5).
func NewClause(lits ...Literal) *Clause {
	seen := make(map[Literal]struct{}, len(lits))
	uniq := make([]Literal, 0, len(lits))
	for _, l := range lits {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		uniq = append(uniq, l)
	}
	sort.Slice(uniq, func(i, j int) bool { return uniq[i] < uniq[j] })
	return &Clause{Lits: uniq}
}

// key returns a string uniquely identifying the clause's literal set,
// used to deduplicate clauses across a Formula.
func (c *Clause) key() string {
	parts := make([]string, len(c.Lits))
	for i, l := range c.Lits {
		parts[i] = l.String()
	}
	return strings.Join(parts, ",")
}

func (c *Clause) String() string {
	if len(c.Lits) == 0 {
		return "()"
	}
	parts := make([]string, len(c.Lits))
	for i, l := range c.Lits {
		parts[i] = l.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// ValueOf computes the clause's value under the assignment, per §4.2: a
// disjunction is TRUE as soon as any literal is TRUE (checked across all
// literals, regardless of scan order), else UNASSIGN if any literal is
// still UNASSIGN, else FALSE.
func (c *Clause) ValueOf(a Assignment) Value {
	sawUnassign := false
	for _, l := range c.Lits {
		switch a.ValueOfLiteral(l) {
		case True:
			return True
		case Unassign:
			sawUnassign = true
		}
	}
	if sawUnassign {
		return Unassign
	}
	return False
}

// UnitLiteral reports whether the clause is unit under a (exactly one
// literal UNASSIGN, all others FALSE) and returns that literal.
func (c *Clause) UnitLiteral(a Assignment) (Literal, bool) {
	var unassigned Literal
	unassignedCount := 0
	for _, l := range c.Lits {
		v := a.ValueOfLiteral(l)
		switch v {
		case Unassign:
			unassignedCount++
			unassigned = l
		case True:
			return 0, false
		}
	}
	return unassigned, unassignedCount == 1
}

// Formula is a pair of clause sets: the immutable original clauses and
// the monotonically-growing set of learned clauses, per §3.
type Formula struct {
	Original []*Clause
	Learned  []*Clause
	NumVars  int

	seen     map[string]struct{}
	nextID   int
	varOrder []Var // first-seen order, used by the Ordered/Frequency heuristics
}

// NewFormula creates an empty formula over variables [1, numVars].
func NewFormula(numVars int) *Formula {
	return &Formula{
		NumVars: numVars,
		seen:    make(map[string]struct{}),
		nextID:  1,
	}
}

// AddOriginal adds a clause to the original formula, skipping it if an
// equal clause (by literal-set identity) is already present.
func (f *Formula) AddOriginal(c *Clause) bool {
	return f.add(&f.Original, c)
}

// AddLearned adds a learned clause, skipping duplicates the same way.
func (f *Formula) AddLearned(c *Clause) bool {
	c.Learned = true
	return f.add(&f.Learned, c)
}

func (f *Formula) add(set *[]*Clause, c *Clause) bool {
	k := c.key()
	if _, ok := f.seen[k]; ok {
		return false
	}
	f.seen[k] = struct{}{}
	c.ID = f.nextID
	f.nextID++
	*set = append(*set, c)
	for _, l := range c.Lits {
		v := l.Var()
		found := false
		for _, seen := range f.varOrder {
			if seen == v {
				found = true
				break
			}
		}
		if !found {
			f.varOrder = append(f.varOrder, v)
		}
	}
	return true
}

// VarOrder returns variables in first-seen order across the original
// formula (the order DIMACS clauses introduced them). Used by the
// Ordered and Frequency branching strategies.
func (f *Formula) VarOrder() []Var { return f.varOrder }

// Clauses returns the union of original and learned clauses, in the
// order used for BCP scans: originals first, then learned, both in
// insertion order. This ordering is what makes repeated runs of the
// Ordered strategy deterministic (§5).
func (f *Formula) Clauses() []*Clause {
	all := make([]*Clause, 0, len(f.Original)+len(f.Learned))
	all = append(all, f.Original...)
	all = append(all, f.Learned...)
	return all
}

// ValueOf computes the formula's value under the assignment, per §4.2:
// FALSE if any clause is FALSE, else UNASSIGN if any clause is UNASSIGN,
// else TRUE. Note this is not a plain numeric minimum: FALSE (0) outranks
// UNASSIGN (-1) even though -1 < 0.
func (f *Formula) ValueOf(a Assignment) Value {
	sawUnassign := false
	for _, c := range f.Clauses() {
		switch c.ValueOf(a) {
		case False:
			return False
		case Unassign:
			sawUnassign = true
		}
	}
	if sawUnassign {
		return Unassign
	}
	return True
}

// String renders the formula as space-separated DIMACS-style clauses,
// one per line, for debugging.
func (f *Formula) String() string {
	var b strings.Builder
	for _, c := range f.Clauses() {
		fmt.Fprintln(&b, c)
	}
	return b.String()
}

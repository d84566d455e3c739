package cnf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralVarAndPolarity(t *testing.T) {
	pos := NewLiteral(3, true)
	neg := NewLiteral(3, false)

	assert.Equal(t, Var(3), pos.Var())
	assert.Equal(t, Var(3), neg.Var())
	assert.True(t, pos.Positive())
	assert.False(t, neg.Positive())
	assert.Equal(t, neg, pos.Negate())
	assert.Equal(t, "3", pos.String())
	assert.Equal(t, "-3", neg.String())
}

func TestAssignmentValueOfLiteral(t *testing.T) {
	a := NewAssignment(2)
	assert.Equal(t, Unassign, a.ValueOfLiteral(NewLiteral(1, true)))

	a[1] = True
	assert.Equal(t, True, a.ValueOfLiteral(NewLiteral(1, true)))
	assert.Equal(t, False, a.ValueOfLiteral(NewLiteral(1, false)))

	a[2] = False
	assert.Equal(t, False, a.ValueOfLiteral(NewLiteral(2, true)))
	assert.Equal(t, True, a.ValueOfLiteral(NewLiteral(2, false)))
}

func TestNewClauseDedupesAndSorts(t *testing.T) {
	c := NewClause(3, -1, 3, -1, 2)
	require.Len(t, c.Lits, 3)
	assert.Equal(t, []Literal{-1, 2, 3}, c.Lits)
}

func TestClauseValueOfPrefersTrueRegardlessOfScanOrder(t *testing.T) {
	// Regression: an unassigned literal scanned before a satisfied one
	// must not shadow the clause's TRUE value.
	c := NewClause(NewLiteral(1, true), NewLiteral(2, true))
	a := NewAssignment(2)
	a[2] = True // satisfies literal "2", but var 1 (scanned first) stays unassigned

	assert.Equal(t, True, c.ValueOf(a))
}

func TestClauseValueOfIsUnassignWhenNoLiteralTrueYet(t *testing.T) {
	c := NewClause(NewLiteral(1, true), NewLiteral(2, true))
	a := NewAssignment(2)
	a[1] = False

	assert.Equal(t, Unassign, c.ValueOf(a))
}

func TestClauseValueOfIsFalseWhenAllLiteralsFalse(t *testing.T) {
	c := NewClause(NewLiteral(1, true), NewLiteral(2, false))
	a := NewAssignment(2)
	a[1] = False
	a[2] = True

	assert.Equal(t, False, c.ValueOf(a))
}

func TestClauseUnitLiteral(t *testing.T) {
	c := NewClause(NewLiteral(1, true), NewLiteral(2, false), NewLiteral(3, true))
	a := NewAssignment(3)
	a[1] = False
	a[3] = False

	lit, ok := c.UnitLiteral(a)
	require.True(t, ok)
	assert.Equal(t, NewLiteral(2, false), lit)

	a[2] = True
	_, ok = c.UnitLiteral(a)
	assert.False(t, ok, "clause falsified once var 2 is TRUE is not unit")
}

func TestFormulaValueOfPrioritizesFalseOverUnassign(t *testing.T) {
	f := NewFormula(2)
	f.AddOriginal(NewClause(NewLiteral(1, true)))
	f.AddOriginal(NewClause(NewLiteral(2, true)))

	a := NewAssignment(2)
	a[1] = False // first clause now FALSE
	// var 2 still unassigned: a naive numeric min would let UNASSIGN (-1)
	// beat FALSE (0) since -1 < 0, but FALSE must win.
	assert.Equal(t, False, f.ValueOf(a))
}

func TestFormulaValueOfUnassignThenTrue(t *testing.T) {
	f := NewFormula(2)
	f.AddOriginal(NewClause(NewLiteral(1, true)))
	f.AddOriginal(NewClause(NewLiteral(2, true)))

	a := NewAssignment(2)
	assert.Equal(t, Unassign, f.ValueOf(a))

	a[1] = True
	a[2] = True
	assert.Equal(t, True, f.ValueOf(a))
}

func TestFormulaDeduplicatesClausesByLiteralSet(t *testing.T) {
	f := NewFormula(2)
	added1 := f.AddOriginal(NewClause(1, -2))
	added2 := f.AddOriginal(NewClause(-2, 1)) // same set, different order

	assert.True(t, added1)
	assert.False(t, added2)
	assert.Len(t, f.Original, 1)
}

func TestFormulaVarOrderIsFirstSeen(t *testing.T) {
	f := NewFormula(3)
	f.AddOriginal(NewClause(3, 1))
	f.AddOriginal(NewClause(2))

	assert.Equal(t, []Var{1, 3, 2}, f.VarOrder())
}

func TestFormulaClausesOrdersOriginalThenLearned(t *testing.T) {
	f := NewFormula(2)
	original := NewClause(1, 2)
	learned := NewClause(-1, -2)
	f.AddOriginal(original)
	f.AddLearned(learned)

	want := []*Clause{original, learned}
	if diff := cmp.Diff(want, f.Clauses()); diff != "" {
		t.Errorf("Clauses() order mismatch (-want +got):\n%s", diff)
	}
}

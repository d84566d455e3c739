package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/satcore/cnf"
)

// TestAnalyzeResolvesToSingleAssertingLiteral drives a solver by hand
// through one decision and its forced propagations, then triggers a
// conflict and checks both the learned clause and the backjump level.
//
// Clauses: (-1 3), (-1 -3). Deciding x1=TRUE forces x3=TRUE via the
// first clause, which then falsifies the second: a conflict entirely
// within decision level 1. Resolving it away should strip x3 (the most
// recently derived variable) and land on the single asserting literal
// -1, with nothing left at an earlier level, so the backjump target is
// level 0.
func TestAnalyzeResolvesToSingleAssertingLiteral(t *testing.T) {
	f := cnf.NewFormula(3)
	f.AddOriginal(cnf.NewClause(cnf.NewLiteral(1, false), cnf.NewLiteral(3, true)))
	f.AddOriginal(cnf.NewClause(cnf.NewLiteral(1, false), cnf.NewLiteral(3, false)))

	s := NewSolver(f, OrderedHeuristic{}, nil)
	s.Level++
	s.assignDecision(1, cnf.True)

	conflict, err := s.propagate()
	require.NoError(t, err)
	require.NotNil(t, conflict)

	level, learned, err := s.analyze(conflict)
	require.NoError(t, err)
	assert.Equal(t, 0, level)
	assert.Equal(t, []cnf.Literal{cnf.NewLiteral(1, false)}, learned.Lits)
}

// TestAnalyzeReturnsUnsatAtLevelZero checks the level-0 shortcut: a
// conflict with no decisions on the trail means the formula is
// unsatisfiable outright.
func TestAnalyzeReturnsUnsatAtLevelZero(t *testing.T) {
	f := cnf.NewFormula(1)
	f.AddOriginal(cnf.NewClause(cnf.NewLiteral(1, true)))
	f.AddOriginal(cnf.NewClause(cnf.NewLiteral(1, false)))

	s := NewSolver(f, OrderedHeuristic{}, nil)
	conflict, err := s.propagate()
	require.NoError(t, err)
	require.NotNil(t, conflict)

	level, learned, err := s.analyze(conflict)
	require.NoError(t, err)
	assert.Equal(t, -1, level)
	assert.Nil(t, learned)
}

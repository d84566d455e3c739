package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/satcore/cnf"
)

func TestPropagateChainsUnitClausesToFixpoint(t *testing.T) {
	f := cnf.NewFormula(3)
	f.AddOriginal(cnf.NewClause(cnf.NewLiteral(1, true)))
	f.AddOriginal(cnf.NewClause(cnf.NewLiteral(1, false), cnf.NewLiteral(2, true)))
	f.AddOriginal(cnf.NewClause(cnf.NewLiteral(2, false), cnf.NewLiteral(3, true)))

	s := NewSolver(f, OrderedHeuristic{}, nil)
	conflict, err := s.propagate()

	require.NoError(t, err)
	assert.Nil(t, conflict)
	assert.Equal(t, cnf.True, s.Assign[1])
	assert.Equal(t, cnf.True, s.Assign[2])
	assert.Equal(t, cnf.True, s.Assign[3])
}

func TestPropagateDetectsConflictBetweenTwoUnitsInSamePass(t *testing.T) {
	f := cnf.NewFormula(1)
	f.AddOriginal(cnf.NewClause(cnf.NewLiteral(1, true)))
	f.AddOriginal(cnf.NewClause(cnf.NewLiteral(1, false)))

	s := NewSolver(f, OrderedHeuristic{}, nil)
	conflict, err := s.propagate()

	require.NoError(t, err)
	require.NotNil(t, conflict)
}

func TestPropagateDetectsAlreadyFalseClauseOnScan(t *testing.T) {
	f := cnf.NewFormula(2)
	f.AddOriginal(cnf.NewClause(cnf.NewLiteral(1, false), cnf.NewLiteral(2, false)))

	s := NewSolver(f, OrderedHeuristic{}, nil)
	s.Level++
	s.assignDecision(1, cnf.True)
	s.Level++
	s.assignDecision(2, cnf.True)

	conflict, err := s.propagate()
	require.NoError(t, err)
	require.NotNil(t, conflict)
}

func TestPropagateBuildsImplicationGraphParents(t *testing.T) {
	f := cnf.NewFormula(2)
	unit := cnf.NewClause(cnf.NewLiteral(1, true))
	implication := cnf.NewClause(cnf.NewLiteral(1, false), cnf.NewLiteral(2, true))
	f.AddOriginal(unit)
	f.AddOriginal(implication)

	s := NewSolver(f, OrderedHeuristic{}, nil)
	_, err := s.propagate()
	require.NoError(t, err)

	node2 := s.Nodes[2]
	assert.Equal(t, implication, node2.Antecedent)
	assert.Equal(t, []cnf.Var{1}, node2.Parents)
	assert.Contains(t, s.Nodes[1].Children, cnf.Var(2))
}

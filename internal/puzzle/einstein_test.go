package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xDarkicex/satcore/cnf"
	"github.com/xDarkicex/satcore/sat"
)

func TestEinsteinFormulaShape(t *testing.T) {
	f := Einstein()
	assert.Equal(t, NumEinsteinVars, f.NumVars)
	assert.Equal(t, 125, f.NumVars, "5 houses x 5 categories x 5 values per category")
	assert.NotEmpty(t, f.Original)
}

func TestEinsteinSolutionHasGermanOwningTheFish(t *testing.T) {
	f := Einstein()
	s := sat.NewSolver(f, sat.DLISHeuristic{}, nil)
	satisfiable, assignment := s.Solve()

	require.True(t, satisfiable)

	germanHouse := 0
	for house := 1; house <= houses; house++ {
		if assignment[v(house, german)] == cnf.True {
			germanHouse = house
		}
	}
	require.NotZero(t, germanHouse, "some house is German")
	assert.Equal(t, cnf.True, assignment[v(germanHouse, fish)], "the German owns the fish")
}

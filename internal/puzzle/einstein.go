// Package puzzle generates CNF instances for well-known constraint
// puzzles, for use as solver fixtures and CLI demonstrations. It is not
// imported by the cnf or sat packages: generated formulas flow back
// through the same Formula type and DIMACS encoding every other input
// uses.
package puzzle

import "github.com/xDarkicex/satcore/cnf"

// houses is the number of houses (and the number of distinct values per
// category) in the Einstein/Zebra puzzle.
const houses = 5

// Property identifiers, numbered exactly as in the reference puzzle
// generator so that variable numbers (and therefore any fixed solution
// trace) line up with it.
const (
	red = iota
	green
	white
	blue
	yellow
)

const (
	british = iota + 5
	swedish
	danish
	norwegian
	german
)

const (
	tea = iota + 10
	coffee
	water
	beer
	milk
)

const (
	prince = iota + 15
	blends
	pallmall
	bluemasters
	dunhill
)

const (
	dog = iota + 20
	cat
	bird
	horse
	fish
)

// NumEinsteinVars is the variable count of the generated formula: one
// boolean per (house, property-value) pair across 5 categories of 5
// values each.
const NumEinsteinVars = houses * 25

// v returns the variable for "house has property", matching the
// reference encoding var = house + houses*property.
func v(house, property int) cnf.Var {
	return cnf.Var(house + houses*property)
}

func pos(house, property int) cnf.Literal { return cnf.NewLiteral(v(house, property), true) }
func neg(house, property int) cnf.Literal { return cnf.NewLiteral(v(house, property), false) }

// Einstein builds the classic "who owns the fish" puzzle as a
// *cnf.Formula: five houses, each with a distinct color, nationality,
// drink, cigar brand, and pet, constrained by fifteen clues. It has a
// single satisfying assignment (the German owns the fish).
func Einstein() *cnf.Formula {
	f := cnf.NewFormula(NumEinsteinVars)

	categories := [][2]int{
		{red, yellow},
		{tea, milk},
		{prince, dunhill},
		{dog, fish},
		{british, german},
	}
	for _, c := range categories {
		generateCategory(f, c[0], c[1])
	}

	// 1. The Norwegian lives in the first house.
	f.AddOriginal(cnf.NewClause(pos(1, norwegian)))
	// 2. The Norwegian lives next to the blue house.
	f.AddOriginal(cnf.NewClause(pos(2, blue)))
	// 3. The man living in the center house drinks milk.
	f.AddOriginal(cnf.NewClause(pos(3, milk)))

	// 4. The Brit lives in the red house.
	pairRelationship(f, british, red)
	// 5. The green house's owner drinks coffee.
	pairRelationship(f, green, coffee)
	// 6. The Dane drinks tea.
	pairRelationship(f, danish, tea)
	// 7. The owner of the yellow house smokes Dunhill.
	pairRelationship(f, yellow, dunhill)
	// 8. The Swede keeps dogs as pets.
	pairRelationship(f, swedish, dog)
	// 9. The German smokes Prince.
	pairRelationship(f, german, prince)
	// 10. The person who smokes Pall Mall rears birds.
	pairRelationship(f, pallmall, bird)
	// 11. The owner who smokes Bluemasters drinks beer.
	pairRelationship(f, bluemasters, beer)

	// 12. The man who keeps the horse lives next to the man who smokes Dunhill.
	neighbor(f, horse, dunhill)
	// 13. The man who smokes Blends lives next to the one who keeps cats.
	neighbor(f, blends, cat)
	// 14. The man who smokes Blends has a neighbor who drinks water.
	neighbor(f, blends, water)

	// 15. The green house is immediately to the left of the white house.
	for w := 1; w <= houses; w++ {
		for g := houses; g >= 1; g-- {
			if w-1 <= g && g <= w {
				continue
			}
			f.AddOriginal(cnf.NewClause(neg(w, white), neg(g, green)))
		}
	}

	return f
}

// generateCategory adds the clauses common to every category over
// [start, end]: each value is held by at least one house, at most one
// house, and each house holds at most one value per category.
func generateCategory(f *cnf.Formula, start, end int) {
	for prop := start; prop <= end; prop++ {
		lits := make([]cnf.Literal, 0, houses)
		for house := 1; house <= houses; house++ {
			lits = append(lits, pos(house, prop))
		}
		f.AddOriginal(cnf.NewClause(lits...))

		for h1 := 1; h1 <= houses; h1++ {
			for h2 := 1; h2 < h1; h2++ {
				f.AddOriginal(cnf.NewClause(neg(h2, prop), neg(h1, prop)))
			}
			for j := start; j <= end; j++ {
				if j == prop {
					continue
				}
				f.AddOriginal(cnf.NewClause(neg(h1, prop), neg(h1, j)))
			}
		}
	}
}

// pairRelationship ties two properties to the same house in both
// directions: a house has prop1 if and only if it has prop2.
func pairRelationship(f *cnf.Formula, prop1, prop2 int) {
	for house := 1; house <= houses; house++ {
		f.AddOriginal(cnf.NewClause(neg(house, prop1), pos(house, prop2)))
		f.AddOriginal(cnf.NewClause(pos(house, prop1), neg(house, prop2)))
	}
}

// neighbor constrains prop1 and prop2 to adjacent houses: whichever
// house has prop1, one of its neighbors has prop2.
func neighbor(f *cnf.Formula, prop1, prop2 int) {
	f.AddOriginal(cnf.NewClause(neg(1, prop1), pos(2, prop2)))
	f.AddOriginal(cnf.NewClause(neg(houses, prop1), pos(houses-1, prop2)))
	for i := 2; i < houses; i++ {
		f.AddOriginal(cnf.NewClause(neg(i, prop1), pos(i-1, prop2), pos(i+1, prop2)))
	}
}

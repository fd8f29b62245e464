package potmanager

import (
	"fmt"
	"sort"
)

// Contribution is what a seat put into the hand over every street
type Contribution struct {
	Seat   int
	Amount int
	Folded bool
}

// Pot is an amount of chips and the seats that can win it
type Pot struct {
	Amount   int   `json:"amount"`
	Eligible []int `json:"eligible"`
}

// IsEligible returns true if the seat can win the pot
func (p *Pot) IsEligible(seat int) bool {
	for _, s := range p.Eligible {
		if s == seat {
			return true
		}
	}

	return false
}

func (p *Pot) String() string {
	return fmt.Sprintf("%d %v", p.Amount, p.Eligible)
}

// Pots is a collection of pots. The main pot is first, side pots follow.
type Pots []*Pot

// Total returns the combined total of all pots
func (p Pots) Total() int {
	total := 0
	for _, pot := range p {
		total += pot.Amount
	}

	return total
}

// BuildPots splits the contributions into a main pot and side pots
// Every distinct contribution level starts a new pot funded by each seat that reached it. Folded seats fund
// pots but are never eligible. Neighbouring pots with the same eligible seats are merged.
func BuildPots(contributions []Contribution) Pots {
	levels := make([]int, 0, len(contributions))
	seen := make(map[int]bool)
	for _, c := range contributions {
		if c.Amount > 0 && !seen[c.Amount] {
			seen[c.Amount] = true
			levels = append(levels, c.Amount)
		}
	}
	sort.Ints(levels)

	pots := make(Pots, 0, len(levels))
	prevLevel := 0
	for _, level := range levels {
		pot := &Pot{Eligible: []int{}}
		for _, c := range contributions {
			if c.Amount < level {
				continue
			}

			pot.Amount += level - prevLevel
			if !c.Folded {
				pot.Eligible = append(pot.Eligible, c.Seat)
			}
		}
		sort.Ints(pot.Eligible)
		prevLevel = level

		if n := len(pots); n > 0 && (len(pot.Eligible) == 0 || sameSeats(pots[n-1].Eligible, pot.Eligible)) {
			// nobody left to win this level, or the same seats are competing
			pots[n-1].Amount += pot.Amount
			continue
		}

		pots = append(pots, pot)
	}

	// chips only folded seats reached are carried forward into the first pot someone can win
	if len(pots) > 1 && len(pots[0].Eligible) == 0 {
		pots[1].Amount += pots[0].Amount
		pots = pots[1:]
	}

	return pots
}

func sameSeats(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

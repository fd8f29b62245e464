package potmanager

import (
	"sort"
)

type tier struct {
	strength int
	seats    []int
}

// WinManager keeps track of the hand strength of every seat still in the hand
type WinManager map[int]int

// NewWinManager returns a new WinManager
func NewWinManager() WinManager {
	return make(WinManager)
}

// AddSeat records the strength of a seat's best hand
func (w WinManager) AddSeat(seat, handStrength int) {
	w[seat] = handStrength
}

// GetSortedTiers returns the seats grouped by strength, strongest group first
// Seats within a group are sorted ascending.
func (w WinManager) GetSortedTiers() [][]int {
	byStrength := make(map[int]*tier)
	for seat, strength := range w {
		t, ok := byStrength[strength]
		if !ok {
			t = &tier{strength: strength}
			byStrength[strength] = t
		}

		t.seats = append(t.seats, seat)
	}

	tiers := make([]*tier, 0, len(byStrength))
	for _, t := range byStrength {
		sort.Ints(t.seats)
		tiers = append(tiers, t)
	}

	sort.Sort(sort.Reverse(sortByStrength(tiers)))

	tieredSeats := make([][]int, len(tiers))
	for i, t := range tiers {
		tieredSeats[i] = t.seats
	}

	return tieredSeats
}

// Winners returns the strongest seats that are eligible for the pot
func (w WinManager) Winners(pot *Pot) []int {
	for _, seats := range w.GetSortedTiers() {
		winners := make([]int, 0, len(seats))
		for _, seat := range seats {
			if pot.IsEligible(seat) {
				winners = append(winners, seat)
			}
		}

		if len(winners) > 0 {
			return winners
		}
	}

	return nil
}

type sortByStrength []*tier

func (s sortByStrength) Len() int {
	return len(s)
}

func (s sortByStrength) Less(i, j int) bool {
	return s[i].strength < s[j].strength
}

func (s sortByStrength) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

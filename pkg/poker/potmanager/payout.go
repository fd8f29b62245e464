package potmanager

import (
	"errors"
	"fmt"
)

// ErrNoWinner is an error when a pot has no ranked eligible seat
var ErrNoWinner = errors.New("pot has no eligible winner")

// OddChipOrder returns the seats clockwise from the dealer, starting with the seat to the dealer's left
// The dealer is last.
func OddChipOrder(dealer, seats int) []int {
	order := make([]int, seats)
	for i := range order {
		order[i] = (dealer + 1 + i) % seats
	}

	return order
}

// PayWinners splits each pot between its strongest eligible seats and returns what every seat won
// A pot that cannot be split evenly hands the leftover chips out one at a time, following order.
func (p Pots) PayWinners(w WinManager, order []int) (map[int]int, error) {
	payouts := make(map[int]int)
	for i, pot := range p {
		winners := w.Winners(pot)
		if len(winners) == 0 {
			return nil, fmt.Errorf("%w: pot %d (%s)", ErrNoWinner, i, pot)
		}

		inOrder := make([]int, 0, len(winners))
		for _, seat := range order {
			for _, winner := range winners {
				if seat == winner {
					inOrder = append(inOrder, seat)
				}
			}
		}

		if len(inOrder) != len(winners) {
			return nil, fmt.Errorf("winners %v are not all seated in %v", winners, order)
		}

		share := pot.Amount / len(inOrder)
		remainder := pot.Amount % len(inOrder)
		for j, seat := range inOrder {
			payouts[seat] += share
			if j < remainder {
				payouts[seat]++
			}
		}
	}

	return payouts, nil
}

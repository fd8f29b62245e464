package handanalyzer

import (
	"errors"
	"fmt"
	"sort"

	"holdem-stepper-server/pkg/deck"
)

// ErrInvalidCardSet is an error when the cards cannot be evaluated as a hand
var ErrInvalidCardSet = errors.New("invalid card set")

// hand sizes that can be evaluated
const (
	minCards = 5
	maxCards = 7
	handSize = 5
)

// HandAnalyzer keeps the best five-card hand that can be made from up to seven cards
type HandAnalyzer struct {
	cards deck.Hand
	best  deck.Hand
	rank  HandRank
}

// New will return a new HandAnalyzer instance
// Every five-card combination of the cards is evaluated and the strongest is kept.
func New(cards deck.Hand) (*HandAnalyzer, error) {
	if err := validateCards(cards); err != nil {
		return nil, err
	}

	h := &HandAnalyzer{
		cards: cards.Clone(),
	}

	var five [handSize]deck.Card
	first := true
	forEachCombination(len(cards), func(idx [handSize]int) {
		for i, j := range idx {
			five[i] = cards[j]
		}

		rank := evaluateFive(five)
		if first || rank.Compare(h.rank) > 0 {
			first = false
			h.rank = rank
			h.best = deck.Hand(five[:]).Clone()
		}
	})

	return h, nil
}

// Evaluate returns the rank of the best five-card hand in the cards
func Evaluate(cards deck.Hand) (HandRank, error) {
	h, err := New(cards)
	if err != nil {
		return HandRank{}, err
	}

	return h.rank, nil
}

// GetHand will return the best possible hand the cards can make
func (h *HandAnalyzer) GetHand() Hand {
	return h.rank.Hand
}

// GetRank returns the full rank of the best hand
func (h *HandAnalyzer) GetRank() HandRank {
	return h.rank
}

// GetStrength returns the strength of the hand
func (h *HandAnalyzer) GetStrength() int {
	return h.rank.Strength()
}

// GetBestFive returns the five cards that make up the best hand
func (h *HandAnalyzer) GetBestFive() deck.Hand {
	return h.best.Clone()
}

// GetRoyalFlush will return true if there's a royal flush
func (h *HandAnalyzer) GetRoyalFlush() bool {
	return h.rank.Hand == RoyalFlush
}

// Describe returns a human-readable description of the best hand
func (h *HandAnalyzer) Describe() string {
	return h.rank.Describe()
}

func validateCards(cards deck.Hand) error {
	if n := len(cards); n < minCards || n > maxCards {
		return fmt.Errorf("%w: %d cards supplied, expected %d to %d", ErrInvalidCardSet, n, minCards, maxCards)
	}

	for _, card := range cards {
		if !card.IsValid() {
			return fmt.Errorf("%w: %q is not a card", ErrInvalidCardSet, card.String())
		}
	}

	if cards.HasDuplicates() {
		return fmt.Errorf("%w: duplicate cards in %s", ErrInvalidCardSet, cards.String())
	}

	return nil
}

// forEachCombination calls fn with every ascending set of five indexes out of n
func forEachCombination(n int, fn func(idx [handSize]int)) {
	var idx [handSize]int
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				for d := c + 1; d < n; d++ {
					for e := d + 1; e < n; e++ {
						idx[0], idx[1], idx[2], idx[3], idx[4] = a, b, c, d, e
						fn(idx)
					}
				}
			}
		}
	}
}

type rankGroup struct {
	rank  int
	count int
}

// evaluateFive ranks exactly five distinct cards
func evaluateFive(cards [handSize]deck.Card) HandRank {
	var counts [deck.Ace + 1]int
	isFlush := true
	for i, card := range cards {
		counts[card.Rank]++
		if i > 0 && card.Suit != cards[0].Suit {
			isFlush = false
		}
	}

	// groups are ordered by size, then by rank, both descending
	groups := make([]rankGroup, 0, handSize)
	for rank := deck.Ace; rank >= 2; rank-- {
		if counts[rank] > 0 {
			groups = append(groups, rankGroup{rank: rank, count: counts[rank]})
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].count > groups[j].count
	})

	tiebreak := make([]int, len(groups))
	for i, g := range groups {
		tiebreak[i] = g.rank
	}

	straightHigh := 0
	if len(groups) == handSize {
		if tiebreak[0]-tiebreak[4] == 4 {
			straightHigh = tiebreak[0]
		} else if tiebreak[0] == deck.Ace && tiebreak[1] == 5 {
			// the wheel: A-2-3-4-5 plays as five high
			straightHigh = 5
		}
	}

	switch {
	case straightHigh > 0 && isFlush:
		if straightHigh == deck.Ace {
			return HandRank{Hand: RoyalFlush, Tiebreak: []int{straightHigh}}
		}

		return HandRank{Hand: StraightFlush, Tiebreak: []int{straightHigh}}
	case groups[0].count == 4:
		return HandRank{Hand: FourOfAKind, Tiebreak: tiebreak}
	case groups[0].count == 3 && groups[1].count == 2:
		return HandRank{Hand: FullHouse, Tiebreak: tiebreak}
	case isFlush:
		return HandRank{Hand: Flush, Tiebreak: tiebreak}
	case straightHigh > 0:
		return HandRank{Hand: Straight, Tiebreak: []int{straightHigh}}
	case groups[0].count == 3:
		return HandRank{Hand: ThreeOfAKind, Tiebreak: tiebreak}
	case groups[0].count == 2 && groups[1].count == 2:
		return HandRank{Hand: TwoPair, Tiebreak: tiebreak}
	case groups[0].count == 2:
		return HandRank{Hand: OnePair, Tiebreak: tiebreak}
	}

	return HandRank{Hand: HighCard, Tiebreak: tiebreak}
}

package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand"

	"holdem-stepper-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are not enough cards
var ErrEndOfDeck = errors.New("end of deck reached")

// seedSource provides seeds when the caller does not ask for a specific one
var seedSource rng.Generator = rng.Crypto{}

// Deck represents a playing deck
type Deck struct {
	Cards []Card `json:"cards"`
	seed  int64
	rng   *rand.Rand
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		seed: -1,
	}

	d.buildDeck()
	return d
}

// NewShuffled returns a deck shuffled with the provided seed (0 for a random seed)
func NewShuffled(seed int64) *Deck {
	d := New()
	d.Shuffle(seed)
	return d
}

// NewStacked returns a deck that deals cards in order, followed by the rest of a new deck
// Duplicate cards are ignored.
func NewStacked(cards Hand) *Deck {
	order := make(Hand, 0, 52)
	for _, c := range cards {
		if !order.HasCard(c) {
			order = append(order, c)
		}
	}

	for _, c := range New().Cards {
		if !order.HasCard(c) {
			order = append(order, c)
		}
	}

	return &Deck{
		Cards: order,
		seed:  -1,
	}
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the deck of cards
// You can manually specify the seed, or you can leave it as 0 to use a random seed.
func (d *Deck) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	// we always want to shuffle from an unshuffled deck.
	// this check here is to make sure we aren't double building the deck
	if len(d.Cards) != 52 || d.seed != -1 {
		d.buildDeck()
	}

	if seed == 0 {
		seed = rng.Seed(seedSource)
	}

	d.seed = seed
	d.rng = rand.New(rand.NewSource(seed)) // nolint:gosec

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// GetSeed returns the seed used to shuffle the deck
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw removes and returns the next n cards
// If fewer than n cards remain, ErrEndOfDeck is returned and the deck is left untouched.
func (d *Deck) Draw(n int) (Hand, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot draw %d cards", n)
	}

	if len(d.Cards) < n {
		return nil, fmt.Errorf("%w: wanted %d, %d left", ErrEndOfDeck, n, len(d.Cards))
	}

	cards := make(Hand, n)
	copy(cards, d.Cards[:n])
	d.Cards = d.Cards[n:]

	return cards, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is an error when a card string cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Suits is every suit in deck order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Card is an individual playing card
// Cards are compared by value; two cards are the same card when rank and suit match.
type Card struct {
	Rank int
	Suit Suit
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

const rankChars = "23456789TJQKA"

// IsValid returns true if the rank and suit are part of a standard deck
func (c Card) IsValid() bool {
	if c.Rank < 2 || c.Rank > Ace {
		return false
	}

	switch c.Suit {
	case Hearts, Clubs, Diamonds, Spades:
		return true
	}

	return false
}

// String returns the two character form of the card, i.e., As, Td, 2c
func (c Card) String() string {
	if !c.IsValid() {
		return "??"
	}

	return string(rankChars[c.Rank-2]) + string(c.Suit[0])
}

// Pretty returns the card with a suit symbol, i.e., A♠
func (c Card) Pretty() string {
	var rank string
	switch c.Rank {
	case 10:
		rank = "10"
	default:
		rank = string(rankChars[c.Rank-2])
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return rank + suit
}

// MarshalText encodes the card in its two character form
func (c Card) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: rank %d, suit %q", ErrInvalidCard, c.Rank, c.Suit)
	}

	return []byte(c.String()), nil
}

// UnmarshalText decodes the two character form of a card
func (c *Card) UnmarshalText(b []byte) error {
	card, err := CardFromString(string(b))
	if err != nil {
		return err
	}

	*c = card
	return nil
}

// CardFromString parses a card in the form of <rank><suit>
// Rank is one of 2-9, T (or 10), J, Q, K, A and suit is one of c, d, h, s. Parsing is case-insensitive.
func CardFromString(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rankPart := strings.ToUpper(s[:len(s)-1])
	if rankPart == "10" {
		rankPart = "T"
	}

	if len(rankPart) != 1 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	idx := strings.Index(rankChars, rankPart)
	if idx < 0 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	var suit Suit
	switch strings.ToLower(s[len(s)-1:]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	return Card{Rank: idx + 2, Suit: suit}, nil
}

// MustCardFromString is like CardFromString, but panics on an invalid card
func MustCardFromString(s string) Card {
	card, err := CardFromString(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse card: %v", err))
	}

	return card
}

// CardsFromString will return a slice of cards from a comma-separated list, i.e., "As,Kd,2c"
// This panics on malformed input and is meant for tests and fixtures.
func CardsFromString(s string) Hand {
	if s == "" {
		return Hand{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make(Hand, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = MustCardFromString(card)
	}

	return cards
}

// ParseCards parses every card in cards
func ParseCards(cards []string) (Hand, error) {
	hand := make(Hand, len(cards))
	for i, s := range cards {
		card, err := CardFromString(s)
		if err != nil {
			return nil, err
		}

		hand[i] = card
	}

	return hand, nil
}

// CardsToString will convert a slice of cards to a string in the format of As,Kd,2c
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, ",")
}

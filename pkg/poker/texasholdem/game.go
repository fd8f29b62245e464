package texasholdem

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"holdem-stepper-server/pkg/deck"
	"holdem-stepper-server/pkg/poker/handanalyzer"
	"holdem-stepper-server/pkg/poker/potmanager"
)

// ErrHandNotOver is an error when a finished hand is required
var ErrHandNotOver = errors.New("hand is not over")

// seat limits; every seat gets two hole cards and the board takes five
const (
	minSeats = 2
	maxSeats = 23
)

// Game is a single hand of No-Limit Texas Hold'em
type Game struct {
	id        string
	logger    logrus.FieldLogger
	options   Options
	deck      *deck.Deck
	seats     []*Seat
	positions Positions
	board     deck.Hand
	actions   []Action

	street       Street
	awaitingDeal bool
	// currentBet is the street total every seat must match
	currentBet int
	// lastRaise is the size of the last full bet or raise on this street
	lastRaise  int
	actingSeat int
	// pending are the seats that still owe a decision on this street
	pending map[int]bool
	// acted are the seats that made a decision since the last full bet or raise
	acted map[int]bool

	result *Result
}

// NewGame shuffles a deck, deals the hole cards and posts the blinds
// A seed of 0 shuffles with a random seed.
func NewGame(logger logrus.FieldLogger, id string, stacks []int, dealer int, opts Options, seed int64) (*Game, error) {
	if err := validateSetup(stacks, dealer, opts); err != nil {
		return nil, err
	}

	if seed < 0 {
		return nil, errors.New("seed must be >= 0")
	}

	return newGame(logger, id, stacks, dealer, opts, deck.NewShuffled(seed)), nil
}

func validateSetup(stacks []int, dealer int, opts Options) error {
	if err := validateOptions(opts); err != nil {
		return err
	}

	n := len(stacks)
	if n < minSeats || n > maxSeats {
		return fmt.Errorf("a hand needs %d to %d seats, got %d", minSeats, maxSeats, n)
	}

	if dealer < 0 || dealer >= n {
		return fmt.Errorf("dealer seat %d is not at the table", dealer)
	}

	for i, stack := range stacks {
		if stack <= 0 {
			return fmt.Errorf("seat %d must have a stack > 0", i)
		}
	}

	return nil
}

// newGame deals from d and posts the blinds; the setup must already be valid
func newGame(logger logrus.FieldLogger, id string, stacks []int, dealer int, opts Options, d *deck.Deck) *Game {
	n := len(stacks)
	seats := make([]*Seat, n)
	for i, stack := range stacks {
		seats[i] = newSeat(i, stack)
	}

	g := &Game{
		id:         id,
		logger:     logger.WithField("hand", id),
		options:    opts,
		deck:       d,
		seats:      seats,
		positions:  positionsFor(dealer, n),
		board:      make(deck.Hand, 0, 5),
		actions:    make([]Action, 0),
		actingSeat: -1,
	}

	g.dealHoleCards()
	g.postBlinds()

	g.logger.WithFields(logrus.Fields{
		"seats":  n,
		"dealer": dealer,
		"seed":   g.deck.GetSeed(),
	}).Info("hand started")

	g.advance()
	return g
}

// positionsFor returns the blinds for the dealer
// Heads-up, the dealer posts the small blind.
func positionsFor(dealer, n int) Positions {
	if n == 2 {
		return Positions{
			Dealer:     dealer,
			SmallBlind: dealer,
			BigBlind:   (dealer + 1) % n,
		}
	}

	return Positions{
		Dealer:     dealer,
		SmallBlind: (dealer + 1) % n,
		BigBlind:   (dealer + 2) % n,
	}
}

func (g *Game) draw(n int) deck.Hand {
	cards, err := g.deck.Draw(n)
	if err != nil {
		panic(fmt.Sprintf("hand %s: %v", g.id, err))
	}

	return cards
}

// dealHoleCards deals one card at a time, starting left of the dealer
func (g *Game) dealHoleCards() {
	n := len(g.seats)
	for pass := 0; pass < 2; pass++ {
		for i := 1; i <= n; i++ {
			seat := g.seats[(g.positions.Dealer+i)%n]
			seat.cards = append(seat.cards, g.draw(1)...)
		}
	}
}

// postBlinds takes the forced bets and opens the pre-flop betting
func (g *Game) postBlinds() {
	sb := g.seats[g.positions.SmallBlind].pay(g.options.SmallBlind)
	bb := g.seats[g.positions.BigBlind].pay(g.options.BigBlind)

	g.street = PreFlop
	g.currentBet = sb
	if bb > sb {
		g.currentBet = bb
	}

	g.lastRaise = g.options.BigBlind
	g.startBetting(g.positions.BigBlind)
}

// Apply validates and applies an action
// An illegal action returns an *IllegalActionError and leaves the hand untouched.
func (g *Game) Apply(a Action) error {
	if err := g.validate(a); err != nil {
		return err
	}

	if a.kind.IsDeal() {
		g.deal(a.kind)
		g.advance()
		return nil
	}

	g.applyPlayerAction(a)
	return nil
}

func (g *Game) validate(a Action) error {
	if g.IsOver() {
		return illegal(RuleHandOver, "the hand is over")
	}

	if !validKinds[a.kind] {
		return illegal(RuleUnknownAction, "%q is not a valid action", a.kind)
	}

	if a.kind.IsDeal() {
		return g.validateDeal(a.kind)
	}

	if g.awaitingDeal {
		next, _ := g.street.nextDeal()
		return illegal(RuleDealRequired, "betting on the %s is closed, %s is next", g.street, next)
	}

	if a.seat < 0 || a.seat >= len(g.seats) {
		return illegal(RuleUnknownSeat, "there is no seat %d", a.seat)
	}

	if a.seat != g.actingSeat {
		return illegal(RuleNotYourTurn, "it is seat %d's turn", g.actingSeat)
	}

	return g.validateBet(g.seats[a.seat], a)
}

func (g *Game) validateDeal(kind ActionKind) error {
	if g.options.AutoDeal {
		return illegal(RuleDealNotExpected, "community cards are dealt automatically")
	}

	if !g.awaitingDeal {
		return illegal(RuleDealNotExpected, "betting on the %s is not finished", g.street)
	}

	if next, _ := g.street.nextDeal(); next != kind {
		return illegal(RuleWrongDeal, "expected %s, got %s", next, kind)
	}

	return nil
}

// deal draws the community cards for the next street and opens its betting
func (g *Game) deal(kind ActionKind) {
	_, n := g.street.nextDeal()
	g.board = append(g.board, g.draw(n)...)
	g.actions = append(g.actions, dealAction(kind))
	g.awaitingDeal = false

	g.startStreet(g.street + 1)
	g.logger.WithFields(logrus.Fields{
		"street": g.street.String(),
		"board":  g.board.String(),
	}).Info("street dealt")
}

// advance moves the hand along while nobody owes a decision
func (g *Game) advance() {
	for len(g.pending) == 0 {
		g.actingSeat = -1

		if g.street == River {
			g.showdown()
			return
		}

		if !g.options.AutoDeal {
			g.awaitingDeal = true
			return
		}

		kind, _ := g.street.nextDeal()
		g.deal(kind)
	}
}

func (g *Game) contributions() []potmanager.Contribution {
	c := make([]potmanager.Contribution, len(g.seats))
	for i, s := range g.seats {
		c[i] = potmanager.Contribution{
			Seat:   i,
			Amount: s.totalBet,
			Folded: s.status == StatusFolded,
		}
	}

	return c
}

// finishUncontested gives everything to the last seat standing
func (g *Game) finishUncontested() {
	g.street = HandOver
	g.actingSeat = -1
	g.awaitingDeal = false
	g.pending = make(map[int]bool)

	winner := -1
	for _, s := range g.seats {
		if s.inHand() {
			winner = s.index
		}
	}

	pots := potmanager.BuildPots(g.contributions())
	g.settle(pots, map[int]int{winner: pots.Total()}, nil, false)
}

// showdown ranks every seat still in the hand and pays each pot to its best eligible hands
func (g *Game) showdown() {
	g.street = Showdown
	g.actingSeat = -1

	wm := potmanager.NewWinManager()
	hands := make(map[int]string)
	for _, s := range g.seats {
		if !s.inHand() {
			continue
		}

		cards := append(s.cards.Clone(), g.board...)
		rank, err := handanalyzer.Evaluate(cards)
		if err != nil {
			panic(fmt.Sprintf("hand %s: seat %d: %v", g.id, s.index, err))
		}

		wm.AddSeat(s.index, rank.Strength())
		hands[s.index] = rank.Describe()
	}

	pots := potmanager.BuildPots(g.contributions())
	payouts, err := pots.PayWinners(wm, potmanager.OddChipOrder(g.positions.Dealer, len(g.seats)))
	if err != nil {
		panic(fmt.Sprintf("hand %s: %v", g.id, err))
	}

	g.settle(pots, payouts, hands, true)
}

func (g *Game) settle(pots potmanager.Pots, payouts map[int]int, hands map[int]string, showdown bool) {
	result := &Result{
		Showdown: showdown,
		Pots:     pots,
		Seats:    make([]SeatResult, len(g.seats)),
	}

	sum := 0
	for i, s := range g.seats {
		won := payouts[i]
		s.stack += won

		result.Seats[i] = SeatResult{
			Seat:        i,
			Contributed: s.totalBet,
			Won:         won,
			Net:         won - s.totalBet,
			Hand:        hands[i],
		}
		sum += result.Seats[i].Net
	}

	if sum != 0 {
		panic(fmt.Sprintf("hand %s settled with a net of %d", g.id, sum))
	}

	g.result = result
	g.logger.WithFields(logrus.Fields{
		"street":   g.street.String(),
		"winners":  result.Winners(),
		"pot":      pots.Total(),
		"showdown": showdown,
	}).Info("hand complete")
}

// ID returns the hand id
func (g *Game) ID() string {
	return g.id
}

// IsOver returns true once the hand is settled
func (g *Game) IsOver() bool {
	return g.result != nil
}

// Result returns the settled result, or nil while the hand is in progress
func (g *Game) Result() *Result {
	return g.result
}

// Street returns the current street
func (g *Game) Street() Street {
	return g.street
}

// ActingSeat returns the seat that must act next
// Returns false when the hand is over or waiting for a deal.
func (g *Game) ActingSeat() (int, bool) {
	return g.actingSeat, g.actingSeat >= 0
}

// CurrentBet returns the street total every seat must match
func (g *Game) CurrentBet() int {
	return g.currentBet
}

// Positions returns the dealer and blind seats
func (g *Game) Positions() Positions {
	return g.positions
}

// Seat returns the seat at index
func (g *Game) Seat(index int) (*Seat, bool) {
	if index < 0 || index >= len(g.seats) {
		return nil, false
	}

	return g.seats[index], true
}

// Board returns a copy of the community cards
func (g *Game) Board() deck.Hand {
	return g.board.Clone()
}

// Actions returns a copy of the action log
func (g *Game) Actions() []Action {
	actions := make([]Action, len(g.actions))
	copy(actions, g.actions)

	return actions
}

// HistoryRecord returns the record of a finished hand
func (g *Game) HistoryRecord() (*HandHistory, error) {
	if !g.IsOver() {
		return nil, ErrHandNotOver
	}

	stacks := make([]int, len(g.seats))
	holeCards := make([]deck.Hand, len(g.seats))
	for i, s := range g.seats {
		stacks[i] = s.startingStack
		holeCards[i] = s.cards.Clone()
	}

	results := make([]SeatResult, len(g.result.Seats))
	copy(results, g.result.Seats)

	return &HandHistory{
		ID:            g.id,
		InitialStacks: stacks,
		Positions:     g.positions,
		HoleCards:     holeCards,
		BoardCards:    g.board.Clone(),
		Actions:       g.Actions(),
		Results:       results,
		SmallBlind:    g.options.SmallBlind,
		BigBlind:      g.options.BigBlind,
	}, nil
}

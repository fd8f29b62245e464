package texasholdem

import (
	"github.com/sirupsen/logrus"
)

// startStreet clears the street bets and opens betting left of the dealer
func (g *Game) startStreet(street Street) {
	g.street = street
	g.currentBet = 0
	g.lastRaise = g.options.BigBlind
	for _, s := range g.seats {
		s.streetBet = 0
	}

	g.startBetting(g.positions.Dealer)
}

// startBetting gives every seat that can act a decision, starting with the first seat after `after`
func (g *Game) startBetting(after int) {
	g.acted = make(map[int]bool)
	g.pending = make(map[int]bool)
	for _, s := range g.seats {
		if s.canAct() {
			g.pending[s.index] = true
		}
	}

	g.refreshPending()
	g.actingSeat = g.nextPending(after)
}

// refreshPending drops seats that can no longer act
// With fewer than two seats able to act there is nobody left to bet against, so a seat only
// needs to act if it has not matched the current bet.
func (g *Game) refreshPending() {
	canAct := 0
	for _, s := range g.seats {
		if s.canAct() {
			canAct++
		}
	}

	for seat := range g.pending {
		s := g.seats[seat]
		if !s.canAct() || (canAct < 2 && s.streetBet >= g.currentBet) {
			delete(g.pending, seat)
		}
	}
}

// nextPending returns the first pending seat clockwise after the seat, or -1
func (g *Game) nextPending(after int) int {
	n := len(g.seats)
	for i := 1; i <= n; i++ {
		seat := (after + i) % n
		if g.pending[seat] {
			return seat
		}
	}

	return -1
}

func (g *Game) inHandCount() int {
	count := 0
	for _, s := range g.seats {
		if s.inHand() {
			count++
		}
	}

	return count
}

// minBetTo is the smallest street total a bet or raise must reach, unless it is all-in
// The minimum bet only applies to an opening bet; a raise must grow the bet by at least the last full increment.
func (g *Game) minBetTo() int {
	if g.currentBet == 0 {
		return g.options.MinBet
	}

	return g.currentBet + g.lastRaise
}

// canRaise returns false if the seat already acted and only a short all-in has come since
func (g *Game) canRaise(s *Seat) bool {
	return !g.acted[s.index]
}

func (g *Game) validateBet(s *Seat, a Action) error {
	switch a.kind {
	case KindFold:
		return nil
	case KindCheck:
		if g.currentBet > s.streetBet {
			return illegal(RuleCannotCheck, "seat %d must call %d or fold", s.index, g.currentBet-s.streetBet)
		}
	case KindCall:
		if g.currentBet <= s.streetBet {
			return illegal(RuleNothingToCall, "there is no bet to call")
		}
	case KindBet:
		if g.currentBet > s.streetBet {
			return illegal(RuleCannotBet, "there is already a bet of %d, call or raise", g.currentBet)
		}

		return g.validateBetTo(s, a.kind, a.amount)
	case KindRaise:
		if g.currentBet <= s.streetBet {
			return illegal(RuleNothingToRaise, "there is no bet to raise, check or bet")
		}

		return g.validateBetTo(s, a.kind, a.amount)
	case KindAllIn:
		// an all-in that does not exceed the current bet is a call
		if total := s.allInTotal(); total > g.currentBet {
			return g.validateBetTo(s, a.kind, total)
		}
	}

	return nil
}

func (g *Game) validateBetTo(s *Seat, kind ActionKind, amount int) error {
	rule := RuleRaiseTooSmall
	if kind == KindBet {
		rule = RuleBetTooSmall
	}

	if amount-s.streetBet > s.stack {
		return illegal(RuleInsufficientChips, "seat %d can put in at most %d", s.index, s.allInTotal())
	}

	if amount <= g.currentBet {
		return illegal(rule, "%s to %d does not exceed the current bet of %d", kind, amount, g.currentBet)
	}

	if !g.canRaise(s) {
		return illegal(RuleBettingNotReopened, "seat %d already acted and the all-in was not a full raise, call or fold", s.index)
	}

	if min := g.minBetTo(); amount < min && amount != s.allInTotal() {
		return illegal(rule, "%s must be to at least %d", kind, min)
	}

	return nil
}

func (g *Game) applyPlayerAction(a Action) {
	s := g.seats[a.seat]
	logged := a

	switch a.kind {
	case KindFold:
		s.status = StatusFolded
	case KindCheck:
	case KindCall:
		s.pay(g.currentBet - s.streetBet)
	case KindBet, KindRaise:
		g.betTo(s, a.amount)
	case KindAllIn:
		total := s.allInTotal()
		if total > g.currentBet {
			g.betTo(s, total)
		} else {
			s.pay(s.stack)
		}

		logged.amount = total
	}

	delete(g.pending, s.index)
	g.acted[s.index] = true
	g.actions = append(g.actions, logged)

	g.logger.WithFields(logrus.Fields{
		"seat":   s.index,
		"action": logged.String(),
		"street": g.street.String(),
		"stack":  s.stack,
	}).Debug("action applied")

	if g.inHandCount() == 1 {
		g.finishUncontested()
		return
	}

	g.refreshPending()
	if len(g.pending) > 0 {
		g.actingSeat = g.nextPending(s.index)
		return
	}

	g.advance()
}

// betTo brings the seat's street total to amount and asks everyone else to respond
// Only a full bet or raise gives seats that already acted the option to raise again.
func (g *Game) betTo(s *Seat, amount int) {
	increment := amount - g.currentBet
	opening := g.currentBet == 0
	full := increment >= g.lastRaise || (opening && amount >= g.options.MinBet)

	s.pay(amount - s.streetBet)

	if full {
		g.lastRaise = increment
	}

	if full || opening {
		g.acted = make(map[int]bool)
	}

	g.currentBet = amount
	for _, other := range g.seats {
		if other != s && other.canAct() && other.streetBet < g.currentBet {
			g.pending[other.index] = true
		}
	}
}

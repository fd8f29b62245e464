package texasholdem

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdem-stepper-server/pkg/poker/potmanager"
)

func TestNewGame_PostBlinds(t *testing.T) {
	a := assert.New(t)

	game := setupNewGame(t, DefaultOptions(), sixStacks()...)

	a.Equal(Positions{Dealer: 0, SmallBlind: 1, BigBlind: 2}, game.Positions())
	a.Equal(1000, game.seats[0].Stack())
	a.Equal(980, game.seats[1].Stack())
	a.Equal(960, game.seats[2].Stack())
	a.Equal(40, game.CurrentBet())
	a.Equal(PreFlop, game.Street())
	a.Empty(game.Actions())

	seat, ok := game.ActingSeat()
	a.True(ok)
	a.Equal(3, seat)

	for _, s := range game.seats {
		a.Len(s.Cards(), 2)
	}
	a.Equal(40, game.deck.CardsLeft())
	a.Equal(60, game.State().Pot)
}

func TestNewGame_HoleCardsDealtLeftOfDealer(t *testing.T) {
	a := assert.New(t)

	game, err := NewGame(logrus.StandardLogger(), "deal-order", sixStacks(), 4, DefaultOptions(), 99)
	require.NoError(t, err)

	fresh := setupDeck(99)
	order := []int{5, 0, 1, 2, 3, 4}
	for pass := 0; pass < 2; pass++ {
		for i, seat := range order {
			a.Equal(fresh[pass*len(order)+i], game.seats[seat].cards[pass], "pass %d seat %d", pass, seat)
		}
	}
}

func TestNewGame_HeadsUp(t *testing.T) {
	a := assert.New(t)

	game, err := NewGame(logrus.StandardLogger(), "heads-up", []int{500, 500}, 1, DefaultOptions(), 1)
	require.NoError(t, err)

	// the dealer posts the small blind and acts first before the flop
	a.Equal(Positions{Dealer: 1, SmallBlind: 1, BigBlind: 0}, game.Positions())
	a.Equal(480, game.seats[1].Stack())
	a.Equal(460, game.seats[0].Stack())

	seat, _ := game.ActingSeat()
	a.Equal(1, seat)

	assertApplyAll(t, game, Call(1), Check(0))
	a.Equal(Flop, game.Street())

	// and last after it
	seat, _ = game.ActingSeat()
	a.Equal(0, seat)
}

func TestNewGame_Invalid(t *testing.T) {
	logger := logrus.StandardLogger()

	_, err := NewGame(logger, "x", []int{1000}, 0, DefaultOptions(), 0)
	assert.EqualError(t, err, "a hand needs 2 to 23 seats, got 1")

	_, err = NewGame(logger, "x", make([]int, 24), 0, DefaultOptions(), 0)
	assert.EqualError(t, err, "a hand needs 2 to 23 seats, got 24")

	_, err = NewGame(logger, "x", sixStacks(), 6, DefaultOptions(), 0)
	assert.EqualError(t, err, "dealer seat 6 is not at the table")

	_, err = NewGame(logger, "x", []int{1000, 0, 1000}, 0, DefaultOptions(), 0)
	assert.EqualError(t, err, "seat 1 must have a stack > 0")

	_, err = NewGame(logger, "x", sixStacks(), 0, DefaultOptions(), -1)
	assert.EqualError(t, err, "seed must be >= 0")

	opts := DefaultOptions()
	opts.BigBlind = 10
	_, err = NewGame(logger, "x", sixStacks(), 0, opts, 0)
	assert.EqualError(t, err, "big blind must be >= the small blind")

	opts = DefaultOptions()
	opts.SmallBlind = 0
	_, err = NewGame(logger, "x", sixStacks(), 0, opts, 0)
	assert.EqualError(t, err, "small blind must be > 0")

	opts = DefaultOptions()
	opts.MinBet = 0
	_, err = NewGame(logger, "x", sixStacks(), 0, opts, 0)
	assert.EqualError(t, err, "minimum bet must be > 0")
}

func TestNewGame_ShortBlindsRunOut(t *testing.T) {
	a := assert.New(t)

	// both blinds are all-in and the button has them covered
	game, err := NewGame(logrus.StandardLogger(), "short", []int{1000, 15, 30}, 0, DefaultOptions(), 3)
	require.NoError(t, err)

	a.Equal(StatusAllIn, game.seats[1].Status())
	a.Equal(StatusAllIn, game.seats[2].Status())
	a.Equal(30, game.CurrentBet())

	assertApply(t, game, Call(0))
	a.True(game.IsOver())
	a.Equal(Showdown, game.Street())
	a.Len(game.Board(), 5)
	a.Equal(0, netSum(game.Result()))
	a.Equal(1045, stackSum(game))
}

func TestGame_CheckFacingBetIsIllegal(t *testing.T) {
	game := setupNewGame(t, DefaultOptions(), sixStacks()...)

	assertIllegal(t, game, Check(3), RuleCannotCheck)
	assert.Empty(t, game.Actions())
	assert.Equal(t, 1000, game.seats[3].Stack())
}

func TestGame_TurnOrder(t *testing.T) {
	game := setupNewGame(t, DefaultOptions(), sixStacks()...)

	assertIllegal(t, game, Fold(4), RuleNotYourTurn)
	assertIllegal(t, game, Call(9), RuleUnknownSeat)
	assertIllegal(t, game, Action{kind: "muck", seat: 3}, RuleUnknownAction)
	assertIllegal(t, game, DealFlop(), RuleDealNotExpected)

	assertApply(t, game, Fold(3))
	seat, _ := game.ActingSeat()
	assert.Equal(t, 4, seat)
}

func TestGame_BetSizing(t *testing.T) {
	a := assert.New(t)

	game := setupNewGame(t, DefaultOptions(), sixStacks()...)

	assertIllegal(t, game, Raise(3, 70), RuleRaiseTooSmall)
	assertIllegal(t, game, Raise(3, 40), RuleRaiseTooSmall)
	assertIllegal(t, game, Bet(3, 100), RuleCannotBet)
	assertApply(t, game, Raise(3, 80))
	a.Equal(80, game.CurrentBet())
	a.Equal(120, game.State().MinRaiseTo)

	assertIllegal(t, game, Raise(4, 100), RuleRaiseTooSmall)
	assertApply(t, game, Raise(4, 120))

	assertIllegal(t, game, Raise(5, 2000), RuleInsufficientChips)
	assertApply(t, game, Raise(5, 1000))
	a.Equal(StatusAllIn, game.seats[5].Status())
	a.Equal(1000, game.CurrentBet())

	assertApplyAll(t, game, Fold(0), Fold(1), Fold(2), Fold(3))
	assertIllegal(t, game, Check(4), RuleCannotCheck)
	assertApply(t, game, Fold(4))

	a.True(game.IsOver())
	a.Equal(HandOver, game.Street())
	a.Equal([]int{5}, game.Result().Winners())
	a.Equal(0, netSum(game.Result()))
}

func TestGame_PostFlopBetting(t *testing.T) {
	a := assert.New(t)

	game := setupNewGame(t, DefaultOptions(), sixStacks()...)
	assertApplyAll(t, game, Call(3), Fold(4), Fold(5), Fold(0), Fold(1), Check(2))
	a.Equal(Flop, game.Street())
	a.Equal(0, game.CurrentBet())

	seat, _ := game.ActingSeat()
	a.Equal(2, seat)

	assertIllegal(t, game, Call(2), RuleNothingToCall)
	assertIllegal(t, game, Raise(2, 100), RuleNothingToRaise)
	assertIllegal(t, game, Bet(2, 30), RuleBetTooSmall)
	assertApply(t, game, Bet(2, 50))
	a.Equal(50, game.CurrentBet())

	// the next raise must be at least the size of the bet
	assertIllegal(t, game, Raise(3, 90), RuleRaiseTooSmall)
	assertApply(t, game, Raise(3, 100))
	assertApply(t, game, Call(2))
	a.Equal(Turn, game.Street())
	a.Equal(140, game.seats[2].TotalBet())
	a.Equal(140, game.seats[3].TotalBet())
	a.Equal(0, game.seats[2].StreetBet())
}

func TestGame_MinBetAboveBigBlind(t *testing.T) {
	a := assert.New(t)

	opts := DefaultOptions()
	opts.MinBet = 100
	game := setupNewGame(t, opts, sixStacks()...)

	// pre-flop the big blind is the bet to raise, so a raise by 40 is enough
	a.Equal(80, game.State().MinRaiseTo)
	a.Contains(game.LegalActions(), LegalAction{Kind: KindRaise, Min: 80, Max: 1000})
	assertIllegal(t, game, Raise(3, 70), RuleRaiseTooSmall)
	assertApply(t, game, Raise(3, 80))
	a.Equal(120, game.State().MinRaiseTo)

	assertIllegal(t, game, Raise(4, 100), RuleRaiseTooSmall)
	assertApplyAll(t, game, Call(4), Fold(5), Fold(0), Fold(1), Call(2))
	a.Equal(Flop, game.Street())

	// an opening bet must reach the minimum bet
	a.Equal(100, game.State().MinRaiseTo)
	assertIllegal(t, game, Bet(2, 80), RuleBetTooSmall)
	assertApply(t, game, Bet(2, 100))
	a.Equal(200, game.State().MinRaiseTo)

	assertIllegal(t, game, Raise(3, 150), RuleRaiseTooSmall)
	assertApply(t, game, Raise(3, 200))
	a.Equal(300, game.State().MinRaiseTo)
}

func TestGame_BigBlindOption(t *testing.T) {
	a := assert.New(t)

	game := setupNewGame(t, DefaultOptions(), sixStacks()...)
	assertApplyAll(t, game, Call(3), Call(4), Call(5), Call(0), Call(1))

	a.Equal([]LegalAction{
		{Kind: KindFold},
		{Kind: KindCheck},
		{Kind: KindBet, Min: 80, Max: 1000},
		{Kind: KindAllIn, Min: 1000, Max: 1000},
	}, game.LegalActions())

	assertApply(t, game, Bet(2, 80))
	a.Equal(PreFlop, game.Street())

	seat, _ := game.ActingSeat()
	a.Equal(3, seat)
}

func TestGame_ShortAllInDoesNotReopenBetting(t *testing.T) {
	a := assert.New(t)

	game := setupNewGame(t, DefaultOptions(), 1000, 1000, 1000, 1000, 150, 1000)
	assertApply(t, game, Raise(3, 100))

	// 50 more is less than the last raise of 60
	assertApply(t, game, AllIn(4))
	a.Equal(150, game.CurrentBet())
	a.Equal(allInTo(4, 150), game.Actions()[1])

	// seat 5 has not acted yet, so it may still raise
	a.Equal([]LegalAction{
		{Kind: KindFold},
		{Kind: KindCall, Min: 150, Max: 150},
		{Kind: KindRaise, Min: 210, Max: 1000},
		{Kind: KindAllIn, Min: 1000, Max: 1000},
	}, game.LegalActions())

	assertApplyAll(t, game, Call(5), Fold(0), Fold(1), Call(2))

	// the original raiser can only call or fold
	seat, _ := game.ActingSeat()
	a.Equal(3, seat)
	a.Equal([]LegalAction{
		{Kind: KindFold},
		{Kind: KindCall, Min: 150, Max: 150},
	}, game.LegalActions())

	assertIllegal(t, game, Raise(3, 300), RuleBettingNotReopened)
	assertIllegal(t, game, AllIn(3), RuleBettingNotReopened)

	assertApply(t, game, Call(3))
	a.Equal(Flop, game.Street())
	a.Len(game.Board(), 3)
}

func TestGame_FullRaiseReopensBetting(t *testing.T) {
	a := assert.New(t)

	game := setupNewGame(t, DefaultOptions(), sixStacks()...)
	assertApplyAll(t, game, Raise(3, 100), Call(4), Raise(5, 200))

	a.Contains(game.LegalActions(), LegalAction{Kind: KindRaise, Min: 300, Max: 1000})
	assertApplyAll(t, game, Fold(0), Fold(1), Fold(2))

	// seat 3 faces a full raise and may raise again
	a.Contains(game.LegalActions(), LegalAction{Kind: KindRaise, Min: 300, Max: 1000})
	assertApply(t, game, Raise(3, 300))
}

func TestGame_FoldToOne(t *testing.T) {
	a := assert.New(t)

	logger, hook := test.NewNullLogger()
	game, err := NewGame(logger, "fold-to-one", sixStacks(), 0, DefaultOptions(), 5)
	require.NoError(t, err)

	assertApplyAll(t, game, Fold(3), Fold(4), Fold(5), Fold(0), Fold(1))

	a.True(game.IsOver())
	a.Equal(HandOver, game.Street())
	a.Empty(game.Board())

	result := game.Result()
	a.False(result.Showdown)
	a.Equal([]int{0, -20, 20, 0, 0, 0}, result.Net())
	a.Equal(1020, game.seats[2].Stack())
	a.Equal(60, result.Pots.Total())

	_, ok := game.ActingSeat()
	a.False(ok)
	a.Nil(game.LegalActions())
	assertIllegal(t, game, Check(2), RuleHandOver)

	last := hook.LastEntry()
	require.NotNil(t, last)
	a.Equal("hand complete", last.Message)
	a.Equal("fold-to-one", last.Data["hand"])
	a.Equal(logrus.InfoLevel, last.Level)
}

func TestGame_AllCheckToShowdown(t *testing.T) {
	a := assert.New(t)

	game := setupNewGame(t, DefaultOptions(), sixStacks()...)
	assertApplyAll(t, game, Call(3), Call(4), Call(5), Call(0), Call(1), Check(2))
	for street := 0; street < 3; street++ {
		a.False(game.IsOver())
		assertApplyAll(t, game, Check(1), Check(2), Check(3), Check(4), Check(5), Check(0))
	}

	a.True(game.IsOver())
	a.Equal(Showdown, game.Street())
	a.Len(game.Board(), 5)

	actions := game.Actions()
	a.Len(actions, 27)
	a.Equal(DealFlop(), actions[6])
	a.Equal(DealTurn(), actions[13])
	a.Equal(DealRiver(), actions[20])
	a.Equal(Check(0), actions[26])

	for i, action := range actions {
		if i != 6 && i != 13 && i != 20 {
			a.False(action.Kind().IsDeal(), "action %d", i)
		}
	}

	result := game.Result()
	a.True(result.Showdown)
	a.Equal(0, netSum(result))
	a.Equal(6000, stackSum(game))
	a.Equal(240, result.Pots.Total())
	for _, s := range result.Seats {
		a.NotEmpty(s.Hand)
	}

	record, err := game.HistoryRecord()
	require.NoError(t, err)
	a.Equal("test-hand", record.ID)
	a.Equal(sixStacks(), record.InitialStacks)
	a.Equal(actions, record.Actions)
	a.Equal(game.Board(), record.BoardCards)
	a.Len(record.HoleCards, 6)
	a.Equal(result.Seats, record.Results)
	a.Equal(20, record.SmallBlind)
	a.Equal(40, record.BigBlind)
}

func TestGame_HistoryRecordBeforeOver(t *testing.T) {
	game := setupNewGame(t, DefaultOptions(), sixStacks()...)

	record, err := game.HistoryRecord()
	assert.ErrorIs(t, err, ErrHandNotOver)
	assert.Nil(t, record)
}

func TestGame_SidePotsAtShowdown(t *testing.T) {
	a := assert.New(t)

	game, err := NewGame(logrus.StandardLogger(), "side-pots", []int{1000, 500, 1000}, 0, DefaultOptions(), 11)
	require.NoError(t, err)

	setCards(game, 0, "Kd,Kc")
	setCards(game, 1, "As,Ah")
	setCards(game, 2, "2c,7d")
	setBoard(game, "Ac,Kh,9s,5d,3c")

	assertApplyAll(t, game, AllIn(0), AllIn(1), Call(2))

	a.True(game.IsOver())
	a.Equal(Showdown, game.Street())
	a.Equal([]Action{
		allInTo(0, 1000),
		allInTo(1, 500),
		Call(2),
		DealFlop(),
		DealTurn(),
		DealRiver(),
	}, game.Actions())

	result := game.Result()
	a.Equal(potmanager.Pots{
		{Amount: 1500, Eligible: []int{0, 1, 2}},
		{Amount: 1000, Eligible: []int{0, 2}},
	}, result.Pots)
	a.Equal([]int{0, 1000, -1000}, result.Net())
	a.Equal("Three of a kind, aces", result.Seats[1].Hand)
	a.Equal("Three of a kind, kings", result.Seats[0].Hand)
	a.Equal([]int{1000, 1500, 0}, []int{game.seats[0].Stack(), game.seats[1].Stack(), game.seats[2].Stack()})
}

func TestGame_SplitPotOddChip(t *testing.T) {
	a := assert.New(t)

	opts := DefaultOptions()
	opts.SmallBlind = 5
	opts.BigBlind = 10
	opts.MinBet = 10

	game := setupNewGame(t, opts, 100, 100, 100)
	setCards(game, 0, "2c,3d")
	setCards(game, 1, "6c,7d")
	setCards(game, 2, "4c,5d")
	setBoard(game, "Ah,Kh,Qh,Jh,Th")

	assertApplyAll(t, game, Call(0), Fold(1), Check(2))
	for street := 0; street < 3; street++ {
		assertApplyAll(t, game, Check(2), Check(0))
	}

	a.True(game.IsOver())
	result := game.Result()
	a.Equal(25, result.Pots.Total())

	// seat 2 is first clockwise from the dealer and takes the odd chip
	a.Equal(12, result.Seats[0].Won)
	a.Equal(13, result.Seats[2].Won)
	a.Equal([]int{2, -5, 3}, result.Net())
	a.Equal("Royal flush", result.Seats[0].Hand)
}

func TestGame_ManualDeal(t *testing.T) {
	a := assert.New(t)

	opts := DefaultOptions()
	opts.AutoDeal = false
	game := setupNewGame(t, opts, sixStacks()...)

	assertApplyAll(t, game, Call(3), Call(4), Call(5), Call(0), Call(1), Check(2))
	a.Equal(PreFlop, game.Street())
	a.True(game.State().AwaitingDeal)
	a.Empty(game.Board())
	a.Equal([]LegalAction{{Kind: KindDealFlop}}, game.LegalActions())

	_, ok := game.ActingSeat()
	a.False(ok)

	assertIllegal(t, game, Check(1), RuleDealRequired)
	assertIllegal(t, game, DealTurn(), RuleWrongDeal)
	assertApply(t, game, DealFlop())
	a.Equal(Flop, game.Street())
	a.Len(game.Board(), 3)

	assertIllegal(t, game, DealTurn(), RuleDealNotExpected)

	assertApplyAll(t, game, Check(1), Check(2), Check(3), Check(4), Check(5), Check(0), DealTurn())
	assertApplyAll(t, game, Check(1), Check(2), Check(3), Check(4), Check(5), Check(0), DealRiver())
	assertApplyAll(t, game, Check(1), Check(2), Check(3), Check(4), Check(5), Check(0))

	a.True(game.IsOver())
	a.Len(game.Actions(), 27)
	a.Equal(0, netSum(game.Result()))
}

func TestGame_ManualDealRunOut(t *testing.T) {
	a := assert.New(t)

	opts := DefaultOptions()
	opts.AutoDeal = false
	game := setupNewGame(t, opts, 1000, 1000)

	// heads-up with dealer 0: seat 0 is the small blind
	assertApplyAll(t, game, AllIn(0), Call(1))
	a.True(game.State().AwaitingDeal)

	// no betting is possible, each street waits only for its deal
	assertApplyAll(t, game, DealFlop(), DealTurn())
	a.False(game.IsOver())
	assertApply(t, game, DealRiver())

	a.True(game.IsOver())
	a.Equal(0, netSum(game.Result()))
	a.Equal(2000, stackSum(game))
}

func TestGame_LegalActionsAreAlwaysLegal(t *testing.T) {
	stacks := []int{1000, 300, 750, 1000, 55, 1000}
	total := 0
	for _, s := range stacks {
		total += s
	}

	for seed := int64(1); seed <= 40; seed++ {
		game, err := NewGame(logrus.StandardLogger(), "policy", stacks, int(seed)%len(stacks), DefaultOptions(), seed)
		require.NoError(t, err)

		for step := 0; !game.IsOver(); step++ {
			require.Less(t, step, 500, "seed %d did not finish", seed)

			legal := game.LegalActions()
			require.NotEmpty(t, legal, "seed %d step %d", seed, step)

			seat, _ := game.ActingSeat()
			for _, la := range legal {
				assert.NoError(t, game.validate(legalToAction(seat, la)), "seed %d step %d %v", seed, step, la)
			}

			pick := legal[(step*7+int(seed))%len(legal)]
			require.NoError(t, game.Apply(legalToAction(seat, pick)))
		}

		assert.Equal(t, 0, netSum(game.Result()), "seed %d", seed)
		assert.Equal(t, total, stackSum(game), "seed %d", seed)
	}
}

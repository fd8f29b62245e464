package texasholdem

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int {
	return &i
}

func TestParseAction(t *testing.T) {
	a := assert.New(t)

	action, err := ParseAction("Raise", intPtr(3), intPtr(120))
	a.NoError(err)
	a.Equal(Raise(3, 120), action)

	action, err = ParseAction("call", intPtr(2), intPtr(999))
	a.NoError(err)
	a.Equal(Call(2), action, "the amount of a call is ignored")

	action, err = ParseAction("deal_turn", intPtr(4), nil)
	a.NoError(err)
	a.Equal(DealTurn(), action)
	_, ok := action.Seat()
	a.False(ok)

	action, err = ParseAction("allin", intPtr(0), nil)
	a.NoError(err)
	a.Equal(AllIn(0), action)

	_, err = ParseAction("muck", intPtr(1), nil)
	a.EqualError(err, `"muck" is not a valid action`)

	_, err = ParseAction("fold", nil, nil)
	a.EqualError(err, "fold requires a seat")

	_, err = ParseAction("fold", intPtr(-1), nil)
	a.EqualError(err, "seat -1 is not valid")

	_, err = ParseAction("bet", intPtr(1), nil)
	a.EqualError(err, "bet requires an amount")

	_, err = ParseAction("raise", intPtr(1), intPtr(0))
	a.EqualError(err, "raise amount must be > 0")
}

func TestAction_JSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal([]Action{Fold(1), Bet(2, 80), allInTo(3, 500), DealFlop()})
	require.NoError(t, err)
	a.JSONEq(`[
		{"kind": "fold", "seat": 1},
		{"kind": "bet", "seat": 2, "amount": 80},
		{"kind": "allin", "seat": 3, "amount": 500},
		{"kind": "deal_flop"}
	]`, string(b))

	var actions []Action
	require.NoError(t, json.Unmarshal(b, &actions))
	a.Equal([]Action{Fold(1), Bet(2, 80), allInTo(3, 500), DealFlop()}, actions)

	var action Action
	a.EqualError(json.Unmarshal([]byte(`{"kind":"raise","seat":2}`), &action), "raise requires an amount")
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "seat 3 raise 120", Raise(3, 120).String())
	assert.Equal(t, "seat 1 check", Check(1).String())
	assert.Equal(t, "seat 4 allin", AllIn(4).String())
	assert.Equal(t, "seat 4 allin 300", allInTo(4, 300).String())
	assert.Equal(t, "deal_river", DealRiver().String())
}

func TestIllegalActionError(t *testing.T) {
	err := illegal(RuleCannotCheck, "seat %d must call %d or fold", 3, 40)
	assert.EqualError(t, err, "illegal action (cannot_check): seat 3 must call 40 or fold")
}

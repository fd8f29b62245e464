package texasholdem

import "fmt"

// Rule names the betting rule an action broke
type Rule string

// Rule constants
const (
	RuleHandOver           Rule = "hand_over"
	RuleUnknownAction      Rule = "unknown_action"
	RuleUnknownSeat        Rule = "unknown_seat"
	RuleNotYourTurn        Rule = "not_your_turn"
	RuleDealRequired       Rule = "deal_required"
	RuleDealNotExpected    Rule = "deal_not_expected"
	RuleWrongDeal          Rule = "wrong_deal"
	RuleCannotCheck        Rule = "cannot_check"
	RuleNothingToCall      Rule = "nothing_to_call"
	RuleCannotBet          Rule = "cannot_bet"
	RuleBetTooSmall        Rule = "bet_too_small"
	RuleNothingToRaise     Rule = "nothing_to_raise"
	RuleRaiseTooSmall      Rule = "raise_too_small"
	RuleInsufficientChips  Rule = "insufficient_chips"
	RuleBettingNotReopened Rule = "betting_not_reopened"
)

// IllegalActionError is returned when an action is not allowed in the current state
// The hand is left exactly as it was before the action.
type IllegalActionError struct {
	Rule    Rule   `json:"rule"`
	Message string `json:"message"`
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal action (%s): %s", e.Rule, e.Message)
}

func illegal(rule Rule, format string, a ...interface{}) *IllegalActionError {
	return &IllegalActionError{
		Rule:    rule,
		Message: fmt.Sprintf(format, a...),
	}
}

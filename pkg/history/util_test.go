package history

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"holdem-stepper-server/pkg/poker/texasholdem"
)

// finishedRecord plays a heads-up hand where the button folds to the big blind
func finishedRecord(t *testing.T, id string) *Record {
	t.Helper()

	game, err := texasholdem.NewGame(logrus.StandardLogger(), id, []int{1000, 1000}, 0, texasholdem.DefaultOptions(), 7)
	require.NoError(t, err)
	require.NoError(t, game.Apply(texasholdem.Fold(0)))

	h, err := game.HistoryRecord()
	require.NoError(t, err)

	return NewRecord(h)
}

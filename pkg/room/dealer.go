package room

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"holdem-stepper-server/pkg/history"
	"holdem-stepper-server/pkg/poker/texasholdem"
)

// Dealer runs a single hand
// Every call holds the dealer's lock, so actions on one hand are applied one at a time.
type Dealer struct {
	id     string
	name   string
	logger logrus.FieldLogger
	store  history.Store

	lock sync.Mutex
	game *texasholdem.Game

	// pending is the finished hand's record until the store accepts it
	pending   *history.Record
	persisted bool
}

// NewDealer creates a new dealer for the game
func NewDealer(logger logrus.FieldLogger, store history.Store, name string, game *texasholdem.Game) *Dealer {
	return &Dealer{
		id:     game.ID(),
		name:   name,
		logger: logger.WithField("hand", game.ID()),
		store:  store,
		game:   game,
	}
}

// ID returns the session id
func (d *Dealer) ID() string {
	return d.id
}

// Name returns the nickname of the session
func (d *Dealer) Name() string {
	return d.name
}

// State returns the public view of the hand
func (d *Dealer) State() *texasholdem.GameState {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.game.State()
}

// Persisted returns true once the finished hand has been saved
func (d *Dealer) Persisted() bool {
	d.lock.Lock()
	defer d.lock.Unlock()

	return d.persisted
}

// Apply applies the action to the hand
// An illegal action leaves the hand untouched. When the action finishes the hand, the record is
// handed to the store; if that fails, the new state is still returned along with an error
// wrapping history.ErrPersistenceUnavailable.
func (d *Dealer) Apply(ctx context.Context, a texasholdem.Action) (*texasholdem.GameState, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	if err := d.game.Apply(a); err != nil {
		d.logger.WithError(err).WithField("action", a.String()).Debug("action rejected")
		return nil, err
	}

	state := d.game.State()
	if !d.game.IsOver() {
		return state, nil
	}

	h, err := d.game.HistoryRecord()
	if err != nil {
		panic(fmt.Sprintf("finished hand has no history: %v", err))
	}

	d.pending = history.NewRecord(h)
	if err := d.persist(ctx); err != nil {
		return state, err
	}

	return state, nil
}

// RetryPersist saves a finished hand that the store previously refused
// Saving a hand that is already saved is a no-op.
func (d *Dealer) RetryPersist(ctx context.Context) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	if !d.game.IsOver() {
		return texasholdem.ErrHandNotOver
	}

	return d.persist(ctx)
}

// NOTE: must be called with the lock held
func (d *Dealer) persist(ctx context.Context) error {
	if d.pending == nil {
		return nil
	}

	if err := d.store.Save(ctx, d.pending); err != nil {
		d.logger.WithError(err).Error("could not save hand history")
		return &history.PersistError{Err: err}
	}

	d.logger.Info("hand history saved")
	d.pending = nil
	d.persisted = true

	return nil
}

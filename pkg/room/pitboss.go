package room

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"holdem-stepper-server/internal/util"
	"holdem-stepper-server/pkg/history"
	"holdem-stepper-server/pkg/poker/texasholdem"
)

// ErrSessionNotFound is an error when a session id is unknown or was removed
var ErrSessionNotFound = errors.New("session not found")

// Setup describes a new hand
type Setup struct {
	Stacks  []int
	Dealer  int
	Options texasholdem.Options

	// Seed shuffles the deck, 0 for a random seed
	Seed int64
}

// PitBoss keeps track of every open session
// Sessions are independent; the PitBoss lock only guards the registry.
type PitBoss struct {
	logger logrus.FieldLogger
	store  history.Store

	lock    sync.RWMutex
	dealers map[string]*Dealer
}

// NewPitBoss returns a new session registry that saves finished hands to store
func NewPitBoss(logger logrus.FieldLogger, store history.Store) *PitBoss {
	return &PitBoss{
		logger:  logger,
		store:   store,
		dealers: make(map[string]*Dealer),
	}
}

// Create deals a new hand and returns its dealer
func (p *PitBoss) Create(setup Setup) (*Dealer, error) {
	id := uuid.New().String()
	game, err := texasholdem.NewGame(p.logger, id, setup.Stacks, setup.Dealer, setup.Options, setup.Seed)
	if err != nil {
		return nil, err
	}

	dealer := NewDealer(p.logger, p.store, util.GetRandomName(), game)

	p.lock.Lock()
	p.dealers[id] = dealer
	p.lock.Unlock()

	p.logger.WithFields(logrus.Fields{
		"hand": id,
		"name": dealer.Name(),
	}).Info("session created")
	return dealer, nil
}

// Dealer returns the dealer for the session
func (p *PitBoss) Dealer(id string) (*Dealer, error) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	dealer, ok := p.dealers[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return dealer, nil
}

// Apply applies the action to the session's hand
func (p *PitBoss) Apply(ctx context.Context, id string, a texasholdem.Action) (*texasholdem.GameState, error) {
	dealer, err := p.Dealer(id)
	if err != nil {
		return nil, err
	}

	return dealer.Apply(ctx, a)
}

// State returns the public view of the session's hand
func (p *PitBoss) State(id string) (*texasholdem.GameState, error) {
	dealer, err := p.Dealer(id)
	if err != nil {
		return nil, err
	}

	return dealer.State(), nil
}

// RetryPersist retries saving the session's finished hand
func (p *PitBoss) RetryPersist(ctx context.Context, id string) error {
	dealer, err := p.Dealer(id)
	if err != nil {
		return err
	}

	return dealer.RetryPersist(ctx)
}

// Remove discards the session
func (p *PitBoss) Remove(id string) error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if _, ok := p.dealers[id]; !ok {
		return ErrSessionNotFound
	}

	delete(p.dealers, id)
	p.logger.WithField("hand", id).Info("session removed")
	return nil
}

// Len returns the number of open sessions
func (p *PitBoss) Len() int {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return len(p.dealers)
}

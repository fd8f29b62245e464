package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"holdem-stepper-server/pkg/db"
	"holdem-stepper-server/pkg/deck"
)

const recordColumns = `
poker_hands.id,
poker_hands.stacks,
poker_hands.positions,
poker_hands.player_cards,
poker_hands.board_cards,
poker_hands.actions,
poker_hands.results,
poker_hands.small_blind,
poker_hands.big_blind,
poker_hands.created_at`

// PostgresStore keeps records in the poker_hands table
type PostgresStore struct {
	db *sql.DB
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore returns a store backed by the database
func NewPostgresStore(dbh *sql.DB) *PostgresStore {
	return &PostgresStore{db: dbh}
}

// Save implements Store
func (p *PostgresStore) Save(ctx context.Context, r *Record) error {
	const query = `
INSERT INTO poker_hands (id, stacks, positions, player_cards, board_cards, actions, results, small_blind, big_blind, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (id) DO UPDATE SET
    stacks = EXCLUDED.stacks,
    positions = EXCLUDED.positions,
    player_cards = EXCLUDED.player_cards,
    board_cards = EXCLUDED.board_cards,
    actions = EXCLUDED.actions,
    results = EXCLUDED.results,
    small_blind = EXCLUDED.small_blind,
    big_blind = EXCLUDED.big_blind`

	stacks := make([]int64, len(r.InitialStacks))
	for i, s := range r.InitialStacks {
		stacks[i] = int64(s)
	}

	board := make([]string, len(r.BoardCards))
	for i, c := range r.BoardCards {
		board[i] = c.String()
	}

	positions, err := json.Marshal(r.Positions)
	if err != nil {
		return err
	}

	holeCards, err := json.Marshal(r.HoleCards)
	if err != nil {
		return err
	}

	actions, err := json.Marshal(r.Actions)
	if err != nil {
		return err
	}

	results, err := json.Marshal(r.Results)
	if err != nil {
		return err
	}

	_, err = p.db.ExecContext(ctx, query,
		r.ID,
		pq.Array(stacks),
		string(positions),
		string(holeCards),
		pq.Array(board),
		string(actions),
		string(results),
		r.SmallBlind,
		r.BigBlind,
		r.CreatedAt,
	)

	return err
}

func getRecordByRow(row db.Scanner) (*Record, error) {
	var r Record
	var stacks []int64
	var board []string
	var positions, holeCards, actions, results []byte

	if err := row.Scan(&r.ID, pq.Array(&stacks), &positions, &holeCards, pq.Array(&board), &actions, &results, &r.SmallBlind, &r.BigBlind, &r.CreatedAt); err != nil {
		return nil, err
	}

	r.InitialStacks = make([]int, len(stacks))
	for i, s := range stacks {
		r.InitialStacks[i] = int(s)
	}

	r.BoardCards = make(deck.Hand, len(board))
	for i, s := range board {
		card, err := deck.CardFromString(s)
		if err != nil {
			return nil, fmt.Errorf("hand %s: %w", r.ID, err)
		}

		r.BoardCards[i] = card
	}

	for _, field := range []struct {
		raw []byte
		dst interface{}
	}{
		{positions, &r.Positions},
		{holeCards, &r.HoleCards},
		{actions, &r.Actions},
		{results, &r.Results},
	} {
		if err := json.Unmarshal(field.raw, field.dst); err != nil {
			return nil, fmt.Errorf("hand %s: %w", r.ID, err)
		}
	}

	r.CreatedAt = r.CreatedAt.UTC()
	return &r, nil
}

// Get implements Store
func (p *PostgresStore) Get(ctx context.Context, id string) (*Record, error) {
	const query = `
SELECT ` + recordColumns + `
FROM poker_hands
WHERE id = $1`

	r, err := getRecordByRow(p.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}

	return r, err
}

// ListAll implements Store
func (p *PostgresStore) ListAll(ctx context.Context) ([]*Record, error) {
	const query = `
SELECT ` + recordColumns + `
FROM poker_hands
ORDER BY seq ASC`

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*Record, 0)
	for rows.Next() {
		r, err := getRecordByRow(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, r)
	}

	return records, rows.Err()
}

// Clear implements Store
func (p *PostgresStore) Clear(ctx context.Context) (int64, error) {
	res, err := p.db.ExecContext(ctx, `DELETE FROM poker_hands`)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const (
	RotationModePairs      = "pairs"
	RotationModeIndividual = "individual"
)

// MatchState is the live rotation snapshot for one match. Formation slots
// hold player identifiers as text; empty string means unfilled.
// RotationQueue is a JSON-encoded array of player identifiers.
type MatchState struct {
	MatchID       int64     `json:"matchId"`
	RotationMode  string    `json:"rotationMode"`
	NextPairKey   string    `json:"nextPairKey"`
	RotationQueue string    `json:"-"`
	LeftDefender  string    `json:"leftDefender"`
	RightDefender string    `json:"rightDefender"`
	LeftAttacker  string    `json:"leftAttacker"`
	RightAttacker string    `json:"rightAttacker"`
	Substitute1   string    `json:"substitute_1"`
	Substitute2   string    `json:"substitute_2"`
	Goalie        string    `json:"goalie"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

const matchStateColumns = `match_id, rotation_mode, next_pair_key, rotation_queue,
	left_defender, right_defender, left_attacker, right_attacker,
	substitute_1, substitute_2, goalie, updated_at`

// EnsureMatchState inserts a default row for the match if none exists and
// returns the current state.
func (q *Queries) EnsureMatchState(ctx context.Context, matchID int64) (MatchState, error) {
	if _, err := q.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO match_state (match_id) VALUES (?)`,
		matchID,
	); err != nil {
		return MatchState{}, fmt.Errorf("ensure match state: %w", err)
	}
	return q.GetMatchState(ctx, matchID)
}

func (q *Queries) GetMatchState(ctx context.Context, matchID int64) (MatchState, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT `+matchStateColumns+` FROM match_state WHERE match_id = ?`,
		matchID,
	)
	var state MatchState
	if err := scanMatchState(row, &state); err != nil {
		return MatchState{}, err
	}
	return state, nil
}

type UpdateMatchFormationParams struct {
	MatchID       int64
	LeftDefender  string
	RightDefender string
	LeftAttacker  string
	RightAttacker string
	Substitute1   string
	Substitute2   string
	Goalie        string
}

func (q *Queries) UpdateMatchFormation(ctx context.Context, arg UpdateMatchFormationParams) (MatchState, error) {
	row := q.db.QueryRowContext(ctx,
		`UPDATE match_state
		 SET left_defender = ?, right_defender = ?, left_attacker = ?, right_attacker = ?,
		     substitute_1 = ?, substitute_2 = ?, goalie = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE match_id = ?
		 RETURNING `+matchStateColumns,
		arg.LeftDefender, arg.RightDefender, arg.LeftAttacker, arg.RightAttacker,
		arg.Substitute1, arg.Substitute2, arg.Goalie, arg.MatchID,
	)
	var state MatchState
	if err := scanMatchState(row, &state); err != nil {
		return MatchState{}, fmt.Errorf("update match formation: %w", err)
	}
	return state, nil
}

type UpdateMatchRotationParams struct {
	MatchID       int64
	RotationMode  string
	NextPairKey   string
	RotationQueue string
}

func (q *Queries) UpdateMatchRotation(ctx context.Context, arg UpdateMatchRotationParams) (MatchState, error) {
	row := q.db.QueryRowContext(ctx,
		`UPDATE match_state
		 SET rotation_mode = ?, next_pair_key = ?, rotation_queue = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE match_id = ?
		 RETURNING `+matchStateColumns,
		arg.RotationMode, arg.NextPairKey, arg.RotationQueue, arg.MatchID,
	)
	var state MatchState
	if err := scanMatchState(row, &state); err != nil {
		return MatchState{}, fmt.Errorf("update match rotation: %w", err)
	}
	return state, nil
}

func scanMatchState(row *sql.Row, state *MatchState) error {
	return row.Scan(
		&state.MatchID, &state.RotationMode, &state.NextPairKey, &state.RotationQueue,
		&state.LeftDefender, &state.RightDefender, &state.LeftAttacker, &state.RightAttacker,
		&state.Substitute1, &state.Substitute2, &state.Goalie, &state.UpdatedAt,
	)
}

package matchstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/Benchwise/internal/db"
	"github.com/codr1/Benchwise/internal/rotation"
)

// Service applies rotation operations to persisted match state. The rotation
// package stays pure; this service owns the load-compute-store cycle.
type Service struct {
	db *db.DB
	// seedStrategy shapes the first individual queue for a match before any
	// pair order has been established.
	seedStrategy rotation.QueueStrategy
}

func NewService(database *db.DB, seedStrategy rotation.QueueStrategy) (*Service, error) {
	if database == nil {
		return nil, errors.New("match state service requires a database")
	}
	if seedStrategy == "" {
		seedStrategy = rotation.StrategyPair
	}
	return &Service{db: database, seedStrategy: seedStrategy}, nil
}

// RotationView is the rotation picture for one match in its current mode.
// Confidence is only populated when the next pair was inferred from an
// individual queue.
type RotationView struct {
	MatchID         int64                  `json:"matchId"`
	Mode            string                 `json:"mode"`
	Pairs           rotation.PairStructure `json:"pairs"`
	PriorityOrder   [3]rotation.PairKey    `json:"priorityOrder"`
	NextPairKey     rotation.PairKey       `json:"nextPairKey"`
	NextPairPlayers []string               `json:"nextPairPlayers"`
	Queue           []string               `json:"queue"`
	Next            string                 `json:"next,omitempty"`
	NextNext        string                 `json:"nextNext,omitempty"`
	Confidence      rotation.Confidence    `json:"confidence,omitempty"`
}

// View loads the match's rotation state, creating a default one on first use.
func (s *Service) View(ctx context.Context, matchID int64) (RotationView, error) {
	var view RotationView
	err := s.db.RunInTx(ctx, func(txdb *db.DB) error {
		state, err := txdb.Queries.EnsureMatchState(ctx, matchID)
		if err != nil {
			return err
		}
		view, err = buildView(state)
		return err
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Int64("match_id", matchID).Msg("Failed to load rotation view")
		return RotationView{}, err
	}
	return view, nil
}

// SetFormation replaces the match's formation snapshot and returns the
// refreshed rotation view.
func (s *Service) SetFormation(ctx context.Context, matchID int64, f rotation.Formation) (RotationView, error) {
	logger := log.Ctx(ctx).With().
		Str("component", "matchstate").
		Int64("match_id", matchID).
		Logger()

	var view RotationView
	err := s.db.RunInTx(ctx, func(txdb *db.DB) error {
		if _, err := txdb.Queries.EnsureMatchState(ctx, matchID); err != nil {
			return err
		}
		state, err := txdb.Queries.UpdateMatchFormation(ctx, db.UpdateMatchFormationParams{
			MatchID:       matchID,
			LeftDefender:  f.Player(rotation.SlotLeftDefender),
			RightDefender: f.Player(rotation.SlotRightDefender),
			LeftAttacker:  f.Player(rotation.SlotLeftAttacker),
			RightAttacker: f.Player(rotation.SlotRightAttacker),
			Substitute1:   f.Player(rotation.SlotSubstitute1),
			Substitute2:   f.Player(rotation.SlotSubstitute2),
			Goalie:        f.Player(rotation.SlotGoalie),
		})
		if err != nil {
			return err
		}

		// An individual queue may now reference players no longer in the
		// formation; rebuild it from the stored next pair so both modes
		// stay coherent. A match that has never had a queue gets one seeded
		// from the configured strategy instead.
		if state.RotationMode == db.RotationModeIndividual {
			existing, qerr := decodeQueue(state.RotationQueue)
			if qerr != nil {
				return qerr
			}
			var queue []string
			if len(existing) == 0 {
				queue = rotation.BuildQueueFromFormationSlots(formationOf(state),
					[]rotation.Slot{rotation.SlotSubstitute1, rotation.SlotSubstitute2}, s.seedStrategy)
			} else {
				queue = rotation.BuildPrioritizedQueue(
					rotation.ParsePairKey(state.NextPairKey), formationOf(state)).Queue
			}
			state, err = s.storeQueue(ctx, txdb, state, queue)
			if err != nil {
				return err
			}
		}

		view, err = buildView(state)
		return err
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to set formation")
		return RotationView{}, err
	}

	logger.Info().Msg("Updated match formation")
	return view, nil
}

// SwitchMode toggles between paired and individual rotation. Switching to
// individual synthesizes the flat queue from the current pair order; switching
// back infers the next pair from the queue. Switching to the current mode is
// a no-op beyond reloading the view.
func (s *Service) SwitchMode(ctx context.Context, matchID int64, mode string) (RotationView, error) {
	logger := log.Ctx(ctx).With().
		Str("component", "matchstate").
		Int64("match_id", matchID).
		Str("mode", mode).
		Logger()

	if mode != db.RotationModePairs && mode != db.RotationModeIndividual {
		return RotationView{}, fmt.Errorf("unsupported rotation mode: %s", mode)
	}

	var view RotationView
	err := s.db.RunInTx(ctx, func(txdb *db.DB) error {
		state, err := txdb.Queries.EnsureMatchState(ctx, matchID)
		if err != nil {
			return err
		}
		if state.RotationMode == mode {
			view, err = buildView(state)
			return err
		}

		f := formationOf(state)
		var confidence rotation.Confidence
		switch mode {
		case db.RotationModeIndividual:
			next := rotation.ParsePairKey(state.NextPairKey)
			expansion := rotation.BuildPrioritizedQueue(next, f)
			state, err = updateRotation(ctx, txdb, state, mode, next, expansion.Queue)

		case db.RotationModePairs:
			queue, qerr := decodeQueue(state.RotationQueue)
			if qerr != nil {
				return qerr
			}
			var inferred rotation.PairKey
			inferred, confidence = rotation.InferNextPair(queue, f)
			logger.Info().
				Str("next_pair", string(inferred)).
				Str("confidence", string(confidence)).
				Msg("Inferred next pair from individual queue")
			state, err = updateRotation(ctx, txdb, state, mode, inferred, queue)
		}
		if err != nil {
			return err
		}

		view, err = buildView(state)
		if err != nil {
			return err
		}
		// buildView only carries a confidence in individual mode; the
		// pairs-bound switch reports the one the inference just produced.
		if confidence != "" {
			view.Confidence = confidence
		}
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to switch rotation mode")
		return RotationView{}, err
	}

	logger.Info().Msg("Switched rotation mode")
	return view, nil
}

// RecordPairSubstitution classifies the two outgoing players and, when they
// form the pair currently due, advances the pair priority order. The
// classification result is returned either way; a PairingNone outcome changes
// nothing and is not an error.
func (s *Service) RecordPairSubstitution(ctx context.Context, matchID int64, outgoing []string) (rotation.OutgoingPair, RotationView, error) {
	logger := log.Ctx(ctx).With().
		Str("component", "matchstate").
		Int64("match_id", matchID).
		Strs("outgoing", outgoing).
		Logger()

	var (
		classified rotation.OutgoingPair
		view       RotationView
	)
	err := s.db.RunInTx(ctx, func(txdb *db.DB) error {
		state, err := txdb.Queries.EnsureMatchState(ctx, matchID)
		if err != nil {
			return err
		}

		f := formationOf(state)
		classified = rotation.ClassifyOutgoingPair(f, outgoing)

		if classified.Kind == rotation.PairingSide && classified.PairKey == rotation.ParsePairKey(state.NextPairKey) {
			next := rotation.AnalyzeRotationState(classified.PairKey, f).PriorityOrder[1]
			state, err = updateRotation(ctx, txdb, state, state.RotationMode, next,
				rotation.BuildPrioritizedQueue(next, f).Queue)
			if err != nil {
				return err
			}
		}

		if classified.Kind != rotation.PairingNone {
			if err := creditSubstitutions(ctx, txdb, matchID, outgoing); err != nil {
				return err
			}
		}

		view, err = buildView(state)
		return err
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to record pair substitution")
		return rotation.OutgoingPair{}, RotationView{}, err
	}

	logger.Info().
		Str("kind", string(classified.Kind)).
		Str("pair_key", string(classified.PairKey)).
		Msg("Recorded pair substitution")
	return classified, view, nil
}

// RecordIndividualSubstitution moves one player from the head region of the
// individual queue to its tail. A player not in the queue leaves it unchanged.
func (s *Service) RecordIndividualSubstitution(ctx context.Context, matchID int64, playerID string) (RotationView, error) {
	logger := log.Ctx(ctx).With().
		Str("component", "matchstate").
		Int64("match_id", matchID).
		Str("player_id", playerID).
		Logger()

	var view RotationView
	err := s.db.RunInTx(ctx, func(txdb *db.DB) error {
		state, err := txdb.Queries.EnsureMatchState(ctx, matchID)
		if err != nil {
			return err
		}

		queue, err := decodeQueue(state.RotationQueue)
		if err != nil {
			return err
		}
		queue = rotateToTail(queue, playerID)

		if err := creditSubstitutions(ctx, txdb, matchID, []string{playerID}); err != nil {
			return err
		}

		// Keep the stored pair key tracking the perturbed queue so a later
		// switch back to pairs mode starts from the best available guess.
		inferred, _ := rotation.InferNextPair(queue, formationOf(state))
		state, err = updateRotation(ctx, txdb, state, state.RotationMode, inferred, queue)
		if err != nil {
			return err
		}

		view, err = buildView(state)
		return err
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to record individual substitution")
		return RotationView{}, err
	}

	logger.Info().Msg("Recorded individual substitution")
	return view, nil
}

// FinalizeStaleMatches marks in-progress matches older than staleBefore as
// completed. Returns the number of matches closed out.
func (s *Service) FinalizeStaleMatches(ctx context.Context, staleBefore time.Time) (int, error) {
	logger := log.Ctx(ctx).With().
		Str("component", "matchstate").
		Time("stale_before", staleBefore).
		Logger()

	var finalized int
	err := s.db.RunInTx(ctx, func(txdb *db.DB) error {
		stale, err := txdb.Queries.ListStaleInProgressMatches(ctx, staleBefore)
		if err != nil {
			return err
		}
		for _, match := range stale {
			if _, err := txdb.Queries.UpdateMatchStatus(ctx, db.UpdateMatchStatusParams{
				Status: db.MatchStatusCompleted,
				ID:     match.ID,
			}); err != nil {
				return fmt.Errorf("finalize match %d: %w", match.ID, err)
			}
			logger.Info().
				Int64("match_id", match.ID).
				Time("starts_at", match.StartsAt).
				Msg("Finalized stale match")
		}
		finalized = len(stale)
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to finalize stale matches")
		return 0, err
	}
	return finalized, nil
}

// creditSubstitutions bumps the substitution count for each outgoing player.
// Formation slots store player IDs as text; identifiers that are not numeric
// database IDs are skipped rather than treated as errors.
func creditSubstitutions(ctx context.Context, txdb *db.DB, matchID int64, playerIDs []string) error {
	for _, raw := range playerIDs {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		if err := txdb.Queries.AddPlayerMatchStat(ctx, db.AddPlayerMatchStatParams{
			MatchID:       matchID,
			PlayerID:      id,
			Substitutions: 1,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) storeQueue(ctx context.Context, txdb *db.DB, state db.MatchState, queue []string) (db.MatchState, error) {
	return updateRotation(ctx, txdb, state, state.RotationMode, rotation.ParsePairKey(state.NextPairKey), queue)
}

func updateRotation(ctx context.Context, txdb *db.DB, state db.MatchState, mode string, next rotation.PairKey, queue []string) (db.MatchState, error) {
	encoded, err := encodeQueue(queue)
	if err != nil {
		return db.MatchState{}, err
	}
	return txdb.Queries.UpdateMatchRotation(ctx, db.UpdateMatchRotationParams{
		MatchID:       state.MatchID,
		RotationMode:  mode,
		NextPairKey:   string(next),
		RotationQueue: encoded,
	})
}

// buildView renders the stored state through the rotation engine in whichever
// mode the match is in.
func buildView(state db.MatchState) (RotationView, error) {
	f := formationOf(state)
	view := RotationView{
		MatchID: state.MatchID,
		Mode:    state.RotationMode,
		Pairs:   rotation.Pairs(f),
	}

	switch state.RotationMode {
	case db.RotationModeIndividual:
		queue, err := decodeQueue(state.RotationQueue)
		if err != nil {
			return RotationView{}, err
		}
		inferred, confidence := rotation.InferNextPair(queue, f)
		view.Queue = queue
		view.NextPairKey = inferred
		view.Confidence = confidence
		view.PriorityOrder = rotation.AnalyzeRotationState(inferred, f).PriorityOrder
		view.NextPairPlayers = rotation.AnalyzeRotationState(inferred, f).NextPairPlayers
		if len(queue) > 0 {
			view.Next = queue[0]
		}
		if len(queue) > 1 {
			view.NextNext = queue[1]
		}

	default:
		next := rotation.ParsePairKey(state.NextPairKey)
		analyzed := rotation.AnalyzeRotationState(next, f)
		expansion := rotation.ExpandToIndividualQueue(analyzed.PriorityOrder, f)
		view.NextPairKey = analyzed.PriorityOrder[0]
		view.PriorityOrder = analyzed.PriorityOrder
		view.NextPairPlayers = analyzed.NextPairPlayers
		view.Queue = expansion.Queue
		view.Next = expansion.Next
		view.NextNext = expansion.NextNext
	}

	return view, nil
}

func formationOf(state db.MatchState) rotation.Formation {
	return rotation.Formation{
		rotation.SlotLeftDefender:  state.LeftDefender,
		rotation.SlotRightDefender: state.RightDefender,
		rotation.SlotLeftAttacker:  state.LeftAttacker,
		rotation.SlotRightAttacker: state.RightAttacker,
		rotation.SlotSubstitute1:   state.Substitute1,
		rotation.SlotSubstitute2:   state.Substitute2,
		rotation.SlotGoalie:        state.Goalie,
	}
}

func encodeQueue(queue []string) (string, error) {
	if queue == nil {
		queue = []string{}
	}
	data, err := json.Marshal(queue)
	if err != nil {
		return "", fmt.Errorf("encode rotation queue: %w", err)
	}
	return string(data), nil
}

func decodeQueue(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var queue []string
	if err := json.Unmarshal([]byte(raw), &queue); err != nil {
		return nil, fmt.Errorf("decode rotation queue: %w", err)
	}
	return queue, nil
}

// rotateToTail moves the first occurrence of playerID to the end of the
// queue, preserving everyone else's relative order.
func rotateToTail(queue []string, playerID string) []string {
	for i, id := range queue {
		if id != playerID {
			continue
		}
		rotated := make([]string, 0, len(queue))
		rotated = append(rotated, queue[:i]...)
		rotated = append(rotated, queue[i+1:]...)
		return append(rotated, playerID)
	}
	return queue
}

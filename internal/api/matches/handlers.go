// internal/api/matches/handlers.go
package matches

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/Benchwise/internal/api/apiutil"
	appdb "github.com/codr1/Benchwise/internal/db"
	"github.com/codr1/Benchwise/internal/matchstate"
)

var (
	queries     *appdb.Queries
	service     *matchstate.Service
	handlerOnce sync.Once
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(database *appdb.DB, stateService *matchstate.Service) {
	if database == nil || stateService == nil {
		log.Warn().Msg("matches.InitHandlers called with nil dependencies")
		return
	}
	handlerOnce.Do(func() {
		queries = database.Queries
		service = stateService
	})
}

type createMatchRequest struct {
	TeamID   int64  `json:"teamId"`
	Opponent string `json:"opponent"`
	StartsAt string `json:"startsAt"`
	Notes    string `json:"notes,omitempty"`
}

type updateScoreRequest struct {
	TeamScore     int64 `json:"teamScore"`
	OpponentScore int64 `json:"opponentScore"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// GET /api/v1/matches?team_id=N
func HandleListMatches(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if queries == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	teamID, err := apiutil.TeamIDFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	matches, err := queries.ListTeamMatches(r.Context(), teamID)
	if err != nil {
		logger.Error().Err(err).Int64("team_id", teamID).Msg("Failed to list matches")
		http.Error(w, "Failed to list matches", http.StatusInternalServerError)
		return
	}
	if matches == nil {
		matches = []appdb.Match{}
	}

	apiutil.WriteJSON(w, http.StatusOK, matches)
}

// POST /api/v1/matches
func HandleCreateMatch(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if queries == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var req createMatchRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	req.Opponent = strings.TrimSpace(req.Opponent)
	if req.TeamID <= 0 || req.Opponent == "" {
		http.Error(w, "teamId and opponent are required", http.StatusBadRequest)
		return
	}
	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		http.Error(w, "startsAt must be RFC 3339", http.StatusBadRequest)
		return
	}

	params := appdb.CreateMatchParams{
		TeamID:   req.TeamID,
		Opponent: req.Opponent,
		StartsAt: startsAt.UTC(),
	}
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		params.Notes = sql.NullString{String: notes, Valid: true}
	}

	match, err := queries.CreateMatch(r.Context(), params)
	if err != nil {
		logger.Error().Err(err).Int64("team_id", req.TeamID).Msg("Failed to create match")
		http.Error(w, "Failed to create match", http.StatusInternalServerError)
		return
	}

	logger.Info().Int64("match_id", match.ID).Int64("team_id", match.TeamID).Msg("Created match")
	apiutil.WriteJSON(w, http.StatusCreated, match)
}

// GET /api/v1/matches/{id}
func HandleGetMatch(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if queries == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	matchID, err := apiutil.PathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	match, err := queries.GetMatch(r.Context(), matchID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Match not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("match_id", matchID).Msg("Failed to load match")
		http.Error(w, "Failed to load match", http.StatusInternalServerError)
		return
	}

	apiutil.WriteJSON(w, http.StatusOK, match)
}

// PUT /api/v1/matches/{id}/score
func HandleUpdateScore(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if queries == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	matchID, err := apiutil.PathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req updateScoreRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.TeamScore < 0 || req.OpponentScore < 0 {
		http.Error(w, "scores must not be negative", http.StatusBadRequest)
		return
	}

	match, err := queries.UpdateMatchScore(r.Context(), appdb.UpdateMatchScoreParams{
		TeamScore:     req.TeamScore,
		OpponentScore: req.OpponentScore,
		ID:            matchID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Match not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("match_id", matchID).Msg("Failed to update score")
		http.Error(w, "Failed to update score", http.StatusInternalServerError)
		return
	}

	apiutil.WriteJSON(w, http.StatusOK, match)
}

// PUT /api/v1/matches/{id}/status
func HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if queries == nil {
		logger.Error().Msg("Database queries not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	matchID, err := apiutil.PathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	switch req.Status {
	case appdb.MatchStatusScheduled, appdb.MatchStatusInProgress, appdb.MatchStatusCompleted, appdb.MatchStatusCancelled:
	default:
		http.Error(w, "unsupported match status", http.StatusBadRequest)
		return
	}

	match, err := queries.UpdateMatchStatus(r.Context(), appdb.UpdateMatchStatusParams{
		Status: req.Status,
		ID:     matchID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Match not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Int64("match_id", matchID).Msg("Failed to update status")
		http.Error(w, "Failed to update status", http.StatusInternalServerError)
		return
	}

	logger.Info().Int64("match_id", match.ID).Str("status", match.Status).Msg("Updated match status")
	apiutil.WriteJSON(w, http.StatusOK, match)
}

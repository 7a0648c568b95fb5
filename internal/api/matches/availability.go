package matches

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/codr1/Benchwise/internal/api/apiutil"
	appdb "github.com/codr1/Benchwise/internal/db"
)

type setAvailabilityRequest struct {
	PlayerID int64  `json:"playerId"`
	Status   string `json:"status"`
}

// GET /api/v1/matches/{id}/availability
func HandleListAvailability(w http.ResponseWriter, r *http.Request) {
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

	rows, err := queries.ListMatchAvailability(r.Context(), matchID)
	if err != nil {
		logger.Error().Err(err).Int64("match_id", matchID).Msg("Failed to list availability")
		http.Error(w, "Failed to list availability", http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []appdb.MatchAvailabilityRow{}
	}

	apiutil.WriteJSON(w, http.StatusOK, rows)
}

// PUT /api/v1/matches/{id}/availability
func HandleSetAvailability(w http.ResponseWriter, r *http.Request) {
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

	var req setAvailabilityRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.PlayerID <= 0 {
		http.Error(w, "playerId is required", http.StatusBadRequest)
		return
	}
	switch req.Status {
	case appdb.AvailabilityYes, appdb.AvailabilityNo, appdb.AvailabilityMaybe, appdb.AvailabilityUnknown:
	default:
		http.Error(w, "unsupported availability status", http.StatusBadRequest)
		return
	}

	if err := queries.UpsertMatchAvailability(r.Context(), appdb.UpsertMatchAvailabilityParams{
		MatchID:  matchID,
		PlayerID: req.PlayerID,
		Status:   req.Status,
	}); err != nil {
		logger.Error().Err(err).
			Int64("match_id", matchID).
			Int64("player_id", req.PlayerID).
			Msg("Failed to set availability")
		http.Error(w, "Failed to set availability", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

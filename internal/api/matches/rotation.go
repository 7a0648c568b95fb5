package matches

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/codr1/Benchwise/internal/api/apiutil"
	"github.com/codr1/Benchwise/internal/matchstate"
	"github.com/codr1/Benchwise/internal/rotation"
)

type setFormationRequest struct {
	Formation map[string]string `json:"formation"`
}

type switchModeRequest struct {
	Mode string `json:"mode"`
}

type substitutionRequest struct {
	// Kind selects pair or individual bookkeeping.
	Kind string `json:"kind"`
	// Outgoing holds the two outgoing players for a pair substitution.
	Outgoing []string `json:"outgoing,omitempty"`
	// PlayerID is the single substituted player for an individual one.
	PlayerID string `json:"playerId,omitempty"`
}

type substitutionResponse struct {
	Classification rotation.OutgoingPair   `json:"classification,omitempty"`
	View           matchstate.RotationView `json:"view"`
}

// GET /api/v1/matches/{id}/rotation
func HandleRotationView(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if service == nil {
		logger.Error().Msg("Match state service not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	matchID, err := apiutil.PathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := service.View(r.Context(), matchID)
	if err != nil {
		http.Error(w, "Failed to load rotation state", http.StatusInternalServerError)
		return
	}

	apiutil.WriteJSON(w, http.StatusOK, view)
}

// PUT /api/v1/matches/{id}/rotation/formation
func HandleSetFormation(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if service == nil {
		logger.Error().Msg("Match state service not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	matchID, err := apiutil.PathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req setFormationRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	f := rotation.Formation{}
	for slot, player := range req.Formation {
		f[rotation.Slot(slot)] = player
	}

	view, err := service.SetFormation(r.Context(), matchID, f)
	if err != nil {
		http.Error(w, "Failed to set formation", http.StatusInternalServerError)
		return
	}

	apiutil.WriteJSON(w, http.StatusOK, view)
}

// POST /api/v1/matches/{id}/rotation/mode
func HandleSwitchMode(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if service == nil {
		logger.Error().Msg("Match state service not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	matchID, err := apiutil.PathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req switchModeRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	view, err := service.SwitchMode(r.Context(), matchID, req.Mode)
	if err != nil {
		http.Error(w, "Failed to switch rotation mode", http.StatusBadRequest)
		return
	}

	apiutil.WriteJSON(w, http.StatusOK, view)
}

// POST /api/v1/matches/{id}/rotation/substitution
func HandleSubstitution(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if service == nil {
		logger.Error().Msg("Match state service not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	matchID, err := apiutil.PathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req substitutionRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	switch req.Kind {
	case "pair":
		classified, view, err := service.RecordPairSubstitution(r.Context(), matchID, req.Outgoing)
		if err != nil {
			http.Error(w, "Failed to record substitution", http.StatusInternalServerError)
			return
		}
		apiutil.WriteJSON(w, http.StatusOK, substitutionResponse{
			Classification: classified,
			View:           view,
		})

	case "individual":
		if req.PlayerID == "" {
			http.Error(w, "playerId is required", http.StatusBadRequest)
			return
		}
		view, err := service.RecordIndividualSubstitution(r.Context(), matchID, req.PlayerID)
		if err != nil {
			http.Error(w, "Failed to record substitution", http.StatusInternalServerError)
			return
		}
		apiutil.WriteJSON(w, http.StatusOK, substitutionResponse{View: view})

	default:
		http.Error(w, "kind must be pair or individual", http.StatusBadRequest)
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tavernkeep/campaign-tracker/internal/logger"
	"github.com/tavernkeep/campaign-tracker/internal/models"
	"github.com/tavernkeep/campaign-tracker/internal/services"
)

// CombatViewer defines the interface that the combat detail service must implement.
type CombatViewer interface {
	Combat(ctx context.Context, combatID int64) (*models.CombatDB, []models.PlayerDB, error)
}

// CombatViewResponse represents a combat with its participating players
// swagger:model CombatViewResponse
type CombatViewResponse struct {
	Combat       models.CombatDB   `json:"combat"`
	Participants []models.PlayerDB `json:"participants"`
}

// CombatErrorResponse represents an error response for combat operations
// swagger:model CombatErrorResponse
type CombatErrorResponse struct {
	// Error message
	// default: Combat not found
	Error string `json:"error"`
}

// NewCombatViewHandler returns an HTTP handler for the combat detail view.
// @Summary View a combat
// @Description Returns a combat encounter and the players participating in it.
// @Tags combats
// @Produce json
// @Security BearerAuth
// @Param id path int true "Combat id"
// @Success 200 {object} handlers.CombatViewResponse "Combat with participants"
// @Failure 400 {object} handlers.CombatErrorResponse "Malformed combat id"
// @Failure 401 "Not authenticated"
// @Failure 404 {object} handlers.CombatErrorResponse "Combat not found"
// @Router /combats/{id} [get]
func NewCombatViewHandler(svc CombatViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		combatID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CombatErrorResponse{
				Error: "Invalid input",
			})
			return
		}

		combat, participants, err := svc.Combat(r.Context(), combatID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCombatNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CombatErrorResponse{
					Error: "Combat not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CombatErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		if participants == nil {
			participants = []models.PlayerDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CombatViewResponse{
			Combat:       *combat,
			Participants: participants,
		})
	}
}

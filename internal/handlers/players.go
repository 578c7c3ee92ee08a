package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tavernkeep/campaign-tracker/internal/logger"
	"github.com/tavernkeep/campaign-tracker/internal/middlewares"
	"github.com/tavernkeep/campaign-tracker/internal/models"
)

// PlayerLister defines the interface that the player list service must implement.
type PlayerLister interface {
	Players(ctx context.Context, ownerID int64) ([]models.PlayerDB, error)
}

// PlayerListResponse represents all players across the caller's campaigns
// swagger:model PlayerListResponse
type PlayerListResponse struct {
	Players []models.PlayerDB `json:"players"`
}

// NewPlayersHandler returns an HTTP handler listing every player across the
// caller's campaigns with their aggregate combat statistics.
// @Summary List my players
// @Description Returns all players of the authenticated user's campaigns.
// @Tags players
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.PlayerListResponse "Players of owned campaigns"
// @Failure 401 "Not authenticated"
// @Router /players [get]
func NewPlayersHandler(svc PlayerLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		players, err := svc.Players(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CampaignErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if players == nil {
			players = []models.PlayerDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PlayerListResponse{
			Players: players,
		})
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tavernkeep/campaign-tracker/internal/logger"
	"github.com/tavernkeep/campaign-tracker/internal/middlewares"
	"github.com/tavernkeep/campaign-tracker/internal/models"
	"github.com/tavernkeep/campaign-tracker/internal/services"
)

// CampaignViewer defines the interface that the campaign detail service must implement.
type CampaignViewer interface {
	Get(ctx context.Context, ownerID, campaignID int64) (*models.CampaignDB, []models.PlayerDB, error)
}

// CampaignViewResponse represents a campaign with its player roster
// swagger:model CampaignViewResponse
type CampaignViewResponse struct {
	Campaign models.CampaignDB `json:"campaign"`
	Players  []models.PlayerDB `json:"players"`
}

// NewCampaignViewHandler returns an HTTP handler for the campaign detail view.
// Campaigns owned by other users read as not found.
// @Summary View a campaign
// @Description Returns one of the caller's campaigns together with its players.
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign id"
// @Success 200 {object} handlers.CampaignViewResponse "Campaign with players"
// @Failure 400 {object} handlers.CampaignErrorResponse "Malformed campaign id"
// @Failure 401 "Not authenticated"
// @Failure 404 {object} handlers.CampaignErrorResponse "Campaign not found"
// @Router /campaigns/{id} [get]
func NewCampaignViewHandler(svc CampaignViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		campaignID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CampaignErrorResponse{
				Error: "Invalid input",
			})
			return
		}

		campaign, players, err := svc.Get(r.Context(), userID, campaignID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCampaignNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CampaignErrorResponse{
					Error: "Campaign not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CampaignErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		if players == nil {
			players = []models.PlayerDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CampaignViewResponse{
			Campaign: *campaign,
			Players:  players,
		})
	}
}

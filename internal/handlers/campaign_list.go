package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tavernkeep/campaign-tracker/internal/logger"
	"github.com/tavernkeep/campaign-tracker/internal/middlewares"
	"github.com/tavernkeep/campaign-tracker/internal/models"
)

// CampaignLister defines the interface that the campaign list service must implement.
type CampaignLister interface {
	List(ctx context.Context, ownerID int64) ([]models.CampaignDB, error)
}

// CampaignListResponse represents the caller's campaigns in insertion order
// swagger:model CampaignListResponse
type CampaignListResponse struct {
	Campaigns []models.CampaignDB `json:"campaigns"`
}

// CampaignErrorResponse represents an error response for campaign operations
// swagger:model CampaignErrorResponse
type CampaignErrorResponse struct {
	// Error message
	// default: Campaign not found
	Error string `json:"error"`
}

// NewCampaignListHandler returns an HTTP handler listing the caller's own
// campaigns. Campaigns of other owners are never included.
// @Summary List my campaigns
// @Description Returns the authenticated user's campaigns in insertion order.
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.CampaignListResponse "Campaigns owned by the caller"
// @Failure 401 "Not authenticated"
// @Router /campaigns [get]
func NewCampaignListHandler(svc CampaignLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		campaigns, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CampaignErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if campaigns == nil {
			campaigns = []models.CampaignDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CampaignListResponse{
			Campaigns: campaigns,
		})
	}
}

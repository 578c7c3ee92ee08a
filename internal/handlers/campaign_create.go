package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tavernkeep/campaign-tracker/internal/logger"
	"github.com/tavernkeep/campaign-tracker/internal/middlewares"
	"github.com/tavernkeep/campaign-tracker/internal/models"
	"github.com/tavernkeep/campaign-tracker/internal/services"
)

// CampaignCreator defines the interface that the campaign create service must implement.
type CampaignCreator interface {
	Create(ctx context.Context, ownerID int64, name, count, level, completion string) (*models.CampaignDB, error)
}

// CampaignCreateRequest represents the JSON body for campaign creation. The
// numeric fields arrive as strings and are validated at the service boundary;
// completion is true only for the literal string "True".
// swagger:model CampaignCreateRequest
type CampaignCreateRequest struct {
	// Campaign name, unique system-wide
	// required: true
	// default: Dragon Heist
	Name string `json:"name"`

	// Number of players, decimal integer
	// required: true
	// default: 4
	Count string `json:"count"`

	// Average party level, decimal integer
	// required: true
	// default: 3
	Level string `json:"level"`

	// Completion flag, "True" or anything else
	// default: False
	Completion string `json:"completion"`
}

// CampaignCreateResponse represents a successful campaign creation response
// swagger:model CampaignCreateResponse
type CampaignCreateResponse struct {
	Campaign models.CampaignDB `json:"campaign"`
}

// NewCampaignCreateHandler returns an HTTP handler for campaign creation.
// @Summary Create a campaign
// @Description Creates a campaign owned by the authenticated user. Campaign names are unique across all users.
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param campaignCreateRequest body handlers.CampaignCreateRequest true "Campaign creation request"
// @Success 201 {object} handlers.CampaignCreateResponse "Campaign created"
// @Failure 400 {object} handlers.CampaignErrorResponse "Malformed numeric field / invalid request"
// @Failure 401 "Not authenticated"
// @Failure 409 {object} handlers.CampaignErrorResponse "Campaign name already exists"
// @Router /campaigns [post]
func NewCampaignCreateHandler(svc CampaignCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.GetUserIDFromContext(r.Context())

		var req CampaignCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CampaignErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		campaign, err := svc.Create(r.Context(), userID, req.Name, req.Count, req.Level, req.Completion)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidInput):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CampaignErrorResponse{
					Error: "Invalid input",
				})
			case errors.Is(err, services.ErrDuplicateCampaignName):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(CampaignErrorResponse{
					Error: "Campaign name already exists",
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

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CampaignCreateResponse{
			Campaign: *campaign,
		})
	}
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/tavernkeep/campaign-tracker/internal/middlewares"
	"github.com/tavernkeep/campaign-tracker/internal/models"
	"github.com/tavernkeep/campaign-tracker/internal/services"
)

func serveCampaignView(svc CampaignViewer, target string, userID int64) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Get("/campaigns/{id}", NewCampaignViewHandler(svc))

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	return rr
}

func TestCampaignViewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockCampaignViewer(ctrl)
	svc.EXPECT().
		Get(gomock.Any(), int64(7), int64(5)).
		Return(
			&models.CampaignDB{ID: 5, Name: "Dragon Heist", OwnerID: 7},
			[]models.PlayerDB{{ID: 1, PlayerName: "Sam", CharacterName: "Thorin", CampaignID: 5}},
			nil,
		)

	rr := serveCampaignView(svc, "/campaigns/5", 7)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got CampaignViewResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "Dragon Heist", got.Campaign.Name)
	assert.Len(t, got.Players, 1)
	assert.Equal(t, "Thorin", got.Players[0].CharacterName)
}

func TestCampaignViewHandler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockCampaignViewer(ctrl)
	svc.EXPECT().
		Get(gomock.Any(), int64(7), int64(99)).
		Return(nil, nil, services.ErrCampaignNotFound)

	rr := serveCampaignView(svc, "/campaigns/99", 7)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCampaignViewHandler_MalformedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockCampaignViewer(ctrl)

	rr := serveCampaignView(svc, "/campaigns/abc", 7)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCampaignViewHandler_EmptyRoster(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockCampaignViewer(ctrl)
	svc.EXPECT().
		Get(gomock.Any(), int64(7), int64(5)).
		Return(&models.CampaignDB{ID: 5, Name: "Dragon Heist", OwnerID: 7}, nil, nil)

	rr := serveCampaignView(svc, "/campaigns/5", 7)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got map[string]any
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, []any{}, got["players"])
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/tavernkeep/campaign-tracker/internal/middlewares"
	"github.com/tavernkeep/campaign-tracker/internal/models"
	"github.com/tavernkeep/campaign-tracker/internal/services"
)

func TestCampaignCreateHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         any
		rawBody      string
		mockSetup    func(m *MockCampaignCreator)
		expectedCode int
	}{
		{
			name: "success",
			body: CampaignCreateRequest{Name: "Dragon Heist", Count: "4", Level: "3", Completion: "True"},
			mockSetup: func(m *MockCampaignCreator) {
				m.EXPECT().
					Create(gomock.Any(), int64(7), "Dragon Heist", "4", "3", "True").
					Return(&models.CampaignDB{ID: 1, Name: "Dragon Heist", PlayerCount: 4, PlayerLevel: 3, Completion: true, OwnerID: 7}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "duplicate name",
			body: CampaignCreateRequest{Name: "Dragon Heist", Count: "4", Level: "3", Completion: "False"},
			mockSetup: func(m *MockCampaignCreator) {
				m.EXPECT().
					Create(gomock.Any(), int64(7), "Dragon Heist", "4", "3", "False").
					Return(nil, services.ErrDuplicateCampaignName)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "invalid numeric field",
			body: CampaignCreateRequest{Name: "Dragon Heist", Count: "four", Level: "3", Completion: "False"},
			mockSetup: func(m *MockCampaignCreator) {
				m.EXPECT().
					Create(gomock.Any(), int64(7), "Dragon Heist", "four", "3", "False").
					Return(nil, services.ErrInvalidInput)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid json",
			rawBody:      "{not json",
			mockSetup:    func(m *MockCampaignCreator) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockCampaignCreator(ctrl)
			tt.mockSetup(svc)

			var body bytes.Buffer
			if tt.rawBody != "" {
				body.WriteString(tt.rawBody)
			} else {
				assert.NoError(t, json.NewEncoder(&body).Encode(tt.body))
			}

			req := httptest.NewRequest(http.MethodPost, "/campaigns", &body)
			req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), 7))
			rr := httptest.NewRecorder()

			NewCampaignCreateHandler(svc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusCreated {
				var got CampaignCreateResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, int64(1), got.Campaign.ID)
				assert.True(t, got.Campaign.Completion)
			}
		})
	}
}

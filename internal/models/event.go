package models

// CampaignEvent is published to Kafka after a campaign is created.
type CampaignEvent struct {
	EventID    string `json:"event_id"`    // Unique event identifier
	Type       string `json:"type"`        // Event type, e.g. "campaign.created"
	Timestamp  int64  `json:"timestamp"`   // Unix timestamp
	CampaignID int64  `json:"campaign_id"` // Affected campaign
	OwnerID    int64  `json:"owner_id"`    // Campaign owner
	Name       string `json:"name"`        // Campaign name
}

// EventTypeCampaignCreated is the type tag for campaign creation events.
const EventTypeCampaignCreated = "campaign.created"

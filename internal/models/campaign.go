package models

import "time"

// CampaignDB represents a campaign record in the database.
type CampaignDB struct {
	ID          int64     `json:"id" db:"id"`                     // Primary key
	Name        string    `json:"name" db:"name"`                 // Globally unique campaign name
	PlayerCount int       `json:"player_count" db:"player_count"` // Number of players at the table
	PlayerLevel int       `json:"player_level" db:"player_level"` // Average party level
	Completion  bool      `json:"completion" db:"completion"`     // Whether the campaign has concluded
	OwnerID     int64     `json:"owner_id" db:"user_id"`          // Owning user
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
}

package models

// CombatDB represents a combat encounter record.
type CombatDB struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// CombatantDB is one row of the players-to-combats association.
type CombatantDB struct {
	PlayerID int64 `json:"player_id" db:"player_id"`
	CombatID int64 `json:"combat_id" db:"combat_id"`
}

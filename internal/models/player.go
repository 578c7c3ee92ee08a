package models

// PlayerDB represents a player record with its aggregate combat statistics.
type PlayerDB struct {
	ID                 int64   `json:"id" db:"id"`
	PlayerName         string  `json:"player_name" db:"player_name"`
	CharacterName      string  `json:"character_name" db:"character_name"`
	DamageDealt        int     `json:"damage_dealt" db:"damage_dealt"`
	DamageReceived     int     `json:"damage_received" db:"damage_received"`
	HealingDealt       int     `json:"healing_dealt" db:"healing_dealt"`
	AverageSavingThrow int     `json:"average_saving_throw" db:"average_saving_throw"`
	SavesMade          int     `json:"saves_made" db:"saves_made"`
	CritSuccesses      int     `json:"crit_successes" db:"crit_successes"`
	CritFailures       int     `json:"crit_failures" db:"crit_failures"`
	AverageAttackRoll  float64 `json:"average_attack_roll" db:"average_attack_roll"`
	AttacksMade        int     `json:"attacks_made" db:"attacks_made"`
	EnemySaveRate      float64 `json:"enemy_save_rate" db:"enemy_save_rate"`
	SavesForced        int     `json:"saves_forced" db:"saves_forced"`
	CampaignID         int64   `json:"campaign_id" db:"campaign_id"`
}

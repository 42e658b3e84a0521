package persistence

import (
	"time"
)

// SessionModel represents the sessions table
type SessionModel struct {
	ID             string    `gorm:"column:id;primaryKey"`
	PlayerName     string    `gorm:"column:player_name;not null;index"`
	Lives          int       `gorm:"column:lives;not null;default:0"`
	LevelsComplete int       `gorm:"column:levels_complete;not null;default:0"`
	CreatedAt      time.Time `gorm:"column:created_at;not null"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (SessionModel) TableName() string {
	return "sessions"
}

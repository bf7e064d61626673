package storage

import "time"

// sessionRowID is the primary key of the single persisted session row
const sessionRowID = 1

// SessionModel is the GORM model for the persisted session. The token
// and minimal identity are the only client-persisted state; exactly
// one row exists at a time.
type SessionModel struct {
	CreatedAt time.Time
	Email     string `gorm:"not null;default:''"`
	FullName  string `gorm:"not null;default:''"`
	ID        int    `gorm:"primaryKey"`
	Token     string `gorm:"not null"`
	UpdatedAt time.Time
	UserID    string `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string { return "sessions" }

package storage

import "time"

// RecentModel is the GORM model for the recents table
type RecentModel struct {
	CreatedAt  time.Time
	LastOpened time.Time `gorm:"not null"`
	Name       string    `gorm:"not null;default:''"`
	Path       string    `gorm:"primaryKey"`
	Position   int       `gorm:"not null;default:0;index:idx_recent_position"`
	RemoteURL  string    `gorm:"default:''"`
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (RecentModel) TableName() string { return "recents" }

// AccessTokenModel is the GORM model for persisted access tokens
type AccessTokenModel struct {
	CreatedAt time.Time
	Path      string `gorm:"primaryKey"`
	Token     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (AccessTokenModel) TableName() string { return "access_tokens" }

// AppStateModel is a key/value row for single-valued application state
type AppStateModel struct {
	Name      string `gorm:"primaryKey"`
	UpdatedAt time.Time
	Value     string `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (AppStateModel) TableName() string { return "app_state" }

const lastActiveKey = "last_active_path"

package adapters

import (
	"time"

	"gorm.io/gorm"
)

// KVModel is the GORM model for the key-value table that backs the watchlist.
type KVModel struct {
	Name      string    `gorm:"primaryKey;size:64"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (KVModel) TableName() string {
	return "kv_entries"
}

// AutoMigrate creates or updates the key-value table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&KVModel{})
}

package models

import "time"

// StorageItem is one key/value pair of the app's local storage.
type StorageItem struct {
	Key       string `gorm:"column:item_key;primaryKey;size:255"`
	Value     string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

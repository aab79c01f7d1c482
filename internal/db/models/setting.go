// Package models contains database model definitions.
package models

// Setting is one stored key of a storage area.
type Setting struct {
	ID    uint64 `gorm:"primaryKey"`
	Area  string `gorm:"size:16;not null;uniqueIndex:idx_settings_area_name"`
	Name  string `gorm:"size:191;not null;uniqueIndex:idx_settings_area_name"`
	Value []byte
}

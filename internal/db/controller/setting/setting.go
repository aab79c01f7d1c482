// Package setting provides CRUD operations on the stored keys of a storage area.
package setting

import (
	"errors"
	"slices"

	"gorm.io/gorm"

	"github.com/optionsinject/optionsinject/internal/db/models"
)

const (
	areaNameQueryPattern = "area = ? AND name = ?"
	areaQueryPattern     = "area = ?"
)

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingNameEmpty is returned when attempting to write a setting with an empty name.
	ErrSettingNameEmpty = errors.New("setting name cannot be empty")
	// ErrAreaEmpty is returned when no storage area was given.
	ErrAreaEmpty = errors.New("setting area cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

func check(db *gorm.DB, area string) error {
	if db == nil {
		return ErrDBNil
	}

	if area == "" {
		return ErrAreaEmpty
	}

	return nil
}

// Get retrieves a setting of an area by its name.
func Get(db *gorm.DB, area, name string) (*models.Setting, error) {
	if err := check(db, area); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, ErrSettingNameEmpty
	}

	var setting models.Setting

	result := db.Where(areaNameQueryPattern, area, name).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}

		return nil, result.Error
	}

	return &setting, nil
}

// GetAll retrieves all settings of an area ordered by name.
func GetAll(db *gorm.DB, area string) ([]models.Setting, error) {
	if err := check(db, area); err != nil {
		return nil, err
	}

	var settings []models.Setting

	result := db.Where(areaQueryPattern, area).Order("name").Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	return settings, nil
}

// Set creates or updates a setting by name (upsert operation).
func Set(db *gorm.DB, area, name string, value []byte) (*models.Setting, error) {
	if err := check(db, area); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, ErrSettingNameEmpty
	}

	var setting models.Setting

	result := db.Where(areaNameQueryPattern, area, name).First(&setting)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		setting = models.Setting{Area: area, Name: name, Value: value}

		if result = db.Create(&setting); result.Error != nil {
			return nil, result.Error
		}

		return &setting, nil
	}

	if result.Error != nil {
		return nil, result.Error
	}

	setting.Value = value

	if result = db.Save(&setting); result.Error != nil {
		return nil, result.Error
	}

	return &setting, nil
}

// SetAll upserts every item in one transaction. Either all items are written or none.
func SetAll(db *gorm.DB, area string, items map[string][]byte) error {
	if err := check(db, area); err != nil {
		return err
	}

	names := make([]string, 0, len(items))
	for name := range items {
		if name == "" {
			return ErrSettingNameEmpty
		}

		names = append(names, name)
	}

	// deterministic write order
	slices.Sort(names)

	return db.Transaction(func(tx *gorm.DB) error {
		for _, name := range names {
			if _, err := Set(tx, area, name, items[name]); err != nil {
				return err
			}
		}

		return nil
	})
}

// DeleteByName deletes a setting of an area by name.
func DeleteByName(db *gorm.DB, area, name string) error {
	if err := check(db, area); err != nil {
		return err
	}

	if name == "" {
		return ErrSettingNameEmpty
	}

	result := db.Where(areaNameQueryPattern, area, name).Delete(&models.Setting{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrSettingNotFound
	}

	return nil
}

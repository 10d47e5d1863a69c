package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/iCodeForBananas/SimpleGuitarTools/model"
)

type DB struct {
	*gorm.DB
}

// Open connects to the sqlite file at path, creating it and the saved
// tab schema as needed.
func Open(path string) (*DB, error) {
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening database %v: %w", path, err)
	}
	if err := gdb.AutoMigrate(&model.SavedTab{}); err != nil {
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	return &DB{gdb}, nil
}

func (d *DB) SaveTab(tab *model.SavedTab) error {
	if err := d.Create(tab).Error; err != nil {
		return fmt.Errorf("saving tab: %w", err)
	}
	return nil
}

// ListTabs returns all saved tabs, newest first.
func (d *DB) ListTabs() ([]model.SavedTab, error) {
	var tabs []model.SavedTab
	if err := d.Order("created_at desc, id desc").Find(&tabs).Error; err != nil {
		return nil, fmt.Errorf("listing tabs: %w", err)
	}
	return tabs, nil
}

// GetTab loads one tab. A missing id wraps gorm.ErrRecordNotFound.
func (d *DB) GetTab(id uint) (*model.SavedTab, error) {
	var tab model.SavedTab
	if err := d.First(&tab, id).Error; err != nil {
		return nil, fmt.Errorf("loading tab %v: %w", id, err)
	}
	return &tab, nil
}

// DeleteTab removes one tab. A missing id wraps gorm.ErrRecordNotFound.
func (d *DB) DeleteTab(id uint) error {
	res := d.Delete(&model.SavedTab{}, id)
	if res.Error != nil {
		return fmt.Errorf("deleting tab %v: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("deleting tab %v: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

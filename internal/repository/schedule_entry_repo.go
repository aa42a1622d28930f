package repository

import (
	"errors"
	"time"
	"workshop-planner/internal/models"

	"gorm.io/gorm"
)

type ScheduleEntryRepository interface {
	Create(entry *models.ScheduleEntry) error
	BulkCreate(entries []models.ScheduleEntry) error
	GetBetween(start, end time.Time) ([]models.ScheduleEntry, error)
	DeleteAutoGeneratedBetween(start, end time.Time) error
	ReplaceAutoGenerated(start, end time.Time, entries []models.ScheduleEntry) error
}

type GormScheduleEntryRepository struct {
	db *gorm.DB
}

func NewGormScheduleEntryRepository(db *gorm.DB) (ScheduleEntryRepository, error) {
	if err := db.AutoMigrate(&models.ScheduleEntry{}); err != nil {
		return nil, err
	}
	return &GormScheduleEntryRepository{db: db}, nil
}

func (r *GormScheduleEntryRepository) Create(entry *models.ScheduleEntry) error {
	if !entry.IsValid() {
		return errors.New("invalid schedule entry data")
	}
	return r.db.Create(entry).Error
}

func (r *GormScheduleEntryRepository) BulkCreate(entries []models.ScheduleEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.Create(&entries).Error
}

func (r *GormScheduleEntryRepository) GetBetween(start, end time.Time) ([]models.ScheduleEntry, error) {
	var entries []models.ScheduleEntry
	err := r.db.Where("start_time >= ? AND start_time < ?", start, end).
		Order("start_time, employee_id").
		Find(&entries).Error
	return entries, err
}

// DeleteAutoGeneratedBetween removes planner-owned entries in the window.
// Manual entries are left alone.
func (r *GormScheduleEntryRepository) DeleteAutoGeneratedBetween(start, end time.Time) error {
	return r.db.Where("start_time >= ? AND start_time < ? AND is_auto_generated = ?", start, end, true).
		Delete(&models.ScheduleEntry{}).Error
}

// ReplaceAutoGenerated swaps the auto-generated entries in the window for the
// given batch in a single transaction, so a failed insert cannot leave the
// window half cleared.
func (r *GormScheduleEntryRepository) ReplaceAutoGenerated(start, end time.Time, entries []models.ScheduleEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("start_time >= ? AND start_time < ? AND is_auto_generated = ?", start, end, true).
			Delete(&models.ScheduleEntry{}).Error
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
}

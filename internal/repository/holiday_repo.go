package repository

import (
	"time"
	"workshop-planner/internal/models"

	"gorm.io/gorm"
)

type HolidayRepository interface {
	Create(holiday *models.Holiday) error
	GetByTeam(team string) ([]models.Holiday, error)
	IsHoliday(date time.Time, team string) (bool, error)
}

type GormHolidayRepository struct {
	db *gorm.DB
}

func NewGormHolidayRepository(db *gorm.DB) (HolidayRepository, error) {
	if err := db.AutoMigrate(&models.Holiday{}); err != nil {
		return nil, err
	}
	return &GormHolidayRepository{db: db}, nil
}

func (r *GormHolidayRepository) Create(holiday *models.Holiday) error {
	return r.db.Create(holiday).Error
}

func (r *GormHolidayRepository) GetByTeam(team string) ([]models.Holiday, error) {
	var holidays []models.Holiday
	err := r.db.Where("team = ?", team).Order("date").Find(&holidays).Error
	return holidays, err
}

func (r *GormHolidayRepository) IsHoliday(date time.Time, team string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Holiday{}).
		Where("date = ? AND team = ?", date.Format("2006-01-02"), team).
		Count(&count).Error
	return count > 0, err
}

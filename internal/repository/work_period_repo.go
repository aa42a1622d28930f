package repository

import (
	"errors"
	"workshop-planner/internal/models"

	"gorm.io/gorm"
)

type WorkPeriodRepository interface {
	Create(period *models.WorkPeriod) error
	GetAll() ([]models.WorkPeriod, error)
	GetByDay(dayOfWeek int) ([]models.WorkPeriod, error)
}

type GormWorkPeriodRepository struct {
	db *gorm.DB
}

func NewGormWorkPeriodRepository(db *gorm.DB) (WorkPeriodRepository, error) {
	if err := db.AutoMigrate(&models.WorkPeriod{}); err != nil {
		return nil, err
	}
	return &GormWorkPeriodRepository{db: db}, nil
}

func (r *GormWorkPeriodRepository) Create(period *models.WorkPeriod) error {
	if !period.IsValid() {
		return errors.New("invalid work period data")
	}
	return r.db.Create(period).Error
}

func (r *GormWorkPeriodRepository) GetAll() ([]models.WorkPeriod, error) {
	var periods []models.WorkPeriod
	err := r.db.Order("day_of_week, start_time").Find(&periods).Error
	return periods, err
}

func (r *GormWorkPeriodRepository) GetByDay(dayOfWeek int) ([]models.WorkPeriod, error) {
	var periods []models.WorkPeriod
	err := r.db.Where("day_of_week = ?", dayOfWeek).
		Order("start_time").
		Find(&periods).Error
	return periods, err
}

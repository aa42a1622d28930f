package repository

import (
	"errors"
	"workshop-planner/internal/models"

	"gorm.io/gorm"
)

type HolidayRequestRepository interface {
	Create(request *models.HolidayRequest) error
	GetApproved() ([]models.HolidayRequest, error)
	GetApprovedForEmployee(employeeID uint) ([]models.HolidayRequest, error)
}

type GormHolidayRequestRepository struct {
	db *gorm.DB
}

func NewGormHolidayRequestRepository(db *gorm.DB) (HolidayRequestRepository, error) {
	if err := db.AutoMigrate(&models.HolidayRequest{}); err != nil {
		return nil, err
	}
	return &GormHolidayRequestRepository{db: db}, nil
}

func (r *GormHolidayRequestRepository) Create(request *models.HolidayRequest) error {
	if !request.IsValid() {
		return errors.New("invalid holiday request data")
	}
	return r.db.Create(request).Error
}

func (r *GormHolidayRequestRepository) GetApproved() ([]models.HolidayRequest, error) {
	var requests []models.HolidayRequest
	err := r.db.Where("status = ?", models.HolidayRequestApproved).
		Order("employee_id, start_date").
		Find(&requests).Error
	return requests, err
}

func (r *GormHolidayRequestRepository) GetApprovedForEmployee(employeeID uint) ([]models.HolidayRequest, error) {
	var requests []models.HolidayRequest
	err := r.db.Where("employee_id = ? AND status = ?", employeeID, models.HolidayRequestApproved).
		Order("start_date").
		Find(&requests).Error
	return requests, err
}

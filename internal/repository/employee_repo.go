package repository

import (
	"errors"
	"workshop-planner/internal/models"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(employee *models.Employee) error
	GetByID(id uint) (*models.Employee, error)
	GetAll() ([]models.Employee, error)
}

type GormEmployeeRepository struct {
	db *gorm.DB
}

func NewGormEmployeeRepository(db *gorm.DB) (EmployeeRepository, error) {
	if err := db.AutoMigrate(&models.Workstation{}, &models.Employee{}); err != nil {
		return nil, err
	}
	return &GormEmployeeRepository{db: db}, nil
}

func (r *GormEmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

func (r *GormEmployeeRepository) GetByID(id uint) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.Preload("Workstations").First(&employee, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetAll returns the roster in stable id order; the planner relies on that
// order when filling slots.
func (r *GormEmployeeRepository) GetAll() ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Preload("Workstations").Order("id").Find(&employees).Error
	return employees, err
}

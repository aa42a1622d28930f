package repository

import (
	"workshop-planner/internal/models"

	"gorm.io/gorm"
)

type DependencyRepository interface {
	Create(dep *models.TaskDependency) error
	GetAll() ([]models.TaskDependency, error)
}

type GormDependencyRepository struct {
	db *gorm.DB
}

func NewGormDependencyRepository(db *gorm.DB) (DependencyRepository, error) {
	if err := db.AutoMigrate(&models.StandardTask{}, &models.TaskDependency{}); err != nil {
		return nil, err
	}
	return &GormDependencyRepository{db: db}, nil
}

func (r *GormDependencyRepository) Create(dep *models.TaskDependency) error {
	return r.db.Create(dep).Error
}

func (r *GormDependencyRepository) GetAll() ([]models.TaskDependency, error) {
	var deps []models.TaskDependency
	err := r.db.Find(&deps).Error
	return deps, err
}

package repository

import (
	"errors"
	"workshop-planner/internal/models"

	"gorm.io/gorm"
)

type ProjectRepository interface {
	Create(project *models.Project) error
	GetByID(id uint) (*models.Project, error)
	GetAll() ([]models.Project, error)
	GetActive() ([]models.Project, error)
}

type GormProjectRepository struct {
	db *gorm.DB
}

func NewGormProjectRepository(db *gorm.DB) (ProjectRepository, error) {
	if err := db.AutoMigrate(&models.Project{}, &models.Phase{}); err != nil {
		return nil, err
	}
	return &GormProjectRepository{db: db}, nil
}

func (r *GormProjectRepository) Create(project *models.Project) error {
	if !project.IsValid() {
		return errors.New("invalid project data")
	}
	return r.db.Create(project).Error
}

func (r *GormProjectRepository) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Phases").First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *GormProjectRepository) GetAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("installation_date").Find(&projects).Error
	return projects, err
}

func (r *GormProjectRepository) GetActive() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("status <> ?", models.ProjectStatusCompleted).
		Order("installation_date").
		Find(&projects).Error
	return projects, err
}

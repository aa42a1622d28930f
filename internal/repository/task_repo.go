package repository

import (
	"errors"
	"workshop-planner/internal/models"

	"gorm.io/gorm"
)

type TaskRepository interface {
	Create(task *models.Task) error
	GetByID(id uint) (*models.Task, error)
	GetOpen() ([]models.Task, error)
	GetByStatuses(statuses []string) ([]models.Task, error)
	UpdateStatus(id uint, status string) error
}

type GormTaskRepository struct {
	db *gorm.DB
}

func NewGormTaskRepository(db *gorm.DB) (TaskRepository, error) {
	if err := db.AutoMigrate(&models.Task{}); err != nil {
		return nil, err
	}
	return &GormTaskRepository{db: db}, nil
}

func (r *GormTaskRepository) Create(task *models.Task) error {
	if !task.IsValid() {
		return errors.New("invalid task data")
	}
	return r.db.Create(task).Error
}

func (r *GormTaskRepository) GetByID(id uint) (*models.Task, error) {
	var task models.Task
	err := r.db.Preload("Phase").Preload("StandardTask").First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetOpen returns every task that is not completed, with its phase preloaded
// so the owning project can be resolved.
func (r *GormTaskRepository) GetOpen() ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Preload("Phase").Preload("StandardTask").
		Where("status <> ?", models.TaskStatusCompleted).
		Order("id").
		Find(&tasks).Error
	return tasks, err
}

func (r *GormTaskRepository) GetByStatuses(statuses []string) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Preload("Phase").Preload("StandardTask").
		Where("status IN ?", statuses).
		Order("id").
		Find(&tasks).Error
	return tasks, err
}

func (r *GormTaskRepository) UpdateStatus(id uint, status string) error {
	result := r.db.Model(&models.Task{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("task not found")
	}

	return nil
}

package models

import "time"

// StandardTask is a reusable task template: concrete project tasks reference it
// for default durations and for dependency resolution.
type StandardTask struct {
	ID                     uint      `gorm:"primaryKey" json:"id"`
	Number                 int       `gorm:"not null;uniqueIndex" json:"number"`
	Name                   string    `gorm:"not null" json:"name"`
	DefaultDurationMinutes int       `gorm:"not null;default:0" json:"default_duration_minutes"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

func (StandardTask) TableName() string {
	return "standard_tasks"
}

// TaskDependency is a "limit phase" edge: a standard task cannot start until
// the limiting standard task's concrete instances in the same project are
// completed. Many-to-many between templates.
type TaskDependency struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	StandardTaskID      uint      `gorm:"not null;index" json:"standard_task_id"`
	LimitStandardTaskID uint      `gorm:"not null;index" json:"limit_standard_task_id"`
	CreatedAt           time.Time `json:"created_at"`

	StandardTask      *StandardTask `gorm:"foreignKey:StandardTaskID" json:"standard_task,omitempty"`
	LimitStandardTask *StandardTask `gorm:"foreignKey:LimitStandardTaskID" json:"limit_standard_task,omitempty"`
}

func (TaskDependency) TableName() string {
	return "task_dependencies"
}

package models

import "time"

type Task struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"not null" json:"title"`
	Description     string    `json:"description"`
	Status          string    `gorm:"type:varchar(20);not null;default:'todo';index" json:"status"`
	Priority        string    `gorm:"type:varchar(10);not null;default:'medium'" json:"priority"`
	DueDate         time.Time `gorm:"type:date;index" json:"due_date"`
	DurationMinutes int       `gorm:"not null;default:0" json:"duration_minutes"`
	Workstation     string    `json:"workstation"` // empty means any workstation
	StandardTaskID  *uint     `gorm:"index" json:"standard_task_id"`
	PhaseID         uint      `gorm:"not null;index" json:"phase_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Phase        *Phase        `gorm:"foreignKey:PhaseID" json:"phase,omitempty"`
	StandardTask *StandardTask `gorm:"foreignKey:StandardTaskID" json:"standard_task,omitempty"`
}

func (Task) TableName() string {
	return "tasks"
}

const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusHold       = "hold"
	TaskStatusCompleted  = "completed"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// IsOpen reports whether the task still needs to be scheduled or worked.
func (t *Task) IsOpen() bool {
	return t.Status != TaskStatusCompleted
}

// PriorityRank maps priority to a sortable rank, lower schedules first.
// Unknown priorities sort last.
func (t *Task) PriorityRank() int {
	switch t.Priority {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

// ProjectID resolves the owning project through the preloaded phase.
// Returns 0 when the phase was not loaded.
func (t *Task) ProjectID() uint {
	if t.Phase == nil {
		return 0
	}
	return t.Phase.ProjectID
}

// AllowsWorkstation reports whether an employee at the given workstation may
// take this task. Tasks without an affinity allow everyone.
func (t *Task) AllowsWorkstation(workstation string) bool {
	return t.Workstation == "" || t.Workstation == workstation
}

func (t *Task) IsValid() bool {
	if t.Title == "" {
		return false
	}
	if t.PhaseID == 0 {
		return false
	}
	switch t.Status {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusHold, TaskStatusCompleted:
	default:
		return false
	}
	switch t.Priority {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
	default:
		return false
	}
	return t.DurationMinutes >= 0
}

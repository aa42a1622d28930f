package models

import "time"

// ScheduleEntry is one planned block of work for one employee. Entries with
// IsAutoGenerated set are owned by the planner and replaced wholesale on each
// run; manual entries are never touched by the planner.
type ScheduleEntry struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	EmployeeID      uint      `gorm:"not null;index" json:"employee_id"`
	TaskID          *uint     `gorm:"index" json:"task_id"`
	PhaseID         *uint     `json:"phase_id"`
	Title           string    `gorm:"not null" json:"title"`
	Description     string    `json:"description"`
	StartTime       time.Time `gorm:"not null;index" json:"start_time"`
	EndTime         time.Time `gorm:"not null" json:"end_time"`
	IsAutoGenerated bool      `gorm:"not null;default:false;index" json:"is_auto_generated"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Task     *Task     `gorm:"foreignKey:TaskID" json:"task,omitempty"`
}

func (ScheduleEntry) TableName() string {
	return "schedule_entries"
}

func (se *ScheduleEntry) IsValid() bool {
	if se.EmployeeID == 0 {
		return false
	}
	if se.Title == "" {
		return false
	}
	if se.StartTime.IsZero() || se.EndTime.IsZero() {
		return false
	}
	return se.EndTime.After(se.StartTime)
}

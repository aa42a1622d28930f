package models

import "time"

type Project struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Client           string    `json:"client"`
	InstallationDate time.Time `gorm:"type:date;not null;index" json:"installation_date"`
	Status           string    `gorm:"type:varchar(20);not null;default:'planning';index" json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Phases []Phase `gorm:"foreignKey:ProjectID" json:"phases"`
}

func (Project) TableName() string {
	return "projects"
}

const (
	ProjectStatusPlanning   = "planning"
	ProjectStatusProduction = "production"
	ProjectStatusCompleted  = "completed"
)

// IsActive reports whether the project still needs shop time.
func (p *Project) IsActive() bool {
	return p.Status != ProjectStatusCompleted
}

func (p *Project) IsValid() bool {
	if p.Name == "" {
		return false
	}
	if p.InstallationDate.IsZero() {
		return false
	}
	switch p.Status {
	case ProjectStatusPlanning, ProjectStatusProduction, ProjectStatusCompleted:
		return true
	}
	return false
}

type Phase struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"not null;index" json:"project_id"`
	Name      string    `gorm:"not null" json:"name"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Tasks   []Task   `gorm:"foreignKey:PhaseID" json:"tasks,omitempty"`
}

func (Phase) TableName() string {
	return "phases"
}

package models

import "time"

type Employee struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	// Legacy single-workstation field, still set on older rows. The
	// many-to-many links are the current source of truth; WorksAt checks both.
	Workstation string    `json:"workstation"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Workstations    []Workstation    `gorm:"many2many:employee_workstations" json:"workstations"`
	HolidayRequests []HolidayRequest `gorm:"foreignKey:EmployeeID" json:"holiday_requests,omitempty"`
}

func (Employee) TableName() string {
	return "employees"
}

// WorksAt reports whether the employee is assigned to the named workstation,
// via either the legacy field or a workstation link.
func (e *Employee) WorksAt(name string) bool {
	if name == "" {
		return true
	}
	if e.Workstation == name {
		return true
	}
	for _, ws := range e.Workstations {
		if ws.Name == name {
			return true
		}
	}
	return false
}

type Workstation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Workstation) TableName() string {
	return "workstations"
}

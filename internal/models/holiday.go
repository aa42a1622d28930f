package models

import "time"

// Holiday is a shop-wide non-working day for a whole team, independent of
// individual holiday requests.
type Holiday struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      time.Time `gorm:"type:date;not null;index" json:"date"`
	Team      string    `gorm:"type:varchar(40);not null;default:'production';index" json:"team"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Holiday) TableName() string {
	return "holidays"
}

const TeamProduction = "production"

// HolidayRequest is an individual employee's requested absence range. Only
// approved requests keep the employee off the schedule.
type HolidayRequest struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"not null;index" json:"employee_id"`
	StartDate  time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate    time.Time `gorm:"type:date;not null" json:"end_date"`
	Status     string    `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (HolidayRequest) TableName() string {
	return "holiday_requests"
}

const (
	HolidayRequestPending  = "pending"
	HolidayRequestApproved = "approved"
	HolidayRequestRejected = "rejected"
)

func (hr *HolidayRequest) IsApproved() bool {
	return hr.Status == HolidayRequestApproved
}

// Covers reports whether the request's date range includes the given day.
// Time-of-day components are ignored.
func (hr *HolidayRequest) Covers(date time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(hr.StartDate.Year(), hr.StartDate.Month(), hr.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(hr.EndDate.Year(), hr.EndDate.Month(), hr.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && !day.After(end)
}

func (hr *HolidayRequest) IsValid() bool {
	if hr.EmployeeID == 0 {
		return false
	}
	if hr.StartDate.IsZero() || hr.EndDate.IsZero() {
		return false
	}
	if hr.EndDate.Before(hr.StartDate) {
		return false
	}
	switch hr.Status {
	case HolidayRequestPending, HolidayRequestApproved, HolidayRequestRejected:
		return true
	}
	return false
}

package models

import (
	"fmt"
	"time"
)

// WorkPeriod is a recurring weekly time window, e.g. the morning shift on
// Mondays. Several periods may exist for the same weekday.
type WorkPeriod struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DayOfWeek int       `gorm:"not null;check:day_of_week >= 0 AND day_of_week <= 6;index" json:"day_of_week"` // 0 = Sunday
	StartTime string    `gorm:"type:time;not null" json:"start_time"`                                          // "07:30"
	EndTime   string    `gorm:"type:time;not null" json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (WorkPeriod) TableName() string {
	return "work_periods"
}

const clockLayout = "15:04"

// Window resolves the period's clock strings against a concrete date.
func (wp *WorkPeriod) Window(date time.Time) (start, end time.Time, err error) {
	start, err = atClock(date, wp.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("work period %d: invalid start_time %q: %w", wp.ID, wp.StartTime, err)
	}
	end, err = atClock(date, wp.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("work period %d: invalid end_time %q: %w", wp.ID, wp.EndTime, err)
	}
	return start, end, nil
}

func atClock(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

func (wp *WorkPeriod) IsValid() bool {
	if wp.DayOfWeek < 0 || wp.DayOfWeek > 6 {
		return false
	}
	start, err := time.Parse(clockLayout, wp.StartTime)
	if err != nil {
		return false
	}
	end, err := time.Parse(clockLayout, wp.EndTime)
	if err != nil {
		return false
	}
	return end.After(start)
}

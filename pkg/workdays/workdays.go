package workdays

import (
	"fmt"
	"time"
)

const dateKeyLayout = "2006-01-02"

// maxLookback bounds the previous-workday walk so that pathological holiday
// data cannot loop forever.
const maxLookback = 60

// DateOnly drops the time-of-day component.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsWeekend reports whether the date falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// HolidaySet is a date-keyed lookup over a holiday calendar.
type HolidaySet map[string]bool

func NewHolidaySet(dates []time.Time) HolidaySet {
	set := HolidaySet{}
	for _, d := range dates {
		set[d.Format(dateKeyLayout)] = true
	}
	return set
}

func (s HolidaySet) Contains(date time.Time) bool {
	return s[date.Format(dateKeyLayout)]
}

// PreviousWorkday returns the latest date strictly before the given date that
// is neither a weekend nor in the holiday set. It gives up after maxLookback
// days, which only happens with broken holiday data.
func PreviousWorkday(date time.Time, holidays HolidaySet) (time.Time, error) {
	candidate := DateOnly(date).AddDate(0, 0, -1)
	for i := 0; i < maxLookback; i++ {
		if !IsWeekend(candidate) && !holidays.Contains(candidate) {
			return candidate, nil
		}
		candidate = candidate.AddDate(0, 0, -1)
	}
	return time.Time{}, fmt.Errorf("no working day found in the %d days before %s", maxLookback, DateOnly(date).Format(dateKeyLayout))
}

// WeekStart returns the Monday of the week containing the given date.
func WeekStart(t time.Time) time.Time {
	day := DateOnly(t)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

// SameDay reports whether two timestamps fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

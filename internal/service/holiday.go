package service

import (
	"time"
	"workshop-planner/internal/models"
	"workshop-planner/internal/repository"
	"workshop-planner/pkg/workdays"

	"github.com/sirupsen/logrus"
)

// HolidayCalendar is a pre-fetched, in-memory view of who is off when:
// approved per-employee holiday requests plus shop-wide team holidays.
// Building it once up front keeps the planner's inner loops free of I/O.
type HolidayCalendar struct {
	requests map[uint][]models.HolidayRequest
	team     workdays.HolidaySet
}

// IsEmployeeOff reports whether the employee must not be scheduled on the
// given date, either through an approved request or a team holiday.
func (c *HolidayCalendar) IsEmployeeOff(employeeID uint, date time.Time) bool {
	if c.team.Contains(date) {
		return true
	}
	for _, req := range c.requests[employeeID] {
		if req.Covers(date) {
			return true
		}
	}
	return false
}

// IsTeamHoliday reports whether the whole team is off on the given date.
func (c *HolidayCalendar) IsTeamHoliday(date time.Time) bool {
	return c.team.Contains(date)
}

type HolidayService struct {
	requestRepo repository.HolidayRequestRepository
	holidayRepo repository.HolidayRepository
	team        string
	logger      *logrus.Logger
}

func NewHolidayService(
	requestRepo repository.HolidayRequestRepository,
	holidayRepo repository.HolidayRepository,
	team string,
) *HolidayService {
	return &HolidayService{
		requestRepo: requestRepo,
		holidayRepo: holidayRepo,
		team:        team,
		logger:      logrus.New(),
	}
}

// BuildCalendar fetches approved requests and team holidays in two reads.
func (s *HolidayService) BuildCalendar() (*HolidayCalendar, error) {
	requests, err := s.requestRepo.GetApproved()
	if err != nil {
		return nil, fetchErr("holiday requests", err)
	}

	holidays, err := s.holidayRepo.GetByTeam(s.team)
	if err != nil {
		return nil, fetchErr("team holidays", err)
	}

	byEmployee := map[uint][]models.HolidayRequest{}
	for _, req := range requests {
		byEmployee[req.EmployeeID] = append(byEmployee[req.EmployeeID], req)
	}

	dates := make([]time.Time, 0, len(holidays))
	for _, h := range holidays {
		dates = append(dates, h.Date)
	}

	s.logger.WithFields(logrus.Fields{
		"approved_requests": len(requests),
		"team_holidays":     len(holidays),
		"team":              s.team,
	}).Debug("Built holiday calendar")

	return &HolidayCalendar{
		requests: byEmployee,
		team:     workdays.NewHolidaySet(dates),
	}, nil
}

// EmptyCalendar is the fail-open fallback when the calendar cannot be built:
// nobody is treated as off.
func EmptyCalendar() *HolidayCalendar {
	return &HolidayCalendar{
		requests: map[uint][]models.HolidayRequest{},
		team:     workdays.HolidaySet{},
	}
}

package service

import (
	"time"
	"workshop-planner/internal/models"
	"workshop-planner/internal/repository"
	"workshop-planner/pkg/workdays"

	"github.com/sirupsen/logrus"
)

// ProjectLoadingDate annotates a project with the day its truck has to be
// loaded: the latest working day strictly before the installation date.
type ProjectLoadingDate struct {
	Project     models.Project
	LoadingDate time.Time
}

type LoadingDateService struct {
	projectRepo repository.ProjectRepository
	holidayRepo repository.HolidayRepository
	team        string
	logger      *logrus.Logger
}

func NewLoadingDateService(
	projectRepo repository.ProjectRepository,
	holidayRepo repository.HolidayRepository,
	team string,
) *LoadingDateService {
	return &LoadingDateService{
		projectRepo: projectRepo,
		holidayRepo: holidayRepo,
		team:        team,
		logger:      logrus.New(),
	}
}

// CalculateLoadingDate walks back from the installation date, skipping
// weekends and team holidays.
func (s *LoadingDateService) CalculateLoadingDate(installationDate time.Time) (time.Time, error) {
	holidays, err := s.teamHolidaySet()
	if err != nil {
		return time.Time{}, err
	}
	return s.calculate(installationDate, holidays)
}

func (s *LoadingDateService) calculate(installationDate time.Time, holidays workdays.HolidaySet) (time.Time, error) {
	loadingDate, err := workdays.PreviousWorkday(installationDate, holidays)
	if err != nil {
		return time.Time{}, configErr("cannot determine loading date for installation on %s: %v",
			installationDate.Format("2006-01-02"), err)
	}
	return loadingDate, nil
}

// ProjectLoadingDates annotates every active project with its loading date.
func (s *LoadingDateService) ProjectLoadingDates() ([]ProjectLoadingDate, error) {
	projects, err := s.projectRepo.GetActive()
	if err != nil {
		return nil, fetchErr("projects", err)
	}

	holidays, err := s.teamHolidaySet()
	if err != nil {
		return nil, err
	}

	annotated := make([]ProjectLoadingDate, 0, len(projects))
	for _, project := range projects {
		loadingDate, err := s.calculate(project.InstallationDate, holidays)
		if err != nil {
			return nil, err
		}
		annotated = append(annotated, ProjectLoadingDate{
			Project:     project,
			LoadingDate: loadingDate,
		})
	}

	s.logger.WithField("projects", len(annotated)).Debug("Calculated loading dates")
	return annotated, nil
}

// WeekOverview buckets active projects into the Monday-Friday days of the
// week containing weekStart, keyed by loading date.
func (s *LoadingDateService) WeekOverview(weekStart time.Time) (map[time.Time][]ProjectLoadingDate, error) {
	annotated, err := s.ProjectLoadingDates()
	if err != nil {
		return nil, err
	}

	monday := workdays.WeekStart(weekStart)
	overview := map[time.Time][]ProjectLoadingDate{}
	for i := 0; i < 5; i++ {
		day := monday.AddDate(0, 0, i)
		for _, pld := range annotated {
			if workdays.SameDay(pld.LoadingDate, day) {
				overview[day] = append(overview[day], pld)
			}
		}
	}
	return overview, nil
}

func (s *LoadingDateService) teamHolidaySet() (workdays.HolidaySet, error) {
	holidays, err := s.holidayRepo.GetByTeam(s.team)
	if err != nil {
		return nil, fetchErr("team holidays", err)
	}
	dates := make([]time.Time, 0, len(holidays))
	for _, h := range holidays {
		dates = append(dates, h.Date)
	}
	return workdays.NewHolidaySet(dates), nil
}

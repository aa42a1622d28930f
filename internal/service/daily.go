package service

import (
	"context"
	"time"
	"workshop-planner/internal/models"
	"workshop-planner/internal/repository"
	"workshop-planner/pkg/workdays"

	"github.com/sirupsen/logrus"
)

const (
	dayPlanAnchorHour  = 8  // first assignment starts at 08:00
	dayPlanStaggerMins = 30 // each further employee starts half an hour later
)

// DayPlan is the outcome of one "plan tomorrow" run.
type DayPlan struct {
	Date    time.Time
	Entries []models.ScheduleEntry
	Notice  string
}

// DailyPlanner is the lightweight one-day sibling of the weekly Scheduler:
// it looks at what is in progress or newly unlocked today and hands the first
// N such tasks to the first N employees with a fixed 08:00 anchor and a
// 30-minute stagger. Unlike the weekly run it ignores recurring work periods
// and the holiday calendar.
type DailyPlanner struct {
	taskRepo       repository.TaskRepository
	projectRepo    repository.ProjectRepository
	employeeRepo   repository.EmployeeRepository
	depRepo        repository.DependencyRepository
	scheduleRepo   repository.ScheduleEntryRepository
	defaultMinutes int
	logger         *logrus.Logger
}

func NewDailyPlanner(
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	employeeRepo repository.EmployeeRepository,
	depRepo repository.DependencyRepository,
	scheduleRepo repository.ScheduleEntryRepository,
	defaultMinutes int,
) *DailyPlanner {
	return &DailyPlanner{
		taskRepo:       taskRepo,
		projectRepo:    projectRepo,
		employeeRepo:   employeeRepo,
		depRepo:        depRepo,
		scheduleRepo:   scheduleRepo,
		defaultMinutes: defaultMinutes,
		logger:         logrus.New(),
	}
}

// PlanTomorrow assigns continuing tasks first, then tasks unlocked by
// actually completed prerequisites, replacing any auto-generated entries
// already stored for tomorrow. Only tasks in active projects are considered:
// leftover open tasks under a completed project stay off the plan.
func (p *DailyPlanner) PlanTomorrow(ctx context.Context, now time.Time) (*DayPlan, error) {
	tomorrow := workdays.DateOnly(now).AddDate(0, 0, 1)

	tasks, err := p.taskRepo.GetOpen()
	if err != nil {
		return nil, fetchErr("tasks", err)
	}
	projects, err := p.projectRepo.GetActive()
	if err != nil {
		return nil, fetchErr("projects", err)
	}
	deps, err := p.depRepo.GetAll()
	if err != nil {
		return nil, fetchErr("task dependencies", err)
	}
	employees, err := p.employeeRepo.GetAll()
	if err != nil {
		return nil, fetchErr("employees", err)
	}

	activeProjects := map[uint]bool{}
	for _, project := range projects {
		activeProjects[project.ID] = true
	}

	graph := NewDependencyGraph(deps, tasks)

	// Continuations before newly unlocked work.
	var picks []*models.Task
	for i := range tasks {
		t := &tasks[i]
		if t.Status == models.TaskStatusInProgress && activeProjects[t.ProjectID()] {
			picks = append(picks, t)
		}
	}
	for i := range tasks {
		t := &tasks[i]
		if t.Status == models.TaskStatusHold && activeProjects[t.ProjectID()] && graph.IsUnlocked(t, nil) {
			picks = append(picks, t)
		}
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	n := len(picks)
	if n > len(employees) {
		n = len(employees)
	}

	entries := make([]models.ScheduleEntry, 0, n)
	anchor := tomorrow.Add(dayPlanAnchorHour * time.Hour)
	for i := 0; i < n; i++ {
		task := picks[i]
		start := anchor.Add(time.Duration(i*dayPlanStaggerMins) * time.Minute)
		end := start.Add(time.Duration(p.taskMinutes(task)) * time.Minute)

		phaseID := task.PhaseID
		taskID := task.ID
		entries = append(entries, models.ScheduleEntry{
			EmployeeID:      employees[i].ID,
			TaskID:          &taskID,
			PhaseID:         &phaseID,
			Title:           task.Title,
			Description:     task.Description,
			StartTime:       start,
			EndTime:         end,
			IsAutoGenerated: true,
		})
	}

	if err := p.scheduleRepo.ReplaceAutoGenerated(tomorrow, tomorrow.AddDate(0, 0, 1), entries); err != nil {
		return nil, err
	}

	plan := &DayPlan{Date: tomorrow, Entries: entries}
	if len(entries) == 0 {
		plan.Notice = "nothing to plan for tomorrow"
		p.logger.Info("Daily run produced no entries")
	} else {
		p.logger.WithFields(logrus.Fields{
			"date":    tomorrow.Format("2006-01-02"),
			"entries": len(entries),
		}).Info("Tomorrow's schedule stored")
	}
	return plan, nil
}

func (p *DailyPlanner) taskMinutes(task *models.Task) int {
	if task.DurationMinutes > 0 {
		return task.DurationMinutes
	}
	if task.StandardTask != nil && task.StandardTask.DefaultDurationMinutes > 0 {
		return task.StandardTask.DefaultDurationMinutes
	}
	return p.defaultMinutes
}

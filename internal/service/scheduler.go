package service

import (
	"context"
	"sort"
	"time"
	"workshop-planner/internal/models"
	"workshop-planner/internal/repository"
	"workshop-planner/pkg/workdays"

	"github.com/sirupsen/logrus"
)

type SchedulerOptions struct {
	// HolidayFailClosed aborts the run when the holiday calendar cannot be
	// built. The default (false) logs the failure and plans as if nobody
	// were on holiday.
	HolidayFailClosed bool
}

// WeekPlan is the outcome of one weekly planning run.
type WeekPlan struct {
	WeekStart time.Time
	Entries   []models.ScheduleEntry
	Notice    string
}

// Scheduler produces the weekly task-to-employee assignment: a greedy pass
// over Monday-Friday, work period by work period, employee by employee,
// picking the highest-priority open task that fits the employee's
// workstation. Auto-generated entries for the week are replaced wholesale;
// manual entries survive.
type Scheduler struct {
	taskRepo     repository.TaskRepository
	employeeRepo repository.EmployeeRepository
	periodRepo   repository.WorkPeriodRepository
	depRepo      repository.DependencyRepository
	scheduleRepo repository.ScheduleEntryRepository
	holidays     *HolidayService
	opts         SchedulerOptions
	logger       *logrus.Logger
}

func NewScheduler(
	taskRepo repository.TaskRepository,
	employeeRepo repository.EmployeeRepository,
	periodRepo repository.WorkPeriodRepository,
	depRepo repository.DependencyRepository,
	scheduleRepo repository.ScheduleEntryRepository,
	holidays *HolidayService,
	opts SchedulerOptions,
) *Scheduler {
	return &Scheduler{
		taskRepo:     taskRepo,
		employeeRepo: employeeRepo,
		periodRepo:   periodRepo,
		depRepo:      depRepo,
		scheduleRepo: scheduleRepo,
		holidays:     holidays,
		opts:         opts,
		logger:       logrus.New(),
	}
}

// bookedSlot guards against double-booking an employee within one run.
type bookedSlot struct {
	employeeID uint
	start      int64
}

// GenerateWeek plans the business week containing weekStart. All reads and
// the whole simulation happen before the destructive replace of the week's
// auto-generated entries, so a failed run leaves the stored schedule as it
// was.
func (s *Scheduler) GenerateWeek(ctx context.Context, weekStart time.Time) (*WeekPlan, error) {
	monday := workdays.WeekStart(weekStart)
	weekEnd := monday.AddDate(0, 0, 5) // exclusive, Saturday

	s.logger.WithField("week_start", monday.Format("2006-01-02")).Info("Generating weekly schedule")

	tasks, err := s.taskRepo.GetOpen()
	if err != nil {
		return nil, fetchErr("tasks", err)
	}
	employees, err := s.employeeRepo.GetAll()
	if err != nil {
		return nil, fetchErr("employees", err)
	}
	periods, err := s.periodRepo.GetAll()
	if err != nil {
		return nil, fetchErr("work periods", err)
	}
	deps, err := s.depRepo.GetAll()
	if err != nil {
		return nil, fetchErr("task dependencies", err)
	}

	periodsByDay := map[int][]models.WorkPeriod{}
	for _, p := range periods {
		periodsByDay[p.DayOfWeek] = append(periodsByDay[p.DayOfWeek], p)
	}
	if !anyBusinessDayPeriods(periodsByDay) {
		return nil, configErr("no work periods defined for any business day")
	}

	calendar, err := s.holidays.BuildCalendar()
	if err != nil {
		if s.opts.HolidayFailClosed {
			return nil, err
		}
		s.logger.WithError(err).Warn("Holiday calendar unavailable, planning without holiday data")
		calendar = EmptyCalendar()
	}

	graph := NewDependencyGraph(deps, tasks)

	pool := make([]*models.Task, 0, len(tasks))
	for i := range tasks {
		pool = append(pool, &tasks[i])
	}

	var entries []models.ScheduleEntry
	assigned := map[uint]bool{}  // task ids handed out this run
	completed := map[uint]bool{} // simulated completions for dependency unlocks
	booked := map[bookedSlot]bool{}

	for i := 0; i < 5; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		day := monday.AddDate(0, 0, i)
		dayEntries, err := s.scheduleDay(day, periodsByDay[int(day.Weekday())], employees, pool, graph, calendar, assigned, completed, booked)
		if err != nil {
			return nil, err
		}
		entries = append(entries, dayEntries...)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if err := s.scheduleRepo.ReplaceAutoGenerated(monday, weekEnd, entries); err != nil {
		return nil, err
	}

	plan := &WeekPlan{WeekStart: monday, Entries: entries}
	if len(entries) == 0 {
		plan.Notice = "no schedulable tasks this week"
		s.logger.Info("Weekly run produced no entries")
	} else {
		s.logger.WithField("entries", len(entries)).Info("Weekly schedule stored")
	}
	return plan, nil
}

// scheduleDay fills one day's work periods. The candidate list is fixed at
// the start of the day, so a task scheduled during the day can unlock its
// dependents no earlier than the following day.
func (s *Scheduler) scheduleDay(
	day time.Time,
	periods []models.WorkPeriod,
	employees []models.Employee,
	pool []*models.Task,
	graph *DependencyGraph,
	calendar *HolidayCalendar,
	assigned map[uint]bool,
	completed map[uint]bool,
	booked map[bookedSlot]bool,
) ([]models.ScheduleEntry, error) {
	if len(periods) == 0 {
		return nil, nil
	}

	sort.SliceStable(periods, func(i, j int) bool {
		return periods[i].StartTime < periods[j].StartTime
	})

	candidates := make([]*models.Task, 0, len(pool))
	for _, t := range pool {
		if assigned[t.ID] {
			continue
		}
		if graph.Schedulable(t, completed) {
			candidates = append(candidates, t)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].PriorityRank() != candidates[j].PriorityRank() {
			return candidates[i].PriorityRank() < candidates[j].PriorityRank()
		}
		return candidates[i].DueDate.Before(candidates[j].DueDate)
	})

	var entries []models.ScheduleEntry
	for _, period := range periods {
		start, end, err := period.Window(day)
		if err != nil {
			return nil, configErr("unusable work period: %v", err)
		}

		for ei := range employees {
			emp := &employees[ei]
			if calendar.IsEmployeeOff(emp.ID, day) {
				continue
			}
			slot := bookedSlot{employeeID: emp.ID, start: start.Unix()}
			if booked[slot] {
				continue
			}

			picked := -1
			for ci, task := range candidates {
				if task.Workstation == "" || emp.WorksAt(task.Workstation) {
					picked = ci
					break
				}
			}
			if picked < 0 {
				continue
			}

			task := candidates[picked]
			candidates = append(candidates[:picked], candidates[picked+1:]...)
			assigned[task.ID] = true
			completed[task.ID] = true
			booked[slot] = true

			phaseID := task.PhaseID
			taskID := task.ID
			entries = append(entries, models.ScheduleEntry{
				EmployeeID:      emp.ID,
				TaskID:          &taskID,
				PhaseID:         &phaseID,
				Title:           task.Title,
				Description:     task.Description,
				StartTime:       start,
				EndTime:         end,
				IsAutoGenerated: true,
			})
		}
	}
	return entries, nil
}

func anyBusinessDayPeriods(periodsByDay map[int][]models.WorkPeriod) bool {
	for dow := int(time.Monday); dow <= int(time.Friday); dow++ {
		if len(periodsByDay[dow]) > 0 {
			return true
		}
	}
	return false
}

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
	"workshop-planner/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday, so the generated week is 2024-06-10 .. 2024-06-14.
var testMonday = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

type schedFixture struct {
	tasks    *fakeTaskRepo
	emps     *fakeEmployeeRepo
	periods  *fakePeriodRepo
	deps     *fakeDependencyRepo
	store    *fakeScheduleRepo
	holidays *fakeHolidayRepo
	requests *fakeHolidayRequestRepo
	sched    *Scheduler
}

func newSchedFixture(opts SchedulerOptions) *schedFixture {
	f := &schedFixture{
		tasks:    &fakeTaskRepo{},
		emps:     &fakeEmployeeRepo{},
		periods:  &fakePeriodRepo{},
		deps:     &fakeDependencyRepo{},
		store:    &fakeScheduleRepo{},
		holidays: &fakeHolidayRepo{},
		requests: &fakeHolidayRequestRepo{},
	}
	holidayService := NewHolidayService(f.requests, f.holidays, models.TeamProduction)
	f.sched = NewScheduler(f.tasks, f.emps, f.periods, f.deps, f.store, holidayService, opts)
	return f
}

func (f *schedFixture) addBusinessWeekPeriods(windows ...[2]string) {
	if len(windows) == 0 {
		windows = [][2]string{{"08:00", "12:00"}, {"12:30", "16:30"}}
	}
	for dow := int(time.Monday); dow <= int(time.Friday); dow++ {
		for _, w := range windows {
			f.periods.periods = append(f.periods.periods, models.WorkPeriod{
				DayOfWeek: dow, StartTime: w[0], EndTime: w[1],
			})
		}
	}
}

func (f *schedFixture) addEmployees(names ...string) {
	for i, name := range names {
		f.emps.employees = append(f.emps.employees, models.Employee{ID: uint(i + 1), Name: name})
	}
}

func taskInProject(id uint, title string, status, priority string, projectID uint, stdID uint) models.Task {
	t := models.Task{
		ID:       id,
		Title:    title,
		Status:   status,
		Priority: priority,
		DueDate:  testMonday.AddDate(0, 0, 10),
		PhaseID:  projectID * 10,
		Phase:    &models.Phase{ID: projectID * 10, ProjectID: projectID},
	}
	if stdID != 0 {
		t.StandardTaskID = &stdID
	}
	return t
}

func TestGenerateWeekNoDoubleBooking(t *testing.T) {
	f := newSchedFixture(SchedulerOptions{})
	f.addBusinessWeekPeriods()
	f.addEmployees("Anna", "Ben")
	for i := uint(1); i <= 30; i++ {
		f.tasks.tasks = append(f.tasks.tasks, taskInProject(i, fmt.Sprintf("task %d", i), models.TaskStatusTodo, models.PriorityMedium, 1, 0))
	}

	plan, err := f.sched.GenerateWeek(context.Background(), testMonday)
	require.NoError(t, err)
	require.NotEmpty(t, plan.Entries)

	seen := map[string]bool{}
	for _, e := range plan.Entries {
		key := fmt.Sprintf("%d@%s", e.EmployeeID, e.StartTime.Format(time.RFC3339))
		assert.False(t, seen[key], "employee %d double-booked at %s", e.EmployeeID, e.StartTime)
		seen[key] = true
	}
	// 2 employees x 2 periods x 5 days, more tasks than slots.
	assert.Len(t, plan.Entries, 20)
}

func TestGenerateWeekTaskAssignedAtMostOnce(t *testing.T) {
	f := newSchedFixture(SchedulerOptions{})
	f.addBusinessWeekPeriods()
	f.addEmployees("Anna", "Ben")
	f.tasks.tasks = append(f.tasks.tasks, taskInProject(1, "solo task", models.TaskStatusTodo, models.PriorityUrgent, 1, 0))

	plan, err := f.sched.GenerateWeek(context.Background(), testMonday)
	require.NoError(t, err)
	require.Len(t, plan.Entries, 1)
}

func TestGenerateWeekHolidayExclusion(t *testing.T) {
	f := newSchedFixture(SchedulerOptions{})
	f.addBusinessWeekPeriods()
	f.addEmployees("Anna", "Ben")
	f.requests.requests = append(f.requests.requests, models.HolidayRequest{
		EmployeeID: 1,
		StartDate:  testMonday,
		EndDate:    testMonday.AddDate(0, 0, 1), // Monday and Tuesday off
		Status:     models.HolidayRequestApproved,
	})
	for i := uint(1); i <= 30; i++ {
		f.tasks.tasks = append(f.tasks.tasks, taskInProject(i, fmt.Sprintf("task %d", i), models.TaskStatusTodo, models.PriorityMedium, 1, 0))
	}

	plan, err := f.sched.GenerateWeek(context.Background(), testMonday)
	require.NoError(t, err)

	for _, e := range plan.Entries {
		if e.EmployeeID == 1 {
			day := e.StartTime.Format("2006-01-02")
			assert.NotEqual(t, "2024-06-10", day)
			assert.NotEqual(t, "2024-06-11", day)
		}
	}
}

func TestGenerateWeekTeamHolidayExcludesEveryone(t *testing.T) {
	f := newSchedFixture(SchedulerOptions{})
	f.addBusinessWeekPeriods()
	f.addEmployees("Anna", "Ben")
	f.holidays.holidays = append(f.holidays.holidays, models.Holiday{
		Date: testMonday.AddDate(0, 0, 2), // Wednesday
		Team: models.TeamProduction,
	})
	for i := uint(1); i <= 30; i++ {
		f.tasks.tasks = append(f.tasks.tasks, taskInProject(i, fmt.Sprintf("task %d", i), models.TaskStatusTodo, models.PriorityMedium, 1, 0))
	}

	plan, err := f.sched.GenerateWeek(context.Background(), testMonday)
	require.NoError(t, err)

	for _, e := range plan.Entries {
		assert.NotEqual(t, "2024-06-12", e.StartTime.Format("2006-01-02"))
	}
}

func TestGenerateWeekDependencyGating(t *testing.T) {
	f := newSchedFixture(SchedulerOptions{})
	f.addBusinessWeekPeriods()
	f.addEmployees("Anna")

	// The prerequisite needs a workstation nobody is assigned to, so it is
	// never scheduled and the hold task must stay locked all week.
	prereq := taskInProject(1, "cut panels", models.TaskStatusTodo, models.PriorityHigh, 1, 100)
	prereq.Workstation = "cnc"
	held := taskInProject(2, "edge banding", models.TaskStatusHold, models.PriorityUrgent, 1, 200)
	f.tasks.tasks = append(f.tasks.tasks, prereq, held)
	f.deps.deps = append(f.deps.deps, models.TaskDependency{StandardTaskID: 200, LimitStandardTaskID: 100})

	plan, err := f.sched.GenerateWeek(context.Background(), testMonday)
	require.NoError(t, err)

	for _, e := range plan.Entries {
		require.NotNil(t, e.TaskID)
		assert.NotEqual(t, uint(2), *e.TaskID, "locked hold task must not be scheduled")
	}
}

func TestGenerateWeekSimulatedCompletionUnlocksNextDay(t *testing.T) {
	f := newSchedFixture(SchedulerOptions{})
	f.addBusinessWeekPeriods([2]string{"08:00", "16:00"})
	f.addEmployees("Anna")

	prereq := taskInProject(1, "cut panels", models.TaskStatusTodo, models.PriorityHigh, 1, 100)
	held := taskInProject(2, "edge banding", models.TaskStatusHold, models.PriorityUrgent, 1, 200)
	f.tasks.tasks = append(f.tasks.tasks, prereq, held)
	f.deps.deps = append(f.deps.deps, models.TaskDependency{StandardTaskID: 200, LimitStandardTaskID: 100})

	plan, err := f.sched.GenerateWeek(context.Background(), testMonday)
	require.NoError(t, err)
	require.Len(t, plan.Entries, 2)

	byTask := map[uint]models.ScheduleEntry{}
	for _, e := range plan.Entries {
		byTask[*e.TaskID] = e
	}
	assert.Equal(t, "2024-06-10", byTask[1].StartTime.Format("2006-01-02"), "prerequisite runs Monday")
	assert.Equal(t, "2024-06-11", byTask[2].StartTime.Format("2006-01-02"), "dependent unlocks Tuesday, not Monday")
}

func TestGenerateWeekPriorityOrdering(t *testing.T) {
	f := newSchedFixture(SchedulerOptions{})
	f.addBusinessWeekPeriods()
	f.addEmployees("Anna")

	low := taskInProject(1, "low task", models.TaskStatusTodo, models.PriorityLow, 1, 0)
	urgent := taskInProject(2, "urgent task", models.TaskStatusTodo, models.PriorityUrgent, 1, 0)
	f.tasks.tasks = append(f.tasks.tasks, low, urgent)

	plan, err := f.sched.GenerateWeek(context.Background(), testMonday)
	require.NoError(t, err)
	require.Len(t, plan.Entries, 2)
	assert.Equal(t, uint(2), *plan.Entries[0].TaskID, "urgent task takes the first slot")
	assert.True(t, plan.Entries[0].StartTime.Before(plan.Entries[1].StartTime))
}

func TestGenerateWeekDueDateBreaksTies(t *testing.T) {
	f := newSchedFixture(SchedulerOptions{})
	f.addBusinessWeekPeriods()
	f.addEmployees("Anna")

	later := taskInProject(1, "due later", models.TaskStatusTodo, models.PriorityHigh, 1, 0)
	later.DueDate = testMonday.AddDate(0, 0, 20)
	sooner := taskInProject(2, "due sooner", models.TaskStatusTodo, models.PriorityHigh, 1, 0)
	sooner.DueDate = testMonday.AddDate(0, 0, 3)
	f.tasks.tasks = append(f.tasks.tasks, later, sooner)

	plan, err := f.sched.GenerateWeek(context.Background(), testMonday)
	require.NoError(t, err)
	require.Len(t, plan.Entries, 2)
	assert.Equal(t, uint(2), *plan.Entries[0].TaskID)
}

func TestGenerateWeekWorkstationAffinity(t *testing.T) {
	f := newSchedFixture(SchedulerOptions{})
	f.addBusinessWeekPeriods()
	f.emps.employees = []models.Employee{
		{ID: 1, Name: "Anna", Workstation: "assembly bench"},
		{ID: 2, Name: "Ben", Workstations: []models.Workstation{{ID: 1, Name: "panel saw"}}},
	}
	task := taskInProject(1, "cut panels", models.TaskStatusTodo, models.PriorityHigh, 1, 0)
	task.Workstation = "panel saw"
	f.tasks.tasks = append(f.tasks.tasks, task)

	plan, err := f.sched.GenerateWeek(context.Background(), testMonday)
	require.NoError(t, err)
	require.Len(t, plan.Entries, 1)
	assert.Equal(t, uint(2), plan.Entries[0].EmployeeID)
}

func TestGenerateWeekIdempotentReplacement(t *testing.T) {
	f := newSchedFixture(SchedulerOptions{})
	f.addBusinessWeekPeriods()
	f.addEmployees("Anna", "Ben")
	for i := uint(1); i <= 5; i++ {
		f.tasks.tasks = append(f.tasks.tasks, taskInProject(i, fmt.Sprintf("task %d", i), models.TaskStatusTodo, models.PriorityMedium, 1, 0))
	}

	first, err := f.sched.GenerateWeek(context.Background(), testMonday)
	require.NoError(t, err)
	countAfterFirst := len(f.store.entries)

	second, err := f.sched.GenerateWeek(context.Background(), testMonday)
	require.NoError(t, err)

	assert.Equal(t, countAfterFirst, len(f.store.entries), "second run replaces, never appends")
	assert.Equal(t, len(first.Entries), len(second.Entries))
}

func TestGenerateWeekManualEntriesPreserved(t *testing.T) {
	f := newSchedFixture(SchedulerOptions{})
	f.addBusinessWeekPeriods()
	f.addEmployees("Anna")
	f.tasks.tasks = append(f.tasks.tasks, taskInProject(1, "task", models.TaskStatusTodo, models.PriorityMedium, 1, 0))

	manual := models.ScheduleEntry{
		EmployeeID: 1,
		Title:      "customer visit",
		StartTime:  testMonday.Add(9 * time.Hour),
		EndTime:    testMonday.Add(10 * time.Hour),
	}
	stale := models.ScheduleEntry{
		EmployeeID:      1,
		Title:           "stale auto entry",
		StartTime:       testMonday.Add(8 * time.Hour),
		EndTime:         testMonday.Add(12 * time.Hour),
		IsAutoGenerated: true,
	}
	require.NoError(t, f.store.Create(&manual))
	require.NoError(t, f.store.Create(&stale))

	_, err := f.sched.GenerateWeek(context.Background(), testMonday)
	require.NoError(t, err)

	titles := map[string]bool{}
	for _, e := range f.store.entries {
		titles[e.Title] = true
	}
	assert.True(t, titles["customer visit"], "manual entry must survive")
	assert.False(t, titles["stale auto entry"], "old auto entries must be replaced")
}

func TestGenerateWeekFetchErrorAbortsBeforeWrite(t *testing.T) {
	f := newSchedFixture(SchedulerOptions{})
	f.addBusinessWeekPeriods()
	f.addEmployees("Anna")
	f.tasks.err = errors.New("connection refused")

	existing := models.ScheduleEntry{
		EmployeeID:      1,
		Title:           "last week's plan",
		StartTime:       testMonday.Add(8 * time.Hour),
		EndTime:         testMonday.Add(12 * time.Hour),
		IsAutoGenerated: true,
	}
	require.NoError(t, f.store.Create(&existing))

	_, err := f.sched.GenerateWeek(context.Background(), testMonday)
	require.Error(t, err)

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "tasks", fe.Resource)
	assert.Equal(t, 0, f.store.replaceCalls, "no destructive write after a failed read")
	assert.Len(t, f.store.entries, 1, "stored schedule untouched")
}

func TestGenerateWeekNoWorkPeriodsIsConfigurationError(t *testing.T) {
	f := newSchedFixture(SchedulerOptions{})
	f.addEmployees("Anna")
	f.tasks.tasks = append(f.tasks.tasks, taskInProject(1, "task", models.TaskStatusTodo, models.PriorityMedium, 1, 0))

	_, err := f.sched.GenerateWeek(context.Background(), testMonday)
	require.Error(t, err)

	var ce *ConfigurationError
	assert.ErrorAs(t, err, &ce)
	assert.Equal(t, 0, f.store.replaceCalls)
}

func TestGenerateWeekEmptyPoolIsNoticeNotError(t *testing.T) {
	f := newSchedFixture(SchedulerOptions{})
	f.addBusinessWeekPeriods()
	f.addEmployees("Anna")

	stale := models.ScheduleEntry{
		EmployeeID:      1,
		Title:           "stale auto entry",
		StartTime:       testMonday.Add(8 * time.Hour),
		EndTime:         testMonday.Add(12 * time.Hour),
		IsAutoGenerated: true,
	}
	require.NoError(t, f.store.Create(&stale))

	plan, err := f.sched.GenerateWeek(context.Background(), testMonday)
	require.NoError(t, err)
	assert.Empty(t, plan.Entries)
	assert.NotEmpty(t, plan.Notice)
	assert.Empty(t, f.store.entries, "stale auto entries still cleared")
}

func TestGenerateWeekHolidayFetchFailOpen(t *testing.T) {
	f := newSchedFixture(SchedulerOptions{})
	f.addBusinessWeekPeriods()
	f.addEmployees("Anna")
	f.requests.err = errors.New("timeout")
	f.tasks.tasks = append(f.tasks.tasks, taskInProject(1, "task", models.TaskStatusTodo, models.PriorityMedium, 1, 0))

	plan, err := f.sched.GenerateWeek(context.Background(), testMonday)
	require.NoError(t, err, "default is fail-open")
	assert.Len(t, plan.Entries, 1)
}

func TestGenerateWeekHolidayFetchFailClosed(t *testing.T) {
	f := newSchedFixture(SchedulerOptions{HolidayFailClosed: true})
	f.addBusinessWeekPeriods()
	f.addEmployees("Anna")
	f.requests.err = errors.New("timeout")
	f.tasks.tasks = append(f.tasks.tasks, taskInProject(1, "task", models.TaskStatusTodo, models.PriorityMedium, 1, 0))

	_, err := f.sched.GenerateWeek(context.Background(), testMonday)
	require.Error(t, err)

	var fe *FetchError
	assert.ErrorAs(t, err, &fe)
	assert.Equal(t, 0, f.store.replaceCalls)
}

func TestGenerateWeekCancelledContext(t *testing.T) {
	f := newSchedFixture(SchedulerOptions{})
	f.addBusinessWeekPeriods()
	f.addEmployees("Anna")
	f.tasks.tasks = append(f.tasks.tasks, taskInProject(1, "task", models.TaskStatusTodo, models.PriorityMedium, 1, 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.sched.GenerateWeek(ctx, testMonday)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, f.store.replaceCalls)
}

func TestGenerateWeekNormalizesWeekStart(t *testing.T) {
	f := newSchedFixture(SchedulerOptions{})
	f.addBusinessWeekPeriods()
	f.addEmployees("Anna")
	f.tasks.tasks = append(f.tasks.tasks, taskInProject(1, "task", models.TaskStatusTodo, models.PriorityMedium, 1, 0))

	// Wednesday of the same week.
	plan, err := f.sched.GenerateWeek(context.Background(), testMonday.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Equal(t, testMonday, plan.WeekStart)
}

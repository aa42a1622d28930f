package service

import (
	"time"
	"workshop-planner/internal/models"
)

// In-memory stand-ins for the gorm repositories. Each fake can be primed
// with an error to exercise the fetch-failure paths.

type fakeTaskRepo struct {
	tasks []models.Task
	err   error
}

func (f *fakeTaskRepo) Create(task *models.Task) error {
	f.tasks = append(f.tasks, *task)
	return nil
}

func (f *fakeTaskRepo) GetByID(id uint) (*models.Task, error) {
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			return &f.tasks[i], nil
		}
	}
	return nil, nil
}

func (f *fakeTaskRepo) GetOpen() ([]models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	var open []models.Task
	for _, t := range f.tasks {
		if t.IsOpen() {
			open = append(open, t)
		}
	}
	return open, nil
}

func (f *fakeTaskRepo) GetByStatuses(statuses []string) ([]models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Task
	for _, t := range f.tasks {
		for _, st := range statuses {
			if t.Status == st {
				out = append(out, t)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) UpdateStatus(id uint, status string) error {
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Status = status
			return nil
		}
	}
	return nil
}

type fakeEmployeeRepo struct {
	employees []models.Employee
	err       error
}

func (f *fakeEmployeeRepo) Create(employee *models.Employee) error {
	f.employees = append(f.employees, *employee)
	return nil
}

func (f *fakeEmployeeRepo) GetByID(id uint) (*models.Employee, error) {
	for i := range f.employees {
		if f.employees[i].ID == id {
			return &f.employees[i], nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) GetAll() ([]models.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.employees, nil
}

type fakePeriodRepo struct {
	periods []models.WorkPeriod
	err     error
}

func (f *fakePeriodRepo) Create(period *models.WorkPeriod) error {
	f.periods = append(f.periods, *period)
	return nil
}

func (f *fakePeriodRepo) GetAll() ([]models.WorkPeriod, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.periods, nil
}

func (f *fakePeriodRepo) GetByDay(dayOfWeek int) ([]models.WorkPeriod, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.WorkPeriod
	for _, p := range f.periods {
		if p.DayOfWeek == dayOfWeek {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeDependencyRepo struct {
	deps []models.TaskDependency
	err  error
}

func (f *fakeDependencyRepo) Create(dep *models.TaskDependency) error {
	f.deps = append(f.deps, *dep)
	return nil
}

func (f *fakeDependencyRepo) GetAll() ([]models.TaskDependency, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.deps, nil
}

type fakeHolidayRepo struct {
	holidays []models.Holiday
	err      error
}

func (f *fakeHolidayRepo) Create(holiday *models.Holiday) error {
	f.holidays = append(f.holidays, *holiday)
	return nil
}

func (f *fakeHolidayRepo) GetByTeam(team string) ([]models.Holiday, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Holiday
	for _, h := range f.holidays {
		if h.Team == team {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) IsHoliday(date time.Time, team string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, h := range f.holidays {
		if h.Team == team && h.Date.Format("2006-01-02") == date.Format("2006-01-02") {
			return true, nil
		}
	}
	return false, nil
}

type fakeHolidayRequestRepo struct {
	requests []models.HolidayRequest
	err      error
}

func (f *fakeHolidayRequestRepo) Create(request *models.HolidayRequest) error {
	f.requests = append(f.requests, *request)
	return nil
}

func (f *fakeHolidayRequestRepo) GetApproved() ([]models.HolidayRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.HolidayRequest
	for _, r := range f.requests {
		if r.IsApproved() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeHolidayRequestRepo) GetApprovedForEmployee(employeeID uint) ([]models.HolidayRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.HolidayRequest
	for _, r := range f.requests {
		if r.EmployeeID == employeeID && r.IsApproved() {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeScheduleRepo struct {
	entries      []models.ScheduleEntry
	nextID       uint
	replaceCalls int
	err          error
}

func (f *fakeScheduleRepo) Create(entry *models.ScheduleEntry) error {
	f.nextID++
	entry.ID = f.nextID
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeScheduleRepo) BulkCreate(entries []models.ScheduleEntry) error {
	for i := range entries {
		f.nextID++
		entries[i].ID = f.nextID
		f.entries = append(f.entries, entries[i])
	}
	return nil
}

func (f *fakeScheduleRepo) GetBetween(start, end time.Time) ([]models.ScheduleEntry, error) {
	var out []models.ScheduleEntry
	for _, e := range f.entries {
		if !e.StartTime.Before(start) && e.StartTime.Before(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) DeleteAutoGeneratedBetween(start, end time.Time) error {
	kept := f.entries[:0]
	for _, e := range f.entries {
		drop := e.IsAutoGenerated && !e.StartTime.Before(start) && e.StartTime.Before(end)
		if !drop {
			kept = append(kept, e)
		}
	}
	f.entries = kept
	return nil
}

func (f *fakeScheduleRepo) ReplaceAutoGenerated(start, end time.Time, entries []models.ScheduleEntry) error {
	if f.err != nil {
		return f.err
	}
	f.replaceCalls++
	if err := f.DeleteAutoGeneratedBetween(start, end); err != nil {
		return err
	}
	return f.BulkCreate(entries)
}

type fakeProjectRepo struct {
	projects []models.Project
	err      error
}

func (f *fakeProjectRepo) Create(project *models.Project) error {
	f.projects = append(f.projects, *project)
	return nil
}

func (f *fakeProjectRepo) GetByID(id uint) (*models.Project, error) {
	for i := range f.projects {
		if f.projects[i].ID == id {
			return &f.projects[i], nil
		}
	}
	return nil, nil
}

func (f *fakeProjectRepo) GetAll() ([]models.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.projects, nil
}

func (f *fakeProjectRepo) GetActive() ([]models.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Project
	for _, p := range f.projects {
		if p.IsActive() {
			out = append(out, p)
		}
	}
	return out, nil
}

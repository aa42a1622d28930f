package main

import (
	"fmt"
	"time"
	"workshop-planner/internal/models"
	"workshop-planner/pkg/workdays"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// runSeedCommand loads a small demo workshop: two cabinet projects, the usual
// template chain (cut -> edge band -> assemble -> finish), a four-person
// roster and the standard shift windows.
func runSeedCommand(cmd *cobra.Command, args []string) {
	a := newApp()
	defer a.close()

	nextMonday := workdays.WeekStart(time.Now().AddDate(0, 0, 7))

	cut := models.StandardTask{Number: 10, Name: "Cut panels", DefaultDurationMinutes: 180}
	edge := models.StandardTask{Number: 20, Name: "Edge banding", DefaultDurationMinutes: 120}
	assemble := models.StandardTask{Number: 30, Name: "Assemble carcass", DefaultDurationMinutes: 240}
	finish := models.StandardTask{Number: 40, Name: "Finish and pack", DefaultDurationMinutes: 120}
	for _, st := range []*models.StandardTask{&cut, &edge, &assemble, &finish} {
		if err := a.db.Create(st).Error; err != nil {
			logrus.WithError(err).Fatal("Failed to seed standard tasks")
		}
	}

	for _, dep := range []models.TaskDependency{
		{StandardTaskID: edge.ID, LimitStandardTaskID: cut.ID},
		{StandardTaskID: assemble.ID, LimitStandardTaskID: edge.ID},
		{StandardTaskID: finish.ID, LimitStandardTaskID: assemble.ID},
	} {
		if err := a.depRepo.Create(&dep); err != nil {
			logrus.WithError(err).Fatal("Failed to seed task dependencies")
		}
	}

	saw := models.Workstation{Name: "panel saw"}
	bander := models.Workstation{Name: "edge bander"}
	bench := models.Workstation{Name: "assembly bench"}
	for _, ws := range []*models.Workstation{&saw, &bander, &bench} {
		if err := a.db.Create(ws).Error; err != nil {
			logrus.WithError(err).Fatal("Failed to seed workstations")
		}
	}

	employees := []models.Employee{
		{Name: "Arjen", Workstations: []models.Workstation{saw}},
		{Name: "Bente", Workstations: []models.Workstation{bander}},
		{Name: "Cas", Workstations: []models.Workstation{bench}},
		{Name: "Daan", Workstations: []models.Workstation{saw, bench}},
	}
	for i := range employees {
		if err := a.employeeRepo.Create(&employees[i]); err != nil {
			logrus.WithError(err).Fatal("Failed to seed employees")
		}
	}

	// Morning and afternoon shifts, Monday through Friday.
	for dow := int(time.Monday); dow <= int(time.Friday); dow++ {
		for _, window := range [][2]string{{"07:30", "12:00"}, {"12:30", "16:30"}} {
			period := models.WorkPeriod{DayOfWeek: dow, StartTime: window[0], EndTime: window[1]}
			if err := a.periodRepo.Create(&period); err != nil {
				logrus.WithError(err).Fatal("Failed to seed work periods")
			}
		}
	}

	projects := []struct {
		name    string
		client  string
		install time.Time
	}{
		{"Kitchen De Vries", "De Vries", nextMonday.AddDate(0, 0, 14)},
		{"Wardrobe Jansen", "Jansen", nextMonday.AddDate(0, 0, 21)},
	}

	for _, p := range projects {
		project := models.Project{
			Name:             p.name,
			Client:           p.client,
			InstallationDate: p.install,
			Status:           models.ProjectStatusProduction,
		}
		if err := a.projectRepo.Create(&project); err != nil {
			logrus.WithError(err).Fatal("Failed to seed projects")
		}

		phase := models.Phase{ProjectID: project.ID, Name: "Production", Position: 1}
		if err := a.db.Create(&phase).Error; err != nil {
			logrus.WithError(err).Fatal("Failed to seed phases")
		}

		defs := []struct {
			template *models.StandardTask
			status   string
			priority string
			station  string
		}{
			{&cut, models.TaskStatusTodo, models.PriorityHigh, saw.Name},
			{&edge, models.TaskStatusHold, models.PriorityMedium, bander.Name},
			{&assemble, models.TaskStatusHold, models.PriorityMedium, bench.Name},
			{&finish, models.TaskStatusHold, models.PriorityLow, ""},
		}
		for _, def := range defs {
			templateID := def.template.ID
			task := models.Task{
				Title:           fmt.Sprintf("%s: %s", p.name, def.template.Name),
				Status:          def.status,
				Priority:        def.priority,
				DueDate:         p.install.AddDate(0, 0, -3),
				DurationMinutes: def.template.DefaultDurationMinutes,
				Workstation:     def.station,
				StandardTaskID:  &templateID,
				PhaseID:         phase.ID,
			}
			if err := a.taskRepo.Create(&task); err != nil {
				logrus.WithError(err).Fatal("Failed to seed tasks")
			}
		}
	}

	holiday := models.Holiday{
		Date: nextMonday.AddDate(0, 0, 2),
		Team: models.TeamProduction,
		Name: "Maintenance day",
	}
	if err := a.holidayRepo.Create(&holiday); err != nil {
		logrus.WithError(err).Fatal("Failed to seed holidays")
	}

	request := models.HolidayRequest{
		EmployeeID: employees[1].ID,
		StartDate:  nextMonday,
		EndDate:    nextMonday.AddDate(0, 0, 1),
		Status:     models.HolidayRequestApproved,
		Reason:     "Long weekend",
	}
	if err := a.requestRepo.Create(&request); err != nil {
		logrus.WithError(err).Fatal("Failed to seed holiday requests")
	}

	fmt.Println("Seeded demo workshop data.")
}

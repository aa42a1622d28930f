package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"
	"workshop-planner/internal/config"
	"workshop-planner/internal/repository"
	"workshop-planner/internal/service"
	"workshop-planner/pkg/workdays"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	weekStartFlag string

	rootCmd = &cobra.Command{
		Use:   "planner",
		Short: "Production planner for the workshop.",
		Long:  `Planner generates weekly and next-day task schedules for the workshop and calculates truck-loading dates for upcoming installations.`,
	}

	weekCmd = &cobra.Command{
		Use:   "week",
		Short: "Generate the schedule for a whole business week.",
		Run:   runWeekCommand,
	}

	tomorrowCmd = &cobra.Command{
		Use:   "tomorrow",
		Short: "Plan tomorrow's tasks based on today's progress.",
		Run:   runTomorrowCommand,
	}

	loadingDatesCmd = &cobra.Command{
		Use:   "loading-dates",
		Short: "Show truck-loading dates for active projects.",
		Run:   runLoadingDatesCommand,
	}

	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Load demo workshop data into the database.",
		Run:   runSeedCommand,
	}
)

func init() {
	weekCmd.Flags().StringVar(&weekStartFlag, "week-start", "", "Any date in the target week (YYYY-MM-DD), default: next Monday.")
	loadingDatesCmd.Flags().StringVar(&weekStartFlag, "week-start", "", "Any date in the target week (YYYY-MM-DD), default: this week.")

	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(tomorrowCmd)
	rootCmd.AddCommand(loadingDatesCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app bundles the wired repositories and services for one command run.
type app struct {
	db *gorm.DB

	projectRepo  repository.ProjectRepository
	taskRepo     repository.TaskRepository
	employeeRepo repository.EmployeeRepository
	periodRepo   repository.WorkPeriodRepository
	depRepo      repository.DependencyRepository
	holidayRepo  repository.HolidayRepository
	requestRepo  repository.HolidayRequestRepository
	scheduleRepo repository.ScheduleEntryRepository

	scheduler    *service.Scheduler
	dailyPlanner *service.DailyPlanner
	loadingDates *service.LoadingDateService
}

func newApp() *app {
	cfg := config.GetPlannerConfig()

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true, // SQLite limitation
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		logrus.Infof("Warning: Failed to enable foreign keys: %v", err)
	}

	a := &app{db: db}

	if a.projectRepo, err = repository.NewGormProjectRepository(db); err != nil {
		logrus.WithError(err).Fatal("Failed to create project repository")
	}
	if a.taskRepo, err = repository.NewGormTaskRepository(db); err != nil {
		logrus.WithError(err).Fatal("Failed to create task repository")
	}
	if a.employeeRepo, err = repository.NewGormEmployeeRepository(db); err != nil {
		logrus.WithError(err).Fatal("Failed to create employee repository")
	}
	if a.periodRepo, err = repository.NewGormWorkPeriodRepository(db); err != nil {
		logrus.WithError(err).Fatal("Failed to create work period repository")
	}
	if a.depRepo, err = repository.NewGormDependencyRepository(db); err != nil {
		logrus.WithError(err).Fatal("Failed to create dependency repository")
	}
	if a.holidayRepo, err = repository.NewGormHolidayRepository(db); err != nil {
		logrus.WithError(err).Fatal("Failed to create holiday repository")
	}
	if a.requestRepo, err = repository.NewGormHolidayRequestRepository(db); err != nil {
		logrus.WithError(err).Fatal("Failed to create holiday request repository")
	}
	if a.scheduleRepo, err = repository.NewGormScheduleEntryRepository(db); err != nil {
		logrus.WithError(err).Fatal("Failed to create schedule entry repository")
	}

	holidayService := service.NewHolidayService(a.requestRepo, a.holidayRepo, cfg.HolidayTeam)

	a.scheduler = service.NewScheduler(
		a.taskRepo,
		a.employeeRepo,
		a.periodRepo,
		a.depRepo,
		a.scheduleRepo,
		holidayService,
		service.SchedulerOptions{HolidayFailClosed: cfg.HolidayFailClosed},
	)
	a.dailyPlanner = service.NewDailyPlanner(
		a.taskRepo,
		a.projectRepo,
		a.employeeRepo,
		a.depRepo,
		a.scheduleRepo,
		cfg.DefaultTaskMinutes,
	)
	a.loadingDates = service.NewLoadingDateService(a.projectRepo, a.holidayRepo, cfg.HolidayTeam)

	return a
}

func (a *app) close() {
	sqlDB, err := a.db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}
}

func parseWeekStart(flag string) time.Time {
	if flag == "" {
		return workdays.WeekStart(time.Now().AddDate(0, 0, 7))
	}
	t, err := time.Parse("2006-01-02", flag)
	if err != nil {
		logrus.Fatalf("invalid --week-start %q, expected YYYY-MM-DD", flag)
	}
	return t
}

func runWeekCommand(cmd *cobra.Command, args []string) {
	a := newApp()
	defer a.close()

	plan, err := a.scheduler.GenerateWeek(context.Background(), parseWeekStart(weekStartFlag))
	if err != nil {
		logrus.WithError(err).Fatal("Weekly scheduling failed")
	}

	if plan.Notice != "" {
		fmt.Println(plan.Notice)
		return
	}

	fmt.Printf("Week of %s: %d entries\n", plan.WeekStart.Format("2006-01-02"), len(plan.Entries))
	currentDay := ""
	for _, e := range plan.Entries {
		day := e.StartTime.Format("Mon 2006-01-02")
		if day != currentDay {
			fmt.Printf("\n%s\n", day)
			currentDay = day
		}
		fmt.Printf("  %s-%s  employee %d  %s\n",
			e.StartTime.Format("15:04"), e.EndTime.Format("15:04"), e.EmployeeID, e.Title)
	}
}

func runTomorrowCommand(cmd *cobra.Command, args []string) {
	a := newApp()
	defer a.close()

	plan, err := a.dailyPlanner.PlanTomorrow(context.Background(), time.Now())
	if err != nil {
		logrus.WithError(err).Fatal("Daily planning failed")
	}

	if plan.Notice != "" {
		fmt.Println(plan.Notice)
		return
	}

	fmt.Printf("Plan for %s:\n", plan.Date.Format("Mon 2006-01-02"))
	for _, e := range plan.Entries {
		fmt.Printf("  %s-%s  employee %d  %s\n",
			e.StartTime.Format("15:04"), e.EndTime.Format("15:04"), e.EmployeeID, e.Title)
	}
}

func runLoadingDatesCommand(cmd *cobra.Command, args []string) {
	a := newApp()
	defer a.close()

	start := time.Now()
	if weekStartFlag != "" {
		start = parseWeekStart(weekStartFlag)
	}

	overview, err := a.loadingDates.WeekOverview(start)
	if err != nil {
		logrus.WithError(err).Fatal("Loading date calculation failed")
	}

	days := make([]time.Time, 0, len(overview))
	for day := range overview {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	if len(days) == 0 {
		fmt.Println("no loading dates this week")
		return
	}
	for _, day := range days {
		fmt.Printf("%s\n", day.Format("Mon 2006-01-02"))
		for _, pld := range overview[day] {
			fmt.Printf("  load truck for %q (installation %s)\n",
				pld.Project.Name, pld.Project.InstallationDate.Format("2006-01-02"))
		}
	}
}

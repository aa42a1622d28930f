package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type PlannerConfig struct {
	DatabaseURL        string
	HolidayTeam        string
	HolidayFailClosed  bool
	DefaultTaskMinutes int
}

var instance *PlannerConfig
var once sync.Once

func GetPlannerConfig() *PlannerConfig {
	once.Do(func() {
		instance = &PlannerConfig{}

		if err := godotenv.Load(); err != nil {
			logrus.Debug("no .env file found, using process environment")
		}

		instance.DatabaseURL = getEnv("DATABASE_URL", "")
		if instance.DatabaseURL == "" {
			logrus.Fatal("could not get db url")
		}

		instance.HolidayTeam = getEnv("HOLIDAY_TEAM", "production")
		instance.HolidayFailClosed = getEnvAsBool("HOLIDAY_FAIL_CLOSED", false)

		instance.DefaultTaskMinutes = int(getEnvAsInt("DEFAULT_TASK_MINUTES", 240))
		if instance.DefaultTaskMinutes <= 0 {
			logrus.Fatal("DEFAULT_TASK_MINUTES must be positive")
		}
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return int64(val)
	}

	return defaultVal
}

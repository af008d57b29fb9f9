package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/AmauryLAPEYRE/TimeTrack/app/models"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// AppConfig holds the process configuration. Salary defaults seed every
// new browser session and can be changed per session from the settings
// page.
type AppConfig struct {
	ListenAddr    string
	Timezone      string
	DefaultSalary models.SalaryConfig
}

var instance *AppConfig
var once sync.Once

// Get loads the configuration once from the environment. A missing
// .env file is not an error; defaults apply.
func Get() *AppConfig {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			logrus.Debugf("no .env file loaded: %v", err)
		}

		salary := models.DefaultSalaryConfig()
		salary.FirstName = getEnv("FIRST_NAME", "")
		salary.LastName = getEnv("LAST_NAME", "")
		salary.Company = getEnv("COMPANY", "")
		salary.ContractualHoursPerDay = getEnvAsFloat("DEFAULT_CONTRACTUAL_HOURS", salary.ContractualHoursPerDay)
		salary.WeeklyThreshold = getEnvAsFloat("DEFAULT_WEEKLY_THRESHOLD", salary.WeeklyThreshold)
		salary.SecondOvertimeThreshold = getEnvAsFloat("DEFAULT_SECOND_OVERTIME_THRESHOLD", salary.SecondOvertimeThreshold)

		instance = &AppConfig{
			ListenAddr:    getEnv("TIMETRACK_ADDR", ":3000"),
			Timezone:      getEnv("TIMETRACK_TZ", "Europe/Paris"),
			DefaultSalary: salary,
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

func getEnvAsFloat(name string, defaultVal float64) float64 {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseFloat(valStr, 64); err == nil {
		return val
	}
	return defaultVal
}

package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds every runtime setting, loaded from .env or the environment.
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	// Database
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	// Redis
	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Deepseek API, used for schedule proposals. An empty model falls back
	// to the client's default.
	DeepseekAPIKey      string `mapstructure:"DEEPSEEK_API_KEY"`
	DeepseekAPIEndpoint string `mapstructure:"DEEPSEEK_API_ENDPOINT"`
	DeepseekModel       string `mapstructure:"DEEPSEEK_MODEL"`

	// JWT
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// Schedule window overrides. Zero values fall back to the defaults in schedule.go.
	ScheduleStartHour    int `mapstructure:"SCHEDULE_START_HOUR"`
	ScheduleEndHour      int `mapstructure:"SCHEDULE_END_HOUR"`
	ScheduleMinSlotMin   int `mapstructure:"SCHEDULE_MIN_SLOT_MINUTES"`
	ScheduleDisplayStart int `mapstructure:"SCHEDULE_DISPLAY_START_HOUR"`
	ScheduleDisplayHours int `mapstructure:"SCHEDULE_DISPLAY_HOURS"`
}

// LoadConfig reads configuration from a .env file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		// The config file may be absent; env vars still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	return
}

// GetDBConnString returns the MySQL DSN.
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// GetRedisConnString returns the redis address.
func (c *Config) GetRedisConnString() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

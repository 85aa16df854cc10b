package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	BudgetCheck     BudgetCheck     `mapstructure:",squash"`
	Dayparting      Dayparting      `mapstructure:",squash"`
	DailyReset      DailyReset      `mapstructure:",squash"`
	MonthlyReset    MonthlyReset    `mapstructure:",squash"`
	ActivationSweep ActivationSweep `mapstructure:",squash"`
	SecretKey       string          `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN               string `mapstructure:"-"`
	Driver            string `mapstructure:"database_driver"`
	Password          string `mapstructure:"database_password"`
	URL               string `mapstructure:"database_url"`
	User              string `mapstructure:"database_user"`
	MaxOpenConns      int    `mapstructure:"database_max_open_conns"`
	MigrationsEnabled bool   `mapstructure:"database_migrations_enabled"`
}

type App struct {
	LogLevel string         `mapstructure:"log_level"`
	Timezone string         `mapstructure:"app_timezone"`
	Location *time.Location `mapstructure:"-"`
}

type BudgetCheck struct {
	CronSchedule string `mapstructure:"budget_check_cron"`
	Enabled      bool   `mapstructure:"budget_check_enabled"`
}

type Dayparting struct {
	CronSchedule string `mapstructure:"dayparting_cron"`
	Enabled      bool   `mapstructure:"dayparting_enabled"`
}

type DailyReset struct {
	CronSchedule string `mapstructure:"daily_reset_cron"`
	Enabled      bool   `mapstructure:"daily_reset_enabled"`
}

type MonthlyReset struct {
	CronSchedule string `mapstructure:"monthly_reset_cron"`
	Enabled      bool   `mapstructure:"monthly_reset_enabled"`
}

type ActivationSweep struct {
	CronSchedule string `mapstructure:"activation_sweep_cron"`
	Enabled      bool   `mapstructure:"activation_sweep_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/campaigns?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MIGRATIONS_ENABLED", true)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Cadência dos jobs de reconciliação
	viper.SetDefault("BUDGET_CHECK_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("BUDGET_CHECK_ENABLED", true)

	viper.SetDefault("DAYPARTING_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("DAYPARTING_ENABLED", true)

	viper.SetDefault("DAILY_RESET_CRON", "0 0 * * *") // Todos os dias à meia-noite
	viper.SetDefault("DAILY_RESET_ENABLED", true)

	viper.SetDefault("MONTHLY_RESET_CRON", "0 0 1 * *") // Primeiro dia de cada mês à meia-noite
	viper.SetDefault("MONTHLY_RESET_ENABLED", true)

	viper.SetDefault("ACTIVATION_SWEEP_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("ACTIVATION_SWEEP_ENABLED", true)

	viper.SetDefault("APP_TIMEZONE", "UTC")
	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	location, err := time.LoadLocation(config.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone inválida %q: %w", config.App.Timezone, err)
	}
	config.App.Location = location

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}

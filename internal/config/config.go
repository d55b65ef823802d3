package config

import (
	"errors"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Backup
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path     string
		LogLevel string // silent, error, warn, info
	}
	Backup struct {
		Schedule string // cron expression; empty disables scheduled backups
		Dir      string
		Format   string // yaml or markdown
	}
)

// loadEnvFile copies variables from an env file into the process
// environment. Variables that are already set win.
func loadEnvFile(path string) {
	err := godotenv.Load(path)
	if err == nil {
		log.Printf("Loaded environment from %s", path)
		return
	}
	if !errors.Is(err, fs.ErrNotExist) {
		log.Printf("WARNING: could not read %s: %v", path, err)
	}
}

func NewConfig() *Config {
	return newConfig(DefaultEnvFile)
}

func newConfig(envFile string) *Config {
	loadEnvFile(envFile)

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_log_level", "warn")
	v.SetDefault("backup_schedule", "")
	v.SetDefault("backup_dir", DefaultBackupDir)
	v.SetDefault("backup_format", "yaml")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path:     v.GetString("DATABASE_PATH"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
		Backup: Backup{
			Schedule: v.GetString("BACKUP_SCHEDULE"),
			Dir:      v.GetString("BACKUP_DIR"),
			Format:   v.GetString("BACKUP_FORMAT"),
		},
	}
}

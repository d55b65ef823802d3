package config

const (
	// DefaultDatabasePath is the catalog database file in the working directory
	DefaultDatabasePath = "./books.db"

	// DefaultBackupDir receives scheduled catalog backups
	DefaultBackupDir = "./backups"

	// DefaultEnvFile is loaded into the environment when present
	DefaultEnvFile = ".env"
)

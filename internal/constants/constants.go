package constants

const (
	AppName            = "motivnation"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/motivnation/motivnation.db"
	Version            = "v0.1.0"

	// DateFormat is the calendar date format used for check-ins and logs (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Storage keys
	KeyMembers       = "motivnation_members"
	KeyLogs          = "motivnation_logs"
	KeyCurrentMember = "motivnation_current_member"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "motivnation-"

	// Environment variables
	EnvConfig       = "MOTIVNATION_CONFIG"
	EnvDBConnection = "MOTIVNATION_DB_CONNECTION"
	EnvTimezone     = "MOTIVNATION_TZ"
	EnvDebug        = "MOTIVNATION_DEBUG"
	EnvLogLevel     = "MOTIVNATION_LOG_LEVEL"
	EnvTestPostgres = "MOTIVNATION_TEST_POSTGRES"
)

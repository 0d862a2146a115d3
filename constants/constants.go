package constants

const (
	TimestampField = "timestamp"
	CreatedAtField = "created_at"
	LevelField     = "level"
	StatusField    = "status"
	DateField      = "date"

	// timestamp rendering used by stringification and tables
	DateLayout           = "2006-01-02"
	TimestampLayout      = "2006-01-02 15:04:05"
	TimestampShortLayout = "2006-01-02 15:04"

	EnvPrefix = "LOGTRACK"
)

// configuration keys shared between viper and the command layer
const (
	ConfigFile   = "config"
	LogLevel     = "log_level"
	LogFile      = "log_file"
	Format       = "format"
	OutPath      = "out"
	NoColor      = "no_color"
	LookbackDays = "lookback_days"
	Levels       = "levels"
)

var (
	// LogLevels are the levels a lambda log record can carry, in severity order.
	LogLevels = []string{"ERROR", "WARN", "INFO", "DEBUG"}
	// DefaultLevels preselected by the logs command.
	DefaultLevels = []string{"ERROR", "WARN", "INFO"}
	// FailureStatuses are SES delivery statuses treated as errors.
	FailureStatuses = []string{"BOUNCE", "COMPLAINT"}
)

package protocol

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/songminj/logtrack/constants"
	"github.com/songminj/logtrack/utils/logger"
)

var (
	// now anchors mock feeds and "today"; replaced in tests
	now = time.Now

	config *Config
)

// NewRootCommand builds the logtrack command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "logtrack",
		Short: "Filter Lambda and SES logs, generated reports and law change reports",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("'%s' is an invalid command. Use 'logtrack --help' to display usage guide", args[0])
		},
		// Disable Cobra CLI's built-in usage and error handling
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "(Optional) YAML config file")
	flags.String("log-level", "info", "(Optional) Log level: trace, debug, info, warn, error")
	flags.String("log-file", "", "(Optional) Also write JSON logs to this rotated file")
	flags.StringP("format", "f", "table", "(Optional) Output format: table, json, jsonl, parquet")
	flags.StringP("out", "o", "", "(Optional) Output file, stdout when empty")
	flags.Bool("no-color", false, "(Optional) Disable colored output")

	rootCmd.AddCommand(
		newLogsCmd(),
		newReportsCmd(),
		newLegalCmd(),
		newFilterCmd(),
		newSchemaCmd(),
	)
	return rootCmd
}

// Execute runs the CLI with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func initConfig(cmd *cobra.Command) error {
	setDefaults()

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	flags := cmd.Flags()
	for key, flag := range map[string]string{
		constants.LogLevel: "log-level",
		constants.LogFile:  "log-file",
		constants.Format:   "format",
		constants.OutPath:  "out",
		constants.NoColor:  "no-color",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %s", flag, err)
		}
	}

	if path, _ := flags.GetString(constants.ConfigFile); path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %s", path, err)
		}
	}

	// logger reads log_level, log_file and no_color
	logger.Init()

	loaded, err := loadConfig()
	if err != nil {
		return err
	}
	config = loaded
	logger.Debugf("config resolved: format=%s lookback=%d levels=%v", config.Format, config.LookbackDays, config.Levels)
	return nil
}

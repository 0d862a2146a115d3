package protocol

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/songminj/logtrack/constants"
	"github.com/songminj/logtrack/utils"
)

// Config is the resolved configuration: flags over LOGTRACK_* environment
// variables over the config file over defaults.
type Config struct {
	LogLevel     string   `mapstructure:"log_level" validate:"oneof=trace debug info warn error"`
	LogFile      string   `mapstructure:"log_file"`
	Format       string   `mapstructure:"format" validate:"required"`
	Out          string   `mapstructure:"out"`
	NoColor      bool     `mapstructure:"no_color"`
	LookbackDays int      `mapstructure:"lookback_days" validate:"gte=0"`
	Levels       []string `mapstructure:"levels" validate:"dive,oneof=ERROR WARN INFO DEBUG"`
}

func setDefaults() {
	viper.SetDefault(constants.LogLevel, "info")
	viper.SetDefault(constants.Format, "table")
	viper.SetDefault(constants.LookbackDays, 1)
	viper.SetDefault(constants.Levels, constants.DefaultLevels)
	viper.SetDefault(constants.NoColor, false)
}

func loadConfig() (*Config, error) {
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %s", err)
	}
	if err := utils.Validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %s", err)
	}
	return config, nil
}

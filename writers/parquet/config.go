package parquet

import (
	"github.com/songminj/logtrack/utils"
)

type Config struct {
	// snappy, zstd, gzip or none
	Compression string `mapstructure:"compression" json:"compression" validate:"oneof=snappy zstd gzip none"`
	// rows buffered per WriteRows call
	BatchSize int `mapstructure:"batch_size" json:"batch_size" validate:"gte=0"`
}

func (c *Config) Validate() error {
	// Set default values if not provided
	if c.Compression == "" {
		c.Compression = "snappy"
	}
	if c.BatchSize == 0 {
		c.BatchSize = 1000
	}

	return utils.Validate(c)
}

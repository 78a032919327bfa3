package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServiceEnvironment string `envconfig:"SERVICE_ENVIRONMENT" required:"true"`
	ServiceAPIPort     string `envconfig:"SERVICE_API_PORT" default:"8080"`
	ServiceHost        string `envconfig:"SERVICE_HOST" default:"localhost:8080"`
	DataDir            string `envconfig:"DATA_DIR" default:"data"`
	SampleDataPath     string `envconfig:"SAMPLE_DATA_PATH" default:"data/sample_events.csv"`
	UploadMaxBytes     int64  `envconfig:"UPLOAD_MAX_BYTES" default:"10485760"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

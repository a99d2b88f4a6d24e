package app

import "errors"

// Config holds everything an App instance needs to run.
type Config struct {
	BuildPath  string // .hcl build description file or directory
	OutPath    string // optional JSON manifest destination
	ScriptsDir string // optional destination for generated benchmark scripts

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.BuildPath == "" {
		return nil, errors.New("BuildPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}

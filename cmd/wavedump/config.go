package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"wavedump"
)

const defaultConfigFile = "wavedump.toml"

type config struct {
	Trace traceConfig `toml:"trace"`
	Run   runConfig   `toml:"run"`
}

type traceConfig struct {
	Path      string `toml:"path"`
	Timescale string `toml:"timescale"`
}

type runConfig struct {
	Steps int `toml:"steps"`
}

func defaultConfig() config {
	return config{
		Trace: traceConfig{
			Path:      wavedump.DefaultPath,
			Timescale: "1ps",
		},
		Run: runConfig{Steps: 32},
	}
}

// loadConfig reads the TOML config at path, or defaultConfigFile if path is
// empty and the file exists. Values not present in the file keep their
// defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return cfg, nil
		}
		path = defaultConfigFile
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(err, "cannot load config "+path)
	}
	if cfg.Run.Steps < 1 {
		return cfg, errors.Errorf("%s: run.steps must be >= 1", path)
	}
	return cfg, nil
}

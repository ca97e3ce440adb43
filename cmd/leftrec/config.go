package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/leftrec/elim"
	"github.com/npillmayer/leftrec/grammar"
)

// Config holds the settings of a session.
type Config struct {
	Trace     string `toml:"trace"`
	Prompt    string `toml:"prompt"`
	Epsilon   string `toml:"epsilon"`
	MaxSuffix int    `toml:"max_suffix"`
	Table     bool   `toml:"table"`
}

func defaultConfig() Config {
	return Config{
		Trace:     "Info",
		Prompt:    "leftrec> ",
		Epsilon:   grammar.DefaultEpsilon,
		MaxSuffix: elim.DefaultMaxSuffix,
	}
}

// loadConfig reads a TOML file on top of conf. Keys missing in the file
// keep their values from conf.
func loadConfig(path string, conf Config) (Config, error) {
	if path == "" {
		return conf, nil
	}
	md, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return conf, fmt.Errorf("config file %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		tracer().Infof("config file %q: ignoring unknown keys %v", path, undecoded)
	}
	if conf.Epsilon == "" {
		return conf, fmt.Errorf("config file %q: epsilon must not be empty", path)
	}
	return conf, nil
}

func (conf Config) options() []elim.Option {
	return []elim.Option{elim.MaxSuffix(conf.MaxSuffix)}
}

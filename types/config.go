// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config node configuration, one section per module
type Config struct {
	Title   string   `toml:"Title"`
	Log     *Log     `toml:"log"`
	Store   *Store   `toml:"store"`
	Exec    *Exec    `toml:"exec"`
	Metrics *Metrics `toml:"metrics"`
}

// Log logging configuration
type Log struct {
	// debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	// empty means console only
	LogFile string `toml:"logFile"`
	// megabytes
	MaxFileSize uint32 `toml:"maxFileSize"`
	MaxBackups  uint32 `toml:"maxBackups"`
	// days
	MaxAge         uint32 `toml:"maxAge"`
	LocalTime      bool   `toml:"localTime"`
	Compress       bool   `toml:"compress"`
	CallerFile     bool   `toml:"callerFile"`
	CallerFunction bool   `toml:"callerFunction"`
}

// Store state store configuration
type Store struct {
	Name    string `toml:"name"`
	Driver  string `toml:"driver"`
	DbPath  string `toml:"dbPath"`
	DbCache int32  `toml:"dbCache"`
}

// Exec executor configuration
type Exec struct {
	// entries in the state read cache, 0 disables it
	StateCacheSize int32 `toml:"stateCacheSize"`
	// write LODB index entries after each tx
	EnableLocalIndex bool `toml:"enableLocalIndex"`
}

// Metrics metrics configuration
type Metrics struct {
	EnableMetrics bool `toml:"enableMetrics"`
	// only "log" is supported
	DataEmitMode string `toml:"dataEmitMode"`
	// seconds between two reports
	Duration int64 `toml:"duration"`
}

// NewConfig parse a toml config string, missing sections take default values
func NewConfig(cfgstring string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.Decode(cfgstring, cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	fillDefault(cfg)
	return cfg, nil
}

// MustNewConfig like NewConfig but panics, for tests and built-in strings
func MustNewConfig(cfgstring string) *Config {
	cfg, err := NewConfig(cfgstring)
	if err != nil {
		panic(err)
	}
	return cfg
}

func fillDefault(cfg *Config) {
	def := &Config{}
	if _, err := toml.Decode(cfgstring, def); err != nil {
		panic(err)
	}
	if cfg.Title == "" {
		cfg.Title = def.Title
	}
	if cfg.Log == nil {
		cfg.Log = def.Log
	}
	if cfg.Store == nil {
		cfg.Store = def.Store
	}
	if cfg.Exec == nil {
		cfg.Exec = def.Exec
	}
	if cfg.Metrics == nil {
		cfg.Metrics = def.Metrics
	}
}

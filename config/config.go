// Package config loads the settings of the nkey service from the environment
// and an optional .env file in the profile directory.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/adrg/xdg"
	"github.com/pkg/profile"
	"go-simpler.org/env"

	"nkey.mleku.dev/chk"
	"nkey.mleku.dev/config/keyvalue"
	envfile "nkey.mleku.dev/env"
	"nkey.mleku.dev/lol"
)

// C is the configuration of the nkey API server. Environment variables take
// precedence over the .env file in the profile directory, which takes
// precedence over the defaults.
type C struct {
	AppName   string  `env:"APP_NAME" default:"nkey"`
	Profile   string  `env:"PROFILE" usage:"directory holding the .env file and profiles, default is APP_NAME under the XDG config directory"`
	Listen    string  `env:"LISTEN" default:"127.0.0.1" usage:"network listen address"`
	Port      int     `env:"PORT" default:"3339" usage:"port to listen on"`
	LogLevel  string  `env:"LOG_LEVEL" default:"info" usage:"debug level: fatal error warn info debug trace"`
	RateLimit float64 `env:"RATE_LIMIT" default:"100" usage:"requests per second the API serves, 0 disables the limit"`
	RateBurst int     `env:"RATE_BURST" default:"20" usage:"requests that may arrive at once before the rate limit applies"`
	Workers   int     `env:"WORKERS" default:"0" usage:"vectors checked concurrently, 0 for one goroutine per vector"`
	Pprof     bool    `env:"PPROF" default:"false" usage:"write a CPU profile into the profile directory"`
	MemLimit  int64   `env:"MEMLIMIT" default:"250000000" usage:"set memory limit, default is 250Mb"`
}

// New loads the configuration and applies the log level and memory limit.
func New() (cfg *C, err error) {
	cfg = &C{}
	// a first pass finds the profile directory, which may itself be set in the
	// environment
	if err = env.Load(cfg, nil); chk.T(err) {
		return
	}
	if cfg.Profile == "" {
		cfg.Profile = filepath.Join(xdg.ConfigHome, cfg.AppName)
	}
	profileDir := cfg.Profile
	envPath := filepath.Join(profileDir, ".env")
	if _, err = os.Stat(envPath); err == nil {
		var e envfile.Env
		if e, err = envfile.GetEnv(envPath); chk.E(err) {
			return
		}
		if err = env.Load(cfg, &env.Options{Source: e}); chk.E(err) {
			return
		}
		if cfg.Profile == "" {
			cfg.Profile = profileDir
		}
	}
	err = nil
	lol.SetLogLevel(cfg.LogLevel)
	if cfg.MemLimit > 0 {
		debug.SetMemoryLimit(cfg.MemLimit)
	}
	return
}

// Addr is the listen address of the API server.
func (cfg *C) Addr() string { return fmt.Sprintf("%s:%d", cfg.Listen, cfg.Port) }

// EnvPath is where the .env file is read from.
func (cfg *C) EnvPath() string { return filepath.Join(cfg.Profile, ".env") }

// StartProfiler starts a CPU profile in the profile directory if PPROF is set.
// The returned function stops it and is safe to call either way.
func (cfg *C) StartProfiler() (stop func()) {
	if !cfg.Pprof {
		return func() {}
	}
	p := profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.Profile),
		profile.NoShutdownHook, profile.Quiet)
	return p.Stop
}

// PrintEnv writes the configuration as a shell script, which also reads back
// as a .env file.
func PrintEnv(cfg *C, printer io.Writer) { keyvalue.PrintEnv(*cfg, printer) }

// PrintHelp outputs a help text listing the configuration options and default
// values to a provided io.Writer (usually os.Stderr or os.Stdout).
func PrintHelp(cfg *C, printer io.Writer) {
	_, _ = fmt.Fprintf(printer,
		"Environment variables that configure %s:\n\n", cfg.AppName)
	env.Usage(cfg, printer, &env.Options{SliceSep: ","})
	_, _ = fmt.Fprintf(printer,
		"\n.env file found at the PROFILE path will be automatically loaded for "+
			"configuration.\nthe environment overrides it.\n\n"+
			"use the 'env' command to print the current configuration, and\n\n"+
			"\t%s env > %s\n\nto save it.\n", os.Args[0], cfg.EnvPath())
}

// Package config handles the setup of the command line tool.
package config

import (
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates the logger that the captured Lunar Magic output and
// operation errors are written to. Debug mode lowers the level to debug,
// quiet mode raises it to error.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

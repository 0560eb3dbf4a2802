// Package config holds process-wide settings for the engine, read from an
// optional TOML file with sane defaults applied when the file is absent.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LogLevel is the default log level (op/go-logging scale: 0=CRITICAL .. 5=DEBUG).
var LogLevel = 3

// ConfFile is the path the next Setup call reads from. Command line
// handling (in cmd/perft) overwrites this before calling Setup.
var ConfFile = "./config.toml"

// Settings is the global configuration, filled in by Setup.
var Settings conf

var initialized = false

type searchConfiguration struct {
	// QPlyMax bounds quiescence search recursion depth (plies).
	QPlyMax int
	// DeltaMargin is the centipawn margin added to a captured piece's value
	// before delta-pruning a quiescence capture.
	DeltaMargin int
}

type evalConfiguration struct {
	// Tempo is a small bonus added for the side to move.
	Tempo int
}

type logConfiguration struct {
	Level int
}

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

func defaults() conf {
	return conf{
		Log:    logConfiguration{Level: 3},
		Search: searchConfiguration{QPlyMax: 50, DeltaMargin: 200},
		Eval:   evalConfiguration{Tempo: 10},
	}
}

// Setup reads ConfFile if present and fills in any unset field with
// defaults. A missing or unparsable file is not fatal - defaults apply and
// the error is reported to stdout, matching the teacher's own tolerance for
// a missing config.toml during development.
func Setup() {
	if initialized {
		return
	}
	Settings = defaults()
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		fmt.Println("config: using defaults:", err)
		Settings = defaults()
	}
	LogLevel = Settings.Log.Level
	initialized = true
}

// Package logging is a thin helper around "github.com/op/go-logging" so
// each package in the engine can get a preconfigured module logger in a
// single line.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/georgib0y/chesscore/config"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`,
)

// GetLog returns a *logging.Logger for the given module name, backed by
// stdout and leveled from config.LogLevel as it stands at the time of the
// call. Safe to call before config.Setup(), but a logger obtained earlier
// keeps its level: a later Setup() only affects loggers obtained after it.
func GetLog(module string) *logging.Logger {
	l := logging.MustGetLogger(module)
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.LogLevel), "")
	l.SetBackend(leveled)
	return l
}

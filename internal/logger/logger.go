// Package logger provides console logging for the API server, backed by
// op/go-logging with a configurable level.
package logger

import (
	"os"

	"github.com/op/go-logging"
)

var log *logging.Logger

// Init configures the console backend. Level is parsed from the given string
// ("debug", "info", "warning", "error"); unknown values fall back to info.
func Init(level string) {
	newLogger := logging.MustGetLogger("dribbl")

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(
		`%{time:2006/01/02 15:04:05} %{level} - %{message}`,
	)
	formatted := logging.NewBackendFormatter(backend, format)

	parsed, err := logging.LogLevel(level)
	if err != nil {
		parsed = logging.INFO
	}
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(parsed, "dribbl")

	newLogger.SetBackend(leveled)
	log = newLogger
}

func ensureInit() {
	if log == nil {
		Init("info")
	}
}

func Debug(args ...any) {
	ensureInit()
	log.Debug(args...)
}

func Debugf(format string, args ...any) {
	ensureInit()
	log.Debugf(format, args...)
}

func Info(args ...any) {
	ensureInit()
	log.Info(args...)
}

func Infof(format string, args ...any) {
	ensureInit()
	log.Infof(format, args...)
}

func Warning(args ...any) {
	ensureInit()
	log.Warning(args...)
}

func Warningf(format string, args ...any) {
	ensureInit()
	log.Warningf(format, args...)
}

func Error(args ...any) {
	ensureInit()
	log.Error(args...)
}

func Errorf(format string, args ...any) {
	ensureInit()
	log.Errorf(format, args...)
}

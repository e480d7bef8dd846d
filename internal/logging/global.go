package logging

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	defaultLogger Logger
	defaultOnce   sync.Once
)

// GetLogger returns the process-wide default logger. It is lazily created
// with level "info" and text format; SetAllLogLevels adjusts it afterwards.
func GetLogger() Logger {
	defaultOnce.Do(func() {
		if defaultLogger == nil {
			defaultLogger = NewLogrusAdapterFromLogger(logrus.StandardLogger())
		}
	})
	return defaultLogger
}

// SetDefaultLogger replaces the process-wide default logger.
func SetDefaultLogger(logger Logger) {
	if logger == nil {
		return
	}
	defaultOnce.Do(func() {})
	defaultLogger = logger
}

// SetAllLogLevels sets the level on the global logrus logger, which every
// adapter created from it inherits.
func SetAllLogLevels(level logrus.Level) {
	logrus.SetLevel(level)
}

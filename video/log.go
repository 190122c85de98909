package video

import (
	"log"
	"os"
	"sync"
)

var (
	logger     *log.Logger
	loggerOnce sync.Once
	debugMode  bool
)

func init() {
	debugMode = os.Getenv("VIDSTEP_DEBUG") == "1"
}

// getLogger builds the package logger on first use so that it picks up
// whatever writer the standard logger has by then (tea.LogToFile swaps it).
func getLogger() *log.Logger {
	loggerOnce.Do(func() {
		if debugMode {
			logger = log.New(log.Writer(), "[video] ", log.LstdFlags|log.Lshortfile)
		} else {
			logger = log.New(log.Writer(), "[video] ", log.LstdFlags)
		}
	})
	return logger
}

func LogError(format string, args ...interface{}) {
	getLogger().Printf("ERROR: "+format, args...)
}

func LogWarn(format string, args ...interface{}) {
	if debugMode {
		getLogger().Printf("WARN: "+format, args...)
	}
}

func LogDebug(format string, args ...interface{}) {
	if debugMode {
		getLogger().Printf("DEBUG: "+format, args...)
	}
}

func LogInfo(format string, args ...interface{}) {
	if debugMode {
		getLogger().Printf("INFO: "+format, args...)
	}
}

// SetDebugMode enables or disables debug logging
func SetDebugMode(enabled bool) {
	debugMode = enabled
}

// DebugMode reports whether debug logging is enabled
func DebugMode() bool {
	return debugMode
}

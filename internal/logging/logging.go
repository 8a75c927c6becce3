// Package logging holds the module-wide logger shared by the public
// API and the internal packages, so SetLogger at the root redirects
// every message the module emits.
package logging

import (
	"log"
	"os"
	"sync"
)

var (
	mu     sync.RWMutex
	logger = log.New(os.Stderr, "[markdownify] ", log.LstdFlags)
)

// Logger returns the current logger.
func Logger() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetLogger replaces the current logger.
func SetLogger(l *log.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Printf writes a message through the current logger.
func Printf(format string, v ...any) {
	Logger().Printf(format, v...)
}

package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log message
type Level int

// Log levels
const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

// levelColors maps log levels to ANSI color codes
var levelColors = map[Level]string{
	DEBUG: "\033[36m", // Cyan
	INFO:  "\033[32m", // Green
	WARN:  "\033[33m", // Yellow
	ERROR: "\033[31m", // Red
}

// levelPrefixes maps log levels to fixed-width text prefixes
var levelPrefixes = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO ",
	WARN:  "WARN ",
	ERROR: "ERROR",
}

// ParseLevel converts a level name to a Level. Unknown names are an error.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return DEBUG, nil
	case "info", "":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "error":
		return ERROR, nil
	default:
		return INFO, fmt.Errorf("unknown log level %q (use debug, info, warn or error)", name)
	}
}

func (l Level) String() string {
	return strings.TrimSpace(levelPrefixes[l])
}

// Logger writes leveled, timestamped lines. It implements core.Logger, with
// Printf logging at INFO, so it can be handed to the renderer directly.
type Logger struct {
	mu        sync.Mutex
	level     Level
	logger    *log.Logger
	useColors bool
	now       func() time.Time
}

// New creates a logger writing to stdout. Colors are enabled only when
// stdout is a terminal.
func New(level Level) *Logger {
	l := NewWithWriter(level, os.Stdout)
	if fileInfo, err := os.Stdout.Stat(); err == nil && fileInfo.Mode()&os.ModeCharDevice != 0 {
		l.useColors = true
	}
	return l
}

// NewWithWriter creates an uncolored logger writing to w
func NewWithWriter(level Level, w io.Writer) *Logger {
	return &Logger{
		level:  level,
		logger: log.New(w, "", 0), // Prefix is formatted per line
		now:    time.Now,
	}
}

func (l *Logger) logf(level Level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	prefix := fmt.Sprintf("%s [%s]", l.now().Format("2006/01/02 15:04:05"), levelPrefixes[level])
	if l.useColors {
		prefix = levelColors[level] + prefix + "\033[0m"
	}

	// Progress messages carry their own newline
	message := strings.TrimRight(fmt.Sprintf(format, v...), "\n")
	l.logger.Println(prefix, message)
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.logf(DEBUG, format, v...)
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, v ...interface{}) {
	l.logf(INFO, format, v...)
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.logf(WARN, format, v...)
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.logf(ERROR, format, v...)
}

// Printf logs at INFO
func (l *Logger) Printf(format string, v ...interface{}) {
	l.logf(INFO, format, v...)
}

// SetLevel changes the minimum level that is written
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the current minimum level
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// EnableColors enables or disables colored output
func (l *Logger) EnableColors(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.useColors = enable
}

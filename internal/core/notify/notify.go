// Package notify defines the user-facing messages the editor and the CLI
// report: saved files, exports, structural edits, and failures.
package notify

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// LogLevel maps the level onto the logger's.
func (l Level) LogLevel() zerolog.Level {
	switch l {
	case LevelError:
		return zerolog.ErrorLevel
	case LevelWarning:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// Notification represents a single notification event.
type Notification struct {
	Level     Level
	Message   string
	CreatedAt time.Time
}

// Infof builds an info-level notification.
func Infof(format string, args ...any) Notification {
	return Notification{Level: LevelInfo, Message: fmt.Sprintf(format, args...)}
}

// Warnf builds a warning-level notification.
func Warnf(format string, args ...any) Notification {
	return Notification{Level: LevelWarning, Message: fmt.Sprintf(format, args...)}
}

// Errorf builds an error-level notification.
func Errorf(format string, args ...any) Notification {
	return Notification{Level: LevelError, Message: fmt.Sprintf(format, args...)}
}

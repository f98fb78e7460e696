package notify

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	assert.Equal(t, Notification{Level: LevelInfo, Message: "Saved to a.yaml"}, Infof("Saved to %s", "a.yaml"))
	assert.Equal(t, Notification{Level: LevelWarning, Message: "8 subdivisions"}, Warnf("%d subdivisions", 8))
	assert.Equal(t, Notification{Level: LevelError, Message: "boom"}, Errorf("boom"))
}

func TestLevel_LogLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, LevelInfo.LogLevel())
	assert.Equal(t, zerolog.WarnLevel, LevelWarning.LogLevel())
	assert.Equal(t, zerolog.ErrorLevel, LevelError.LogLevel())
	assert.Equal(t, zerolog.InfoLevel, Level("").LogLevel())
}

package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/hay-kot/leadsheet/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "leadsheet", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/leadsheet/leadsheet.log
// On Linux: $XDG_STATE_HOME/leadsheet/leadsheet.log (defaults to ~/.local/state/leadsheet/leadsheet.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "leadsheet", "leadsheet.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "leadsheet", "leadsheet.log")
	}

	return filepath.Join(home, ".local", "state", "leadsheet", "leadsheet.log")
}

// config returns the loaded config, or the defaults when commands run
// without the root Before hook.
func (f *Flags) config() *config.Config {
	if f.Config == nil {
		cfg := config.DefaultConfig()
		f.Config = &cfg
	}
	return f.Config
}

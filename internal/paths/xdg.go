// Package paths resolves the stackup config directory following XDG conventions.
package paths

import (
	"path/filepath"
	"runtime"
)

const appName = "stackup"

// ConfigDirEnv overrides the config directory when set.
const ConfigDirEnv = "STACKUP_CONFIG_DIR"

// Env is the interface for environment variable lookups.
// Implementations must return "" for unset variables.
type Env interface {
	Get(key string) string
}

// ConfigDir computes the config directory.
//
// Resolution order:
//  1. STACKUP_CONFIG_DIR (if set)
//  2. macOS: ~/Library/Preferences/stackup
//  3. XDG_CONFIG_HOME/stackup (if set)
//  4. ~/.config/stackup
//
// homeDir must be absolute. Does not touch the filesystem.
// ~ inside env vars is treated as literal (not expanded).
func ConfigDir(env Env, homeDir string) string {
	return ConfigDirWithOS(env, homeDir, IsDarwin())
}

// IsDarwin returns true if the current OS is macOS.
func IsDarwin() bool {
	return runtime.GOOS == "darwin"
}

// ConfigDirWithOS is like ConfigDir but accepts an explicit OS flag for testing.
func ConfigDirWithOS(env Env, homeDir string, isDarwin bool) string {
	if v := env.Get(ConfigDirEnv); v != "" {
		return v
	}
	if isDarwin {
		return filepath.Join(homeDir, "Library", "Preferences", appName)
	}
	if v := env.Get("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, appName)
	}
	return filepath.Join(homeDir, ".config", appName)
}

package config

import (
	"errors"
	"path/filepath"
)

// ErrNoHomeDir is returned by CacheRoot when the cache root falls back to the
// home directory and none is known.
var ErrNoHomeDir = errors.New("no home directory to derive the cache root from")

// CacheEnv carries the environment variables that can relocate the cache root.
type CacheEnv struct {
	XDGCacheHome string // XDG_CACHE_HOME, honoured outside Windows
	LocalAppData string // LOCALAPPDATA, honoured on Windows
}

// CacheRoot returns the OS-conventional cache directory for goos.
// Empty variables count as unset. home is only consulted when the
// environment does not name the cache root.
func CacheRoot(goos string, env CacheEnv, home string) (string, error) {
	if goos == "windows" {
		if env.LocalAppData != "" {
			return env.LocalAppData, nil
		}
		return homeSubdir(home, "AppData", "Local")
	}

	if env.XDGCacheHome != "" {
		return env.XDGCacheHome, nil
	}
	return homeSubdir(home, ".cache")
}

func homeSubdir(home string, elem ...string) (string, error) {
	if home == "" {
		return "", ErrNoHomeDir
	}
	return filepath.Join(append([]string{home}, elem...)...), nil
}

// ConfigFilePath returns the default launcher config file under the user
// config directory.
func ConfigFilePath(userConfigDir string) string {
	return filepath.Join(userConfigDir, AppName, "launcher.lua")
}

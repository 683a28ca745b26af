package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// dataSubdir keeps analytics where earlier releases wrote them.
const dataSubdir = "rustui"

// DefaultDataDir returns the per-user data directory:
//
//	Linux:   $XDG_DATA_HOME/pomo/rustui or ~/.local/share/pomo/rustui
//	macOS:   ~/Library/Application Support/pomo/rustui
//	Windows: %APPDATA%\pomo\data\rustui
func DefaultDataDir() (string, error) {
	return dataDirFor(runtime.GOOS, os.Getenv, os.UserHomeDir)
}

func dataDirFor(goos string, getenv func(string) string, home func() (string, error)) (string, error) {
	switch goos {
	case "windows":
		appData := getenv("APPDATA")
		if appData == "" {
			return "", errors.New("resolving data dir: APPDATA is not set")
		}
		return filepath.Join(appData, appName, "data", dataSubdir), nil
	case "darwin":
		h, err := home()
		if err != nil {
			return "", fmt.Errorf("resolving data dir: %w", err)
		}
		return filepath.Join(h, "Library", "Application Support", appName, dataSubdir), nil
	default:
		if xdg := getenv("XDG_DATA_HOME"); xdg != "" && filepath.IsAbs(xdg) {
			return filepath.Join(xdg, appName, dataSubdir), nil
		}
		h, err := home()
		if err != nil {
			return "", fmt.Errorf("resolving data dir: %w", err)
		}
		return filepath.Join(h, ".local", "share", appName, dataSubdir), nil
	}
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	h, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expanding %s: %w", path, err)
	}
	return filepath.Join(h, strings.TrimPrefix(path, "~")), nil
}

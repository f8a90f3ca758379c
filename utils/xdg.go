package utils

import (
	"os"
	"path/filepath"
	"runtime"
)

func XDGHome() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("USERPROFILE")
	}
	return os.Getenv("HOME")
}

func XDGConfigHome(app string) string {
	if runtime.GOOS == "windows" {
		roaming := os.Getenv("APPDATA")
		if roaming == "" {
			roaming = filepath.Join(XDGHome(), "AppData", "Roaming")
		}
		return filepath.Join(roaming, app)
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(XDGHome(), ".config")
	}
	return filepath.Join(configHome, app)
}

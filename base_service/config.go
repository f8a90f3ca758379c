package base_service

import (
	"context"
	"errors"
	"fmt"
	. "github.com/kionell/osu-api/model"
	"github.com/kionell/osu-api/utils"
	"github.com/pelletier/go-toml/v2"
	"github.com/sethvargo/go-envconfig"
	"os"
	"path/filepath"
)

const ConfigPath = "./config.toml"

var GlobalConfig *Config

// ResolveConfigPath prefers ./config.toml and falls back to the user config directory.
func ResolveConfigPath() string {
	if _, err := os.Stat(ConfigPath); err == nil {
		return ConfigPath
	}
	userPath := filepath.Join(utils.XDGConfigHome("osu-api"), "config.toml")
	if _, err := os.Stat(userPath); err == nil {
		return userPath
	}
	return ConfigPath
}

func LoadConfig() (Config, error) {
	if GlobalConfig == nil {
		return LoadConfigFromFile(ResolveConfigPath(), nil)
	}
	return *GlobalConfig, nil
}

// LoadConfigFromFile reads the TOML file at path and applies environment overrides.
// A missing file is not an error: defaults plus environment are used.
// lookup may be nil to read the process environment.
func LoadConfigFromFile(path string, lookup envconfig.Lookuper) (Config, error) {
	config := DefaultConfig()
	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(content, &config); err != nil {
			return Config{}, fmt.Errorf("[config] failed to parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("[config] failed to read %s: %w", path, err)
	}

	err = envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &config,
		Lookuper: lookup,
	})
	if err != nil {
		return Config{}, fmt.Errorf("[config] failed to apply environment: %w", err)
	}
	return config, nil
}

func SaveConfig(config *Config, path string) error {
	content, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	err = os.WriteFile(path, content, 0644)
	if err != nil {
		return err
	}
	return nil
}

package cli

import (
	"fmt"
	"os"

	"github.com/kionell/osu-api/base_service"
	"github.com/kionell/osu-api/model"
)

// GenerateConfig writes a config with placeholder credentials. An existing file is kept.
func GenerateConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}
	config := model.DefaultConfig()
	config.Bancho = model.BanchoConfig{
		ClientId:     "your_client_id",
		ClientSecret: "your_client_secret",
		RedirectUri:  "http://localhost:8080/callback",
	}
	return base_service.SaveConfig(&config, path)
}

package cli

import (
	"strings"

	"github.com/kionell/osu-api/base_service"
	"github.com/kionell/osu-api/model"
	"github.com/kionell/osu-api/osu/factory"
	"github.com/rs/zerolog/log"
)

var logger = log.With().Str("module", "cli").Logger()

// NewFactory builds the server registry from the loaded config.
func NewFactory() (*factory.Factory, error) {
	config, err := base_service.LoadConfig()
	if err != nil {
		return nil, err
	}
	return factory.NewFromConfig(config)
}

// ServerFor returns the explicit server, or the server whose link appears in text.
// An empty result selects the factory default.
func ServerFor(f *factory.Factory, explicit string, text ...string) string {
	if explicit != "" {
		return explicit
	}
	if server, ok := f.GetServerName(strings.Join(text, " ")); ok {
		logger.Debug().Msgf("Detected %s link", server)
		return server.String()
	}
	return ""
}

func ParseMode(input string) (*model.GameMode, error) {
	if input == "" {
		return nil, nil
	}
	mode, err := model.ParseGameMode(input)
	if err != nil {
		return nil, err
	}
	return &mode, nil
}

package base_service

import "github.com/rs/zerolog"

func init() {
	config, err := LoadConfig()
	if err != nil {
		LogLevel = zerolog.InfoLevel
		return
	}
	LogLevel = zerolog.Level(config.General.LogLevel)
	EnableLogFile = config.General.LogFile
	GlobalConfig = &config
}

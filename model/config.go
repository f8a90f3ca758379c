package model

type GeneralConfig struct {
	LogLevel      int    `toml:"log_level" env:"OSU_LOG_LEVEL, overwrite"`
	LogFile       bool   `toml:"log_file"`
	DefaultServer string `toml:"default_server" env:"OSU_DEFAULT_SERVER, overwrite"`
}

type RequestConfig struct {
	// CacheTTL is in seconds.
	CacheTTL          int  `toml:"cache_ttl"`
	CacheSize         int  `toml:"cache_size"`
	RequestsPerMinute int  `toml:"requests_per_minute"`
	MaxRetries        int  `toml:"max_retries"`
	Timeout           int  `toml:"timeout"`
	Tracing           bool `toml:"tracing"`
}

type BanchoConfig struct {
	ClientId     string `toml:"client_id" env:"OSU_CLIENT_ID, overwrite"`
	ClientSecret string `toml:"client_secret" env:"OSU_CLIENT_SECRET, overwrite"`
	RedirectUri  string `toml:"redirect_uri" env:"OSU_REDIRECT_URI, overwrite"`
}

type Config struct {
	General GeneralConfig `toml:"general"`
	Request RequestConfig `toml:"request"`
	Bancho  BanchoConfig  `toml:"bancho"`
}

func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{LogLevel: 1, DefaultServer: "bancho"},
		Request: RequestConfig{
			CacheTTL:   30,
			CacheSize:  1000,
			MaxRetries: 1,
			Timeout:    30,
		},
	}
}

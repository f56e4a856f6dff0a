package config

type Config interface {
	EnvConfig
}

type EnvConfig interface {
	GetAPIBaseURL() string
	GetDefaultTenant() string
	GetDataFolder() string
	GetAppName() string
	GetEnv() string
}

type mainConfig struct {
	EnvVars
}

func New() Config {
	return mainConfig{EnvVars: NewEnvVars()}
}

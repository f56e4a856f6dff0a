package config

import (
	"os"
	"path/filepath"
)

const (
	apiURLVar  = "VETDESK_API_URL"
	tenantVar  = "VETDESK_TENANT"
	folderVar  = "VETDESK_FOLDER"
	appNameVar = "VETDESK_APP_NAME"
	configVar  = "VETDESK_CONFIG"

	defaultAPIBaseURL = "http://localhost:8000"
	defaultTenant     = "cityclinic"
)

type EnvVars struct {
	file FileVars
}

var _ EnvConfig = EnvVars{}

func NewEnvVars() EnvVars {
	return EnvVars{file: LoadFileVars(configPath())}
}

func (e EnvVars) GetAPIBaseURL() string {
	return GetEnv(apiURLVar, fallback(e.file.APIBaseURL, defaultAPIBaseURL))
}

func (e EnvVars) GetDefaultTenant() string {
	return GetEnv(tenantVar, fallback(e.file.Tenant, defaultTenant))
}

func (e EnvVars) GetDataFolder() string {
	return GetEnv(folderVar, fallback(e.file.DataFolder, defaultDataFolder()))
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "VetDesk")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}

func fallback(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func defaultDataFolder() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vetdesk"
	}
	return filepath.Join(home, ".vetdesk")
}

func configPath() string {
	if p := os.Getenv(configVar); p != "" {
		return p
	}
	return filepath.Join(defaultDataFolder(), "config.yaml")
}

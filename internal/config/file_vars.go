package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// FileVars are the optional file-backed settings. Environment variables take
// precedence over anything set here.
type FileVars struct {
	APIBaseURL string `yaml:"api_base_url"`
	Tenant     string `yaml:"tenant"`
	DataFolder string `yaml:"data_folder"`
}

// LoadFileVars reads the YAML config at path. A missing or unreadable file
// yields zero values; configuration by file is optional.
func LoadFileVars(path string) FileVars {
	var fv FileVars
	data, err := os.ReadFile(path)
	if err != nil {
		return fv
	}
	if err := yaml.Unmarshal(data, &fv); err != nil {
		return FileVars{}
	}
	return fv
}

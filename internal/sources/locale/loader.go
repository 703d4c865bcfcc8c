package locale

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and parsing of the shortcut locale yaml
type Loader struct {
	filePath string
}

// NewLoader creates a new locale loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the locale file
func (l *Loader) Load() (LocaleConfig, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return LocaleConfig{}, fmt.Errorf("failed to read locale file: %w", err)
	}

	var config LocaleConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return LocaleConfig{}, fmt.Errorf("failed to parse locale yaml: %w", err)
	}

	return config, nil
}

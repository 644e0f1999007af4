package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DomainProfile holds the tier bounds and optional message overrides for one domain
type DomainProfile struct {
	Excellent float64           `yaml:"excellent"`
	Good      float64           `yaml:"good"`
	Partial   float64           `yaml:"partial"`
	Messages  map[string]string `yaml:"messages,omitempty"`
}

// domainProfilesFile is the on-disk layout of the domain profiles file
type domainProfilesFile struct {
	Profiles map[string]DomainProfile `yaml:"profiles"`
}

// LoadDomainProfiles reads domain override profiles from a YAML file.
// An empty path is not an error; it means no overrides are configured.
func LoadDomainProfiles(path string) (map[string]DomainProfile, error) {
	if path == "" {
		return map[string]DomainProfile{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read domain profiles file %s: %w", path, err)
	}

	var file domainProfilesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse domain profiles file %s: %w", path, err)
	}

	if file.Profiles == nil {
		return map[string]DomainProfile{}, nil
	}
	return file.Profiles, nil
}

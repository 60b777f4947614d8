package config

import (
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

// Load reads and validates the configuration at path. An empty path means
// the default location; a missing file yields the defaults.
func Load(path string) (*Configuration, error) {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Configuration{}, nil
		}
		path = filepath.Join(home, ConfigurationName)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Configuration{}, nil
		}
		return nil, err
	}

	var out Configuration
	if err := yaml.UnmarshalStrict(contents, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

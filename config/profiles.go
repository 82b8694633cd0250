package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"eccli/models"
)

const profilesFileName = "profiles.yaml"

var profileConfigs map[string]*models.ProfileConfig

// LoadProfiles reads profiles.yaml from the working directory, falling
// back to the user config directory. A missing file is not an error.
func LoadProfiles() error {
	profileConfigs = make(map[string]*models.ProfileConfig)

	path := profilesFileName
	if _, err := os.Stat(path); os.IsNotExist(err) {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(configDir, "everybodycodes", profilesFileName)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed reading profiles file: %w", err)
	}

	var rawConfig map[string]*models.ProfileConfig

	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return fmt.Errorf("failed parsing profiles file: %w", err)
	}
	maps.Copy(profileConfigs, rawConfig)

	return nil
}

func GetProfile(name string) *models.ProfileConfig {
	if profile, exists := profileConfigs[name]; exists {
		return profile
	}
	return nil
}

// ApplyProfile folds the named profile onto the env config. Naming an
// unknown profile is an error; an empty name is a no-op.
func ApplyProfile(name string) error {
	if name == "" {
		return nil
	}
	profile := GetProfile(name)
	if profile == nil {
		return fmt.Errorf("unknown profile: %s", name)
	}
	profile.Apply(Env)
	return nil
}

// Package configuration provides loading and saving of the user-facing
// configuration file.
package configuration

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/kpbaks/yazi/pkg/encoding"
)

const (
	// configurationDirectoryName is the name of the configuration directory
	// within the user configuration root.
	configurationDirectoryName = "yazi"
	// configurationFileName is the name of the configuration file.
	configurationFileName = "config.yaml"
	// cacheFileName is the default name of the persisted characteristics
	// cache file.
	cacheFileName = "characteristics.yaml"
)

// Configuration represents the user-facing configuration.
type Configuration struct {
	// ShowHidden indicates whether or not listings include hidden entries by
	// default.
	ShowHidden bool `yaml:"showHidden"`
	// FollowSymlinks indicates whether or not listings resolve symbolic link
	// targets by default.
	FollowSymlinks bool `yaml:"followSymlinks"`
	// IgnorePatterns are names omitted from listings.
	IgnorePatterns []string `yaml:"ignore"`
	// CacheCapacity is the characteristics cache entry capacity.
	CacheCapacity int `yaml:"cacheCapacity"`
	// CachePath overrides the persisted cache file location.
	CachePath string `yaml:"cachePath"`
	// LogLevel is the logging level.
	LogLevel string `yaml:"logLevel"`
}

// Default returns the default configuration.
func Default() *Configuration {
	return &Configuration{
		LogLevel: "warn",
	}
}

// DefaultPath computes the default configuration file path within the user
// configuration directory.
func DefaultPath() (string, error) {
	root, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "unable to compute user configuration directory")
	}
	return filepath.Join(root, configurationDirectoryName, configurationFileName), nil
}

// EffectiveCachePath returns the persisted cache file location, falling back
// to a default beside the configuration file when unset.
func (c *Configuration) EffectiveCachePath() (string, error) {
	if c.CachePath != "" {
		return c.CachePath, nil
	}
	root, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "unable to compute user configuration directory")
	}
	return filepath.Join(root, configurationDirectoryName, cacheFileName), nil
}

// Load loads the configuration at the specified path. A non-existent file
// yields the default configuration; a malformed file (including one with
// unknown keys) yields an error.
func Load(path string) (*Configuration, error) {
	result := Default()
	if err := encoding.LoadAndUnmarshalYAML(path, result); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return result, nil
}

// Save writes the configuration atomically to the specified path, creating
// parent directories as needed.
func (c *Configuration) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Wrap(err, "unable to create configuration directory")
	}
	return encoding.MarshalAndSaveYAML(path, c)
}

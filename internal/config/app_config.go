package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/fixit/internal/utils"
)

// ErrConfigurationNotFound reports an explicitly requested configuration file that does not exist.
var ErrConfigurationNotFound = errors.New("configuration file not found")

// DefaultJobs is the number of resolution workers used when nothing is configured.
const DefaultJobs = 1

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
	HomeDirectory    string
}

// ApplicationConfiguration holds run defaults read from configuration files.
type ApplicationConfiguration struct {
	Exclude []string `mapstructure:"exclude"`
	Jobs    *int     `mapstructure:"jobs"`
	DryRun  *bool    `mapstructure:"dry_run"`
}

// LoadApplicationConfiguration loads configuration from global and local files.
// The local file overrides the global one field by field.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	homeDirectory := options.HomeDirectory
	if homeDirectory == "" {
		if resolvedHome, err := os.UserHomeDir(); err == nil {
			homeDirectory = resolvedHome
		}
	}
	if homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.GlobalConfigFileName)
		globalConfig, loadErr := loadConfigurationFromPath(globalPath, false)
		if loadErr != nil {
			return ApplicationConfiguration{}, loadErr
		}
		merged = merged.Merge(globalConfig)
	}

	localPath := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	localConfig, loadErr := loadConfigurationFromPath(localPath, options.ExplicitFilePath != "")
	if loadErr != nil {
		return ApplicationConfiguration{}, loadErr
	}
	merged = merged.Merge(localConfig)

	merged.Exclude = utils.DeduplicatePatterns(merged.Exclude)
	if merged.Jobs != nil && *merged.Jobs < 1 {
		return ApplicationConfiguration{}, fmt.Errorf("jobs must be at least 1, got %d", *merged.Jobs)
	}

	return merged, nil
}

// JobsOrDefault returns the configured worker count or DefaultJobs.
func (config ApplicationConfiguration) JobsOrDefault() int {
	if config.Jobs == nil {
		return DefaultJobs
	}
	return *config.Jobs
}

// DryRunEnabled reports whether dry-run mode is configured.
func (config ApplicationConfiguration) DryRunEnabled() bool {
	return config.DryRun != nil && *config.DryRun
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) string {
	if explicitPath != "" {
		if filepath.IsAbs(explicitPath) {
			return explicitPath
		}
		return filepath.Join(workingDirectory, explicitPath)
	}
	return filepath.Join(workingDirectory, utils.ConfigFileName)
}

func loadConfigurationFromPath(path string, required bool) (ApplicationConfiguration, error) {
	info, statErr := os.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			if required {
				return ApplicationConfiguration{}, fmt.Errorf("%w: %s", ErrConfigurationNotFound, path)
			}
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statErr)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		reader.SetConfigType("yaml")
	}
	if readErr := reader.ReadInConfig(); readErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readErr)
	}
	var config ApplicationConfiguration
	if decodeErr := reader.Unmarshal(&config); decodeErr != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeErr)
	}
	return config, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (config ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := config
	if len(override.Exclude) > 0 {
		result.Exclude = append([]string{}, utils.DeduplicatePatterns(override.Exclude)...)
	}
	if override.Jobs != nil {
		result.Jobs = cloneInt(override.Jobs)
	}
	if override.DryRun != nil {
		result.DryRun = cloneBool(override.DryRun)
	}
	return result
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func cloneInt(value *int) *int {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

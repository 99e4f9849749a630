// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/hmendes/prepdesk/internal/domain"
)

// ConfigFileName is the name of the configuration file in both the
// local and global locations.
const ConfigFileName = "prepdesk.toml"

// apiKeyEnvVar supplies the briefing API key; it is never written to
// config files.
const apiKeyEnvVar = "GEMINI_API_KEY"

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	localDir      string // Directory holding the local config (usually the cwd)
	globalConfDir string // Path to global config directory (e.g., ~/.config/prepdesk)
}

// NewLoader creates a new Loader reading the local config from dir.
func NewLoader(dir string) *Loader {
	return &Loader{
		localDir:      dir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(dir, globalConfDir string) *Loader {
	return &Loader{
		localDir:      dir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "prepdesk")
}

// defaultDBPath returns the database location used when no config sets one.
func defaultDBPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "prepdesk.db"
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "prepdesk", "prepdesk.db")
}

// Load returns the merged configuration (local + global).
// Local config takes precedence over global config, and the API key
// env var takes precedence over both.
func (l *Loader) Load() (*domain.Config, error) {
	// Load global config first
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	// Load local config
	local, err := l.LoadLocal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	// Merge: default <- global <- local (later takes precedence)
	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}

	if base.DB.Path == "" {
		base.DB.Path = defaultDBPath()
	}

	// A .env next to the local config is loaded into the process
	// environment; missing files are fine.
	_ = godotenv.Load(filepath.Join(l.localDir, ".env"))
	if key := os.Getenv(apiKeyEnvVar); key != "" {
		base.Briefing.APIKey = key
	}

	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, ConfigFileName))
}

// LoadLocal returns only the local configuration.
func (l *Loader) LoadLocal() (*domain.Config, error) {
	return l.loadFile(filepath.Join(l.localDir, ConfigFileName))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		switch section {
		case "db":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "path":
						if s, ok := v.(string); ok {
							res.DB.Path = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [db]: %s", k))
					}
				}
			}
		case "tasks":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "urgent_horizon_days":
						if n, ok := v.(int64); ok {
							res.Tasks.UrgentHorizonDays = int(n)
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [tasks]: %s", k))
					}
				}
			}
		case "briefing":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "model":
						if s, ok := v.(string); ok {
							res.Briefing.Model = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [briefing]: %s", k))
					}
				}
			}
		case "log":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "level":
						if s, ok := v.(string); ok {
							res.Log.Level = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
					}
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		DB:       base.DB,
		Tasks:    base.Tasks,
		Briefing: base.Briefing,
		Log:      base.Log,
		Warnings: append([]string{}, base.Warnings...),
	}

	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.DB.Path != "" {
		result.DB.Path = override.DB.Path
	}
	if override.Tasks.UrgentHorizonDays != 0 {
		result.Tasks.UrgentHorizonDays = override.Tasks.UrgentHorizonDays
	}
	if override.Briefing.Model != "" {
		result.Briefing.Model = override.Briefing.Model
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}

	return result
}

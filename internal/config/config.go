package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultCategory is the category new habits get when none is given.
const DefaultCategory = "general"

// Config holds the top-level habit configuration.
type Config struct {
	User   UserConfig   `toml:"user"`
	Habits HabitsConfig `toml:"habits"`
	Log    LogConfig    `toml:"log"`
	UI     UIConfig     `toml:"ui"`
}

type UserConfig struct {
	Name string `toml:"name"`
}

// HabitsConfig holds defaults applied when creating habits.
type HabitsConfig struct {
	DefaultCategory string `toml:"default_category"`
}

// LogConfig controls the rotating log file.
type LogConfig struct {
	Debug bool `toml:"debug"`
}

// UIConfig controls terminal rendering.
type UIConfig struct {
	// Color is nil when unset, which means auto-detect.
	Color *bool `toml:"color,omitempty"`
}

// ColorEnabled treats a missing value as true; auto-detection still applies.
func (u UIConfig) ColorEnabled() bool {
	if u.Color == nil {
		return true
	}
	return *u.Color
}

// CategoryOrDefault returns the configured default category, falling back to
// DefaultCategory when blank.
func (h HabitsConfig) CategoryOrDefault() string {
	if h.DefaultCategory == "" {
		return DefaultCategory
	}
	return h.DefaultCategory
}

// Paths returns standard XDG-compliant paths.
type Paths struct {
	ConfigDir  string
	DataDir    string
	StateDir   string
	LogDir     string
	ConfigFile string
	DBFile     string
}

// GetPaths returns the resolved paths, respecting XDG env vars.
func GetPaths() Paths {
	home, _ := os.UserHomeDir()

	configDir := envOr("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	dataDir := envOr("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	stateDir := envOr("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))

	habitConfig := filepath.Join(configDir, "habit")
	habitData := filepath.Join(dataDir, "habit")
	habitState := filepath.Join(stateDir, "habit")

	return Paths{
		ConfigDir:  habitConfig,
		DataDir:    habitData,
		StateDir:   habitState,
		LogDir:     filepath.Join(habitState, "logs"),
		ConfigFile: filepath.Join(habitConfig, "config.toml"),
		DBFile:     filepath.Join(habitData, "habits.db"),
	}
}

// EnsureDirs creates all required directories.
func (p Paths) EnsureDirs() error {
	dirs := []string{p.ConfigDir, p.DataDir, p.StateDir, p.LogDir}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// Load reads config from disk, returning defaults if not found.
func Load() (*Config, error) {
	paths := GetPaths()
	cfg := defaultConfig()

	data, err := os.ReadFile(paths.ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes config to disk.
func Save(cfg *Config) error {
	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return err
	}

	f, err := os.Create(paths.ConfigFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Initialized returns true if a config file has been written.
func Initialized() bool {
	paths := GetPaths()
	_, err := os.Stat(paths.ConfigFile)
	return err == nil
}

// BoolPtr returns a pointer to a bool value.
func BoolPtr(v bool) *bool {
	return &v
}

func defaultConfig() *Config {
	return &Config{
		User: UserConfig{
			Name: os.Getenv("USER"),
		},
		Habits: HabitsConfig{
			DefaultCategory: DefaultCategory,
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

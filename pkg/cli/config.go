package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

const (
	// DefaultBaseDir is the base configuration directory name
	DefaultBaseDir = ".soundbed"
	// DefaultConfigFile is the default configuration filename
	DefaultConfigFile = "config.yaml"
)

// Config is the tool configuration: a set of named mixing profiles and the
// one currently in use.
type Config struct {
	// CurrentProfile is the name of the active profile
	CurrentProfile string `yaml:"current_profile,omitempty"`

	// Profiles maps profile name to profile settings
	Profiles map[string]*Profile `yaml:"profiles,omitempty"`

	// configPath is the path to the config file
	configPath string
}

// Profile is one named mixing preset.
type Profile struct {
	// Name is the profile name
	Name string `yaml:"name"`

	// PolicyFile points at a YAML file with mixing policy overrides
	PolicyFile string `yaml:"policy_file,omitempty"`

	// BitrateKbps overrides the delivery audio bitrate (optional)
	BitrateKbps int `yaml:"bitrate_kbps,omitempty"`

	// FFmpeg overrides the ffmpeg binary path (optional)
	FFmpeg string `yaml:"ffmpeg,omitempty"`
}

// LoadConfig loads or creates the tool configuration.
func LoadConfig() (*Config, error) {
	return LoadConfigWithPath("")
}

// LoadConfigWithPath loads configuration from a custom path.
func LoadConfigWithPath(customPath string) (*Config, error) {
	var configPath string

	if customPath != "" {
		configPath = customPath
		if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
	} else {
		paths, err := NewPaths()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		if err := paths.EnsureBaseDir(); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
		configPath = paths.ConfigFile()
	}

	cfg := &Config{
		Profiles:   make(map[string]*Profile),
		configPath: configPath,
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, cfg.Save()
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]*Profile)
	}
	cfg.configPath = configPath

	return cfg, nil
}

// Save saves the configuration to disk.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Path returns the config file path.
func (c *Config) Path() string {
	return c.configPath
}

// AddProfile adds a new profile.
func (c *Config) AddProfile(name string, p *Profile) error {
	p.Name = name
	c.Profiles[name] = p
	return c.Save()
}

// DeleteProfile removes a profile.
func (c *Config) DeleteProfile(name string) error {
	if _, ok := c.Profiles[name]; !ok {
		return fmt.Errorf("profile %q not found", name)
	}
	delete(c.Profiles, name)
	if c.CurrentProfile == name {
		c.CurrentProfile = ""
	}
	return c.Save()
}

// UseProfile sets the current profile.
func (c *Config) UseProfile(name string) error {
	if _, ok := c.Profiles[name]; !ok {
		return fmt.Errorf("profile %q not found", name)
	}
	c.CurrentProfile = name
	return c.Save()
}

// GetProfile returns a specific profile.
func (c *Config) GetProfile(name string) (*Profile, error) {
	p, ok := c.Profiles[name]
	if !ok {
		return nil, fmt.Errorf("profile %q not found", name)
	}
	return p, nil
}

// ResolveProfile returns the profile by name, or the current profile if name
// is empty. With no name and no current profile it returns nil: the caller
// runs on defaults.
func (c *Config) ResolveProfile(name string) (*Profile, error) {
	if name == "" {
		if c.CurrentProfile == "" {
			return nil, nil
		}
		return c.GetProfile(c.CurrentProfile)
	}
	return c.GetProfile(name)
}

// ListProfiles returns all profile names.
func (c *Config) ListProfiles() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	return names
}

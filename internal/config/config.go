package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all bot configuration.
type Config struct {
	Server     string      `yaml:"server"`
	Port       int         `yaml:"port"`
	Nick       string      `yaml:"nick"`
	ServerName string      `yaml:"servername"`
	RealName   string      `yaml:"realname"`
	Channels   ChannelList `yaml:"channels"`
	Admins     []string    `yaml:"admins"`
	Debug      bool        `yaml:"debug"`
	Log        string      `yaml:"log"`
	Pidfile    string      `yaml:"pidfile"`
	WritePid   bool        `yaml:"write_pidfile"`
}

// ChannelList accepts either a single channel name or a sequence of
// names in the YAML source, normalized to a sequence.
type ChannelList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ChannelList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		*c = ChannelList{single}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*c = ChannelList(list)
		return nil
	}
	return errors.New("channels must be a name or a list of names")
}

// Load reads and parses a YAML configuration file and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults
	if cfg.Port == 0 {
		cfg.Port = 6667
	}
	if cfg.ServerName == "" {
		cfg.ServerName = cfg.Server
	}
	if cfg.RealName == "" {
		cfg.RealName = cfg.Nick
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first missing or inconsistent required option.
// Validation failures are fatal at setup, before any connection attempt.
func (c *Config) Validate() error {
	if c.Server == "" {
		return errors.New("server is required")
	}
	if c.Nick == "" {
		return errors.New("nick is required")
	}
	if c.Debug && c.Log == "" {
		return errors.New("debug logging is enabled but no log destination is set")
	}
	if c.WritePid && c.Pidfile == "" {
		return errors.New("pidfile writing is enabled but no pidfile path is set")
	}
	return nil
}

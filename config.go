package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	AssetsDirectory string `toml:"assets_dir"`
	SaveDirectory   string `toml:"save_dir"`
	Language        string `toml:"language"`
	Profile         string `toml:"profile"`
	Sound           bool   `toml:"sound"`
	FontPath        string `toml:"font_path"`
	Measure         string `toml:"measure"`
	LogFile         string `toml:"log_file"`
	UIStyle         string `toml:"ui_style"`
}

func defaultConfig() *Config {
	config := &Config{
		AssetsDirectory: "assets",
		Language:        "en",
		Sound:           true,
		Measure:         "cell",
		UIStyle:         "clean",
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		config.SaveDirectory = filepath.Join(homeDir, "Downloads")
	}
	return config
}

// loadConfig returns the defaults overlaid with ~/.config/synkey/config.toml.
// A missing or broken file leaves the defaults in place.
func loadConfig() *Config {
	config := defaultConfig()

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "synkey", "config.toml")
		if err := config.loadFile(configPath); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "synkey: ignoring %s: %v\n", configPath, err)
			config = defaultConfig()
		}
	}
	if logFile := os.Getenv("SYNKEY_LOG"); logFile != "" {
		config.LogFile = logFile
	}
	config.normalize(homeDir)
	return config
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func (c *Config) normalize(homeDir string) {
	c.AssetsDirectory = expandPath(c.AssetsDirectory, homeDir)
	c.SaveDirectory = expandPath(c.SaveDirectory, homeDir)
	c.FontPath = expandPath(c.FontPath, homeDir)
	c.LogFile = expandPath(c.LogFile, homeDir)

	switch strings.ToLower(c.Language) {
	case "en", "jp", "pt":
		c.Language = strings.ToLower(c.Language)
	default:
		c.Language = "en"
	}
	switch c.Measure {
	case "cell", "font":
	default:
		c.Measure = "cell"
	}
}

func expandPath(value, homeDir string) string {
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) AssetDir(name string) string {
	return filepath.Join(c.AssetsDirectory, name)
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		log.Printf("save directory %s: %v", c.SaveDirectory, err)
	}
	return filepath.Join(c.SaveDirectory, filename)
}

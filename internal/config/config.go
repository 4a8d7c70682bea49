package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultTheme      = "catppuccin-mocha"
	defaultItemWidth  = 18
	defaultItemHeight = 5
	defaultSpacing    = 2
	defaultInset      = 1
)

// Section styles understood by the catalog and the TUI.
const (
	StylePoster = "poster"
	StyleBanner = "banner"
)

type SectionConfig struct {
	Title  string `mapstructure:"title"`
	Items  int    `mapstructure:"items"`
	Paging bool   `mapstructure:"paging"`
	Style  string `mapstructure:"style"`
}

type Config struct {
	Theme       string          `mapstructure:"theme"`
	ItemWidth   int             `mapstructure:"item_width"`
	ItemHeight  int             `mapstructure:"item_height"`
	Spacing     int             `mapstructure:"spacing"`
	Inset       int             `mapstructure:"inset"`
	ShowHeaders bool            `mapstructure:"show_headers"`
	Mouse       bool            `mapstructure:"mouse"`
	LogFile     string          `mapstructure:"log_file"`
	Sections    []SectionConfig `mapstructure:"sections"`
}

func defaultSections() []SectionConfig {
	return []SectionConfig{
		{Title: "Featured", Items: 4, Paging: true, Style: StyleBanner},
		{Title: "Trending", Items: 10, Style: StylePoster},
		{Title: "New Releases", Items: 10, Style: StylePoster},
	}
}

func defaultConfig() *Config {
	return &Config{
		Theme:       defaultTheme,
		ItemWidth:   defaultItemWidth,
		ItemHeight:  defaultItemHeight,
		Spacing:     defaultSpacing,
		Inset:       defaultInset,
		ShowHeaders: true,
		Mouse:       true,
		Sections:    defaultSections(),
	}
}

// Load reads the config file at path, or searches the XDG and home config
// directories when path is empty. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	v := viper.New()
	v.SetEnvPrefix("nestview")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("theme", defaultTheme)
	v.SetDefault("item_width", defaultItemWidth)
	v.SetDefault("item_height", defaultItemHeight)
	v.SetDefault("spacing", defaultSpacing)
	v.SetDefault("inset", defaultInset)
	v.SetDefault("show_headers", true)
	v.SetDefault("mouse", true)
	v.SetDefault("log_file", "")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return decode(v, cfg)
	}

	v.SetConfigName("config")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		v.AddConfigPath(filepath.Join(xdg, "nestview"))
	}
	v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "nestview"))
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err == nil {
		return decode(v, cfg)
	}

	// fallback to TOML if yaml missing
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return decode(v, cfg)
}

func decode(v *viper.Viper, cfg *Config) (*Config, error) {
	cfg.Sections = nil
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if len(cfg.Sections) == 0 {
		cfg.Sections = defaultSections()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects sizes the layout cannot place and fills in section
// defaults.
func (c *Config) Validate() error {
	if c.ItemWidth <= 0 || c.ItemHeight <= 0 {
		return fmt.Errorf("item size %dx%d must be positive", c.ItemWidth, c.ItemHeight)
	}
	if c.Spacing < 0 || c.Inset < 0 {
		return errors.New("spacing and inset must not be negative")
	}
	for i := range c.Sections {
		s := &c.Sections[i]
		if s.Items < 0 {
			return fmt.Errorf("section %q: negative item count", s.Title)
		}
		if s.Title == "" {
			s.Title = fmt.Sprintf("Section %d", i+1)
		}
		switch s.Style {
		case "":
			s.Style = StylePoster
		case StylePoster, StyleBanner:
		default:
			return fmt.Errorf("section %q: unknown style %q", s.Title, s.Style)
		}
	}
	return nil
}

// Package config loads application settings from YAML with environment overrides.
package config

import (
	"os"
	"strconv"
	"time"

	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/plus3/starlight/log"
)

type Config struct {
	Window WindowConfig `yaml:"window"`
	Frame  FrameConfig  `yaml:"frame"`
	Log    LogConfig    `yaml:"log"`
	Debug  DebugConfig  `yaml:"debug"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type FrameConfig struct {
	// TargetFrameTime is the minimum duration of a frame. Zero runs uncapped.
	TargetFrameTime time.Duration `yaml:"target_frame_time"`
	// MaximumDeltaTime clamps the reported frame delta. Zero disables clamping.
	MaximumDeltaTime time.Duration `yaml:"maximum_delta_time"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type DebugConfig struct {
	Overlay bool `yaml:"overlay"`
}

// env mirrors the overridable settings. Fields are strings so an unset
// variable can be told apart from a zero value.
type env struct {
	Title            string `config:"STARLIGHT_WINDOW_TITLE"`
	Width            string `config:"STARLIGHT_WINDOW_WIDTH"`
	Height           string `config:"STARLIGHT_WINDOW_HEIGHT"`
	TargetFrameTime  string `config:"STARLIGHT_TARGET_FRAME_TIME"`
	MaximumDeltaTime string `config:"STARLIGHT_MAX_DELTA_TIME"`
	LogLevel         string `config:"STARLIGHT_LOG_LEVEL"`
	Overlay          string `config:"STARLIGHT_DEBUG_OVERLAY"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Starlight",
			Width:  1600,
			Height: 900,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults, applies environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, eris.Wrapf(err, "read config %s", path)
		}
		if cfg, err = Parse(data); err != nil {
			return cfg, eris.Wrapf(err, "parse config %s", path)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Parse decodes YAML over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, eris.Wrap(err, "decode yaml")
	}
	return cfg, nil
}

// ApplyEnv overrides settings from STARLIGHT_* environment variables.
func (c *Config) ApplyEnv() error {
	var overrides env
	if err := jlconfig.FromEnv().To(&overrides); err != nil {
		return eris.Wrap(err, "read environment")
	}

	if overrides.Title != "" {
		c.Window.Title = overrides.Title
	}
	if err := parseInt(overrides.Width, "STARLIGHT_WINDOW_WIDTH", &c.Window.Width); err != nil {
		return err
	}
	if err := parseInt(overrides.Height, "STARLIGHT_WINDOW_HEIGHT", &c.Window.Height); err != nil {
		return err
	}
	if err := parseDuration(overrides.TargetFrameTime, "STARLIGHT_TARGET_FRAME_TIME", &c.Frame.TargetFrameTime); err != nil {
		return err
	}
	if err := parseDuration(overrides.MaximumDeltaTime, "STARLIGHT_MAX_DELTA_TIME", &c.Frame.MaximumDeltaTime); err != nil {
		return err
	}
	if overrides.LogLevel != "" {
		c.Log.Level = overrides.LogLevel
	}
	if overrides.Overlay != "" {
		overlay, err := strconv.ParseBool(overrides.Overlay)
		if err != nil {
			return eris.Wrapf(err, "STARLIGHT_DEBUG_OVERLAY")
		}
		c.Debug.Overlay = overlay
	}
	return nil
}

func parseInt(raw, name string, dst *int) error {
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return eris.Wrapf(err, "%s", name)
	}
	*dst = v
	return nil
}

func parseDuration(raw, name string, dst *time.Duration) error {
	if raw == "" {
		return nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return eris.Wrapf(err, "%s", name)
	}
	*dst = v
	return nil
}

// Validate checks ranges and the log level name.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return eris.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Frame.TargetFrameTime < 0 {
		return eris.Errorf("target frame time %s must not be negative", c.Frame.TargetFrameTime)
	}
	if c.Frame.MaximumDeltaTime < 0 {
		return eris.Errorf("maximum delta time %s must not be negative", c.Frame.MaximumDeltaTime)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to Info.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.LevelInfo
	}
	return level
}

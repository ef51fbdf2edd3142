// Package config loads yuletide settings from defaults, a YAML file and YULETIDE_* environment variables
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/lixenwraith/yuletide/constant"
)

// DefaultPath is read when no --config flag is given; a missing file is not an error
const DefaultPath = "yuletide.yml"

const envPrefix = "YULETIDE_"

// Config is the top-level configuration, corresponding to yuletide.yml
type Config struct {
	Seed        uint64  `yaml:"seed" koanf:"seed"`
	FPS         int     `yaml:"fps" koanf:"fps"`
	Debug       bool    `yaml:"debug" koanf:"debug"`
	Audio       bool    `yaml:"audio" koanf:"audio"`
	Volume      float64 `yaml:"volume" koanf:"volume"`
	Lights      bool    `yaml:"lights" koanf:"lights"`
	Snow        bool    `yaml:"snow" koanf:"snow"`
	TargetMonth int     `yaml:"target_month" koanf:"target_month"`
	TargetDay   int     `yaml:"target_day" koanf:"target_day"`
	CellWidth   int     `yaml:"cell_width" koanf:"cell_width"`
	CellHeight  int     `yaml:"cell_height" koanf:"cell_height"`
}

// DefaultConfig returns the scene as first shown
func DefaultConfig() *Config {
	return &Config{
		Seed:        0,
		FPS:         int(time.Second / constant.FrameUpdateInterval),
		Debug:       false,
		Audio:       true,
		Volume:      0.4,
		Lights:      false,
		Snow:        true,
		TargetMonth: int(constant.CountdownMonth),
		TargetDay:   constant.CountdownDay,
		CellWidth:   constant.DefaultCellWidth,
		CellHeight:  constant.DefaultCellHeight,
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (YULETIDE_*)
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// YULETIDE_TARGET_DAY -> target_day
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains usable values
func (c *Config) Validate() error {
	if c.FPS < 1 || c.FPS > 120 {
		return fmt.Errorf("fps %d out of range [1, 120]", c.FPS)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume %v out of range [0, 1]", c.Volume)
	}
	if c.TargetMonth < 1 || c.TargetMonth > 12 {
		return fmt.Errorf("target_month %d out of range [1, 12]", c.TargetMonth)
	}
	// Reject dates that do not exist in a leap year, Feb 29 is allowed
	maxDay := time.Date(2024, time.Month(c.TargetMonth)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if c.TargetDay < 1 || c.TargetDay > maxDay {
		return fmt.Errorf("target_day %d out of range [1, %d] for month %d", c.TargetDay, maxDay, c.TargetMonth)
	}
	if c.CellWidth < 1 || c.CellHeight < 1 {
		return fmt.Errorf("cell size %dx%d must be positive", c.CellWidth, c.CellHeight)
	}
	return nil
}

// FrameInterval converts FPS to the host loop tick
func (c *Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return constant.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.FPS)
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBeltCount = 120
	DefaultBeltInner = 2.1 // AU
	DefaultBeltOuter = 3.3 // AU
	DefaultFrameRate = 30
)

type Config struct {
	Belt      BeltConfig `yaml:"belt"`
	TimeScale KnobConfig `yaml:"time_scale"` // days per frame
	Zoom      KnobConfig `yaml:"zoom"`       // fraction of max radius
	FrameRate int        `yaml:"frame_rate"`
	Seed      int64      `yaml:"seed"`
}

type BeltConfig struct {
	Count   int     `yaml:"count"`
	InnerAU float64 `yaml:"inner_au"`
	OuterAU float64 `yaml:"outer_au"`
}

// KnobConfig bounds one interactive control. Writes outside [Min, Max] clamp;
// Step is the slider granularity.
type KnobConfig struct {
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Step    float64 `yaml:"step"`
	Initial float64 `yaml:"initial"`
}

func DefaultConfig() *Config {
	return &Config{
		Belt: BeltConfig{
			Count:   DefaultBeltCount,
			InnerAU: DefaultBeltInner,
			OuterAU: DefaultBeltOuter,
		},
		TimeScale: KnobConfig{Min: 0.25, Max: 30, Step: 0.25, Initial: 1},
		Zoom:      KnobConfig{Min: 0.05, Max: 1, Step: 0.05, Initial: 1},
		FrameRate: DefaultFrameRate,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Belt.Count < 0 {
		return fmt.Errorf("belt count must be non-negative, got %d", c.Belt.Count)
	}
	if c.Belt.InnerAU <= 0 || c.Belt.OuterAU <= c.Belt.InnerAU {
		return fmt.Errorf("belt annulus [%g, %g] AU is invalid", c.Belt.InnerAU, c.Belt.OuterAU)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("frame rate must be positive, got %d", c.FrameRate)
	}
	for _, k := range []struct {
		name string
		knob KnobConfig
	}{{"time_scale", c.TimeScale}, {"zoom", c.Zoom}} {
		if k.knob.Min <= 0 || k.knob.Max <= k.knob.Min {
			return fmt.Errorf("%s bounds [%g, %g] are invalid", k.name, k.knob.Min, k.knob.Max)
		}
		if k.knob.Step < 0 {
			return fmt.Errorf("%s step must be non-negative, got %g", k.name, k.knob.Step)
		}
	}
	return nil
}

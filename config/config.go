package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable the player reads. Zero values are invalid;
// start from Default and overlay a file with Load.
type Config struct {
	// Phase durations in seconds
	BackgroundFadeIn  float64 `yaml:"background_fade_in"`
	PhasePause        float64 `yaml:"phase_pause"`
	PerChoiceReveal   float64 `yaml:"per_choice_reveal"`
	QuickFadeOut      float64 `yaml:"quick_fade_out"`
	BackgroundFadeOut float64 `yaml:"background_fade_out"`

	// Reading-time model for the text reveal
	MeanWordLength  float64 `yaml:"mean_word_length"`
	ReadingSpeedWPS float64 `yaml:"reading_speed_wps"`

	// Ticks a missing slide is tolerated before the display degrades
	GraceTicks int `yaml:"grace_ticks"`

	// Main loop tick interval in milliseconds
	TickMillis int `yaml:"tick_millis"`

	// Choice-list layout shared by hit-testing and drawing
	ChoiceSpacing int     `yaml:"choice_spacing"`
	HitTolerance  float64 `yaml:"hit_tolerance"`

	// Hover marker blink period in seconds (cosmetic only)
	HoverBlink float64 `yaml:"hover_blink"`

	Audio bool `yaml:"audio"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		BackgroundFadeIn:  1.5,
		PhasePause:        0.5,
		PerChoiceReveal:   0.4,
		QuickFadeOut:      0.35,
		BackgroundFadeOut: 1.0,
		MeanWordLength:    5.0,
		ReadingSpeedWPS:   3.3,
		GraceTicks:        3,
		TickMillis:        33,
		ChoiceSpacing:     2,
		HitTolerance:      1.0,
		HoverBlink:        0.5,
		Audio:             true,
	}
}

// Load reads a YAML file and overlays it on the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values that would stall or divide by zero.
func (c Config) Validate() error {
	for _, d := range []struct {
		name  string
		value float64
	}{
		{"background_fade_in", c.BackgroundFadeIn},
		{"phase_pause", c.PhasePause},
		{"per_choice_reveal", c.PerChoiceReveal},
		{"quick_fade_out", c.QuickFadeOut},
		{"background_fade_out", c.BackgroundFadeOut},
		{"mean_word_length", c.MeanWordLength},
		{"reading_speed_wps", c.ReadingSpeedWPS},
		{"hover_blink", c.HoverBlink},
	} {
		if d.value <= 0 {
			return fmt.Errorf("%s must be positive, got %v", d.name, d.value)
		}
	}
	if c.GraceTicks < 0 {
		return fmt.Errorf("grace_ticks must not be negative, got %d", c.GraceTicks)
	}
	if c.TickMillis <= 0 {
		return fmt.Errorf("tick_millis must be positive, got %d", c.TickMillis)
	}
	if c.ChoiceSpacing <= 0 {
		return fmt.Errorf("choice_spacing must be positive, got %d", c.ChoiceSpacing)
	}
	if c.HitTolerance <= 0 {
		return fmt.Errorf("hit_tolerance must be positive, got %v", c.HitTolerance)
	}
	return nil
}

// TickInterval returns the main loop period.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

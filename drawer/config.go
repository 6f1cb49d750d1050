package drawer

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config gathers every tuning constant of the drawer.
type Config struct {
	// Padding widens the clamp and the release thresholds around the
	// expanded and full height offsets.
	Padding float64 `yaml:"padding"`
	// VelocityThreshold separates flicks from slow drags, in offset units
	// per second.
	VelocityThreshold float64 `yaml:"velocity_threshold"`
	// FadeCap is the darkest the background overlay may get.
	FadeCap float64 `yaml:"fade_cap"`

	Damping       float64       `yaml:"damping"`
	VelocityFloor float64       `yaml:"velocity_floor"`
	Duration      time.Duration `yaml:"duration"`
	FPS           int           `yaml:"fps"`

	// ExpandVelocity paces the programmatic expand animation.
	ExpandVelocity float64 `yaml:"expand_velocity"`
	// Epsilon is the smallest denominator used in ratios.
	Epsilon float64 `yaml:"epsilon"`

	Heights HeightTable `yaml:"heights"`

	RegularMinWidth  float64 `yaml:"regular_min_width"`
	RegularMinHeight float64 `yaml:"regular_min_height"`

	// SymmetricCompactFlick makes Compact mode treat upward flicks like
	// downward ones. When false only downward flicks count in Compact mode.
	SymmetricCompactFlick bool `yaml:"symmetric_compact_flick"`
	// LiveFadeRegular makes Regular mode recompute the fade while dragging
	// and animating, as Compact mode always does.
	LiveFadeRegular bool `yaml:"live_fade_regular"`
}

// DefaultConfig returns the constants of the drawer in points.
func DefaultConfig() Config {
	return Config{
		Padding:           50,
		VelocityThreshold: 200,
		FadeCap:           0.4,
		Damping:           0.6,
		VelocityFloor:     0.08,
		Duration:          500 * time.Millisecond,
		FPS:               60,
		ExpandVelocity:    -4536,
		Epsilon:           1e-6,
		Heights:           DefaultHeights(),
		RegularMinWidth:   700,
		RegularMinHeight:  700,
	}
}

// TerminalConfig scales DefaultConfig to terminal cells.
func TerminalConfig() Config {
	cfg := DefaultConfig()
	cfg.Padding = 4
	cfg.VelocityThreshold = 20
	cfg.ExpandVelocity = -90
	cfg.RegularMinWidth = 120
	cfg.RegularMinHeight = 40
	return cfg
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Padding <= 0:
		return fmt.Errorf("padding must be positive, got %v", c.Padding)
	case c.VelocityThreshold <= 0:
		return fmt.Errorf("velocity threshold must be positive, got %v", c.VelocityThreshold)
	case c.FadeCap <= 0 || c.FadeCap > 1:
		return fmt.Errorf("fade cap must be in (0, 1], got %v", c.FadeCap)
	case c.Damping <= 0:
		return fmt.Errorf("damping must be positive, got %v", c.Damping)
	case c.VelocityFloor < 0:
		return fmt.Errorf("velocity floor must not be negative, got %v", c.VelocityFloor)
	case c.Duration <= 0:
		return fmt.Errorf("duration must be positive, got %v", c.Duration)
	case c.FPS <= 0:
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	case c.Epsilon <= 0:
		return fmt.Errorf("epsilon must be positive, got %v", c.Epsilon)
	}
	if err := c.Heights.Validate(); err != nil {
		return fmt.Errorf("invalid heights: %w", err)
	}
	return nil
}

// LoadConfig reads a YAML file on top of TerminalConfig. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := TerminalConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, nil
}

// ErrInvalidConfig is returned by LoadConfig when a file parses but holds
// unusable values.
var ErrInvalidConfig = errors.New("invalid drawer config")

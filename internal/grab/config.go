package grab

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the default location of the grab tuning file, relative to the
// working directory.
const ConfigPath = "config/grab.yaml"

// Policy selects the ScaleSolver strategy.
type Policy string

const (
	PolicyOcclusion  Policy = "occlusion"   // per-tick ray casts, never penetrates
	PolicyFixedRatio Policy = "fixed_ratio" // TargetDistance / HoldDistance, no ray casts
)

// Config holds the tuning for the grab mechanic.
type Config struct {
	MaxReach       float32 `yaml:"max_reach"`       // forward ray length when picking up
	FarDistance    float32 `yaml:"far_distance"`    // per-direction ray length when fitting
	Margin         float32 `yaml:"margin"`          // gap kept from obstructions
	TargetDistance float32 `yaml:"target_distance"` // fixed_ratio only
	GrowthRate     float32 `yaml:"growth_rate"`     // 1/s, 0 snaps to the solved scale
	Policy         Policy  `yaml:"policy"`
}

func DefaultConfig() Config {
	return Config{
		MaxReach:       50,
		FarDistance:    200,
		Margin:         0.05,
		TargetDistance: 3,
		GrowthRate:     0,
		Policy:         PolicyOcclusion,
	}
}

// LoadConfig reads a YAML config from path. Fields absent from the file keep
// their defaults. A missing file is not an error and yields DefaultConfig().
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read grab config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse grab config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Save writes the config to path as YAML, creating parent directories.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c Config) Validate() error {
	switch {
	case c.MaxReach <= 0:
		return fmt.Errorf("grab config: max_reach must be positive, got %v", c.MaxReach)
	case c.FarDistance <= 0:
		return fmt.Errorf("grab config: far_distance must be positive, got %v", c.FarDistance)
	case c.Margin < 0:
		return fmt.Errorf("grab config: margin must not be negative, got %v", c.Margin)
	case c.GrowthRate < 0:
		return fmt.Errorf("grab config: growth_rate must not be negative, got %v", c.GrowthRate)
	}
	switch c.Policy {
	case PolicyOcclusion:
	case PolicyFixedRatio:
		if c.TargetDistance <= 0 {
			return fmt.Errorf("grab config: target_distance must be positive, got %v", c.TargetDistance)
		}
	default:
		return fmt.Errorf("grab config: unknown policy %q", c.Policy)
	}
	return nil
}

// Solver builds the strategy selected by Policy.
func (c Config) Solver(query SpatialQuery) ScaleSolver {
	if c.Policy == PolicyFixedRatio {
		return FixedRatioSolver{TargetDistance: c.TargetDistance}
	}
	return NewOcclusionSolver(query, c.Margin)
}

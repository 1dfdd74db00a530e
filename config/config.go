package config

import (
	"fmt"
	"os"
	"time"

	goerrors "github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/lumen/engine"
	"gopkg.in/yaml.v3"
)

// Config represents options that configure the global behavior of the program
type Config struct {
	// FPS is the render rate.
	FPS int `yaml:"fps"`

	// OLAAddress is the host:port of the OLA daemon.
	OLAAddress string `yaml:"ola_address"`
	// OLATick is how often frames are pushed to OLA.
	OLATick time.Duration `yaml:"ola_tick"`

	LogLevel string `yaml:"log_level"`

	// Mode is one of blackout, scene, show or group-debug.
	Mode string `yaml:"mode"`
	// DebugGroup is the group lit in group-debug mode.
	DebugGroup uint64 `yaml:"debug_group"`

	// Tempo is the initial tempo in bpm.
	Tempo float64 `yaml:"tempo"`

	// Universes maps output ids to the OLA universe they are sent to, when
	// that differs from the patch.
	Universes map[uint64]int `yaml:"universes"`
}

// Default returns a config with reasonable defaults for real usage.
func Default() Config {
	return Config{
		FPS:        40,
		OLAAddress: "localhost:9010",
		OLATick:    40 * time.Millisecond,
		LogLevel:   "info",
		Mode:       engine.ModeScene.String(),
		Tempo:      120,
	}
}

// NewConfig returns the defaults overlaid with the YAML file at path. An
// empty path returns the defaults.
func NewConfig(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, goerrors.WithStackTrace(err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, goerrors.WithStackTrace(fmt.Errorf("parsing %s: %w", path, err))
	}
	return cfg, cfg.Validate()
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.OLATick <= 0 {
		return fmt.Errorf("ola_tick must be positive, got %v", c.OLATick)
	}
	if c.Tempo <= 0 {
		return fmt.Errorf("tempo must be positive, got %v", c.Tempo)
	}
	if _, err := engine.ParseMode(c.Mode); err != nil {
		return err
	}
	return nil
}

// RenderMode returns the parsed render mode.
func (c Config) RenderMode() engine.Mode {
	m, err := engine.ParseMode(c.Mode)
	if err != nil {
		return engine.ModeBlackout
	}
	return m
}

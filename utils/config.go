package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	ModeTerminal = "terminal"
	ModeServe    = "serve"
)

// Config holds the configuration for the simulation host
type Config struct {
	Width          uint32        `json:"width"`
	Height         uint32        `json:"height"`
	FrameRate      time.Duration `json:"frame_rate"`
	Workers        int           `json:"workers"`
	UseMemoryPool  bool          `json:"use_memory_pool"`
	Pattern        string        `json:"pattern"`
	PatternFile    string        `json:"pattern_file"`
	PatternRow     uint32        `json:"pattern_row"`
	PatternCol     uint32        `json:"pattern_col"`
	MaxGenerations uint64        `json:"max_generations"`
	StopOnCycle    bool          `json:"stop_on_cycle"`
	Mode           string        `json:"mode"`
	ListenAddr     string        `json:"listen_addr"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          64,
		Height:         64,
		FrameRate:      100 * time.Millisecond,
		Workers:        1,
		UseMemoryPool:  true,
		Pattern:        "clock",
		PatternRow:     19,
		PatternCol:     18,
		MaxGenerations: 0,
		StopOnCycle:    false,
		Mode:           ModeTerminal,
		ListenAddr:     ":8080",
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate rejects configurations the host cannot run
func (c Config) Validate() error {
	if c.Width == 0 || c.Height == 0 {
		return errors.Errorf("[Validate] grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Workers < 0 {
		return errors.Errorf("[Validate] workers must not be negative, got %d", c.Workers)
	}
	if c.FrameRate <= 0 {
		return errors.Errorf("[Validate] frame_rate must be positive, got %v", c.FrameRate)
	}
	switch c.Mode {
	case ModeTerminal, ModeServe:
	default:
		return errors.Errorf("[Validate] unknown mode %q", c.Mode)
	}
	if c.Mode == ModeServe && c.ListenAddr == "" {
		return errors.New("[Validate] listen_addr is required in serve mode")
	}
	return nil
}

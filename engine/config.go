package engine

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// LoadApplicationConfig reads a toml file on top of DefaultApplicationConfig.
// Keys missing from the file keep their default.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseApplicationConfig(data)
}

func ParseApplicationConfig(data []byte) (*ApplicationConfig, error) {
	cfg := DefaultApplicationConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("config line %d column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.StartWidth == 0 || cfg.StartHeight == 0 {
		return nil, fmt.Errorf("config: window size %dx%d is empty", cfg.StartWidth, cfg.StartHeight)
	}
	return cfg, nil
}

// LoadApplicationConfigOrDefault is LoadApplicationConfig that falls back to
// the defaults when the file does not exist.
func LoadApplicationConfigOrDefault(path string) (*ApplicationConfig, error) {
	cfg, err := LoadApplicationConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultApplicationConfig(), nil
	}
	return cfg, err
}

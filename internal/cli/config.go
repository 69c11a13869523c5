package cli

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lattice/grid"
)

// ErrConfig is returned for invalid settings from the config file or flags.
var ErrConfig = errors.New("lattice: invalid config")

// Config holds settings shared by all commands.
//
// Example file:
//
//	conn  = "8"
//	walls = "#~"
//	start = "S"
//	end   = "E"
//	color = false
type Config struct {
	Conn  string `toml:"conn"`  // "4" or "8"
	Walls string `toml:"walls"` // runes that block movement
	Start string `toml:"start"` // marker rune of the start cell
	End   string `toml:"end"`   // marker rune of the end cell
	Color bool   `toml:"color"` // colour the rendered path
}

// DefaultConfig returns 4-connectivity, '#' walls and S/E markers.
func DefaultConfig() Config {
	return Config{
		Conn:  "4",
		Walls: "#",
		Start: "S",
		End:   "E",
		Color: true,
	}
}

// loadConfig reads path over the defaults. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if _, err := c.connectivity(); err != nil {
		return err
	}
	for name, v := range map[string]string{"start": c.Start, "end": c.End} {
		if utf8.RuneCountInString(v) != 1 {
			return fmt.Errorf("%w: %s must be a single rune, got %q", ErrConfig, name, v)
		}
	}
	return nil
}

func (c Config) connectivity() (grid.Connectivity, error) {
	switch c.Conn {
	case "4", "conn4":
		return grid.Conn4, nil
	case "8", "conn8":
		return grid.Conn8, nil
	}
	return 0, fmt.Errorf("%w: conn must be 4 or 8, got %q", ErrConfig, c.Conn)
}

// gridOptions converts c into grid.Parse options.
func (c Config) gridOptions() ([]grid.Option, error) {
	conn, err := c.connectivity()
	if err != nil {
		return nil, err
	}
	return []grid.Option{grid.WithConn(conn), grid.WithWalls(c.Walls)}, nil
}

// marker returns the single rune of s.
func marker(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("%w: marker must be a single rune, got %q", ErrConfig, s)
	}
	return r, nil
}

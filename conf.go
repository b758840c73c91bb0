package tilemesh

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml"
)

// Config contains options for creating a Mesher.
type Config struct {
	// Log is the Logger used for debug information while meshing. If nil,
	// Log is set to slog.Default().
	Log *slog.Logger
	// Seed drives every noise decision in the pipeline. Boards meshed with
	// equal seeds and tile sets are identical.
	Seed int64
	// CacheDir is the directory of the packed-buffer cache. If empty, no
	// cache is opened and every request is meshed from scratch.
	CacheDir string
}

// UserConfig is the TOML-serialisable counterpart of Config, holding the
// fields a user cares about when running the mesher as a tool.
type UserConfig struct {
	World struct {
		// Seed is the board seed. Equal seeds yield identical boards.
		Seed int64
		// Width and Depth are the board dimensions in tiles.
		Width, Depth int
	}
	Cache struct {
		// Enabled controls whether packed buffers are cached on disk
		// between runs.
		Enabled bool
		// Folder is the path of the cache directory.
		Folder string
	}
}

// Config converts a UserConfig to a Config, so that it may be used for
// creating a Mesher.
func (uc UserConfig) Config(log *slog.Logger) Config {
	conf := Config{
		Log:  log,
		Seed: uc.World.Seed,
	}
	if uc.Cache.Enabled {
		folder := strings.TrimSpace(uc.Cache.Folder)
		if folder == "" {
			folder = "meshcache"
		}
		conf.CacheDir = folder
	}
	return conf
}

// DefaultConfig returns a configuration with the default values filled out.
func DefaultConfig() UserConfig {
	c := UserConfig{}
	c.World.Seed = 42069
	c.World.Width = 48
	c.World.Depth = 48
	c.Cache.Enabled = false
	c.Cache.Folder = "meshcache"
	return c
}

// LoadUserConfig reads the TOML configuration file at the path passed. If the
// file does not exist yet, it is created holding the default configuration.
func LoadUserConfig(path string) (UserConfig, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		out, err := toml.Marshal(c)
		if err != nil {
			return c, fmt.Errorf("encode default config: %w", err)
		}
		if err := os.WriteFile(path, out, 0644); err != nil {
			return c, fmt.Errorf("create default config: %w", err)
		}
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

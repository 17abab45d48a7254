package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/deepfloor/internal/entity"
	"github.com/samdwyer/deepfloor/internal/gamedata"
	"github.com/samdwyer/deepfloor/internal/telemetry"
	"github.com/samdwyer/deepfloor/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`

	Dungeon   DungeonConfig    `yaml:"dungeon"`
	Player    PlayerConfig     `yaml:"player"`
	Log       LogConfig        `yaml:"log"`
	Telemetry telemetry.Config `yaml:"telemetry"`
}

// DungeonConfig controls map generation.
type DungeonConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Depth       int    `yaml:"depth"`
	Rooms       int    `yaml:"rooms"`
	MinRoomSize int    `yaml:"min_room_size"`
	MaxRoomSize int    `yaml:"max_room_size"`
	WallProbe   string `yaml:"wall_probe"`   // "full" or "legacy"
	PaletteFile string `yaml:"palette_file"` // Optional tiles.json override
}

// PlayerConfig controls the player entity.
type PlayerConfig struct {
	ViewRange int `yaml:"view_range"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Dungeon: DungeonConfig{
			Width:       world.DefaultWidth,
			Height:      world.DefaultHeight,
			Depth:       world.DefaultDepth,
			Rooms:       world.DefaultRoomCount,
			MinRoomSize: world.DefaultMinRoomSize,
			MaxRoomSize: world.DefaultMaxRoomSize,
			WallProbe:   world.ProbeFull.String(),
		},
		Player: PlayerConfig{
			ViewRange: entity.DefaultVisionRange,
		},
		Log: LogConfig{
			Path:  "deepfloor.log",
			Level: "info",
		},
	}
}

// LoadConfig loads config from a YAML file over the defaults.
// If the file doesn't exist, returns defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every section, including the dungeon parameters.
func (c Config) Validate() error {
	p, err := c.dungeonParams()
	if err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if c.Player.ViewRange <= 0 {
		return fmt.Errorf("player view range must be positive, got %d", c.Player.ViewRange)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// Params converts the dungeon section to generation parameters,
// loading the tile palette along the way.
func (c Config) Params() (world.Params, error) {
	p, err := c.dungeonParams()
	if err != nil {
		return world.Params{}, err
	}

	if c.Dungeon.PaletteFile != "" {
		p.Palette, err = gamedata.LoadPaletteFile(c.Dungeon.PaletteFile)
	} else {
		p.Palette, err = gamedata.LoadPalette()
	}
	if err != nil {
		return world.Params{}, fmt.Errorf("loading tile palette: %w", err)
	}
	return p, nil
}

func (c Config) dungeonParams() (world.Params, error) {
	probe, err := world.ParseWallProbe(c.Dungeon.WallProbe)
	if err != nil {
		return world.Params{}, err
	}
	return world.Params{
		Size:        world.At(c.Dungeon.Width, c.Dungeon.Height, c.Dungeon.Depth),
		RoomCount:   c.Dungeon.Rooms,
		MinRoomSize: c.Dungeon.MinRoomSize,
		MaxRoomSize: c.Dungeon.MaxRoomSize,
		Probe:       probe,
	}, nil
}

// NewRand returns the random source for this config. A zero seed uses the clock.
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// SlogLevel parses the configured log level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	return level, nil
}

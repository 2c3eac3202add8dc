package game

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/davezimmer/floortrader/internal/market"
)

// Config holds everything a game run needs. The zero config is not
// usable; start from DefaultConfig or Load.
type Config struct {
	// TotalDays is the length of the game in trading days.
	TotalDays int `yaml:"total_days"`
	// StartingCapital is the player's cash at day 1.
	StartingCapital float64 `yaml:"starting_capital"`
	// Seed drives all randomness; 0 picks a time-based seed. The
	// same seed reproduces an identical game.
	Seed int64 `yaml:"seed"`
	// Stocks optionally overrides the default catalog.
	Stocks []StockConfig `yaml:"stocks"`
	// Storage controls the optional results database.
	Storage StorageConfig `yaml:"storage"`
	// Log controls diagnostic logging.
	Log LogConfig `yaml:"log"`
}

// StockConfig is one catalog entry in the config file.
type StockConfig struct {
	Name  string  `yaml:"name"`
	Price float64 `yaml:"price"`
}

// StorageConfig controls where completed games are recorded.
type StorageConfig struct {
	// DSN is the SQLite file path, ":memory:", or empty to disable
	// result recording entirely.
	DSN string `yaml:"dsn"`
}

// LogConfig controls diagnostic log output.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// DefaultConfig returns the classic game: 20000 starting capital,
// 50 days, the four-stock catalog, results kept next to the binary.
func DefaultConfig() Config {
	return Config{
		TotalDays:       50,
		StartingCapital: 20000,
		Storage:         StorageConfig{DSN: "floortrader.db"},
		Log:             LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads a YAML config file, applies .env/environment overrides
// and fills gaps with defaults. A missing file is an error; use
// DefaultConfig when no file is wanted.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("game: read config %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("game: parse config %q: %w", path, err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)
	return cfg, nil
}

// Catalog resolves the configured stock list, falling back to the
// default catalog when none is given.
func (c Config) Catalog() []market.Stock {
	if len(c.Stocks) == 0 {
		return market.DefaultStocks()
	}
	stocks := make([]market.Stock, 0, len(c.Stocks))
	for _, s := range c.Stocks {
		stocks = append(stocks, market.Stock{
			Symbol:       market.Symbol(s.Name),
			InitialPrice: s.Price,
		})
	}
	return stocks
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

func setDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.TotalDays <= 0 {
		cfg.TotalDays = def.TotalDays
	}
	if cfg.StartingCapital <= 0 {
		cfg.StartingCapital = def.StartingCapital
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = def.Log.Format
	}
}

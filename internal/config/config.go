package config

import (
	"errors"
	"os"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"holdem-stepper-server/internal/util"
)

// storage backends
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Game holds the defaults for new hands
type Game struct {
	Seats           int  `yaml:"seats" envconfig:"seats"`
	StartingStack   int  `yaml:"startingStack" envconfig:"starting_stack"`
	SmallBlind      int  `yaml:"smallBlind" envconfig:"small_blind"`
	BigBlind        int  `yaml:"bigBlind" envconfig:"big_blind"`
	MinBet          int  `yaml:"minBet" envconfig:"min_bet"`
	AutoDeal        bool `yaml:"autoDeal" envconfig:"auto_deal"`
	RevealHoleCards bool `yaml:"revealHoleCards" envconfig:"reveal_hole_cards"`
}

// Config provides configuration for the hand stepper
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	Storage        string `yaml:"storage" envconfig:"storage"`
	Log            struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Game Game `yaml:"game"`
}

var (
	mu     sync.Mutex
	config Config
)

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	var cfg Config
	cfg.PGDSN = "postgres://postgres@localhost:5432/postgres?sslmode=disable"
	cfg.MigrationsPath = "./sql"
	cfg.Storage = StorageMemory
	cfg.Log.Level = "info"
	cfg.Game = Game{
		Seats:           6,
		StartingStack:   1000,
		SmallBlind:      20,
		BigBlind:        40,
		MinBet:          40,
		AutoDeal:        true,
		RevealHoleCards: true,
	}

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	mu.Lock()
	loaded := config.loaded
	mu.Unlock()

	if !loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	mu.Lock()
	defer mu.Unlock()
	return config
}

// Load will load the configuration
// Values come from the defaults, then the YAML file, then HSS_ environment variables.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("HSS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("hss", &cfg); err != nil {
		return err
	}

	if cfg.Storage != StorageMemory && cfg.Storage != StoragePostgres {
		return errors.New("storage must be memory or postgres")
	}

	cfg.loaded = true

	mu.Lock()
	config = cfg
	mu.Unlock()

	return nil
}

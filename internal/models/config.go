package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

var (
	ErrUnknownInputSource       = errors.New("unknown input source")
	ErrUnknownOutputDestination = errors.New("unknown output destination")
)

type InputConfig struct {
	Source        string   `mapstructure:"source"` // file, postgres or simulate
	Path          string   `mapstructure:"path"`
	RestaurantIDs []string `mapstructure:"restaurant_ids"`
}

type DatabaseConfig struct {
	Host               string `mapstructure:"host"`
	Port               string `mapstructure:"port"`
	User               string `mapstructure:"user"`
	Password           string `mapstructure:"password"`
	DBName             string `mapstructure:"dbname"`
	SSLMode            string `mapstructure:"sslmode"`
	TrailingWindowDays int    `mapstructure:"trailing_window_days"`
	Timezone           string `mapstructure:"timezone"`
}

// DSN builds a libpq style connection string for pgx.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type OutputConfig struct {
	Destination string `mapstructure:"destination"` // console, file, kafka, parquet or postgres
	Path        string `mapstructure:"path"`
	Folder      string `mapstructure:"folder"`
	Topic       string `mapstructure:"topic"`
}

type KafkaConfig struct {
	BrokerList   string        `mapstructure:"broker_list"`
	RetryMax     int           `mapstructure:"retry_max"`
	RetryBackoff time.Duration `mapstructure:"retry_backoff"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
}

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"` // empty for local files, or s3
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
	Prefix     string `mapstructure:"prefix"` // key prefix inside the bucket
}

type SimulateConfig struct {
	Seed        int64 `mapstructure:"seed"`
	Restaurants int   `mapstructure:"restaurants"`
	MinItems    int   `mapstructure:"min_items"`
	MaxItems    int   `mapstructure:"max_items"`
}

type Config struct {
	LogLevel     string             `mapstructure:"log_level"`
	LogFile      string             `mapstructure:"log_file"`
	Engine       EngineSettings     `mapstructure:"engine"`
	Input        InputConfig        `mapstructure:"input"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Output       OutputConfig       `mapstructure:"output"`
	Kafka        KafkaConfig        `mapstructure:"kafka"`
	CloudStorage CloudStorageConfig `mapstructure:"cloud_storage"`
	Simulate     SimulateConfig     `mapstructure:"simulate"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	return loadConfig(viper.GetViper(), cfgFile)
}

func loadConfig(v *viper.Viper, cfgFile string) (*Config, error) {
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("menuengine")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("MENUENGINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit file must exist, the default location is optional
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := v.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultEngineSettings()
	v.SetDefault("log_level", "info")
	v.SetDefault("engine.mode", string(d.Mode))
	v.SetDefault("engine.features.bundles", d.Features.Bundles)
	v.SetDefault("engine.features.mood_flow", d.Features.MoodFlow)
	v.SetDefault("engine.features.upsells", d.Features.Upsells)
	v.SetDefault("engine.features.scarcity_badges", d.Features.ScarcityBadges)
	v.SetDefault("engine.features.price_anchoring", d.Features.PriceAnchoring)
	v.SetDefault("engine.max_items_per_category", d.MaxItemsPerCategory)
	v.SetDefault("engine.max_initial_items_per_category", d.MaxInitialItemsPerCategory)
	v.SetDefault("engine.bundle_correlation_threshold", d.BundleCorrelationThreshold)
	v.SetDefault("engine.premium_price_threshold", d.PremiumPriceThreshold)

	v.SetDefault("input.source", "file")
	v.SetDefault("input.path", "snapshots")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.trailing_window_days", 30)
	v.SetDefault("database.timezone", "UTC")

	v.SetDefault("output.destination", "console")
	v.SetDefault("output.folder", "menu_engine")
	v.SetDefault("output.topic", "menu_engine_output")

	v.SetDefault("kafka.broker_list", "localhost:9092")
	v.SetDefault("kafka.retry_max", 5)
	v.SetDefault("kafka.retry_backoff", "100ms")
	v.SetDefault("kafka.dial_timeout", "30s")

	v.SetDefault("simulate.seed", 42)
	v.SetDefault("simulate.restaurants", 10)
	v.SetDefault("simulate.min_items", 10)
	v.SetDefault("simulate.max_items", 30)
}

func (cfg *Config) Validate() error {
	if err := cfg.Engine.Validate(); err != nil {
		return fmt.Errorf("invalid engine settings: %w", err)
	}
	switch cfg.Input.Source {
	case "file", "postgres", "simulate":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownInputSource, cfg.Input.Source)
	}
	switch cfg.Output.Destination {
	case "console", "file", "kafka", "parquet", "postgres":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutputDestination, cfg.Output.Destination)
	}
	return nil
}

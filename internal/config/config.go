// Package config loads bot settings from configs/config.yml, environment
// variables and command line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"moviedb-bot/internal/api"
)

const (
	DefaultRedisAddress = "localhost:6379"
	DefaultPageSize     = 5
	maxPageSize         = 10
	maxMovieLimit       = 1000
)

// ErrMissingToken is returned when no Telegram token was configured anywhere.
var ErrMissingToken = errors.New("telegram token is not set (TELEGRAM_TOKEN)")

type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
	Bot      BotConfig      `mapstructure:"bot"`
}

type APIConfig struct {
	BaseUrl string `mapstructure:"base_url"`
}

type TelegramConfig struct {
	Token string `mapstructure:"token"`
	Debug bool   `mapstructure:"debug"`
}

type RedisConfig struct {
	Address  string        `mapstructure:"address"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File enables rotated file output next to stdout when set.
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type BotConfig struct {
	PageSize int `mapstructure:"page_size"`
	// MovieLimit is sent as the list limit; 0 leaves it to the backend.
	MovieLimit    int     `mapstructure:"movie_limit"`
	UpdateTimeout int     `mapstructure:"update_timeout"`
	SendRate      float64 `mapstructure:"send_rate"`
	SendBurst     int     `mapstructure:"send_burst"`
	// Genres are offered as quick filter buttons on the movie list.
	Genres []string `mapstructure:"genres"`
}

type Loader struct {
	v          *viper.Viper
	flags      *pflag.FlagSet
	configPath *string
}

func NewLoader(fs afero.Fs) *Loader {
	v := viper.New()
	v.SetFs(fs)

	flags := pflag.NewFlagSet("moviedb-bot", pflag.ContinueOnError)
	configPath := flags.StringP("config", "c", "", "path to the config file (default configs/config.yml)")
	flags.String("api-base-url", "", "movie database backend base url")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.Bool("telegram-debug", false, "log raw telegram api traffic")

	return &Loader{v: v, flags: flags, configPath: configPath}
}

func (l *Loader) Load(args []string) (*Config, error) {
	if err := l.flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	setDefaults(l.v)
	if err := bindEnv(l.v); err != nil {
		return nil, err
	}
	for key, flag := range map[string]string{
		"api.base_url":   "api-base-url",
		"log.level":      "log-level",
		"telegram.debug": "telegram-debug",
	} {
		if err := l.v.BindPFlag(key, l.flags.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	if *l.configPath != "" {
		l.v.SetConfigFile(*l.configPath)
	} else {
		l.v.AddConfigPath("configs")
		l.v.SetConfigName("config")
		l.v.SetConfigType("yml")
	}
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if *l.configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		slog.Debug("no config file found, using defaults and environment")
	}

	return decode(l.v)
}

// ConfigFile returns the file the settings were read from, or "" if none.
func (l *Loader) ConfigFile() string {
	return l.v.ConfigFileUsed()
}

// Watch calls onChange with the re-decoded config every time the config
// file is written. Invalid edits are logged and skipped.
func (l *Loader) Watch(onChange func(*Config)) {
	if l.ConfigFile() == "" {
		return
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		slog.Info("Config file changed", "file", e.Name, "op", e.Op.String())
		cfg, err := decode(l.v)
		if err != nil {
			slog.Error("Ignoring invalid config change", "error", err)
			return
		}
		onChange(cfg)
	})
	l.v.WatchConfig()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", api.DefaultBaseUrl)
	v.SetDefault("redis.address", DefaultRedisAddress)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "24h")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 14)
	v.SetDefault("bot.page_size", DefaultPageSize)
	v.SetDefault("bot.movie_limit", 0)
	v.SetDefault("bot.update_timeout", 60)
	v.SetDefault("bot.send_rate", 25.0)
	v.SetDefault("bot.send_burst", 5)
	v.SetDefault("bot.genres", []string{"Action", "Drama", "Sci-Fi", "Crime"})
}

func bindEnv(v *viper.Viper) error {
	for key, env := range map[string]string{
		"telegram.token": "TELEGRAM_TOKEN",
		"api.base_url":   "API_BASE_URL",
		"redis.address":  "REDIS_ADDRESS",
		"redis.password": "REDIS_PASSWORD",
		"redis.db":       "REDIS_DB",
		"log.level":      "LOG_LEVEL",
		"log.file":       "LOG_FILE",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind env %s: %w", env, err)
		}
	}
	return nil
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() error {
	c.Telegram.Token = strings.TrimSpace(c.Telegram.Token)
	if c.Telegram.Token == "" {
		return ErrMissingToken
	}

	c.API.BaseUrl = strings.TrimRight(strings.TrimSpace(c.API.BaseUrl), "/")
	u, err := url.Parse(c.API.BaseUrl)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("api.base_url must be an absolute http(s) url, got %q", c.API.BaseUrl)
	}

	if c.Redis.TTL <= 0 {
		return fmt.Errorf("redis.ttl must be positive, got %s", c.Redis.TTL)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
		c.Log.Format = strings.ToLower(c.Log.Format)
	default:
		return fmt.Errorf("log.format must be json or text, got %q", c.Log.Format)
	}

	if c.Bot.PageSize < 1 {
		c.Bot.PageSize = 1
	}
	if c.Bot.PageSize > maxPageSize {
		c.Bot.PageSize = maxPageSize
	}
	if c.Bot.MovieLimit < 0 || c.Bot.MovieLimit > maxMovieLimit {
		return fmt.Errorf("bot.movie_limit must be between 0 and %d, got %d", maxMovieLimit, c.Bot.MovieLimit)
	}
	if c.Bot.SendRate <= 0 {
		return fmt.Errorf("bot.send_rate must be positive, got %v", c.Bot.SendRate)
	}
	if c.Bot.SendBurst < 1 {
		c.Bot.SendBurst = 1
	}
	return nil
}

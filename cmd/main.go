package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"moviedb-bot/internal/api"
	"moviedb-bot/internal/bot"
	"moviedb-bot/internal/config"
	"moviedb-bot/internal/logging"
	"moviedb-bot/internal/redis"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	loader := config.NewLoader(afero.NewOsFs())
	cfg, err := loader.Load(os.Args[1:])
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, os.Stdout)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()
	slog.SetDefault(logger.Logger)
	slog.Info("Config loaded", "file", loader.ConfigFile(), "api", cfg.API.BaseUrl, "redis", cfg.Redis.Address)

	loader.Watch(func(c *config.Config) {
		if err := logger.SetLevel(c.Log.Level); err != nil {
			slog.Error("Ignoring log level change", "error", err)
		}
	})

	client, err := api.NewClient(cfg.API.BaseUrl)
	if err != nil {
		return fmt.Errorf("create api client: %w", err)
	}
	checkBackend(client)

	redisClient, err := redis.NewRedisClient(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
	if err != nil {
		return fmt.Errorf("create redis client: %w", err)
	}
	defer redisClient.Close()

	tgBot, err := bot.NewBot(cfg.Telegram.Token, redisClient, client, bot.Options{
		PageSize:      cfg.Bot.PageSize,
		MovieLimit:    cfg.Bot.MovieLimit,
		UpdateTimeout: cfg.Bot.UpdateTimeout,
		SendRate:      cfg.Bot.SendRate,
		SendBurst:     cfg.Bot.SendBurst,
		Genres:        cfg.Bot.Genres,
		Debug:         cfg.Telegram.Debug,
	})
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}

	go tgBot.Start()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-stopChan
	slog.Info("Shutting down gracefully...")
	tgBot.Stop()
	slog.Info("Application shutdown complete")
	return nil
}

// checkBackend only logs: the bot still starts when the backend is down and
// each view reports the failure to the user.
func checkBackend(client *api.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	health, err := client.Health(ctx)
	if err != nil {
		slog.Warn("Movie backend is not reachable", "url", client.BaseUrl(), "error", err)
		return
	}
	slog.Info("Movie backend is up", "url", client.BaseUrl(), "status", health.Status)
}

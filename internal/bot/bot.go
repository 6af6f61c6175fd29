package bot

import (
	"context"
	"log/slog"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"moviedb-bot/internal/api"
	"moviedb-bot/internal/model"
)

const (
	telegramMessageLimit = 4096
	buttonLabelLimit     = 48
	maxCastButtons       = 6
)

type movieSource interface {
	List(ctx context.Context, f api.MovieFilter) ([]model.Movie, error)
	Get(ctx context.Context, id int) (*model.MovieDetail, error)
}

type actorSource interface {
	List(ctx context.Context) ([]model.Actor, error)
	Get(ctx context.Context, id int) (*model.Actor, error)
}

type directorSource interface {
	List(ctx context.Context) ([]model.Director, error)
	Get(ctx context.Context, id int) (*model.Director, error)
}

type exampleSource interface {
	Examples(ctx context.Context) ([]string, error)
}

type stateStore interface {
	SaveState(ctx context.Context, chatID int64, state model.NavState) error
	GetState(ctx context.Context, chatID int64) (*model.NavState, error)
	DeleteState(ctx context.Context, chatID int64) error
}

// sender is the subset of *tgbotapi.BotAPI the views use.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Options struct {
	PageSize int
	// MovieLimit caps how many movies one list request asks for; 0 keeps the backend default.
	MovieLimit    int
	UpdateTimeout int
	SendRate      float64
	SendBurst     int
	Genres        []string
	Debug         bool
}

type Bot struct {
	api       *tgbotapi.BotAPI
	out       sender
	movies    movieSource
	actors    actorSource
	directors directorSource
	examples  exampleSource
	state     stateStore
	opts      Options

	ctx      context.Context
	cancel   context.CancelFunc
	stopChan chan struct{}  // Channel to signal stopping
	wg       sync.WaitGroup // WaitGroup for graceful shutdown
}

func NewBot(token string, state stateStore, client *api.Client, opts Options) (*Bot, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	botAPI.Debug = opts.Debug

	b := newBot(botAPI, state, client.Movies, client.Actors, client.Directors, client.Chat, opts)
	b.api = botAPI
	return b, nil
}

func newBot(out sender, state stateStore, movies movieSource, actors actorSource, directors directorSource, examples exampleSource, opts Options) *Bot {
	if opts.PageSize < 1 {
		opts.PageSize = 5
	}
	if opts.UpdateTimeout < 1 {
		opts.UpdateTimeout = 60
	}
	ctx, cancel := context.WithCancel(context.Background())
	if opts.SendRate > 0 {
		out = newThrottledSender(ctx, out, opts.SendRate, opts.SendBurst)
	}
	return &Bot{
		out:       out,
		movies:    movies,
		actors:    actors,
		directors: directors,
		examples:  examples,
		state:     state,
		opts:      opts,
		ctx:       ctx,
		cancel:    cancel,
		stopChan:  make(chan struct{}),
	}
}

func (b *Bot) Start() {
	slog.Info("Authorized on account", slog.String("username", b.api.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.opts.UpdateTimeout
	updates := b.api.GetUpdatesChan(u)

	b.wg.Add(1)
	defer b.wg.Done()

	for {
		select {
		case <-b.stopChan:
			slog.Info("Stopping bot update processing")
			return
		case update, ok := <-updates:
			if !ok {
				slog.Info("Updates channel closed")
				return
			}
			b.handleUpdate(b.ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.handleCallbackQuery(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		return
	}

	if !update.Message.IsCommand() {
		b.handleMessage(ctx, update.Message)
		return
	}

	b.handleCommand(ctx, update.Message)
}

func (b *Bot) Stop() {
	slog.Info("Initiating bot shutdown...")
	close(b.stopChan) // Signal to stop processing updates
	b.cancel()        // Abort in-flight backend reads and throttled sends
	b.wg.Wait()       // Wait for the update loop to finish

	if b.api != nil {
		b.api.StopReceivingUpdates()
	}

	slog.Info("Bot shutdown complete")
}

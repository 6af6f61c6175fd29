package bot

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"moviedb-bot/internal/model"
)

const (
	minFilterYear = 1870
	maxFilterYear = 2100
)

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	switch msg.Command() {
	case "start":
		b.handleStartCommand(ctx, msg)
	case "help":
		b.handleHelpCommand(msg)
	case "movies":
		state := parseFilter(msg.CommandArguments())
		state.Page = 1
		b.showMovies(ctx, chatID, state)
	case "movie":
		id, ok := parseId(msg.CommandArguments())
		if !ok {
			b.sendText(chatID, "Usage: /movie <id>", nil)
			return
		}
		b.showMovie(ctx, chatID, id)
	case "actors":
		b.showActors(ctx, chatID, 1)
	case "directors":
		b.showDirectors(ctx, chatID, 1)
	case "people":
		b.showPeopleSummary(ctx, chatID)
	case "examples":
		b.showExamples(ctx, chatID)
	default:
		slog.Debug("Unknown command", "command", msg.Command(), "chat_id", chatID)
		b.handleHelpCommand(msg)
	}
}

func (b *Bot) handleStartCommand(ctx context.Context, msg *tgbotapi.Message) {
	text := "Hi! I browse the movie database for you.\n\n" +
		"Pick a list below, or just type a genre and/or a year, e.g. \"Drama 1994\"."
	b.sendText(msg.Chat.ID, text, b.createMainMenuKeyboard())
	b.showMovies(ctx, msg.Chat.ID, model.NavState{Page: 1})
}

func (b *Bot) handleHelpCommand(msg *tgbotapi.Message) {
	text := "How to use the bot:\n\n" +
		"/movies [genre] [year] - list movies, optionally filtered\n" +
		"/movie <id> - show one movie\n" +
		"/actors - list actors\n" +
		"/directors - list directors\n" +
		"/people - actors and directors at a glance\n" +
		"/examples - questions the movie assistant can answer\n" +
		"/help - show this help\n\n" +
		"Any other text is used as a genre/year filter."
	b.sendText(msg.Chat.ID, text, b.createMainMenuKeyboard())
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Text {
	case buttonMovies:
		b.showMovies(ctx, msg.Chat.ID, model.NavState{Page: 1})
	case buttonActors:
		b.showActors(ctx, msg.Chat.ID, 1)
	case buttonDirectors:
		b.showDirectors(ctx, msg.Chat.ID, 1)
	default:
		b.processFilterQuery(ctx, msg)
	}
}

func (b *Bot) processFilterQuery(ctx context.Context, msg *tgbotapi.Message) {
	state := parseFilter(msg.Text)
	if state.Genre == "" && state.Year == 0 {
		b.sendText(msg.Chat.ID, "Please type a genre and/or a year, or use the buttons below 👇", b.createMainMenuKeyboard())
		return
	}
	state.Page = 1
	b.showMovies(ctx, msg.Chat.ID, state)
}

// parseFilter reads free text such as "Science Fiction 2010" into a movie
// filter. A plausible year becomes the year, everything else the genre.
func parseFilter(text string) model.NavState {
	var state model.NavState
	var words []string
	for _, field := range strings.Fields(text) {
		if n, ok := parseDecimal(field); ok && n >= minFilterYear && n <= maxFilterYear && state.Year == 0 {
			state.Year = n
			continue
		}
		words = append(words, field)
	}
	state.Genre = strings.Join(words, " ")
	state.View = model.ViewMovies
	return state
}

func parseId(s string) (int, bool) {
	id, ok := parseDecimal(strings.TrimSpace(s))
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseDecimal accepts plain ASCII digits only, so "0x7D0", "1_999" and
// "+5" are rejected and "010" is ten.
func parseDecimal(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

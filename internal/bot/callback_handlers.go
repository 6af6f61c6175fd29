package bot

import (
	"context"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"moviedb-bot/internal/model"
)

// Callback data is "<prefix>:<arg>", except for reset.
const (
	callbackMovie    = "movie"
	callbackActor    = "actor"
	callbackDirector = "director"
	callbackPage     = "page"
	callbackGenre    = "genre"
	callbackReset    = "reset"
)

func (b *Bot) handleCallbackQuery(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		slog.Warn("Received callback without message", "data", query.Data)
		return
	}

	if _, err := b.out.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		slog.Error("Error sending callback response", "error", err)
	}

	chatID := query.Message.Chat.ID
	prefix, arg, hasArg := strings.Cut(query.Data, ":")
	if prefix != callbackReset && !hasArg {
		slog.Warn("Invalid callback format", "data", query.Data)
		return
	}

	switch prefix {
	case callbackMovie, callbackActor, callbackDirector, callbackPage:
		n, ok := parseId(arg)
		if !ok {
			slog.Warn("Invalid callback argument", "data", query.Data)
			return
		}
		switch prefix {
		case callbackMovie:
			b.showMovie(ctx, chatID, n)
		case callbackActor:
			b.showActor(ctx, chatID, n)
		case callbackDirector:
			b.showDirector(ctx, chatID, n)
		case callbackPage:
			b.handlePagination(ctx, chatID, n)
		}
	case callbackGenre:
		b.showMovies(ctx, chatID, model.NavState{View: model.ViewMovies, Genre: arg, Page: 1})
	case callbackReset:
		if err := b.state.DeleteState(ctx, chatID); err != nil {
			slog.Error("Error deleting state from Redis", "error", err)
		}
		b.showMovies(ctx, chatID, model.NavState{Page: 1})
	default:
		slog.Warn("Unknown callback", "data", query.Data)
	}
}

// handlePagination re-renders whichever list the chat was last looking at.
func (b *Bot) handlePagination(ctx context.Context, chatID int64, page int) {
	state, err := b.state.GetState(ctx, chatID)
	if err != nil {
		slog.Error("Error getting state in handlePagination", "error", err)
		b.sendStateExpired(chatID)
		return
	}
	if state == nil {
		b.sendStateExpired(chatID)
		return
	}

	switch state.View {
	case model.ViewActors:
		b.showActors(ctx, chatID, page)
	case model.ViewDirectors:
		b.showDirectors(ctx, chatID, page)
	default:
		state.Page = page
		b.showMovies(ctx, chatID, *state)
	}
}

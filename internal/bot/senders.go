package bot

import (
	"context"
	"html"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sourcegraph/conc"

	"moviedb-bot/internal/api"
	"moviedb-bot/internal/model"
)

// peopleSummaryTop is how many names /people shows per group.
const peopleSummaryTop = 5

func (b *Bot) sendHTML(chatID int64, text string, markup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	if _, err := b.out.Send(msg); err != nil {
		slog.Error("Error sending message", "chat_id", chatID, "error", err)
	}
}

func (b *Bot) sendText(chatID int64, text string, markup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	if _, err := b.out.Send(msg); err != nil {
		slog.Error("Error sending message", "chat_id", chatID, "error", err)
	}
}

func (b *Bot) sendChatAction(chatID int64, action string) {
	if _, err := b.out.Request(tgbotapi.NewChatAction(chatID, action)); err != nil {
		slog.Error("Error sending chat action", "action", action, "error", err)
	}
}

func (b *Bot) sendStateExpired(chatID int64) {
	b.sendText(chatID, "This list has expired. Please open it again from the menu.", b.createMainMenuKeyboard())
}

// sendRequestError renders a failed backend read. what names the resource
// for the user, e.g. "movie".
func (b *Bot) sendRequestError(chatID int64, what string, err error) {
	if api.IsNotFound(err) {
		slog.Warn("Backend resource not found", "what", what, "chat_id", chatID, "error", err)
		b.sendText(chatID, "🤷 Sorry, that "+what+" was not found.", nil)
		return
	}
	slog.Error("Backend request failed", "what", what, "chat_id", chatID, "error", err)
	b.sendText(chatID, "⚠️ Could not load "+what+" right now. Please try again later.", nil)
}

// paginate clamps page into [1, pages] and returns the slice bounds for it.
func paginate(total, page, size int) (start, end, current, pages int) {
	pages = (total + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	current = page
	if current < 1 {
		current = 1
	}
	if current > pages {
		current = pages
	}
	start = (current - 1) * size
	end = start + size
	if end > total {
		end = total
	}
	return start, end, current, pages
}

func (b *Bot) saveState(ctx context.Context, chatID int64, state model.NavState) {
	if err := b.state.SaveState(ctx, chatID, state); err != nil {
		slog.Error("Error saving state to Redis", "chat_id", chatID, "error", err)
	}
}

func (b *Bot) showMovies(ctx context.Context, chatID int64, state model.NavState) {
	start := time.Now()
	movies, err := b.movies.List(ctx, api.MovieFilter{Genre: state.Genre, Year: state.Year, Limit: b.opts.MovieLimit})
	if err != nil {
		b.sendRequestError(chatID, "movie list", err)
		return
	}
	slog.Debug("showMovies fetched",
		"chat_id", chatID,
		"filter", formatFilter(state),
		"movies", len(movies),
		"duration", time.Since(start).Seconds())

	state.View = model.ViewMovies
	filtered := state.Genre != "" || state.Year != 0
	if len(movies) == 0 {
		state.Page = 1
		b.saveState(ctx, chatID, state)
		var markup interface{}
		if rows := b.createGenreRows(filtered); len(rows) > 0 {
			markup = tgbotapi.NewInlineKeyboardMarkup(rows...)
		}
		b.sendHTML(chatID, "No movies found for "+html.EscapeString(formatFilter(state))+".", markup)
		return
	}

	from, to, page, pages := paginate(len(movies), state.Page, b.opts.PageSize)
	state.Page = page
	b.saveState(ctx, chatID, state)

	b.sendHTML(chatID,
		formatMovieList(movies[from:to], from, state, pages),
		b.createMovieListKeyboard(movies[from:to], page, pages, filtered))
}

func (b *Bot) showMovie(ctx context.Context, chatID int64, id int) {
	b.sendChatAction(chatID, tgbotapi.ChatTyping)

	movie, err := b.movies.Get(ctx, id)
	if err != nil {
		b.sendRequestError(chatID, "movie", err)
		return
	}

	backPage := 1
	if state, err := b.state.GetState(ctx, chatID); err == nil && state != nil {
		backPage = state.Page
	}
	b.sendHTML(chatID, formatMovieDetail(movie), b.createMovieDetailKeyboard(movie, backPage))
}

func (b *Bot) showActors(ctx context.Context, chatID int64, page int) {
	actors, err := b.actors.List(ctx)
	if err != nil {
		b.sendRequestError(chatID, "actor list", err)
		return
	}
	people := make([]model.Person, len(actors))
	for i, a := range actors {
		people[i] = model.Person(a)
	}
	b.showPeople(ctx, chatID, model.ViewActors, "🎭 Actors", callbackActor, people, page)
}

func (b *Bot) showDirectors(ctx context.Context, chatID int64, page int) {
	directors, err := b.directors.List(ctx)
	if err != nil {
		b.sendRequestError(chatID, "director list", err)
		return
	}
	people := make([]model.Person, len(directors))
	for i, d := range directors {
		people[i] = model.Person(d)
	}
	b.showPeople(ctx, chatID, model.ViewDirectors, "🎥 Directors", callbackDirector, people, page)
}

func (b *Bot) showPeople(ctx context.Context, chatID int64, view, title, prefix string, people []model.Person, page int) {
	if len(people) == 0 {
		b.sendText(chatID, "Nobody here yet.", nil)
		return
	}
	from, to, page, pages := paginate(len(people), page, b.opts.PageSize)
	b.saveState(ctx, chatID, model.NavState{View: view, Page: page})
	b.sendHTML(chatID,
		formatPeopleList(title, people[from:to], from, page, pages),
		b.createPeopleKeyboard(people[from:to], prefix, page, pages))
}

// showPeopleSummary loads actors and directors side by side.
func (b *Bot) showPeopleSummary(ctx context.Context, chatID int64) {
	var (
		actors       []model.Actor
		directors    []model.Director
		actorsErr    error
		directorsErr error
	)
	var wg conc.WaitGroup
	wg.Go(func() { actors, actorsErr = b.actors.List(ctx) })
	wg.Go(func() { directors, directorsErr = b.directors.List(ctx) })
	wg.Wait()

	if actorsErr != nil {
		b.sendRequestError(chatID, "actor list", actorsErr)
		return
	}
	if directorsErr != nil {
		b.sendRequestError(chatID, "director list", directorsErr)
		return
	}
	b.sendHTML(chatID, formatPeopleSummary(actors, directors, peopleSummaryTop), b.createMainMenuKeyboard())
}

func (b *Bot) showExamples(ctx context.Context, chatID int64) {
	examples, err := b.examples.Examples(ctx)
	if err != nil {
		b.sendRequestError(chatID, "example questions", err)
		return
	}
	if len(examples) == 0 {
		b.sendText(chatID, "No example questions yet.", nil)
		return
	}
	b.sendHTML(chatID, formatExamples(examples), nil)
}

func (b *Bot) showActor(ctx context.Context, chatID int64, id int) {
	b.sendChatAction(chatID, tgbotapi.ChatTyping)
	actor, err := b.actors.Get(ctx, id)
	if err != nil {
		b.sendRequestError(chatID, "actor", err)
		return
	}
	b.sendPerson(chatID, "🎭", model.Person(*actor))
}

func (b *Bot) showDirector(ctx context.Context, chatID int64, id int) {
	b.sendChatAction(chatID, tgbotapi.ChatTyping)
	director, err := b.directors.Get(ctx, id)
	if err != nil {
		b.sendRequestError(chatID, "director", err)
		return
	}
	b.sendPerson(chatID, "🎥", model.Person(*director))
}

func (b *Bot) sendPerson(chatID int64, icon string, p model.Person) {
	var markup interface{}
	if len(p.Movies) > 0 {
		markup = b.createCreditsKeyboard(p.Movies)
	}
	b.sendHTML(chatID, formatPersonDetail(icon, p), markup)
}

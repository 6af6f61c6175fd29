package bot

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"moviedb-bot/internal/model"
)

const (
	buttonMovies    = "🎬 Movies"
	buttonActors    = "🎭 Actors"
	buttonDirectors = "🎥 Directors"
)

func (b *Bot) createMainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonMovies),
			tgbotapi.NewKeyboardButton(buttonActors),
			tgbotapi.NewKeyboardButton(buttonDirectors),
		),
	)
}

func (b *Bot) createPaginationRow(page, pages int) []tgbotapi.InlineKeyboardButton {
	var buttons []tgbotapi.InlineKeyboardButton
	if page > 1 {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData("⬅", callbackPage+":"+strconv.Itoa(page-1)))
	}
	if page < pages {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData("➡", callbackPage+":"+strconv.Itoa(page+1)))
	}
	return buttons
}

func (b *Bot) createMovieListKeyboard(movies []model.Movie, page, pages int, filtered bool) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, movie := range movies {
		label := truncate(fmt.Sprintf("%s (%d)", movie.Title, movie.ReleaseYear), buttonLabelLimit)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, callbackMovie+":"+strconv.Itoa(movie.Id)),
		))
	}
	if nav := b.createPaginationRow(page, pages); len(nav) > 0 {
		rows = append(rows, nav)
	}
	rows = append(rows, b.createGenreRows(filtered)...)
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// createGenreRows lays the configured genres out three per row, followed by
// a reset button when a filter is active.
func (b *Bot) createGenreRows(filtered bool) [][]tgbotapi.InlineKeyboardButton {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, genre := range b.opts.Genres {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(genre, callbackGenre+":"+genre))
		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	if filtered {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✖ Clear filter", callbackReset),
		))
	}
	return rows
}

func (b *Bot) createMovieDetailKeyboard(movie *model.MovieDetail, backPage int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	if movie.DirectorId != nil && movie.DirectorName != "" {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎥 "+truncate(movie.DirectorName, buttonLabelLimit),
				callbackDirector+":"+strconv.Itoa(*movie.DirectorId)),
		))
	}

	var castRow []tgbotapi.InlineKeyboardButton
	for i, actor := range movie.Actors {
		if i == maxCastButtons {
			break
		}
		castRow = append(castRow, tgbotapi.NewInlineKeyboardButtonData(
			truncate(actor.Name, buttonLabelLimit), callbackActor+":"+strconv.Itoa(actor.Id)))
		if len(castRow) == 2 {
			rows = append(rows, castRow)
			castRow = nil
		}
	}
	if len(castRow) > 0 {
		rows = append(rows, castRow)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅ Back to list", callbackPage+":"+strconv.Itoa(backPage)),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (b *Bot) createPeopleKeyboard(people []model.Person, prefix string, page, pages int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, p := range people {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(truncate(p.Name, buttonLabelLimit), prefix+":"+strconv.Itoa(p.Id)),
		))
	}
	if nav := b.createPaginationRow(page, pages); len(nav) > 0 {
		rows = append(rows, nav)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (b *Bot) createCreditsKeyboard(credits []model.MovieCredit) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, credit := range credits {
		if i == b.opts.PageSize {
			break
		}
		label := truncate(fmt.Sprintf("%s (%d)", credit.Title, credit.ReleaseYear), buttonLabelLimit)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, callbackMovie+":"+strconv.Itoa(credit.Id)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

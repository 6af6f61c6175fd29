package bot

import (
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"moviedb-bot/internal/model"
)

// Plain-text caps applied before escaping, keeping detail messages well under
// telegramMessageLimit.
const (
	descriptionLimit = 3000
	biographyLimit   = 1500
	refsLimit        = 400
)

var numbers = message.NewPrinter(language.English)

func formatFilter(state model.NavState) string {
	var parts []string
	if state.Genre != "" {
		parts = append(parts, state.Genre)
	}
	if state.Year != 0 {
		parts = append(parts, fmt.Sprintf("%d", state.Year))
	}
	if len(parts) == 0 {
		return "all movies"
	}
	return strings.Join(parts, ", ")
}

func formatMovieLine(index int, movie model.Movie) string {
	line := fmt.Sprintf("%d. <b>%s</b> (%d) ⭐ %.1f",
		index, html.EscapeString(movie.Title), movie.ReleaseYear, movie.Rating)
	if movie.DirectorName != nil && *movie.DirectorName != "" {
		line += " · " + html.EscapeString(*movie.DirectorName)
	}
	if movie.Genres != nil && *movie.Genres != "" {
		line += "\n    <i>" + html.EscapeString(*movie.Genres) + "</i>"
	}
	return line
}

func formatMovieList(movies []model.Movie, offset int, state model.NavState, pages int) string {
	blocks := []string{fmt.Sprintf("🎬 <b>Movies</b>: %s\n", html.EscapeString(formatFilter(state)))}
	for i, movie := range movies {
		blocks = append(blocks, formatMovieLine(offset+i+1, movie))
	}
	if pages > 1 {
		blocks = append(blocks, fmt.Sprintf("\nPage %d/%d", state.Page, pages))
	}
	return fitBlocks(blocks, telegramMessageLimit)
}

func formatMovieDetail(movie *model.MovieDetail) string {
	blocks := []string{fmt.Sprintf("🎬 <b>%s</b> (%d)\n⭐ %.1f", html.EscapeString(movie.Title), movie.ReleaseYear, movie.Rating)}
	if movie.DirectorName != "" {
		blocks = append(blocks, "🎥 "+html.EscapeString(movie.DirectorName))
	}
	if len(movie.Genres) > 0 {
		blocks = append(blocks, "🏷 "+html.EscapeString(truncate(joinRefs(movie.Genres), refsLimit)))
	}
	if len(movie.Actors) > 0 {
		blocks = append(blocks, "👥 "+html.EscapeString(truncate(joinRefs(movie.Actors), refsLimit)))
	}

	var facts []string
	if movie.DurationMinutes != nil {
		facts = append(facts, formatDuration(*movie.DurationMinutes))
	}
	if movie.Language != nil && *movie.Language != "" {
		facts = append(facts, html.EscapeString(*movie.Language))
	}
	if movie.Country != nil && *movie.Country != "" {
		facts = append(facts, html.EscapeString(*movie.Country))
	}
	if len(facts) > 0 {
		blocks = append(blocks, "ℹ️ "+strings.Join(facts, " · "))
	}
	if movie.Budget != nil {
		blocks = append(blocks, "💰 Budget: "+formatMoney(*movie.Budget))
	}
	if movie.Revenue != nil {
		blocks = append(blocks, "💵 Revenue: "+formatMoney(*movie.Revenue))
	}
	if movie.EnrichmentScore != nil || movie.PopularityTier != nil {
		blocks = append(blocks, "📈 "+formatPopularity(movie.EnrichmentScore, movie.PopularityTier))
	}
	if movie.Description != "" {
		blocks = append(blocks, "\n📖 "+html.EscapeString(truncate(movie.Description, descriptionLimit)))
	}
	return fitBlocks(blocks, telegramMessageLimit)
}

func formatPeopleList(title string, people []model.Person, offset, page, pages int) string {
	blocks := []string{fmt.Sprintf("<b>%s</b>\n", title)}
	for i, p := range people {
		line := fmt.Sprintf("%d. %s", offset+i+1, html.EscapeString(p.Name))
		if p.MovieCount != nil {
			line += fmt.Sprintf(" (%s)", pluralMovies(*p.MovieCount))
		}
		blocks = append(blocks, line)
	}
	if pages > 1 {
		blocks = append(blocks, fmt.Sprintf("\nPage %d/%d", page, pages))
	}
	return fitBlocks(blocks, telegramMessageLimit)
}

func formatPersonDetail(icon string, p model.Person) string {
	blocks := []string{fmt.Sprintf("%s <b>%s</b>", icon, html.EscapeString(p.Name))}
	switch {
	case p.BirthDate != nil && *p.BirthDate != "":
		blocks = append(blocks, "🎂 "+html.EscapeString(*p.BirthDate))
	case p.BirthYear != nil:
		blocks = append(blocks, fmt.Sprintf("🎂 %d", *p.BirthYear))
	}
	if p.Nationality != nil && *p.Nationality != "" {
		blocks = append(blocks, "🌍 "+html.EscapeString(*p.Nationality))
	}
	if p.Biography != nil && *p.Biography != "" {
		blocks = append(blocks, "\n"+html.EscapeString(truncate(*p.Biography, biographyLimit)))
	}
	if len(p.Movies) > 0 {
		blocks = append(blocks, "\n<b>Movies</b>")
		for _, m := range p.Movies {
			blocks = append(blocks, fmt.Sprintf("• %s (%d) ⭐ %.1f", html.EscapeString(m.Title), m.ReleaseYear, m.Rating))
		}
	}
	return fitBlocks(blocks, telegramMessageLimit)
}

func formatPeopleSummary(actors []model.Actor, directors []model.Director, top int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🎭 <b>%d actors</b>\n", len(actors))
	for i, a := range actors {
		if i == top {
			break
		}
		fmt.Fprintf(&sb, "• %s\n", html.EscapeString(a.Name))
	}
	fmt.Fprintf(&sb, "\n🎥 <b>%d directors</b>\n", len(directors))
	for i, d := range directors {
		if i == top {
			break
		}
		fmt.Fprintf(&sb, "• %s\n", html.EscapeString(d.Name))
	}
	return sb.String()
}

func formatExamples(examples []string) string {
	blocks := []string{"💬 <b>Questions the movie assistant understands</b>\n"}
	for _, e := range examples {
		blocks = append(blocks, "• "+html.EscapeString(e))
	}
	return fitBlocks(blocks, telegramMessageLimit)
}

// fitBlocks joins rendered HTML blocks with newlines, dropping whole trailing
// blocks once limit runes would be exceeded, so no tag or entity is cut. The
// first block is always kept.
func fitBlocks(blocks []string, limit int) string {
	const more = "…"
	var sb strings.Builder
	n := 0
	for i, block := range blocks {
		size := utf8.RuneCountInString(block) + 1
		if i > 0 && n+size+utf8.RuneCountInString(more) > limit {
			sb.WriteString(more)
			return sb.String()
		}
		sb.WriteString(block)
		sb.WriteString("\n")
		n += size
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func joinRefs(refs []model.Ref) string {
	names := make([]string, 0, len(refs))
	for _, r := range refs {
		names = append(names, r.Name)
	}
	return strings.Join(names, ", ")
}

func formatMoney(v float64) string {
	return numbers.Sprintf("$%d", int64(v))
}

func formatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}

func formatPopularity(score *float64, tier *string) string {
	switch {
	case score != nil && tier != nil:
		return fmt.Sprintf("%s (%.1f)", html.EscapeString(*tier), *score)
	case score != nil:
		return fmt.Sprintf("%.1f", *score)
	default:
		return html.EscapeString(*tier)
	}
}

func pluralMovies(n int) string {
	if n == 1 {
		return "1 movie"
	}
	return numbers.Sprintf("%d movies", n)
}

// truncate cuts s to at most limit runes, marking the cut with "...".
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

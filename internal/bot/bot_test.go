package bot

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviedb-bot/internal/api"
	"moviedb-bot/internal/model"
)

type fakeSender struct {
	mu       sync.Mutex
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, c)
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func (f *fakeSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeSender) messages() []tgbotapi.MessageConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []tgbotapi.MessageConfig
	for _, c := range f.sent {
		if msg, ok := c.(tgbotapi.MessageConfig); ok {
			out = append(out, msg)
		}
	}
	return out
}

func (f *fakeSender) last(t *testing.T) tgbotapi.MessageConfig {
	t.Helper()
	msgs := f.messages()
	require.NotEmpty(t, msgs, "no messages sent")
	return msgs[len(msgs)-1]
}

func (f *fakeSender) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = nil
	f.requests = nil
}

var errNotFound = &api.StatusError{Method: http.MethodGet, StatusCode: http.StatusNotFound, Status: "404 Not Found"}

type fakeMovies struct {
	mu      sync.Mutex
	movies  []model.Movie
	details map[int]*model.MovieDetail
	err     error
	filters []api.MovieFilter
}

func (f *fakeMovies) List(_ context.Context, filter api.MovieFilter) ([]model.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = append(f.filters, filter)
	if f.err != nil {
		return nil, f.err
	}
	return f.movies, nil
}

func (f *fakeMovies) Get(_ context.Context, id int) (*model.MovieDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	movie, ok := f.details[id]
	if !ok {
		return nil, errNotFound
	}
	return movie, nil
}

func (f *fakeMovies) lastFilter(t *testing.T) api.MovieFilter {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.filters)
	return f.filters[len(f.filters)-1]
}

type fakePeople[T any] struct {
	list []T
	byId map[int]*T
	err  error
}

func (f *fakePeople[T]) List(context.Context) ([]T, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func (f *fakePeople[T]) Get(_ context.Context, id int) (*T, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.byId[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

type fakeExamples struct {
	list []string
	err  error
}

func (f *fakeExamples) Examples(context.Context) ([]string, error) {
	return f.list, f.err
}

type memState struct {
	mu     sync.Mutex
	states map[int64]model.NavState
}

func (m *memState) SaveState(_ context.Context, chatID int64, state model.NavState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[chatID] = state
	return nil
}

func (m *memState) GetState(_ context.Context, chatID int64) (*model.NavState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.states[chatID]
	if !ok {
		return nil, nil
	}
	return &state, nil
}

func (m *memState) DeleteState(_ context.Context, chatID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, chatID)
	return nil
}

type testBot struct {
	*Bot
	out       *fakeSender
	movies    *fakeMovies
	actors    *fakePeople[model.Actor]
	directors *fakePeople[model.Director]
	examples  *fakeExamples
	state     *memState
}

const chatID int64 = 1001

func ptr[T any](v T) *T { return &v }

func newTestBot(t *testing.T) *testBot {
	t.Helper()
	tb := &testBot{
		out: &fakeSender{},
		movies: &fakeMovies{
			movies: []model.Movie{
				{Id: 1, Title: "The Shawshank Redemption", ReleaseYear: 1994, Rating: 9.3, DirectorName: ptr("Frank Darabont")},
				{Id: 2, Title: "Pulp Fiction", ReleaseYear: 1994, Rating: 8.9, Genres: ptr("Crime, Drama")},
				{Id: 3, Title: "Forrest Gump", ReleaseYear: 1994, Rating: 8.8},
				{Id: 42, Title: "Inception", ReleaseYear: 2010, Rating: 8.8},
				{Id: 7, Title: "Tom & Jerry <3", ReleaseYear: 2021, Rating: 5.1},
			},
			details: map[int]*model.MovieDetail{
				42: {
					Id: 42, Title: "Inception", ReleaseYear: 2010, Rating: 8.8,
					Description:     "A thief who steals corporate secrets through dreams.",
					DurationMinutes: ptr(148),
					Budget:          ptr(160000000.0),
					Revenue:         ptr(836800000.0),
					Language:        ptr("English"),
					PopularityTier:  ptr("blockbuster"),
					EnrichmentScore: ptr(92.5),
					DirectorId:      ptr(1),
					DirectorName:    "Christopher Nolan",
					Genres:          []model.Ref{{Id: 3, Name: "Sci-Fi"}, {Id: 1, Name: "Action"}},
					Actors:          []model.Ref{{Id: 5, Name: "Leonardo DiCaprio"}, {Id: 8, Name: "Tom Hardy"}},
				},
			},
		},
		actors: &fakePeople[model.Actor]{
			list: []model.Actor{
				{Id: 5, Name: "Leonardo DiCaprio", MovieCount: ptr(3)},
				{Id: 8, Name: "Tom Hardy", MovieCount: ptr(1)},
				{Id: 9, Name: "Tim Robbins"},
			},
			byId: map[int]*model.Actor{
				5: {Id: 5, Name: "Leonardo DiCaprio", BirthYear: ptr(1974), Nationality: ptr("American"),
					Movies: []model.MovieCredit{{Id: 42, Title: "Inception", ReleaseYear: 2010, Rating: 8.8}}},
			},
		},
		directors: &fakePeople[model.Director]{
			list: []model.Director{{Id: 1, Name: "Christopher Nolan", MovieCount: ptr(1)}},
			byId: map[int]*model.Director{
				1: {Id: 1, Name: "Christopher Nolan", Biography: ptr("Master of non-linear storytelling")},
			},
		},
		examples: &fakeExamples{list: []string{
			"Find movies connected to Leonardo DiCaprio",
			"What genres does Inception belong to?",
		}},
		state: &memState{states: map[int64]model.NavState{}},
	}
	tb.Bot = newBot(tb.out, tb.state, tb.movies, tb.actors, tb.directors, tb.examples, Options{
		PageSize: 2,
		Genres:   []string{"Drama", "Action", "Crime", "Horror"},
	})
	t.Cleanup(tb.Bot.cancel)
	return tb
}

func (tb *testBot) command(text string) {
	name := strings.SplitN(text, " ", 2)[0]
	tb.handleUpdate(context.Background(), tgbotapi.Update{Message: &tgbotapi.Message{
		Chat:     &tgbotapi.Chat{ID: chatID},
		Text:     text,
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(name)}},
	}})
}

func (tb *testBot) text(text string) {
	tb.handleUpdate(context.Background(), tgbotapi.Update{Message: &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: chatID},
		Text: text,
	}})
}

func (tb *testBot) click(data string) {
	tb.handleUpdate(context.Background(), tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb-1",
		Data:    data,
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: chatID}},
	}})
}

func (tb *testBot) savedState(t *testing.T) model.NavState {
	t.Helper()
	state, err := tb.state.GetState(context.Background(), chatID)
	require.NoError(t, err)
	require.NotNil(t, state, "no state saved")
	return *state
}

func callbacks(t *testing.T, msg tgbotapi.MessageConfig) []string {
	t.Helper()
	markup, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok, "expected inline keyboard, got %T", msg.ReplyMarkup)
	var out []string
	for _, row := range markup.InlineKeyboard {
		for _, button := range row {
			if button.CallbackData != nil {
				out = append(out, *button.CallbackData)
			}
		}
	}
	return out
}

func TestMoviesCommandWithFilter(t *testing.T) {
	tb := newTestBot(t)

	tb.command("/movies Drama 1994")

	assert.Equal(t, api.MovieFilter{Genre: "Drama", Year: 1994}, tb.movies.lastFilter(t))
	assert.Equal(t, model.NavState{View: model.ViewMovies, Genre: "Drama", Year: 1994, Page: 1}, tb.savedState(t))

	msg := tb.out.last(t)
	assert.Equal(t, chatID, msg.ChatID)
	assert.Equal(t, tgbotapi.ModeHTML, msg.ParseMode)
	assert.Contains(t, msg.Text, "Drama, 1994")
	assert.Contains(t, msg.Text, "1. <b>The Shawshank Redemption</b> (1994) ⭐ 9.3 · Frank Darabont")
	assert.Contains(t, msg.Text, "2. <b>Pulp Fiction</b>")
	assert.Contains(t, msg.Text, "<i>Crime, Drama</i>")
	assert.NotContains(t, msg.Text, "Forrest Gump")
	assert.Contains(t, msg.Text, "Page 1/3")

	cbs := callbacks(t, msg)
	assert.Equal(t, []string{"movie:1", "movie:2", "page:2"}, cbs[:3])
	assert.NotContains(t, cbs, "page:0")
	assert.Contains(t, cbs, "genre:Horror")
	assert.Contains(t, cbs, callbackReset)
}

func TestMoviesWithoutFilterSendsEmptyFilter(t *testing.T) {
	tb := newTestBot(t)

	tb.command("/movies")

	assert.Equal(t, api.MovieFilter{}, tb.movies.lastFilter(t))
	msg := tb.out.last(t)
	assert.Contains(t, msg.Text, "all movies")
	assert.NotContains(t, callbacks(t, msg), callbackReset)
}

func TestMoviePagination(t *testing.T) {
	tb := newTestBot(t)
	tb.command("/movies Drama")
	tb.out.reset()

	tb.click("page:2")

	assert.Equal(t, api.MovieFilter{Genre: "Drama"}, tb.movies.lastFilter(t))
	assert.Equal(t, 2, tb.savedState(t).Page)
	msg := tb.out.last(t)
	assert.Contains(t, msg.Text, "3. <b>Forrest Gump</b>")
	assert.Contains(t, msg.Text, "4. <b>Inception</b>")
	assert.Equal(t, []string{"movie:3", "movie:42", "page:1", "page:3"}, callbacks(t, msg)[:4])

	tb.click("page:99")
	msg = tb.out.last(t)
	assert.Equal(t, 3, tb.savedState(t).Page)
	assert.Contains(t, msg.Text, "5. <b>Tom &amp; Jerry &lt;3</b>")
	assert.Contains(t, msg.Text, "Page 3/3")

	require.NotEmpty(t, tb.out.requests)
	_, acked := tb.out.requests[0].(tgbotapi.CallbackConfig)
	assert.True(t, acked, "callback should be answered")
}

func TestPaginationWithoutState(t *testing.T) {
	tb := newTestBot(t)

	tb.click("page:2")

	assert.Contains(t, tb.out.last(t).Text, "expired")
	assert.Empty(t, tb.movies.filters)
}

func TestNoMoviesFound(t *testing.T) {
	tb := newTestBot(t)
	tb.movies.movies = nil

	tb.text("Horror 1931")

	assert.Equal(t, api.MovieFilter{Genre: "Horror", Year: 1931}, tb.movies.lastFilter(t))
	assert.Contains(t, tb.out.last(t).Text, "No movies found for Horror, 1931")
}

func TestFreeTextFilter(t *testing.T) {
	tb := newTestBot(t)

	tb.text("Science Fiction 2010")
	assert.Equal(t, api.MovieFilter{Genre: "Science Fiction", Year: 2010}, tb.movies.lastFilter(t))

	tb.out.reset()
	tb.text("   ")
	assert.Contains(t, tb.out.last(t).Text, "Please type a genre")
	assert.Len(t, tb.movies.filters, 1)
}

func TestGenreAndResetCallbacks(t *testing.T) {
	tb := newTestBot(t)

	tb.click("genre:Crime")
	assert.Equal(t, api.MovieFilter{Genre: "Crime"}, tb.movies.lastFilter(t))
	assert.Equal(t, "Crime", tb.savedState(t).Genre)

	tb.click("reset")
	assert.Equal(t, api.MovieFilter{}, tb.movies.lastFilter(t))
	assert.Equal(t, model.NavState{View: model.ViewMovies, Page: 1}, tb.savedState(t))
}

func TestMovieDetail(t *testing.T) {
	tb := newTestBot(t)

	tb.click("movie:42")

	msg := tb.out.last(t)
	assert.Contains(t, msg.Text, "🎬 <b>Inception</b> (2010)")
	assert.Contains(t, msg.Text, "Christopher Nolan")
	assert.Contains(t, msg.Text, "Sci-Fi, Action")
	assert.Contains(t, msg.Text, "Leonardo DiCaprio, Tom Hardy")
	assert.Contains(t, msg.Text, "2h 28m")
	assert.Contains(t, msg.Text, "$160,000,000")
	assert.Contains(t, msg.Text, "$836,800,000")
	assert.Contains(t, msg.Text, "blockbuster (92.5)")
	assert.Contains(t, msg.Text, "steals corporate secrets")

	assert.Equal(t, []string{"director:1", "actor:5", "actor:8", "page:1"}, callbacks(t, msg))
}

func TestMovieCommand(t *testing.T) {
	tb := newTestBot(t)

	tb.command("/movie 42")
	assert.Contains(t, tb.out.last(t).Text, "Inception")

	tb.command("/movie abc")
	assert.Contains(t, tb.out.last(t).Text, "Usage: /movie <id>")
}

func TestMovieNotFound(t *testing.T) {
	tb := newTestBot(t)

	tb.click("movie:5")

	assert.Equal(t, "🤷 Sorry, that movie was not found.", tb.out.last(t).Text)
}

func TestBackendFailure(t *testing.T) {
	tb := newTestBot(t)
	tb.movies.err = errors.New("dial tcp 127.0.0.1:8000: connection refused")

	tb.command("/movies")
	assert.Contains(t, tb.out.last(t).Text, "Could not load movie list")

	tb.click("movie:42")
	assert.Contains(t, tb.out.last(t).Text, "Could not load movie right now")
}

func TestActorsListAndDetail(t *testing.T) {
	tb := newTestBot(t)

	tb.command("/actors")
	msg := tb.out.last(t)
	assert.Contains(t, msg.Text, "1. Leonardo DiCaprio (3 movies)")
	assert.Contains(t, msg.Text, "2. Tom Hardy (1 movie)")
	assert.Equal(t, []string{"actor:5", "actor:8", "page:2"}, callbacks(t, msg))
	assert.Equal(t, model.NavState{View: model.ViewActors, Page: 1}, tb.savedState(t))

	tb.click("page:2")
	msg = tb.out.last(t)
	assert.Contains(t, msg.Text, "3. Tim Robbins\n")
	assert.Equal(t, []string{"actor:9", "page:1"}, callbacks(t, msg))

	tb.click("actor:5")
	msg = tb.out.last(t)
	assert.Contains(t, msg.Text, "🎭 <b>Leonardo DiCaprio</b>")
	assert.Contains(t, msg.Text, "1974")
	assert.Contains(t, msg.Text, "American")
	assert.Contains(t, msg.Text, "Inception (2010)")
	assert.Equal(t, []string{"movie:42"}, callbacks(t, msg))

	tb.click("actor:404")
	assert.Contains(t, tb.out.last(t).Text, "actor was not found")
}

func TestDirectorsListAndDetail(t *testing.T) {
	tb := newTestBot(t)

	tb.text(buttonDirectors)
	msg := tb.out.last(t)
	assert.Contains(t, msg.Text, "1. Christopher Nolan (1 movie)")
	assert.Equal(t, []string{"director:1"}, callbacks(t, msg))

	tb.click("director:1")
	msg = tb.out.last(t)
	assert.Contains(t, msg.Text, "Master of non-linear storytelling")
	assert.Nil(t, msg.ReplyMarkup)
}

func TestPeopleSummary(t *testing.T) {
	tb := newTestBot(t)

	tb.command("/people")

	msg := tb.out.last(t)
	assert.Contains(t, msg.Text, "3 actors")
	assert.Contains(t, msg.Text, "• Tim Robbins")
	assert.Contains(t, msg.Text, "1 directors")
	assert.Contains(t, msg.Text, "• Christopher Nolan")
}

func TestPeopleSummaryFailure(t *testing.T) {
	tb := newTestBot(t)
	tb.directors.err = errors.New("timeout")

	tb.command("/people")

	assert.Contains(t, tb.out.last(t).Text, "Could not load director list")
}

func TestStartAndHelp(t *testing.T) {
	tb := newTestBot(t)

	tb.command("/start")
	msgs := tb.out.messages()
	require.Len(t, msgs, 2)
	_, isMenu := msgs[0].ReplyMarkup.(tgbotapi.ReplyKeyboardMarkup)
	assert.True(t, isMenu)
	assert.Contains(t, msgs[1].Text, "all movies")

	tb.command("/unknown")
	assert.Contains(t, tb.out.last(t).Text, "/movies [genre] [year]")
}

func TestInvalidCallbacks(t *testing.T) {
	tb := newTestBot(t)

	for _, data := range []string{"movie:abc", "movie", "page:-1", "bogus:1"} {
		tb.click(data)
	}

	assert.Empty(t, tb.out.messages())
	assert.Empty(t, tb.movies.filters)
}

func TestCallbackWithoutMessage(t *testing.T) {
	tb := newTestBot(t)

	tb.handleUpdate(context.Background(), tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{ID: "x", Data: "movie:42"}})

	assert.Empty(t, tb.out.sent)
	assert.Empty(t, tb.out.requests)
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in    string
		genre string
		year  int
	}{
		{"", "", 0},
		{"Drama", "Drama", 0},
		{"1999", "", 1999},
		{"Action 1999", "Action", 1999},
		{"1999 Action", "Action", 1999},
		{"Science   Fiction", "Science Fiction", 0},
		{"Blade Runner 2049 1982", "Blade Runner 1982", 2049},
		{"Top 10", "Top 10", 0},
		{"0x7D0", "0x7D0", 0},
		{"Drama 1_999", "Drama 1_999", 0},
		{"+1999", "+1999", 0},
		{"Drama 01999", "Drama", 1999},
	}
	for _, tt := range tests {
		state := parseFilter(tt.in)
		assert.Equal(t, tt.genre, state.Genre, tt.in)
		assert.Equal(t, tt.year, state.Year, tt.in)
	}
}

func TestParseId(t *testing.T) {
	tests := []struct {
		in   string
		id   int
		want bool
	}{
		{"42", 42, true},
		{" 7 ", 7, true},
		{"010", 10, true},
		{"0", 0, false},
		{"", 0, false},
		{"-3", 0, false},
		{"+5", 0, false},
		{"0x10", 0, false},
		{"1_000", 0, false},
		{"99999999999999999999", 0, false},
	}
	for _, tt := range tests {
		id, ok := parseId(tt.in)
		assert.Equal(t, tt.want, ok, tt.in)
		assert.Equal(t, tt.id, id, tt.in)
	}
}

func TestMovieCommandRejectsNonDecimalId(t *testing.T) {
	tb := newTestBot(t)

	tb.command("/movie 0x2A")

	assert.Equal(t, "Usage: /movie <id>", tb.out.last(t).Text)
}

func TestExamplesCommand(t *testing.T) {
	tb := newTestBot(t)

	tb.command("/examples")

	msg := tb.out.last(t)
	assert.Equal(t, tgbotapi.ModeHTML, msg.ParseMode)
	assert.Contains(t, msg.Text, "• Find movies connected to Leonardo DiCaprio")
	assert.Contains(t, msg.Text, "• What genres does Inception belong to?")
}

func TestExamplesCommandFailure(t *testing.T) {
	tb := newTestBot(t)
	tb.examples.err = errors.New("connection refused")

	tb.command("/examples")

	assert.Contains(t, tb.out.last(t).Text, "Could not load example questions")
}

func TestMovieLimitIsSent(t *testing.T) {
	tb := newTestBot(t)
	tb.opts.MovieLimit = 50

	tb.command("/movies Drama")

	assert.Equal(t, api.MovieFilter{Genre: "Drama", Limit: 50}, tb.movies.lastFilter(t))
}

func TestStopAbortsInFlightRequest(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	client, err := api.NewClient(server.URL)
	require.NoError(t, err)

	out := &fakeSender{}
	b := newBot(out, &memState{states: map[int64]model.NavState{}},
		client.Movies, client.Actors, client.Directors, client.Chat, Options{SendRate: 0.001, SendBurst: 1})

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.handleUpdate(b.ctx, tgbotapi.Update{Message: &tgbotapi.Message{
			Chat:     &tgbotapi.Chat{ID: chatID},
			Text:     "/movies",
			Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len("/movies")}},
		}})
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("backend never saw the request")
	}

	stopped := make(chan struct{})
	go func() {
		b.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(3 * time.Second):
		t.Fatal("Stop blocked on an in-flight backend request")
	}
}

func TestStopReleasesThrottledSend(t *testing.T) {
	tb := newTestBot(t)
	out := &fakeSender{}
	b := newBot(out, tb.state, tb.movies, tb.actors, tb.directors, tb.examples, Options{SendRate: 0.001, SendBurst: 1})

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.handleUpdate(b.ctx, tgbotapi.Update{Message: &tgbotapi.Message{
			Chat:     &tgbotapi.Chat{ID: chatID},
			Text:     "/start",
			Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len("/start")}},
		}})
	}()

	// /start sends two messages; the greeting takes the only token.
	require.Eventually(t, func() bool {
		out.mu.Lock()
		defer out.mu.Unlock()
		return len(out.sent) == 1
	}, 3*time.Second, 10*time.Millisecond)

	stopped := make(chan struct{})
	go func() {
		b.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(3 * time.Second):
		t.Fatal("Stop blocked on a throttled send")
	}
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		total, page, size              int
		start, end, current, wantPages int
	}{
		{total: 5, page: 1, size: 2, start: 0, end: 2, current: 1, wantPages: 3},
		{total: 5, page: 3, size: 2, start: 4, end: 5, current: 3, wantPages: 3},
		{total: 5, page: 9, size: 2, start: 4, end: 5, current: 3, wantPages: 3},
		{total: 5, page: 0, size: 2, start: 0, end: 2, current: 1, wantPages: 3},
		{total: 0, page: 1, size: 2, start: 0, end: 0, current: 1, wantPages: 1},
		{total: 4, page: 2, size: 2, start: 2, end: 4, current: 2, wantPages: 2},
	}
	for _, tt := range tests {
		start, end, current, pages := paginate(tt.total, tt.page, tt.size)
		assert.Equal(t, []int{tt.start, tt.end, tt.current, tt.wantPages}, []int{start, end, current, pages}, "%+v", tt)
	}
}

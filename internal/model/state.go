package model

const (
	ViewMovies    = "movies"
	ViewActors    = "actors"
	ViewDirectors = "directors"
)

// NavState is what a chat is currently looking at. It only holds the
// filter used to re-issue a list request, never backend records.
type NavState struct {
	View  string `json:"view"`
	Genre string `json:"genre,omitempty"`
	Year  int    `json:"year,omitempty"`
	Page  int    `json:"page"`
}

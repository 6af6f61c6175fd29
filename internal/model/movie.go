package model

// Movie is the summary shape returned by the movie list endpoint.
// Optional fields are nil when the backend omits them.
type Movie struct {
	Id              int      `json:"id"`
	Title           string   `json:"title"`
	ReleaseYear     int      `json:"release_year"`
	Rating          float64  `json:"rating"`
	Description     string   `json:"description"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
	Budget          *float64 `json:"budget,omitempty"`
	Revenue         *float64 `json:"revenue,omitempty"`
	Language        *string  `json:"language,omitempty"`
	Country         *string  `json:"country,omitempty"`
	EnrichmentScore *float64 `json:"enrichment_score,omitempty"`
	PopularityTier  *string  `json:"popularity_tier,omitempty"`
	DirectorName    *string  `json:"director_name,omitempty"`
	// Genres and Actors are comma-joined names.
	Genres *string `json:"genres,omitempty"`
	Actors *string `json:"actors,omitempty"`
}

// MovieDetail is the shape returned for a single movie. Genres and Actors
// are ordered id/name pairs instead of joined strings.
type MovieDetail struct {
	Id              int      `json:"id"`
	Title           string   `json:"title"`
	ReleaseYear     int      `json:"release_year"`
	Rating          float64  `json:"rating"`
	Description     string   `json:"description"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
	Budget          *float64 `json:"budget,omitempty"`
	Revenue         *float64 `json:"revenue,omitempty"`
	Language        *string  `json:"language,omitempty"`
	Country         *string  `json:"country,omitempty"`
	EnrichmentScore *float64 `json:"enrichment_score,omitempty"`
	PopularityTier  *string  `json:"popularity_tier,omitempty"`
	DirectorId      *int     `json:"director_id,omitempty"`
	DirectorName    string   `json:"director_name"`
	Genres          []Ref    `json:"genres"`
	Actors          []Ref    `json:"actors"`
}

type Ref struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

// MovieCredit is a movie as listed on an actor or director detail record.
type MovieCredit struct {
	Id              int      `json:"id"`
	Title           string   `json:"title"`
	ReleaseYear     int      `json:"release_year"`
	Rating          float64  `json:"rating"`
	EnrichmentScore *float64 `json:"enrichment_score,omitempty"`
	PopularityTier  *string  `json:"popularity_tier,omitempty"`
}

type Health struct {
	Status string `json:"status"`
}

// ChatExamples lists sample questions the backend's chat assistant answers.
type ChatExamples struct {
	Examples []string `json:"examples"`
}

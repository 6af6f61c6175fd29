package model

// Person holds the fields shared by actors and directors. MovieCount is set
// on list responses, the biography fields and Movies on detail responses.
type Person struct {
	Id          int           `json:"id"`
	Name        string        `json:"name"`
	MovieCount  *int          `json:"movie_count,omitempty"`
	BirthDate   *string       `json:"birth_date,omitempty"`
	BirthYear   *int          `json:"birth_year,omitempty"`
	Nationality *string       `json:"nationality,omitempty"`
	Biography   *string       `json:"biography,omitempty"`
	Movies      []MovieCredit `json:"movies,omitempty"`
}

// Actor and Director share a shape but not an id space.
type Actor Person

type Director Person

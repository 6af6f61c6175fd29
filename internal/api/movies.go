package api

import (
	"context"
	"net/url"
	"strconv"

	"moviedb-bot/internal/model"
)

// MovieFilter narrows Movies.List. Zero values mean "not set" and are never
// sent, so Year 0 and an empty Genre both mean no filter.
type MovieFilter struct {
	Genre string
	Year  int
	// Limit caps the result size. The backend accepts 1..1000 and defaults to 100.
	Limit int
}

func (f MovieFilter) values() url.Values {
	params := url.Values{}
	if f.Genre != "" {
		params.Set("genre", f.Genre)
	}
	if f.Year != 0 {
		params.Set("year", strconv.Itoa(f.Year))
	}
	if f.Limit > 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}
	return params
}

type MovieService struct {
	client *Client
}

// List returns every movie matching f in backend order.
func (s *MovieService) List(ctx context.Context, f MovieFilter) ([]model.Movie, error) {
	var movies []model.Movie
	if err := s.client.get(ctx, "/api/movies", f.values(), &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (s *MovieService) Get(ctx context.Context, id int) (*model.MovieDetail, error) {
	var movie model.MovieDetail
	if err := s.client.get(ctx, "/api/movies/"+strconv.Itoa(id), nil, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

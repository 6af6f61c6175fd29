package api

import (
	"context"
	"strconv"

	"moviedb-bot/internal/model"
)

type ActorService struct {
	client *Client
}

func (s *ActorService) List(ctx context.Context) ([]model.Actor, error) {
	var actors []model.Actor
	if err := s.client.get(ctx, "/api/actors", nil, &actors); err != nil {
		return nil, err
	}
	return actors, nil
}

func (s *ActorService) Get(ctx context.Context, id int) (*model.Actor, error) {
	var actor model.Actor
	if err := s.client.get(ctx, "/api/actors/"+strconv.Itoa(id), nil, &actor); err != nil {
		return nil, err
	}
	return &actor, nil
}

type DirectorService struct {
	client *Client
}

func (s *DirectorService) List(ctx context.Context) ([]model.Director, error) {
	var directors []model.Director
	if err := s.client.get(ctx, "/api/directors", nil, &directors); err != nil {
		return nil, err
	}
	return directors, nil
}

func (s *DirectorService) Get(ctx context.Context, id int) (*model.Director, error) {
	var director model.Director
	if err := s.client.get(ctx, "/api/directors/"+strconv.Itoa(id), nil, &director); err != nil {
		return nil, err
	}
	return &director, nil
}

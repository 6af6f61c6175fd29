package api

import (
	"context"

	"moviedb-bot/internal/model"
)

// ChatService covers the read side of the backend's chat assistant. Sending
// a question is a POST with a body, which this client never issues.
type ChatService struct {
	client *Client
}

// Examples returns the sample questions in backend order.
func (s *ChatService) Examples(ctx context.Context) ([]string, error) {
	var resp model.ChatExamples
	if err := s.client.get(ctx, "/api/chat/examples", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Examples, nil
}

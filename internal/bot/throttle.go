package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

// throttledSender keeps outgoing traffic under Telegram's per-bot flood limit.
type throttledSender struct {
	ctx     context.Context
	next    sender
	limiter *rate.Limiter
}

func newThrottledSender(ctx context.Context, next sender, perSecond float64, burst int) *throttledSender {
	if burst < 1 {
		burst = 1
	}
	return &throttledSender{
		ctx:     ctx,
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

func (s *throttledSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if err := s.limiter.Wait(s.ctx); err != nil {
		return tgbotapi.Message{}, err
	}
	return s.next.Send(c)
}

func (s *throttledSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	if err := s.limiter.Wait(s.ctx); err != nil {
		return nil, err
	}
	return s.next.Request(c)
}

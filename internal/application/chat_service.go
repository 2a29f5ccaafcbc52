package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

// ErrChatUnavailable is returned when no generation client is configured.
var ErrChatUnavailable = errors.New("chat is not configured")

// Generator abstracts the Gemini client for testing.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// ChatService forwards prompts to the hosted generation API.
type ChatService struct {
	Gen    Generator
	Logger *logrus.Logger
}

func NewChatService(gen Generator, logger *logrus.Logger) *ChatService {
	return &ChatService{Gen: gen, Logger: logger}
}

func (s *ChatService) Generate(ctx context.Context, prompt string) (string, error) {
	if s.Gen == nil {
		return "", ErrChatUnavailable
	}
	text, err := s.Gen.GenerateContent(ctx, prompt)
	if err != nil {
		s.Logger.WithError(err).Error("generation request failed")
		return "", err
	}
	return text, nil
}

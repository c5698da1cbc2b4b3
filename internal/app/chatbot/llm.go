package chatbot

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog"

	"gametracker/internal/pkg/logx"
)

// SystemPrompt frames every LLM request.
const SystemPrompt = "You are a friendly gaming assistant. Answer questions about video games, strategies and achievements in at most four sentences. Politely decline unrelated topics."

// ArkConfig selects an Ark-hosted model.
type ArkConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Region  string
}

// Enabled reports whether the model and credentials are present.
func (c ArkConfig) Enabled() bool {
	return c.APIKey != "" && c.Model != ""
}

// generator is the part of model.BaseChatModel the responder uses.
type generator interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// LLM answers through a chat model and falls back when the model fails or returns
// nothing.
type LLM struct {
	model    generator
	fallback Responder
	logger   zerolog.Logger
}

// NewArk builds an LLM responder backed by an Ark chat model.
func NewArk(ctx context.Context, cfg ArkConfig, fallback Responder) (*LLM, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("ark model or api key missing")
	}

	chatModel, err := ark.NewChatModel(ctx, &ark.ChatModelConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
		Region:  cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create ark chat model: %w", err)
	}

	return newLLM(chatModel, fallback), nil
}

func newLLM(g generator, fallback Responder) *LLM {
	return &LLM{model: g, fallback: fallback, logger: logx.Component("chatbot")}
}

// Answer sends the system prompt and the question as a fresh two-message conversation.
func (l *LLM) Answer(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}

	msg, err := l.model.Generate(ctx, []*schema.Message{
		schema.SystemMessage(SystemPrompt),
		schema.UserMessage(question),
	})
	if err == nil && msg != nil && strings.TrimSpace(msg.Content) != "" {
		return strings.TrimSpace(msg.Content), nil
	}

	if err != nil {
		l.logger.Warn().Err(err).Msg("llm answer failed, using fallback")
	}
	if l.fallback == nil {
		if err == nil {
			err = fmt.Errorf("empty model response")
		}
		return "", err
	}
	return l.fallback.Answer(ctx, question)
}

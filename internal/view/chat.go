package view

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"gametracker/internal/pkg/logx"
)

// Asker sends one chatbot question. *client.ChatbotAPI satisfies it.
type Asker interface {
	Ask(ctx context.Context, question string) (string, error)
}

// Sender identifies who wrote a chat line.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage is one line of the transcript.
type ChatMessage struct {
	Sender Sender
	Text   string
}

// ChatView is the chatbot transcript. The transcript is local only; every question is sent
// on its own.
type ChatView struct {
	mu         sync.Mutex
	asker      Asker
	transcript []ChatMessage
	loading    bool
	logger     zerolog.Logger
}

// NewChatView returns a transcript seeded with the greeting.
func NewChatView(asker Asker) *ChatView {
	return &ChatView{
		asker:      asker,
		transcript: []ChatMessage{{Sender: SenderBot, Text: ChatGreeting}},
		logger:     logx.Component("view.chat"),
	}
}

// Transcript returns a copy of the conversation so far.
func (v *ChatView) Transcript() []ChatMessage {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]ChatMessage, len(v.transcript))
	copy(out, v.transcript)
	return out
}

func (v *ChatView) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// Send asks question and appends both sides to the transcript. Blank input, or input while
// a question is pending, is ignored and Send returns false. Failures never surface: the
// transcript gets the offline apology instead.
func (v *ChatView) Send(ctx context.Context, question string) (ChatMessage, bool) {
	question = strings.TrimSpace(question)

	v.mu.Lock()
	if question == "" || v.loading {
		v.mu.Unlock()
		return ChatMessage{}, false
	}
	v.transcript = append(v.transcript, ChatMessage{Sender: SenderUser, Text: question})
	v.loading = true
	v.mu.Unlock()

	answer, err := v.asker.Ask(ctx, question)
	switch {
	case err != nil:
		v.logger.Error().Err(err).Msg("chatbot request failed")
		answer = ChatOffline
	case strings.TrimSpace(answer) == "":
		answer = ChatNotSure
	}

	reply := ChatMessage{Sender: SenderBot, Text: answer}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.transcript = append(v.transcript, reply)
	v.loading = false
	return reply, true
}

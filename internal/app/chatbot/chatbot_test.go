package chatbot

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

func TestCannedMatchesKeywords(t *testing.T) {
	c := NewCanned(nil)
	ctx := context.Background()

	cases := []struct {
		question string
		contains string
	}{
		{"How do I get better at speedruns?", "Speedrun tip"},
		{"Any advice for this BOSS?", "Boss tip"},
		{"how to reach 100% completion", "Achievement tip"},
		{"what's the weather like", "not sure"},
	}

	for _, tc := range cases {
		got, err := c.Answer(ctx, tc.question)
		if err != nil {
			t.Fatalf("Answer(%q) err: %v", tc.question, err)
		}
		if !strings.Contains(got, tc.contains) {
			t.Errorf("Answer(%q) = %q, want it to contain %q", tc.question, got, tc.contains)
		}
	}
}

func TestCannedWordBoundaries(t *testing.T) {
	c := NewCanned(nil)

	got, _ := c.Answer(context.Background(), "this game is high quality")
	if strings.Contains(got, "Hi!") {
		t.Fatalf("short keyword matched inside a word: %q", got)
	}

	for _, q := range []string{"what should I eat for breakfast", "I have no recollection of that"} {
		if got, _ := c.Answer(context.Background(), q); got != DefaultAnswer {
			t.Errorf("Answer(%q) = %q, want the default answer", q, got)
		}
	}

	if got, _ := c.Answer(context.Background(), "where are the collectibles"); !strings.Contains(got, "Achievement tip") {
		t.Errorf("expected a keyword to match the start of a longer word, got %q", got)
	}
}

func TestCannedRejectsBlank(t *testing.T) {
	if _, err := NewCanned(nil).Answer(context.Background(), "  \n"); !errors.Is(err, ErrEmptyQuestion) {
		t.Fatalf("expected ErrEmptyQuestion, got %v", err)
	}
}

func TestCannedCallsAreIndependent(t *testing.T) {
	c := NewCanned(nil)
	ctx := context.Background()

	first, _ := c.Answer(ctx, "boss fight help")
	second, _ := c.Answer(ctx, "what about the weather")
	again, _ := c.Answer(ctx, "boss fight help")

	if first == second {
		t.Fatal("expected different questions to get different answers")
	}
	if first != again {
		t.Fatal("expected the same question to get the same answer regardless of history")
	}
}

type fakeModel struct {
	reply    string
	err      error
	received [][]*schema.Message
}

func (f *fakeModel) Generate(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.received = append(f.received, input)
	if f.err != nil {
		return nil, f.err
	}
	return schema.AssistantMessage(f.reply, nil), nil
}

func TestLLMAnswerSendsFreshConversation(t *testing.T) {
	fm := &fakeModel{reply: "Parry more."}
	l := newLLM(fm, NewCanned(nil))
	ctx := context.Background()

	if _, err := l.Answer(ctx, "first question"); err != nil {
		t.Fatalf("Answer err: %v", err)
	}
	got, err := l.Answer(ctx, "second question")
	if err != nil {
		t.Fatalf("Answer err: %v", err)
	}
	if got != "Parry more." {
		t.Fatalf("unexpected answer %q", got)
	}

	last := fm.received[1]
	if len(last) != 2 || last[0].Role != schema.System || last[1].Content != "second question" {
		t.Fatalf("expected system + single user message, got %+v", last)
	}
}

func TestLLMFallsBackOnError(t *testing.T) {
	l := newLLM(&fakeModel{err: errors.New("boom")}, NewCanned(nil))

	got, err := l.Answer(context.Background(), "boss help")
	if err != nil {
		t.Fatalf("expected fallback answer, got err %v", err)
	}
	if !strings.Contains(got, "Boss tip") {
		t.Fatalf("expected canned boss tip, got %q", got)
	}
}

func TestLLMWithoutFallbackReturnsError(t *testing.T) {
	l := newLLM(&fakeModel{reply: "   "}, nil)

	if _, err := l.Answer(context.Background(), "anything"); err == nil {
		t.Fatal("expected error for empty model reply without fallback")
	}
}

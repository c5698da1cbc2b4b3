package view

import (
	"context"
	"errors"
	"testing"

	"gametracker/internal/pkg/logx"
)

func TestChatViewGreetingAndExchange(t *testing.T) {
	logx.Disable()
	v := NewChatView(askerFunc(answerByTopic))

	if tr := v.Transcript(); len(tr) != 1 || tr[0].Text != ChatGreeting {
		t.Fatalf("expected greeting, got %+v", tr)
	}

	reply, sent := v.Send(context.Background(), "  Boss Tips  ")
	if !sent || reply.Text != "about boss tips" {
		t.Fatalf("unexpected reply %+v, sent=%v", reply, sent)
	}

	tr := v.Transcript()
	if len(tr) != 3 || tr[1].Sender != SenderUser || tr[1].Text != "Boss Tips" {
		t.Fatalf("unexpected transcript %+v", tr)
	}
}

func TestChatViewIgnoresBlankAndBusyInput(t *testing.T) {
	logx.Disable()
	calls := 0
	release := make(chan struct{})
	started := make(chan struct{})
	v := NewChatView(askerFunc(func(ctx context.Context, q string) (string, error) {
		calls++
		close(started)
		<-release
		return "ok", nil
	}))

	if _, sent := v.Send(context.Background(), "   "); sent {
		t.Fatal("expected blank input to be ignored")
	}

	done := make(chan struct{})
	go func() {
		v.Send(context.Background(), "first")
		close(done)
	}()
	<-started

	if !v.Loading() {
		t.Fatal("expected loading while a question is pending")
	}
	if _, sent := v.Send(context.Background(), "second"); sent {
		t.Fatal("expected input while loading to be ignored")
	}

	close(release)
	<-done
	if calls != 1 {
		t.Fatalf("expected one request, got %d", calls)
	}
}

func TestChatViewFallbacks(t *testing.T) {
	logx.Disable()

	failing := NewChatView(askerFunc(func(context.Context, string) (string, error) {
		return "", errors.New("offline")
	}))
	if reply, _ := failing.Send(context.Background(), "hi"); reply.Text != ChatOffline {
		t.Fatalf("expected offline apology, got %q", reply.Text)
	}
	if failing.Loading() {
		t.Fatal("expected loading cleared after failure")
	}

	empty := NewChatView(askerFunc(func(context.Context, string) (string, error) {
		return " ", nil
	}))
	if reply, _ := empty.Send(context.Background(), "hi"); reply.Text != ChatNotSure {
		t.Fatalf("expected not-sure text, got %q", reply.Text)
	}
}

func TestChatViewQuestionsAreIndependent(t *testing.T) {
	logx.Disable()
	var received []string
	v := NewChatView(askerFunc(func(_ context.Context, q string) (string, error) {
		received = append(received, q)
		return answerByTopic(context.Background(), q)
	}))

	a, _ := v.Send(context.Background(), "Boss")
	b, _ := v.Send(context.Background(), "Speedrun")

	if a.Text == b.Text {
		t.Fatal("expected independent answers")
	}
	if len(received) != 2 || received[1] != "Speedrun" {
		t.Fatalf("expected each call to carry only its own question, got %v", received)
	}
}

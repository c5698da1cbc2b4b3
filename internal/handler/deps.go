package handler

import (
	"gametracker/internal/app/chatbot"
	"gametracker/internal/app/tracker"
	"gametracker/internal/configs"
)

// AppDeps bundles what the handlers need. Store is either the PostgreSQL store or the
// in-memory one; Bot is the canned or LLM-backed responder.
type AppDeps struct {
	Config *configs.AppConfig
	Store  tracker.Store
	Bot    chatbot.Responder
}

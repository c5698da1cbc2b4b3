package handler

import (
	"net/http"
	"strings"

	"gametracker/internal/app/tracker"
	"gametracker/internal/pkg/errs"
	"gametracker/internal/pkg/logx"
	"gametracker/internal/pkg/req"
	"gametracker/internal/pkg/resp"
)

// maxQuestionRunes bounds the question forwarded to the responder.
const maxQuestionRunes = 1000

// HandleAsk answers a single chatbot question. No history is kept between calls.
func HandleAsk(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input tracker.ChatQuestion
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		question := strings.TrimSpace(input.Question)
		if question == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrQuestionRequired))
			return
		}
		if runes := []rune(question); len(runes) > maxQuestionRunes {
			question = string(runes[:maxQuestionRunes])
		}

		answer, err := deps.Bot.Answer(r.Context(), question)
		if err != nil {
			logx.Error(err, "chatbot answer failed", "user_id", ownerID(r))
			resp.RespondError(w, r, errs.NewError(errs.ErrChatbotUnavailable))
			return
		}

		resp.RespondSuccess(w, r, tracker.ChatAnswer{Answer: answer})
	}
}

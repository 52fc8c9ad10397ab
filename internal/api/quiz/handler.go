package quiz

import (
	"encoding/json"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/spiritquiz/backend/internal/entity"
	"github.com/spiritquiz/backend/internal/pkg/logger"
	"github.com/spiritquiz/backend/internal/pkg/response"
)

// failureMessage is the one thing a caller ever learns about a failed
// round; model, extraction and validation detail stays in the logs.
const failureMessage = "Something went wrong with the quiz. Please try again."

type Handler struct {
	usecase QuizUsecase
}

func NewHandler(usecase QuizUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// Step handles POST /quiz-step - advance the quiz by one round
func (h *Handler) Step(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "QuizStep")

	var req entity.QuizStepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	transcript, err := toTranscript(req.History)
	if err != nil {
		ctxzap.Error(ctx, "rejected quiz history", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid history")
		return
	}

	ctxzap.Info(ctx, "processing quiz step", zap.Int("history_len", transcript.Len()))

	// The browser driver embeds "My answer is: ..." turns in the history it
	// sends, so no separate answer travels on this endpoint.
	step, _, err := h.usecase.Step(ctx, transcript, nil)
	if err != nil {
		ctxzap.Error(ctx, "quiz step failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, failureMessage)
		return
	}

	response.Success(w, toStepDTO(step))
}

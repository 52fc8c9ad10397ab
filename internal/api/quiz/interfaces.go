package quiz

import (
	"context"

	"github.com/spiritquiz/backend/internal/conversation"
	"github.com/spiritquiz/backend/internal/entity"
)

type QuizUsecase interface {
	Step(ctx context.Context, transcript conversation.Transcript, answer *string) (entity.Step, conversation.Transcript, error)
}

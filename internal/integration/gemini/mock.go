package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/spiritquiz/backend/internal/conversation"
	"github.com/spiritquiz/backend/internal/entity"
)

const mockQuestionCount = 5

// MockConnector replays a scripted quiz without touching the Gemini API.
// Replies come back fenced, same as the real model tends to send them, so
// the extraction path stays exercised in mock mode.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{logger: logger}
}

var mockQuestions = []entity.Question{
	{
		Text:    "The day is yours alone. Where do you drift first?",
		Options: []string{"A ridge above the treeline", "A river bank at dawn", "A crowded night market", "A den of blankets and books"},
	},
	{
		Text:    "A storm rolls in without warning. What stirs in you?",
		Options: []string{"The urge to watch it head-on", "A pull to shelter and wait", "Excitement to move with it", "The need to gather everyone close"},
	},
	{
		Text:    "Which gift would you take without hesitation?",
		Options: []string{"Seeing in the dark", "Breathing underwater", "Hearing every heartbeat", "Vanishing at will"},
	},
	{
		Text:    "What has your energy felt like this week?",
		Options: []string{"Coiled and ready", "Slow and deliberate", "Scattered sparks", "Quietly watchful"},
	},
	{
		Text:    "A stranger asks for help at a bad moment. You...",
		Options: []string{"Stop everything and help", "Point them somewhere better", "Help, but on your terms", "Size them up first"},
	},
}

// SendMessage counts the answers already in the history and scripts the
// next step from it. The message is ignored for counting: it duplicates the
// final history turn.
func (m *MockConnector) SendMessage(ctx context.Context, prior []entity.Turn, message string) (string, error) {
	answers := 0
	for _, t := range prior {
		if t.Role == entity.RoleUser && strings.HasPrefix(t.Text, conversation.AnswerPrefix) {
			answers++
		}
	}

	ctxzap.Info(ctx, "[MOCK] scripting quiz reply", zap.Int("answers_so_far", answers))

	if answers >= mockQuestionCount {
		return "```json\n" + `{
  "type": "result",
  "animal": "The Harbor Seal",
  "title": "Keeper of Playful Depths",
  "description": "You move between worlds with ease right now, surfacing for company and diving back into your own quiet currents. Your answers trace an energy that is curious but unhurried, social on its own schedule. Trust the rhythm; it is carrying you somewhere warmer.",
  "share_text": "My spirit animal right now is The Harbor Seal! What's yours? Take the quiz to find out!"
}` + "\n```", nil
	}

	q := mockQuestions[answers%len(mockQuestions)]
	return fmt.Sprintf("```json\n{\n  \"type\": \"question\",\n  \"text\": %q,\n  \"options\": [%q, %q, %q, %q]\n}\n```",
		q.Text, q.Options[0], q.Options[1], q.Options[2], q.Options[3]), nil
}

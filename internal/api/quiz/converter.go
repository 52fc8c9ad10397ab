package quiz

import (
	"fmt"
	"strings"

	"github.com/spiritquiz/backend/internal/conversation"
	"github.com/spiritquiz/backend/internal/entity"
)

// toTranscript converts the wire history into a transcript. Multi-part
// turns are concatenated; any role outside user/model rejects the request.
func toTranscript(history []entity.TurnDTO) (conversation.Transcript, error) {
	turns := make([]entity.Turn, 0, len(history))
	for i, dto := range history {
		role := entity.Role(dto.Role)
		if role != entity.RoleUser && role != entity.RoleModel {
			return conversation.Transcript{}, fmt.Errorf("%w: %q at turn %d", entity.ErrInvalidRole, dto.Role, i)
		}

		var sb strings.Builder
		for _, part := range dto.Parts {
			sb.WriteString(part.Text)
		}
		turns = append(turns, entity.Turn{Role: role, Text: sb.String()})
	}
	return conversation.NewTranscript(turns), nil
}

func toStepDTO(step entity.Step) any {
	switch s := step.(type) {
	case entity.Question:
		return entity.QuestionDTO{
			Type:    string(entity.StepTypeQuestion),
			Text:    s.Text,
			Options: s.Options,
		}
	case entity.Result:
		return entity.ResultDTO{
			Type:        string(entity.StepTypeResult),
			Animal:      s.Animal,
			Title:       s.Title,
			Description: s.Description,
			ShareText:   s.ShareText,
		}
	default:
		// The validator only ever produces the two shapes above.
		panic(fmt.Sprintf("unhandled step type %T", step))
	}
}

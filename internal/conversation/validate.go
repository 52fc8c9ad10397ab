package conversation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spiritquiz/backend/internal/entity"
)

// stepEnvelope is the superset of fields the two step shapes may carry.
type stepEnvelope struct {
	Type        string   `json:"type"`
	Text        string   `json:"text"`
	Options     []string `json:"options"`
	Animal      string   `json:"animal"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ShareText   string   `json:"share_text"`
}

// ValidateStep parses candidate text and confirms it is a well-formed
// question or result. On success the returned step is structurally sound
// and downstream code may rely on its shape without further checks.
// Unparseable input fails with ErrBadStepJSON, a parseable object of the
// wrong shape with ErrInvalidStep.
func ValidateStep(candidate string) (entity.Step, error) {
	var env stepEnvelope
	if err := json.Unmarshal([]byte(candidate), &env); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrBadStepJSON, err)
	}

	switch entity.StepType(env.Type) {
	case entity.StepTypeQuestion:
		return validateQuestion(&env)
	case entity.StepTypeResult:
		return validateResult(&env)
	default:
		return nil, fmt.Errorf("%w: type %q", entity.ErrInvalidStep, env.Type)
	}
}

func validateQuestion(env *stepEnvelope) (entity.Step, error) {
	if strings.TrimSpace(env.Text) == "" {
		return nil, fmt.Errorf("%w: question text is empty", entity.ErrInvalidStep)
	}
	if len(env.Options) != entity.QuestionOptionCount {
		return nil, fmt.Errorf("%w: expected %d options, got %d",
			entity.ErrInvalidStep, entity.QuestionOptionCount, len(env.Options))
	}
	for i, opt := range env.Options {
		if strings.TrimSpace(opt) == "" {
			return nil, fmt.Errorf("%w: option %d is empty", entity.ErrInvalidStep, i)
		}
	}

	return entity.Question{Text: env.Text, Options: env.Options}, nil
}

func validateResult(env *stepEnvelope) (entity.Step, error) {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"animal", env.Animal},
		{"title", env.Title},
		{"description", env.Description},
		{"share_text", env.ShareText},
	} {
		if strings.TrimSpace(f.value) == "" {
			return nil, fmt.Errorf("%w: %s is missing or empty", entity.ErrInvalidStep, f.name)
		}
	}

	return entity.Result{
		Animal:      env.Animal,
		Title:       env.Title,
		Description: env.Description,
		ShareText:   env.ShareText,
	}, nil
}

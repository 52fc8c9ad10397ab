package conversation

import (
	"errors"
	"reflect"
	"testing"

	"github.com/spiritquiz/backend/internal/entity"
)

func TestValidateStepQuestion(t *testing.T) {
	t.Parallel()

	candidate := `{"type":"question","text":"Where do you wander?","options":["Forest","River","City","Home"]}`

	step, err := ValidateStep(candidate)
	if err != nil {
		t.Fatalf("ValidateStep() unexpected error: %v", err)
	}

	q, ok := step.(entity.Question)
	if !ok {
		t.Fatalf("ValidateStep() returned %T, want entity.Question", step)
	}
	if q.Text != "Where do you wander?" {
		t.Errorf("question text = %q", q.Text)
	}
	wantOpts := []string{"Forest", "River", "City", "Home"}
	if !reflect.DeepEqual(q.Options, wantOpts) {
		t.Errorf("options = %v, want %v", q.Options, wantOpts)
	}
}

func TestValidateStepResult(t *testing.T) {
	t.Parallel()

	candidate := `{
		"type": "result",
		"animal": "The Moonlit Wolf",
		"title": "Guardian of Sacred Solitude",
		"description": "You walk your own path.",
		"share_text": "My spirit animal is The Moonlit Wolf!"
	}`

	step, err := ValidateStep(candidate)
	if err != nil {
		t.Fatalf("ValidateStep() unexpected error: %v", err)
	}

	r, ok := step.(entity.Result)
	if !ok {
		t.Fatalf("ValidateStep() returned %T, want entity.Result", step)
	}
	if r.Animal != "The Moonlit Wolf" || r.ShareText == "" {
		t.Errorf("result fields not carried over: %+v", r)
	}
}

func TestValidateStepRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate string
		wantErr   error
	}{
		{
			name:      "not JSON at all",
			candidate: "definitely not json",
			wantErr:   entity.ErrBadStepJSON,
		},
		{
			name:      "truncated JSON",
			candidate: `{"type":"question","text":"Hi`,
			wantErr:   entity.ErrBadStepJSON,
		},
		{
			name:      "unknown type",
			candidate: `{"type":"greeting","text":"hello"}`,
			wantErr:   entity.ErrInvalidStep,
		},
		{
			name:      "missing type",
			candidate: `{"text":"Hi?","options":["a","b","c","d"]}`,
			wantErr:   entity.ErrInvalidStep,
		},
		{
			name:      "question with empty text",
			candidate: `{"type":"question","text":"  ","options":["a","b","c","d"]}`,
			wantErr:   entity.ErrInvalidStep,
		},
		{
			name:      "question with three options",
			candidate: `{"type":"question","text":"Hi?","options":["a","b","c"]}`,
			wantErr:   entity.ErrInvalidStep,
		},
		{
			name:      "question with five options",
			candidate: `{"type":"question","text":"Hi?","options":["a","b","c","d","e"]}`,
			wantErr:   entity.ErrInvalidStep,
		},
		{
			name:      "question with blank option",
			candidate: `{"type":"question","text":"Hi?","options":["a","","c","d"]}`,
			wantErr:   entity.ErrInvalidStep,
		},
		{
			name:      "result missing animal",
			candidate: `{"type":"result","title":"t","description":"d","share_text":"s"}`,
			wantErr:   entity.ErrInvalidStep,
		},
		{
			name:      "result missing title",
			candidate: `{"type":"result","animal":"a","description":"d","share_text":"s"}`,
			wantErr:   entity.ErrInvalidStep,
		},
		{
			name:      "result missing description",
			candidate: `{"type":"result","animal":"a","title":"t","share_text":"s"}`,
			wantErr:   entity.ErrInvalidStep,
		},
		{
			name:      "result missing share_text",
			candidate: `{"type":"result","animal":"a","title":"t","description":"d"}`,
			wantErr:   entity.ErrInvalidStep,
		},
		{
			name:      "result with whitespace-only field",
			candidate: `{"type":"result","animal":"   ","title":"t","description":"d","share_text":"s"}`,
			wantErr:   entity.ErrInvalidStep,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			step, err := ValidateStep(tt.candidate)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateStep() error = %v, want %v", err, tt.wantErr)
			}
			if step != nil {
				t.Errorf("ValidateStep() step = %v, want nil on error", step)
			}
		})
	}
}

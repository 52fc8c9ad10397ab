package conversation

import (
	"errors"
	"testing"

	"github.com/spiritquiz/backend/internal/entity"
)

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{
			name: "bare object",
			raw:  `{"type":"question"}`,
			want: `{"type":"question"}`,
		},
		{
			name: "leading prose before object",
			raw:  `Here is your next question! {"type":"question","text":"Hi?"}`,
			want: `{"type":"question","text":"Hi?"}`,
		},
		{
			name: "fenced block wins over surrounding text",
			raw:  "Sure thing.\n```json\n{\"type\":\"result\"}\n```\nHope you like it!",
			want: `{"type":"result"}`,
		},
		{
			name: "fence takes priority over earlier brace",
			raw:  "ignore {this} please\n```json\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "unclosed fence takes the rest of the reply",
			raw:  "```json\n{\"type\":\"question\"}",
			want: `{"type":"question"}`,
		},
		{
			name: "nested object balanced correctly",
			raw:  `noise {"a":{"b":1}} trailing {"c":2}`,
			want: `{"a":{"b":1}}`,
		},
		{
			name: "braces inside string literals ignored",
			raw:  `{"text":"use { and } freely","done":true} tail`,
			want: `{"text":"use { and } freely","done":true}`,
		},
		{
			name: "escaped quote inside string",
			raw:  `{"text":"she said \"{\"","n":1}`,
			want: `{"text":"she said \"{\"","n":1}`,
		},
		{
			name:    "no object at all",
			raw:     "I would love to help but cannot.",
			wantErr: entity.ErrNoJSONFound,
		},
		{
			name:    "object never closes",
			raw:     `{"type":"question","text":"oops"`,
			wantErr: entity.ErrNoJSONFound,
		},
		{
			name:    "empty reply",
			raw:     "",
			wantErr: entity.ErrNoJSONFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ExtractJSON(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ExtractJSON() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractJSON() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractJSONIdempotent(t *testing.T) {
	t.Parallel()

	raw := "prose ahead ```json\n{\"type\":\"question\",\"text\":\"Q\"}\n``` prose after"

	first, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}
	second, err := ExtractJSON(first)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if first != second {
		t.Errorf("extraction not idempotent: %q then %q", first, second)
	}
}

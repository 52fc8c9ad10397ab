package conversation

import "github.com/spiritquiz/backend/internal/entity"

// Transcript is the ordered, append-only history of quiz turns. It is the
// sole memory of quiz progress: the caller holds it between rounds and the
// server keeps nothing. Turns are never reordered, deduplicated or edited;
// the only full mutation is Reset.
type Transcript struct {
	turns []entity.Turn
}

// NewTranscript builds a transcript from existing turns. The slice is
// copied so later appends by the caller cannot reach into it.
func NewTranscript(turns []entity.Turn) Transcript {
	t := Transcript{turns: make([]entity.Turn, len(turns))}
	copy(t.turns, turns)
	return t
}

// AppendUser records the player's turn.
func (t *Transcript) AppendUser(text string) {
	t.turns = append(t.turns, entity.Turn{Role: entity.RoleUser, Text: text})
}

// AppendModel records the model's turn. The raw reply text is stored
// verbatim because the transcript is replayed as-is to the model on every
// later round; storing the parsed step instead would change what the model
// sees.
func (t *Transcript) AppendModel(raw string) {
	t.turns = append(t.turns, entity.Turn{Role: entity.RoleModel, Text: raw})
}

// Turns returns a copy of the transcript's turns in order.
func (t Transcript) Turns() []entity.Turn {
	out := make([]entity.Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

// Len reports the number of turns.
func (t Transcript) Len() int { return len(t.turns) }

// LastUserText returns the text of the most recent user turn, if any.
func (t Transcript) LastUserText() (string, bool) {
	for i := len(t.turns) - 1; i >= 0; i-- {
		if t.turns[i].Role == entity.RoleUser {
			return t.turns[i].Text, true
		}
	}
	return "", false
}

// Clone returns an independent copy. Appending to the clone leaves the
// original untouched, which is what keeps failed rounds atomic.
func (t Transcript) Clone() Transcript {
	return NewTranscript(t.turns)
}

// Reset drops every turn, starting the quiz over.
func (t *Transcript) Reset() { t.turns = nil }

package conversation

import (
	"reflect"
	"testing"

	"github.com/spiritquiz/backend/internal/entity"
)

func TestTranscriptAppendOrder(t *testing.T) {
	t.Parallel()

	var tr Transcript
	tr.AppendModel(`{"type":"question"}`)
	tr.AppendUser("My answer is: Forest")
	tr.AppendModel(`{"type":"question","n":2}`)

	want := []entity.Turn{
		{Role: entity.RoleModel, Text: `{"type":"question"}`},
		{Role: entity.RoleUser, Text: "My answer is: Forest"},
		{Role: entity.RoleModel, Text: `{"type":"question","n":2}`},
	}
	if got := tr.Turns(); !reflect.DeepEqual(got, want) {
		t.Errorf("Turns() = %v, want %v", got, want)
	}
	if tr.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tr.Len())
	}
}

func TestTranscriptLastUserText(t *testing.T) {
	t.Parallel()

	var tr Transcript
	if _, ok := tr.LastUserText(); ok {
		t.Fatal("empty transcript should have no user text")
	}

	tr.AppendUser("first")
	tr.AppendModel("reply")
	tr.AppendUser("second")
	tr.AppendModel("another reply")

	got, ok := tr.LastUserText()
	if !ok || got != "second" {
		t.Errorf("LastUserText() = %q, %v; want \"second\", true", got, ok)
	}
}

func TestTranscriptCloneIsIndependent(t *testing.T) {
	t.Parallel()

	original := NewTranscript([]entity.Turn{
		{Role: entity.RoleUser, Text: "hello"},
	})

	clone := original.Clone()
	clone.AppendModel("only in the clone")

	if original.Len() != 1 {
		t.Errorf("original grew with the clone: Len() = %d", original.Len())
	}
	if clone.Len() != 2 {
		t.Errorf("clone Len() = %d, want 2", clone.Len())
	}
}

func TestNewTranscriptCopiesInput(t *testing.T) {
	t.Parallel()

	turns := []entity.Turn{{Role: entity.RoleUser, Text: "before"}}
	tr := NewTranscript(turns)

	turns[0].Text = "after"

	if got := tr.Turns()[0].Text; got != "before" {
		t.Errorf("transcript shares caller's slice: text = %q", got)
	}
}

func TestTranscriptReset(t *testing.T) {
	t.Parallel()

	var tr Transcript
	tr.AppendUser("something")
	tr.Reset()

	if tr.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", tr.Len())
	}
	if _, ok := tr.LastUserText(); ok {
		t.Error("LastUserText() found a turn after Reset")
	}
}

func TestTurnsReturnsCopy(t *testing.T) {
	t.Parallel()

	var tr Transcript
	tr.AppendUser("original")

	got := tr.Turns()
	got[0].Text = "mutated"

	if tr.Turns()[0].Text != "original" {
		t.Error("Turns() exposed internal slice")
	}
}

package entity

// Role tags a transcript turn by its author.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is a single transcript entry. Immutable once appended; the model
// turn holds the raw reply text, not the parsed step.
type Turn struct {
	Role Role
	Text string
}

// QuestionOptionCount is the exact number of options every question carries.
const QuestionOptionCount = 4

// StepType discriminates the two structured messages a model reply may carry.
type StepType string

const (
	StepTypeQuestion StepType = "question"
	StepTypeResult   StepType = "result"
)

// Step is the structured message recovered from a model reply. The set of
// implementations is closed: Question and Result.
type Step interface {
	StepType() StepType
}

// Question asks the player to pick one of exactly four options.
type Question struct {
	Text    string
	Options []string
}

func (Question) StepType() StepType { return StepTypeQuestion }

// Result is the final personalized quiz outcome.
type Result struct {
	Animal      string
	Title       string
	Description string
	ShareText   string
}

func (Result) StepType() StepType { return StepTypeResult }

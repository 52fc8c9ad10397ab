package entity

// TurnPartDTO mirrors the content-part wire shape the browser client sends,
// which in turn mirrors the Gemini history format.
type TurnPartDTO struct {
	Text string `json:"text"`
}

// TurnDTO is one transcript entry on the wire.
type TurnDTO struct {
	Role  string        `json:"role"`
	Parts []TurnPartDTO `json:"parts"`
}

// QuizStepRequest is the body of POST /quiz-step. The caller supplies the
// full transcript; an empty history starts a new quiz.
type QuizStepRequest struct {
	History []TurnDTO `json:"history"`
}

// QuestionDTO is the success response for a question step.
type QuestionDTO struct {
	Type    string   `json:"type"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// ResultDTO is the success response for a result step.
type ResultDTO struct {
	Type        string `json:"type"`
	Animal      string `json:"animal"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ShareText   string `json:"share_text"`
}

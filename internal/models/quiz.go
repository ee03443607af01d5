package models

type QuizGenerateRequest struct {
	Text         string `json:"text"`
	NoteID       *uint  `json:"note_id"`
	Difficulty   string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	NumQuestions int    `json:"num_questions" validate:"omitempty,min=1,max=20"`
}

type QuizSubmitRequest struct {
	QuizToken string `json:"quiz_token" validate:"required"`
	Answers   []int  `json:"answers" validate:"required"`
}

type QuizSubmitResponse struct {
	Score          int  `json:"score"`
	CorrectAnswers int  `json:"correct_answers"`
	TotalQuestions int  `json:"total_questions"`
	QuizSubmitted  bool `json:"quiz_submitted"`
}

type AskRequest struct {
	Question   string `json:"question" validate:"required"`
	CategoryID *uint  `json:"category_id"`
}

type AskResponse struct {
	Answer      string `json:"answer"`
	IsFromNotes bool   `json:"is_from_notes"`
	NotesUsed   int    `json:"notes_used"`
}

type GrammarCheckRequest struct {
	Text   string `json:"text"`
	NoteID *uint  `json:"note_id"`
}

type GrammarCheckResponse struct {
	CorrectedText string   `json:"corrected_text"`
	Corrections   []string `json:"corrections"`
}

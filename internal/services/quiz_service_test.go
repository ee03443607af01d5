package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/andrei65t/EduPro/internal/ocr"
)

func sampleQuestions() []ocr.QuizQuestion {
	return []ocr.QuizQuestion{
		{Question: "1+1?", Options: []string{"1", "2", "3", "4"}, CorrectAnswer: 1, Explanation: "basic"},
		{Question: "2+2?", Options: []string{"2", "3", "4", "5"}, CorrectAnswer: 2, Explanation: "basic"},
		{Question: "3+3?", Options: []string{"4", "5", "6", "7"}, CorrectAnswer: 2, Explanation: "basic"},
	}
}

func TestScoreAllCorrect(t *testing.T) {
	score, correct := Score(sampleQuestions(), []int{1, 2, 2})
	if score != 100 || correct != 3 {
		t.Errorf("expected 100/3, got %d/%d", score, correct)
	}
}

func TestScoreNoneCorrect(t *testing.T) {
	score, correct := Score(sampleQuestions(), []int{0, 0, 0})
	if score != 0 || correct != 0 {
		t.Errorf("expected 0/0, got %d/%d", score, correct)
	}
}

func TestScoreFloorsPercentage(t *testing.T) {
	// 1 of 3 correct: floor(33.33) = 33
	score, correct := Score(sampleQuestions(), []int{1, 0, 0})
	if score != 33 || correct != 1 {
		t.Errorf("expected 33/1, got %d/%d", score, correct)
	}
}

func TestScoreMissingAnswersCountWrong(t *testing.T) {
	score, correct := Score(sampleQuestions(), []int{1})
	if score != 33 || correct != 1 {
		t.Errorf("expected 33/1 with partial answers, got %d/%d", score, correct)
	}

	score, correct = Score(sampleQuestions(), nil)
	if score != 0 || correct != 0 {
		t.Errorf("expected 0/0 with no answers, got %d/%d", score, correct)
	}
}

func TestScoreEmptyQuiz(t *testing.T) {
	if score, _ := Score(nil, []int{1}); score != 0 {
		t.Errorf("expected 0 for empty quiz, got %d", score)
	}
}

func TestQuizTokenRoundTrip(t *testing.T) {
	svc := NewQuizService("test-secret")

	token, err := svc.IssueToken(sampleQuestions())
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	questions, err := svc.DecodeToken(token)
	if err != nil {
		t.Fatalf("DecodeToken failed: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	if questions[0].CorrectAnswer != 1 || questions[0].Question != "1+1?" {
		t.Errorf("decoded question mismatch: %+v", questions[0])
	}
}

func TestQuizTokenTamperedPayloadRejected(t *testing.T) {
	svc := NewQuizService("test-secret")

	token, err := svc.IssueToken(sampleQuestions())
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	// Flip a character in the payload half; the signature no longer matches.
	payload, sig, _ := strings.Cut(token, ".")
	flipped := []byte(payload)
	if flipped[0] == 'A' {
		flipped[0] = 'B'
	} else {
		flipped[0] = 'A'
	}

	if _, err := svc.DecodeToken(string(flipped) + "." + sig); !errors.Is(err, ErrInvalidQuizToken) {
		t.Fatalf("expected ErrInvalidQuizToken for tampered payload, got %v", err)
	}
}

func TestQuizTokenWrongSecretRejected(t *testing.T) {
	token, err := NewQuizService("secret-a").IssueToken(sampleQuestions())
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	if _, err := NewQuizService("secret-b").DecodeToken(token); !errors.Is(err, ErrInvalidQuizToken) {
		t.Fatalf("expected ErrInvalidQuizToken for wrong secret, got %v", err)
	}
}

func TestQuizTokenGarbageRejected(t *testing.T) {
	svc := NewQuizService("test-secret")

	for _, token := range []string{"", "no-dot", "a.b", "!!.!!"} {
		if _, err := svc.DecodeToken(token); !errors.Is(err, ErrInvalidQuizToken) {
			t.Errorf("token %q: expected ErrInvalidQuizToken, got %v", token, err)
		}
	}
}

package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"github.com/andrei65t/EduPro/internal/ocr"
)

var ErrInvalidQuizToken = errors.New("invalid quiz token")

// QuizService signs generated quizzes into opaque tokens that round-trip
// through the client between the generate and submit requests. The HMAC
// keeps correct_answer values from being edited client side; the server
// holds no quiz state.
type QuizService struct {
	secret []byte
}

func NewQuizService(secret string) *QuizService {
	return &QuizService{secret: []byte(secret)}
}

func (s *QuizService) IssueToken(questions []ocr.QuizQuestion) (string, error) {
	payload, err := json.Marshal(questions)
	if err != nil {
		return "", err
	}

	encoded := base64.RawURLEncoding.EncodeToString(payload)
	return encoded + "." + s.sign(payload), nil
}

func (s *QuizService) DecodeToken(token string) ([]ocr.QuizQuestion, error) {
	encoded, signature, found := strings.Cut(token, ".")
	if !found {
		return nil, ErrInvalidQuizToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidQuizToken
	}
	if !hmac.Equal([]byte(signature), []byte(s.sign(payload))) {
		return nil, ErrInvalidQuizToken
	}

	var questions []ocr.QuizQuestion
	if err := json.Unmarshal(payload, &questions); err != nil {
		return nil, ErrInvalidQuizToken
	}
	return questions, nil
}

func (s *QuizService) sign(payload []byte) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(payload)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Score compares submitted answer indices against each question's
// correct_answer. Missing or out-of-range answers count as wrong. The
// percentage is floor(correct/total*100).
func Score(questions []ocr.QuizQuestion, answers []int) (score, correct int) {
	if len(questions) == 0 {
		return 0, 0
	}

	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			correct++
		}
	}

	return correct * 100 / len(questions), correct
}

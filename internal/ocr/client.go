package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/andrei65t/EduPro/internal/config"
)

// NoTextSentinel is what the OCR service returns when it could not read any
// text from the image. It is a warning for the user, not an API failure.
const NoTextSentinel = "Nu s-a extras niciun text din imagine."

// ErrUnreachable covers transport-level failures: connection refused,
// timeout, DNS. The user message differs from an HTTP-level error.
var ErrUnreachable = errors.New("cannot contact OCR server")

type APIError struct {
	Status int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("OCR API error: %d", e.Status)
}

type Client struct {
	baseURL     string
	httpClient  *http.Client
	ocrTimeout  time.Duration
	quizTimeout time.Duration
}

func NewClient(cfg config.OCRConfig) *Client {
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:  &http.Client{},
		ocrTimeout:  time.Duration(cfg.TimeoutSeconds) * time.Second,
		quizTimeout: time.Duration(cfg.QuizTimeoutSeconds) * time.Second,
	}
}

type ExtractResult struct {
	Text    string
	Summary string
	// Empty is set when the service answered but found no text in the image.
	Empty bool
}

type GrammarResult struct {
	CorrectedText string   `json:"corrected_text"`
	Corrections   []string `json:"corrections"`
}

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

func (c *Client) ExtractText(ctx context.Context, fileName, contentType string, file io.Reader) (*ExtractResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.ocrTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ocr", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var body struct {
		TextExtras string `json:"text_extras"`
		Summary    string `json:"summary"`
	}
	if err := c.do(req, &body); err != nil {
		return nil, err
	}

	result := &ExtractResult{
		Text:    body.TextExtras,
		Summary: body.Summary,
	}
	if strings.TrimSpace(result.Text) == "" || result.Text == NoTextSentinel {
		result.Empty = true
	}
	return result, nil
}

func (c *Client) AskQuestion(ctx context.Context, question, notesContext string) (string, error) {
	payload := map[string]string{
		"question": question,
		"context":  notesContext,
	}

	var body struct {
		Answer string `json:"answer"`
	}
	if err := c.postJSON(ctx, "/ask-question", c.ocrTimeout, payload, &body); err != nil {
		return "", err
	}
	return body.Answer, nil
}

func (c *Client) GrammarCheck(ctx context.Context, text string) (*GrammarResult, error) {
	payload := map[string]string{"text": text}

	var body GrammarResult
	if err := c.postJSON(ctx, "/grammar-check", c.ocrTimeout, payload, &body); err != nil {
		return nil, err
	}
	return &body, nil
}

func (c *Client) GenerateQuiz(ctx context.Context, text, difficulty string, numQuestions int) ([]QuizQuestion, error) {
	payload := map[string]interface{}{
		"text":          text,
		"difficulty":    difficulty,
		"num_questions": numQuestions,
	}

	var body struct {
		Questions []QuizQuestion `json:"questions"`
	}
	if err := c.postJSON(ctx, "/generate-quiz", c.quizTimeout, payload, &body); err != nil {
		return nil, err
	}
	return body.Questions, nil
}

func (c *Client) postJSON(ctx context.Context, path string, timeout time.Duration, payload, out interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("url", req.URL.String()).Error("OCR API unreachable")
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		content, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logrus.WithFields(logrus.Fields{
			"url":    req.URL.String(),
			"status": resp.StatusCode,
			"body":   string(content),
		}).Error("OCR API error")
		return &APIError{Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode OCR API response: %w", err)
	}
	return nil
}

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andrei65t/EduPro/internal/models"
	"github.com/andrei65t/EduPro/internal/services"
)

func askRouter(t *testing.T, noteService *services.NoteService, ocrURL string) *gin.Engine {
	t.Helper()

	router := gin.New()
	handler := NewAskHandler(noteService, testOCRClient(ocrURL))
	router.POST("/api/ask", handler.Ask)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAskWithoutNotesSkipsCollaborator(t *testing.T) {
	db := setupTestDB(t)
	noteService := services.NewNoteService(db)

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(map[string]string{"answer": "never"})
	}))
	defer server.Close()

	router := askRouter(t, noteService, server.URL)
	w := postJSON(t, router, "/api/ask", models.AskRequest{Question: "Ce este fotosinteza?"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if calls != 0 {
		t.Errorf("collaborator must not be called when no notes match, got %d calls", calls)
	}

	var resp envelope
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data["is_from_notes"] != false {
		t.Error("expected is_from_notes=false")
	}
	if resp.Data["notes_used"] != float64(0) {
		t.Errorf("expected notes_used=0, got %v", resp.Data["notes_used"])
	}
}

func TestAskCategoryFilterWithoutMatchesSkipsCollaborator(t *testing.T) {
	db := setupTestDB(t)
	noteService := services.NewNoteService(db)

	// Notes exist, but none in the filtered category.
	createTestNote(t, db, "nota necategorizată", nil, time.Now().UTC())

	color := "#6366f1"
	category := models.Category{Name: "Chimie", NameLower: "chimie", Color: &color}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	router := askRouter(t, noteService, server.URL)
	w := postJSON(t, router, "/api/ask", models.AskRequest{Question: "întrebare", CategoryID: &category.ID})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if calls != 0 {
		t.Errorf("collaborator must not be called, got %d calls", calls)
	}
}

func TestAskForwardsAtMostFiveRecentNotes(t *testing.T) {
	db := setupTestDB(t)
	noteService := services.NewNoteService(db)

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 1; i <= 7; i++ {
		createTestNote(t, db, fmt.Sprintf("nota-%d", i), nil, base.Add(time.Duration(i)*time.Hour))
	}

	var received struct {
		Question string `json:"question"`
		Context  string `json:"context"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&received)
		json.NewEncoder(w).Encode(map[string]string{"answer": "răspuns"})
	}))
	defer server.Close()

	router := askRouter(t, noteService, server.URL)
	w := postJSON(t, router, "/api/ask", models.AskRequest{Question: "întrebare"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Only the 5 newest notes, newest first.
	for _, absent := range []string{"nota-1", "nota-2"} {
		if strings.Contains(received.Context, absent) {
			t.Errorf("context must not contain %s", absent)
		}
	}
	order := []string{"nota-7", "nota-6", "nota-5", "nota-4", "nota-3"}
	lastIndex := -1
	for _, want := range order {
		idx := strings.Index(received.Context, want)
		if idx == -1 {
			t.Fatalf("context missing %s", want)
		}
		if idx < lastIndex {
			t.Errorf("%s out of order in context", want)
		}
		lastIndex = idx
	}

	var resp envelope
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data["notes_used"] != float64(5) {
		t.Errorf("expected notes_used=5, got %v", resp.Data["notes_used"])
	}
	if resp.Data["answer"] != "răspuns" {
		t.Errorf("expected relayed answer, got %v", resp.Data["answer"])
	}
}

func TestAskCollaboratorUnreachable(t *testing.T) {
	db := setupTestDB(t)
	noteService := services.NewNoteService(db)
	createTestNote(t, db, "o notiță", nil, time.Now().UTC())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	router := askRouter(t, noteService, url)
	w := postJSON(t, router, "/api/ask", models.AskRequest{Question: "întrebare"})

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}

	var resp envelope
	json.Unmarshal(w.Body.Bytes(), &resp)
	if !strings.Contains(resp.Message, "Nu pot contacta serverul") {
		t.Errorf("expected cannot-contact message, got %q", resp.Message)
	}
}

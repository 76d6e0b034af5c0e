package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/OriDaer/Portfolio/internal/models"

	"github.com/gofiber/fiber/v2"
)

func TestAuditEntries(t *testing.T) {
	repo := &fakeAuditRepo{entries: []models.AuditEntry{
		{Timestamp: time.Now(), Level: "info", Message: "Login successful", Fields: `{"username":"daer"}`},
		{Timestamp: time.Now(), Level: "info", Message: "Experiencia created", Fields: "{}"},
	}}
	app := newHandlerTestApp()
	h := NewAuditHandler(repo)
	app.Get("/auditoria", h.Entries)

	resp, err := app.Test(httptest.NewRequest("GET", "/auditoria", nil))
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
	if repo.lastLimit != 50 {
		t.Errorf("default limit = %d, want 50", repo.lastLimit)
	}

	var body struct {
		Entries []models.AuditEntry `json:"entries"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	resp.Body.Close()
	if len(body.Entries) != 2 {
		t.Errorf("len(entries) = %d, want 2", len(body.Entries))
	}
}

func TestAuditEntriesLimitClamped(t *testing.T) {
	repo := &fakeAuditRepo{}
	app := newHandlerTestApp()
	h := NewAuditHandler(repo)
	app.Get("/auditoria", h.Entries)

	for _, query := range []string{"limit=0", "limit=-5", "limit=9999"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/auditoria?"+query, nil))
		if err != nil {
			t.Fatalf("app.Test returned error: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("%s: status = %d, want %d", query, resp.StatusCode, fiber.StatusOK)
		}
		if repo.lastLimit != 50 {
			t.Errorf("%s: limit = %d, want the 50 default", query, repo.lastLimit)
		}
	}
}

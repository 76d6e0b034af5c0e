package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/OriDaer/Portfolio/internal/models"
	"github.com/OriDaer/Portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
)

func TestIndexAggregatesLandingPage(t *testing.T) {
	app := newHandlerTestApp()
	portfolio := &fakePortfolioService{
		landing: &services.LandingPage{
			Usuario:      testUsuario(),
			Experiencias: []models.Experiencia{{Proyecto: "Sitio"}},
			Proyectos:    []models.Proyecto{{Titulo: "Portfolio"}},
		},
	}
	h := NewPublicHandler(portfolio, "daer", t.TempDir(), "cv.pdf")
	app.Get("/", h.Index)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	var body struct {
		Usuario      *models.Usuario      `json:"usuario"`
		Experiencias []models.Experiencia `json:"experiencias"`
		Proyectos    []models.Proyecto    `json:"proyectos"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	resp.Body.Close()

	if body.Usuario == nil || body.Usuario.Username != "daer" {
		t.Errorf("usuario = %+v", body.Usuario)
	}
	if len(body.Experiencias) != 1 || len(body.Proyectos) != 1 {
		t.Errorf("experiencias = %d, proyectos = %d, want 1 and 1", len(body.Experiencias), len(body.Proyectos))
	}
}

func TestDescargarCV(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "cv.pdf"), []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatalf("failed to write test CV: %v", err)
	}

	app := newHandlerTestApp()
	h := NewPublicHandler(&fakePortfolioService{}, "daer", dir, "cv.pdf")
	app.Get("/descargar-cv", h.DescargarCV)

	resp, err := app.Test(httptest.NewRequest("GET", "/descargar-cv", nil))
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
	if cd := resp.Header.Get("Content-Disposition"); cd == "" {
		t.Error("missing Content-Disposition header for download")
	}
}

func TestDescargarCVMissingFile(t *testing.T) {
	app := newHandlerTestApp()
	h := NewPublicHandler(&fakePortfolioService{}, "daer", t.TempDir(), "cv.pdf")
	app.Get("/descargar-cv", h.DescargarCV)

	resp, err := app.Test(httptest.NewRequest("GET", "/descargar-cv", nil))
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusNotFound)
	}
}

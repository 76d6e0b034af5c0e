package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	mw "github.com/OriDaer/Portfolio/internal/middleware"
	"github.com/OriDaer/Portfolio/internal/models"
	"github.com/OriDaer/Portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
)

// fakeAuthService returns a canned token for the seed credentials and the
// generic credentials error for anything else.
type fakeAuthService struct {
	token string
}

func (f *fakeAuthService) Login(_ context.Context, username, password string) (string, error) {
	if username == "daer" && password == "123456" {
		return f.token, nil
	}
	return "", services.ErrInvalidCredentials
}

// fakeProfileService knows exactly one owner account.
type fakeProfileService struct {
	owner *models.Usuario
}

func (f *fakeProfileService) GetByUsername(_ context.Context, username string) (*models.Usuario, error) {
	if f.owner != nil && f.owner.Username == username {
		u := *f.owner
		return &u, nil
	}
	return nil, services.ErrUserNotFound
}

func (f *fakeProfileService) UpdateProfile(_ context.Context, username, nombrePublico string) error {
	if f.owner == nil || f.owner.Username != username {
		return services.ErrUserNotFound
	}
	f.owner.NombrePublico = nombrePublico
	return nil
}

func (f *fakeProfileService) SetProfileImage(_ context.Context, username, filename string) error {
	if f.owner == nil || f.owner.Username != username {
		return services.ErrUserNotFound
	}
	f.owner.ProfileImage = filename
	return nil
}

func (f *fakeProfileService) UpdateAcercaDeMi(_ context.Context, username, acerca string) error {
	if f.owner == nil || f.owner.Username != username {
		return services.ErrUserNotFound
	}
	f.owner.AcercaDeMi = acerca
	return nil
}

// fakePortfolioService records the last entity passed to each mutation and
// returns the configured error, so handler tests can assert wiring without a
// database.
type fakePortfolioService struct {
	landing *services.LandingPage
	err     error

	lastExperiencia *models.Experiencia
	lastEducacion   *models.Educacion
	lastCurso       *models.Curso
	lastProyecto    *models.Proyecto
	deletedID       int64

	storedEducacion *models.Educacion
	storedProyecto  *models.Proyecto
}

func (f *fakePortfolioService) LandingPage(_ context.Context, _ string) (*services.LandingPage, error) {
	return f.landing, f.err
}

func (f *fakePortfolioService) CreateExperiencia(_ context.Context, exp *models.Experiencia) error {
	f.lastExperiencia = exp
	return f.err
}

func (f *fakePortfolioService) UpdateExperiencia(_ context.Context, exp *models.Experiencia) error {
	f.lastExperiencia = exp
	return f.err
}

func (f *fakePortfolioService) DeleteExperiencia(_ context.Context, id int64) error {
	f.deletedID = id
	return f.err
}

func (f *fakePortfolioService) CreateEducacion(_ context.Context, edu *models.Educacion) error {
	f.lastEducacion = edu
	return f.err
}

func (f *fakePortfolioService) UpdateEducacion(_ context.Context, edu *models.Educacion) error {
	f.lastEducacion = edu
	return f.err
}

func (f *fakePortfolioService) DeleteEducacion(_ context.Context, id int64) error {
	f.deletedID = id
	return f.err
}

func (f *fakePortfolioService) GetEducacion(_ context.Context, _ int64) (*models.Educacion, error) {
	if f.storedEducacion == nil {
		return nil, services.ErrNotFound
	}
	return f.storedEducacion, nil
}

func (f *fakePortfolioService) CreateCurso(_ context.Context, curso *models.Curso) error {
	f.lastCurso = curso
	return f.err
}

func (f *fakePortfolioService) UpdateCurso(_ context.Context, curso *models.Curso) error {
	f.lastCurso = curso
	return f.err
}

func (f *fakePortfolioService) DeleteCurso(_ context.Context, id int64) error {
	f.deletedID = id
	return f.err
}

func (f *fakePortfolioService) CreateProyecto(_ context.Context, proyecto *models.Proyecto) error {
	f.lastProyecto = proyecto
	return f.err
}

func (f *fakePortfolioService) UpdateProyecto(_ context.Context, proyecto *models.Proyecto) error {
	f.lastProyecto = proyecto
	return f.err
}

func (f *fakePortfolioService) DeleteProyecto(_ context.Context, id int64) error {
	f.deletedID = id
	return f.err
}

func (f *fakePortfolioService) GetProyecto(_ context.Context, _ int64) (*models.Proyecto, error) {
	if f.storedProyecto == nil {
		return nil, services.ErrNotFound
	}
	return f.storedProyecto, nil
}

func testUsuario() *models.Usuario {
	u := &models.Usuario{
		Username:      "daer",
		NombrePublico: "Daer Oriana Berenice",
		ProfileImage:  "daer.png",
	}
	u.ID = 1
	return u
}

// newHandlerTestApp builds a fiber app with the request-logger middleware and
// a stand-in for RequireSession that plants the owner username in Locals.
func newHandlerTestApp() *fiber.App {
	app := fiber.New()
	app.Use(mw.RequestLoggers(nil, nil))
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(mw.UsernameKey, "daer")
		return c.Next()
	})
	return app
}

func formRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// multipartRequest builds a multipart/form-data post carrying only text
// fields, the shape a browser sends when the file input is left empty.
func multipartRequest(path string, fields url.Values) *http.Request {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, values := range fields {
		for _, v := range values {
			w.WriteField(key, v)
		}
	}
	w.Close()
	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

// fakeAuditRepo serves canned entries for the audit view.
type fakeAuditRepo struct {
	entries   []models.AuditEntry
	lastLimit int
}

func (f *fakeAuditRepo) Insert(_ context.Context, entry models.AuditEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeAuditRepo) ListRecent(_ context.Context, limit int) ([]models.AuditEntry, error) {
	f.lastLimit = limit
	if len(f.entries) > limit {
		return f.entries[:limit], nil
	}
	return f.entries, nil
}

func (f *fakeAuditRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	var kept []models.AuditEntry
	var deleted int64
	for _, e := range f.entries {
		if e.Timestamp.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	f.entries = kept
	return deleted, nil
}

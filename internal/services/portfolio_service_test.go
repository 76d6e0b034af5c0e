package services

import (
	"context"
	"errors"
	"testing"

	"github.com/OriDaer/Portfolio/internal/models"

	"go.uber.org/zap"
)

func newPortfolioFixture(owner *models.Usuario) (PortfolioService, *fakeUserRepo, *fakeExperienciaRepo, *fakeEducacionRepo, *fakeCursoRepo, *fakeProyectoRepo) {
	userRepo := &fakeUserRepo{user: owner}
	expRepo := &fakeExperienciaRepo{updateAffected: 1, deleteAffected: 1}
	eduRepo := &fakeEducacionRepo{updateAffected: 1, deleteAffected: 1}
	cursoRepo := &fakeCursoRepo{updateAffected: 1, deleteAffected: 1}
	proyRepo := &fakeProyectoRepo{updateAffected: 1, deleteAffected: 1}
	svc := NewPortfolioService(userRepo, expRepo, eduRepo, cursoRepo, proyRepo, zap.NewNop())
	return svc, userRepo, expRepo, eduRepo, cursoRepo, proyRepo
}

func testOwner() *models.Usuario {
	u := &models.Usuario{Username: "daer", NombrePublico: "Daer Oriana Berenice"}
	u.ID = 1
	return u
}

func TestLandingPageAggregatesContent(t *testing.T) {
	svc, _, expRepo, eduRepo, cursoRepo, proyRepo := newPortfolioFixture(testOwner())
	ctx := context.Background()

	expRepo.Create(ctx, &models.Experiencia{UsuarioID: 1, Proyecto: "Sitio"})
	eduRepo.Create(ctx, &models.Educacion{UsuarioID: 1, Titulo: "Licenciatura"})
	eduRepo.Create(ctx, &models.Educacion{UsuarioID: 99, Titulo: "Otro"}) // not the owner's
	cursoRepo.Create(ctx, &models.Curso{UsuarioID: 1, Nombre: "Go"})
	proyRepo.Create(ctx, &models.Proyecto{Titulo: "Portfolio"})

	page, err := svc.LandingPage(ctx, "daer")
	if err != nil {
		t.Fatalf("LandingPage returned error: %v", err)
	}
	if page.Usuario == nil || page.Usuario.Username != "daer" {
		t.Fatalf("page.Usuario = %+v, want owner daer", page.Usuario)
	}
	if len(page.Experiencias) != 1 {
		t.Errorf("len(Experiencias) = %d, want 1", len(page.Experiencias))
	}
	if len(page.Educacion) != 1 {
		t.Errorf("len(Educacion) = %d, want 1 (owner-scoped)", len(page.Educacion))
	}
	if len(page.Cursos) != 1 {
		t.Errorf("len(Cursos) = %d, want 1", len(page.Cursos))
	}
	if len(page.Proyectos) != 1 {
		t.Errorf("len(Proyectos) = %d, want 1", len(page.Proyectos))
	}
}

func TestLandingPageMissingOwner(t *testing.T) {
	svc, _, _, _, _, _ := newPortfolioFixture(nil)

	_, err := svc.LandingPage(context.Background(), "daer")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("LandingPage error = %v, want ErrUserNotFound", err)
	}
}

// Updates and deletes that touch zero rows are hard failures.
func TestUpdateDeleteNotFound(t *testing.T) {
	svc, _, expRepo, eduRepo, cursoRepo, proyRepo := newPortfolioFixture(testOwner())
	expRepo.updateAffected, expRepo.deleteAffected = 0, 0
	eduRepo.updateAffected, eduRepo.deleteAffected = 0, 0
	cursoRepo.updateAffected, cursoRepo.deleteAffected = 0, 0
	proyRepo.updateAffected, proyRepo.deleteAffected = 0, 0
	ctx := context.Background()

	exp := &models.Experiencia{}
	exp.ID = 42
	edu := &models.Educacion{}
	edu.ID = 42
	curso := &models.Curso{}
	curso.ID = 42
	proyecto := &models.Proyecto{}
	proyecto.ID = 42

	ops := []struct {
		name string
		call func() error
	}{
		{"UpdateExperiencia", func() error { return svc.UpdateExperiencia(ctx, exp) }},
		{"DeleteExperiencia", func() error { return svc.DeleteExperiencia(ctx, 42) }},
		{"UpdateEducacion", func() error { return svc.UpdateEducacion(ctx, edu) }},
		{"DeleteEducacion", func() error { return svc.DeleteEducacion(ctx, 42) }},
		{"UpdateCurso", func() error { return svc.UpdateCurso(ctx, curso) }},
		{"DeleteCurso", func() error { return svc.DeleteCurso(ctx, 42) }},
		{"UpdateProyecto", func() error { return svc.UpdateProyecto(ctx, proyecto) }},
		{"DeleteProyecto", func() error { return svc.DeleteProyecto(ctx, 42) }},
	}
	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			if err := op.call(); !errors.Is(err, ErrNotFound) {
				t.Errorf("error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestCreateAssignsID(t *testing.T) {
	svc, _, _, _, _, _ := newPortfolioFixture(testOwner())
	ctx := context.Background()

	exp := &models.Experiencia{UsuarioID: 1, Proyecto: "Sitio"}
	if err := svc.CreateExperiencia(ctx, exp); err != nil {
		t.Fatalf("CreateExperiencia returned error: %v", err)
	}
	if exp.ID == 0 {
		t.Error("CreateExperiencia did not assign an id")
	}
}

func TestGetEducacionNotFound(t *testing.T) {
	svc, _, _, _, _, _ := newPortfolioFixture(testOwner())

	if _, err := svc.GetEducacion(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetEducacion error = %v, want ErrNotFound", err)
	}
}

func TestGetProyectoKeepsStoredImage(t *testing.T) {
	svc, _, _, _, _, proyRepo := newPortfolioFixture(testOwner())
	ctx := context.Background()

	proyRepo.Create(ctx, &models.Proyecto{Titulo: "Portfolio", Imagen: "portfolio.png"})

	got, err := svc.GetProyecto(ctx, 1)
	if err != nil {
		t.Fatalf("GetProyecto returned error: %v", err)
	}
	if got.Imagen != "portfolio.png" {
		t.Errorf("Imagen = %q, want %q", got.Imagen, "portfolio.png")
	}
}

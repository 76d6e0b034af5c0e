package services

import (
	"context"

	"github.com/OriDaer/Portfolio/internal/models"
)

// fakeUserRepo is an in-memory UserRepository holding at most one user,
// matching the single-account nature of the site.
type fakeUserRepo struct {
	user    *models.Usuario
	findErr error
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*models.Usuario, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.user != nil && f.user.Username == username {
		u := *f.user
		return &u, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*models.Usuario, error) {
	if f.user != nil && f.user.ID == id {
		u := *f.user
		return &u, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.Usuario) (int64, error) {
	user.ID = 1
	f.user = user
	return 1, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id int64, nombrePublico string) error {
	if f.user != nil && f.user.ID == id {
		f.user.NombrePublico = nombrePublico
	}
	return nil
}

func (f *fakeUserRepo) UpdateProfileImage(_ context.Context, id int64, filename string) error {
	if f.user != nil && f.user.ID == id {
		f.user.ProfileImage = filename
	}
	return nil
}

func (f *fakeUserRepo) UpdateAcercaDeMi(_ context.Context, id int64, acerca string) error {
	if f.user != nil && f.user.ID == id {
		f.user.AcercaDeMi = acerca
	}
	return nil
}

// fakeExperienciaRepo reports fixed affected-row counts for Update/Delete so
// tests can drive the not-found paths.
type fakeExperienciaRepo struct {
	items          []models.Experiencia
	updateAffected int64
	deleteAffected int64
}

func (f *fakeExperienciaRepo) Create(_ context.Context, exp *models.Experiencia) (int64, error) {
	exp.ID = int64(len(f.items) + 1)
	f.items = append(f.items, *exp)
	return exp.ID, nil
}

func (f *fakeExperienciaRepo) FindByID(_ context.Context, id int64) (*models.Experiencia, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			e := f.items[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeExperienciaRepo) List(_ context.Context) ([]models.Experiencia, error) {
	return f.items, nil
}

func (f *fakeExperienciaRepo) Update(_ context.Context, _ *models.Experiencia) (int64, error) {
	return f.updateAffected, nil
}

func (f *fakeExperienciaRepo) Delete(_ context.Context, _ int64) (int64, error) {
	return f.deleteAffected, nil
}

type fakeEducacionRepo struct {
	items          []models.Educacion
	updateAffected int64
	deleteAffected int64
}

func (f *fakeEducacionRepo) Create(_ context.Context, edu *models.Educacion) (int64, error) {
	edu.ID = int64(len(f.items) + 1)
	f.items = append(f.items, *edu)
	return edu.ID, nil
}

func (f *fakeEducacionRepo) FindByID(_ context.Context, id int64) (*models.Educacion, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			e := f.items[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeEducacionRepo) ListByUsuario(_ context.Context, usuarioID int64) ([]models.Educacion, error) {
	var out []models.Educacion
	for _, e := range f.items {
		if e.UsuarioID == usuarioID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEducacionRepo) Update(_ context.Context, _ *models.Educacion) (int64, error) {
	return f.updateAffected, nil
}

func (f *fakeEducacionRepo) Delete(_ context.Context, _ int64) (int64, error) {
	return f.deleteAffected, nil
}

type fakeCursoRepo struct {
	items          []models.Curso
	updateAffected int64
	deleteAffected int64
}

func (f *fakeCursoRepo) Create(_ context.Context, curso *models.Curso) (int64, error) {
	curso.ID = int64(len(f.items) + 1)
	f.items = append(f.items, *curso)
	return curso.ID, nil
}

func (f *fakeCursoRepo) FindByID(_ context.Context, id int64) (*models.Curso, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			c := f.items[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCursoRepo) ListByUsuario(_ context.Context, usuarioID int64) ([]models.Curso, error) {
	var out []models.Curso
	for _, c := range f.items {
		if c.UsuarioID == usuarioID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCursoRepo) Update(_ context.Context, _ *models.Curso) (int64, error) {
	return f.updateAffected, nil
}

func (f *fakeCursoRepo) Delete(_ context.Context, _ int64) (int64, error) {
	return f.deleteAffected, nil
}

type fakeProyectoRepo struct {
	items          []models.Proyecto
	updateAffected int64
	deleteAffected int64
}

func (f *fakeProyectoRepo) Create(_ context.Context, proyecto *models.Proyecto) (int64, error) {
	proyecto.ID = int64(len(f.items) + 1)
	f.items = append(f.items, *proyecto)
	return proyecto.ID, nil
}

func (f *fakeProyectoRepo) FindByID(_ context.Context, id int64) (*models.Proyecto, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			p := f.items[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProyectoRepo) List(_ context.Context) ([]models.Proyecto, error) {
	return f.items, nil
}

func (f *fakeProyectoRepo) Update(_ context.Context, _ *models.Proyecto) (int64, error) {
	return f.updateAffected, nil
}

func (f *fakeProyectoRepo) Delete(_ context.Context, _ int64) (int64, error) {
	return f.deleteAffected, nil
}

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/OriDaer/Portfolio/internal/models"
	"github.com/OriDaer/Portfolio/internal/repositories"
	"go.uber.org/zap"
)

// ErrNotFound is returned when an update or delete targets a row id that does
// not exist. It is a hard failure, never a silent no-op.
var ErrNotFound = errors.New("record not found")

// LandingPage aggregates everything the public index needs.
type LandingPage struct {
	Usuario      *models.Usuario      `json:"usuario"`
	Experiencias []models.Experiencia `json:"experiencias"`
	Educacion    []models.Educacion   `json:"educacion"`
	Cursos       []models.Curso       `json:"cursos"`
	Proyectos    []models.Proyecto    `json:"proyectos"`
}

// PortfolioService groups the CRUD operations for the four content entities
// plus the public landing aggregate.
type PortfolioService interface {
	LandingPage(ctx context.Context, ownerUsername string) (*LandingPage, error)

	CreateExperiencia(ctx context.Context, exp *models.Experiencia) error
	UpdateExperiencia(ctx context.Context, exp *models.Experiencia) error
	DeleteExperiencia(ctx context.Context, id int64) error

	CreateEducacion(ctx context.Context, edu *models.Educacion) error
	UpdateEducacion(ctx context.Context, edu *models.Educacion) error
	DeleteEducacion(ctx context.Context, id int64) error
	GetEducacion(ctx context.Context, id int64) (*models.Educacion, error)

	CreateCurso(ctx context.Context, curso *models.Curso) error
	UpdateCurso(ctx context.Context, curso *models.Curso) error
	DeleteCurso(ctx context.Context, id int64) error

	CreateProyecto(ctx context.Context, proyecto *models.Proyecto) error
	UpdateProyecto(ctx context.Context, proyecto *models.Proyecto) error
	DeleteProyecto(ctx context.Context, id int64) error
	GetProyecto(ctx context.Context, id int64) (*models.Proyecto, error)
}

type portfolioServiceImpl struct {
	userRepo        repositories.UserRepository
	experienciaRepo repositories.ExperienciaRepository
	educacionRepo   repositories.EducacionRepository
	cursoRepo       repositories.CursoRepository
	proyectoRepo    repositories.ProyectoRepository
	logger          *zap.Logger
}

// NewPortfolioService creates a new PortfolioService
func NewPortfolioService(
	userRepo repositories.UserRepository,
	experienciaRepo repositories.ExperienciaRepository,
	educacionRepo repositories.EducacionRepository,
	cursoRepo repositories.CursoRepository,
	proyectoRepo repositories.ProyectoRepository,
	logger *zap.Logger,
) PortfolioService {
	return &portfolioServiceImpl{
		userRepo:        userRepo,
		experienciaRepo: experienciaRepo,
		educacionRepo:   educacionRepo,
		cursoRepo:       cursoRepo,
		proyectoRepo:    proyectoRepo,
		logger:          logger,
	}
}

// LandingPage collects the owner profile with all public content. Educacion
// and cursos are scoped to the owner; experiencias and proyectos are listed
// globally, matching how the site has always rendered them.
func (s *portfolioServiceImpl) LandingPage(ctx context.Context, ownerUsername string) (*LandingPage, error) {
	owner, err := s.userRepo.FindByUsername(ctx, ownerUsername)
	if err != nil {
		return nil, fmt.Errorf("could not load owner profile: %w", err)
	}
	if owner == nil {
		s.logger.Error("Landing page requested but owner account is missing", zap.String("username", ownerUsername))
		return nil, ErrUserNotFound
	}

	experiencias, err := s.experienciaRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	educacion, err := s.educacionRepo.ListByUsuario(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	cursos, err := s.cursoRepo.ListByUsuario(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	proyectos, err := s.proyectoRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &LandingPage{
		Usuario:      owner,
		Experiencias: experiencias,
		Educacion:    educacion,
		Cursos:       cursos,
		Proyectos:    proyectos,
	}, nil
}

// --- Experiencia ---

func (s *portfolioServiceImpl) CreateExperiencia(ctx context.Context, exp *models.Experiencia) error {
	if _, err := s.experienciaRepo.Create(ctx, exp); err != nil {
		return err
	}
	s.logger.Info("Experiencia created", zap.Int64("id", exp.ID), zap.String("proyecto", exp.Proyecto))
	return nil
}

func (s *portfolioServiceImpl) UpdateExperiencia(ctx context.Context, exp *models.Experiencia) error {
	affected, err := s.experienciaRepo.Update(ctx, exp)
	if err != nil {
		return err
	}
	if affected == 0 {
		s.logger.Warn("Update targeted non-existent experiencia", zap.Int64("id", exp.ID))
		return ErrNotFound
	}
	s.logger.Info("Experiencia updated", zap.Int64("id", exp.ID))
	return nil
}

func (s *portfolioServiceImpl) DeleteExperiencia(ctx context.Context, id int64) error {
	affected, err := s.experienciaRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		s.logger.Warn("Delete targeted non-existent experiencia", zap.Int64("id", id))
		return ErrNotFound
	}
	s.logger.Info("Experiencia deleted", zap.Int64("id", id))
	return nil
}

// --- Educacion ---

func (s *portfolioServiceImpl) CreateEducacion(ctx context.Context, edu *models.Educacion) error {
	if _, err := s.educacionRepo.Create(ctx, edu); err != nil {
		return err
	}
	s.logger.Info("Educacion created", zap.Int64("id", edu.ID), zap.String("titulo", edu.Titulo))
	return nil
}

func (s *portfolioServiceImpl) UpdateEducacion(ctx context.Context, edu *models.Educacion) error {
	affected, err := s.educacionRepo.Update(ctx, edu)
	if err != nil {
		return err
	}
	if affected == 0 {
		s.logger.Warn("Update targeted non-existent educacion", zap.Int64("id", edu.ID))
		return ErrNotFound
	}
	s.logger.Info("Educacion updated", zap.Int64("id", edu.ID))
	return nil
}

func (s *portfolioServiceImpl) DeleteEducacion(ctx context.Context, id int64) error {
	affected, err := s.educacionRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		s.logger.Warn("Delete targeted non-existent educacion", zap.Int64("id", id))
		return ErrNotFound
	}
	s.logger.Info("Educacion deleted", zap.Int64("id", id))
	return nil
}

// GetEducacion loads one row, used to preserve the stored logo when an update
// arrives without a replacement file.
func (s *portfolioServiceImpl) GetEducacion(ctx context.Context, id int64) (*models.Educacion, error) {
	edu, err := s.educacionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if edu == nil {
		return nil, ErrNotFound
	}
	return edu, nil
}

// --- Curso ---

func (s *portfolioServiceImpl) CreateCurso(ctx context.Context, curso *models.Curso) error {
	if _, err := s.cursoRepo.Create(ctx, curso); err != nil {
		return err
	}
	s.logger.Info("Curso created", zap.Int64("id", curso.ID), zap.String("nombre", curso.Nombre))
	return nil
}

func (s *portfolioServiceImpl) UpdateCurso(ctx context.Context, curso *models.Curso) error {
	affected, err := s.cursoRepo.Update(ctx, curso)
	if err != nil {
		return err
	}
	if affected == 0 {
		s.logger.Warn("Update targeted non-existent curso", zap.Int64("id", curso.ID))
		return ErrNotFound
	}
	s.logger.Info("Curso updated", zap.Int64("id", curso.ID))
	return nil
}

func (s *portfolioServiceImpl) DeleteCurso(ctx context.Context, id int64) error {
	affected, err := s.cursoRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		s.logger.Warn("Delete targeted non-existent curso", zap.Int64("id", id))
		return ErrNotFound
	}
	s.logger.Info("Curso deleted", zap.Int64("id", id))
	return nil
}

// --- Proyecto ---

func (s *portfolioServiceImpl) CreateProyecto(ctx context.Context, proyecto *models.Proyecto) error {
	if _, err := s.proyectoRepo.Create(ctx, proyecto); err != nil {
		return err
	}
	s.logger.Info("Proyecto created", zap.Int64("id", proyecto.ID), zap.String("titulo", proyecto.Titulo))
	return nil
}

func (s *portfolioServiceImpl) UpdateProyecto(ctx context.Context, proyecto *models.Proyecto) error {
	affected, err := s.proyectoRepo.Update(ctx, proyecto)
	if err != nil {
		return err
	}
	if affected == 0 {
		s.logger.Warn("Update targeted non-existent proyecto", zap.Int64("id", proyecto.ID))
		return ErrNotFound
	}
	s.logger.Info("Proyecto updated", zap.Int64("id", proyecto.ID))
	return nil
}

func (s *portfolioServiceImpl) DeleteProyecto(ctx context.Context, id int64) error {
	affected, err := s.proyectoRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		s.logger.Warn("Delete targeted non-existent proyecto", zap.Int64("id", id))
		return ErrNotFound
	}
	s.logger.Info("Proyecto deleted", zap.Int64("id", id))
	return nil
}

// GetProyecto loads one row, used to preserve the stored image when an update
// arrives without a replacement file.
func (s *portfolioServiceImpl) GetProyecto(ctx context.Context, id int64) (*models.Proyecto, error) {
	proyecto, err := s.proyectoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if proyecto == nil {
		return nil, ErrNotFound
	}
	return proyecto, nil
}

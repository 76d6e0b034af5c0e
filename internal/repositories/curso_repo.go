package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/OriDaer/Portfolio/internal/models"
	"go.uber.org/zap"
)

// CursoRepository defines the interface for course rows.
type CursoRepository interface {
	Create(ctx context.Context, curso *models.Curso) (int64, error)
	FindByID(ctx context.Context, id int64) (*models.Curso, error)
	ListByUsuario(ctx context.Context, usuarioID int64) ([]models.Curso, error)
	Update(ctx context.Context, curso *models.Curso) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type sqliteCursoRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCursoRepository creates a new CursoRepository
func NewCursoRepository(db *sql.DB, logger *zap.Logger) CursoRepository {
	return &sqliteCursoRepository{db: db, logger: logger}
}

func (r *sqliteCursoRepository) Create(ctx context.Context, curso *models.Curso) (int64, error) {
	query := `
        INSERT INTO curso (usuario_id, nombre, institucion, periodo, certificacion_url)
        VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		curso.UsuarioID, curso.Nombre, curso.Institucion, curso.Periodo, curso.CertificacionURL)
	if err != nil {
		r.logger.Error("Error creating curso", zap.Error(err))
		return 0, fmt.Errorf("error creating curso: %w", err)
	}
	newID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading new curso id: %w", err)
	}
	curso.ID = newID
	return newID, nil
}

func (r *sqliteCursoRepository) FindByID(ctx context.Context, id int64) (*models.Curso, error) {
	query := `SELECT id, created_at, usuario_id, nombre, institucion, periodo, certificacion_url
        FROM curso WHERE id = ?`
	curso := &models.Curso{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&curso.ID, &curso.CreatedAt, &curso.UsuarioID,
		&curso.Nombre, &curso.Institucion, &curso.Periodo, &curso.CertificacionURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		r.logger.Error("Error querying curso by ID", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("error finding curso %d: %w", id, err)
	}
	return curso, nil
}

func (r *sqliteCursoRepository) ListByUsuario(ctx context.Context, usuarioID int64) ([]models.Curso, error) {
	query := `SELECT id, created_at, usuario_id, nombre, institucion, periodo, certificacion_url
        FROM curso WHERE usuario_id = ? ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, usuarioID)
	if err != nil {
		r.logger.Error("Error listing cursos", zap.Int64("usuario_id", usuarioID), zap.Error(err))
		return nil, fmt.Errorf("error listing cursos: %w", err)
	}
	defer rows.Close()

	var items []models.Curso
	for rows.Next() {
		var curso models.Curso
		if err := rows.Scan(&curso.ID, &curso.CreatedAt, &curso.UsuarioID,
			&curso.Nombre, &curso.Institucion, &curso.Periodo, &curso.CertificacionURL); err != nil {
			return nil, fmt.Errorf("error scanning curso row: %w", err)
		}
		items = append(items, curso)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating curso rows: %w", err)
	}
	return items, nil
}

// Update overwrites every mutable field unconditionally.
func (r *sqliteCursoRepository) Update(ctx context.Context, curso *models.Curso) (int64, error) {
	query := `UPDATE curso SET nombre = ?, institucion = ?, periodo = ?, certificacion_url = ?
        WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		curso.Nombre, curso.Institucion, curso.Periodo, curso.CertificacionURL, curso.ID)
	if err != nil {
		r.logger.Error("Error updating curso", zap.Int64("id", curso.ID), zap.Error(err))
		return 0, fmt.Errorf("error updating curso %d: %w", curso.ID, err)
	}
	return res.RowsAffected()
}

func (r *sqliteCursoRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM curso WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("Error deleting curso", zap.Int64("id", id), zap.Error(err))
		return 0, fmt.Errorf("error deleting curso %d: %w", id, err)
	}
	return res.RowsAffected()
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/OriDaer/Portfolio/internal/models"
	"go.uber.org/zap"
)

// EducacionRepository defines the interface for education rows.
type EducacionRepository interface {
	Create(ctx context.Context, edu *models.Educacion) (int64, error)
	FindByID(ctx context.Context, id int64) (*models.Educacion, error)
	ListByUsuario(ctx context.Context, usuarioID int64) ([]models.Educacion, error)
	Update(ctx context.Context, edu *models.Educacion) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type sqliteEducacionRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewEducacionRepository creates a new EducacionRepository
func NewEducacionRepository(db *sql.DB, logger *zap.Logger) EducacionRepository {
	return &sqliteEducacionRepository{db: db, logger: logger}
}

func (r *sqliteEducacionRepository) Create(ctx context.Context, edu *models.Educacion) (int64, error) {
	query := `
        INSERT INTO educacion (usuario_id, titulo, institucion, periodo, estado, logo)
        VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		edu.UsuarioID, edu.Titulo, edu.Institucion, edu.Periodo, edu.Estado, edu.Logo)
	if err != nil {
		r.logger.Error("Error creating educacion", zap.Error(err))
		return 0, fmt.Errorf("error creating educacion: %w", err)
	}
	newID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading new educacion id: %w", err)
	}
	edu.ID = newID
	return newID, nil
}

func (r *sqliteEducacionRepository) FindByID(ctx context.Context, id int64) (*models.Educacion, error) {
	query := `SELECT id, created_at, usuario_id, titulo, institucion, periodo, estado, logo
        FROM educacion WHERE id = ?`
	edu := &models.Educacion{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&edu.ID, &edu.CreatedAt, &edu.UsuarioID,
		&edu.Titulo, &edu.Institucion, &edu.Periodo, &edu.Estado, &edu.Logo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		r.logger.Error("Error querying educacion by ID", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("error finding educacion %d: %w", id, err)
	}
	return edu, nil
}

func (r *sqliteEducacionRepository) ListByUsuario(ctx context.Context, usuarioID int64) ([]models.Educacion, error) {
	query := `SELECT id, created_at, usuario_id, titulo, institucion, periodo, estado, logo
        FROM educacion WHERE usuario_id = ? ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, usuarioID)
	if err != nil {
		r.logger.Error("Error listing educacion", zap.Int64("usuario_id", usuarioID), zap.Error(err))
		return nil, fmt.Errorf("error listing educacion: %w", err)
	}
	defer rows.Close()

	var items []models.Educacion
	for rows.Next() {
		var edu models.Educacion
		if err := rows.Scan(&edu.ID, &edu.CreatedAt, &edu.UsuarioID,
			&edu.Titulo, &edu.Institucion, &edu.Periodo, &edu.Estado, &edu.Logo); err != nil {
			return nil, fmt.Errorf("error scanning educacion row: %w", err)
		}
		items = append(items, edu)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating educacion rows: %w", err)
	}
	return items, nil
}

// Update overwrites every mutable field unconditionally, including the logo
// reference when a new file was stored.
func (r *sqliteEducacionRepository) Update(ctx context.Context, edu *models.Educacion) (int64, error) {
	query := `UPDATE educacion SET titulo = ?, institucion = ?, periodo = ?, estado = ?, logo = ?
        WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		edu.Titulo, edu.Institucion, edu.Periodo, edu.Estado, edu.Logo, edu.ID)
	if err != nil {
		r.logger.Error("Error updating educacion", zap.Int64("id", edu.ID), zap.Error(err))
		return 0, fmt.Errorf("error updating educacion %d: %w", edu.ID, err)
	}
	return res.RowsAffected()
}

func (r *sqliteEducacionRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM educacion WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("Error deleting educacion", zap.Int64("id", id), zap.Error(err))
		return 0, fmt.Errorf("error deleting educacion %d: %w", id, err)
	}
	return res.RowsAffected()
}

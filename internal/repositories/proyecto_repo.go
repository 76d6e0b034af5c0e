package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/OriDaer/Portfolio/internal/models"
	"go.uber.org/zap"
)

// ProyectoRepository defines the interface for project rows. Proyecto carries
// no usuario_id column; the listing is global.
type ProyectoRepository interface {
	Create(ctx context.Context, proyecto *models.Proyecto) (int64, error)
	FindByID(ctx context.Context, id int64) (*models.Proyecto, error)
	List(ctx context.Context) ([]models.Proyecto, error)
	Update(ctx context.Context, proyecto *models.Proyecto) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type sqliteProyectoRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewProyectoRepository creates a new ProyectoRepository
func NewProyectoRepository(db *sql.DB, logger *zap.Logger) ProyectoRepository {
	return &sqliteProyectoRepository{db: db, logger: logger}
}

func (r *sqliteProyectoRepository) Create(ctx context.Context, proyecto *models.Proyecto) (int64, error) {
	query := `
        INSERT INTO proyecto (titulo, descripcion, fecha, github_url, imagen)
        VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		proyecto.Titulo, proyecto.Descripcion, proyecto.Fecha, proyecto.GithubURL, proyecto.Imagen)
	if err != nil {
		r.logger.Error("Error creating proyecto", zap.Error(err))
		return 0, fmt.Errorf("error creating proyecto: %w", err)
	}
	newID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading new proyecto id: %w", err)
	}
	proyecto.ID = newID
	return newID, nil
}

func (r *sqliteProyectoRepository) FindByID(ctx context.Context, id int64) (*models.Proyecto, error) {
	query := `SELECT id, created_at, titulo, descripcion, fecha, github_url, imagen
        FROM proyecto WHERE id = ?`
	proyecto := &models.Proyecto{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&proyecto.ID, &proyecto.CreatedAt,
		&proyecto.Titulo, &proyecto.Descripcion, &proyecto.Fecha, &proyecto.GithubURL, &proyecto.Imagen)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		r.logger.Error("Error querying proyecto by ID", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("error finding proyecto %d: %w", id, err)
	}
	return proyecto, nil
}

func (r *sqliteProyectoRepository) List(ctx context.Context) ([]models.Proyecto, error) {
	query := `SELECT id, created_at, titulo, descripcion, fecha, github_url, imagen
        FROM proyecto ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Error listing proyectos", zap.Error(err))
		return nil, fmt.Errorf("error listing proyectos: %w", err)
	}
	defer rows.Close()

	var items []models.Proyecto
	for rows.Next() {
		var proyecto models.Proyecto
		if err := rows.Scan(&proyecto.ID, &proyecto.CreatedAt,
			&proyecto.Titulo, &proyecto.Descripcion, &proyecto.Fecha, &proyecto.GithubURL, &proyecto.Imagen); err != nil {
			return nil, fmt.Errorf("error scanning proyecto row: %w", err)
		}
		items = append(items, proyecto)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating proyecto rows: %w", err)
	}
	return items, nil
}

// Update overwrites every mutable field unconditionally, including the image
// reference when a new file was stored.
func (r *sqliteProyectoRepository) Update(ctx context.Context, proyecto *models.Proyecto) (int64, error) {
	query := `UPDATE proyecto SET titulo = ?, descripcion = ?, fecha = ?, github_url = ?, imagen = ?
        WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		proyecto.Titulo, proyecto.Descripcion, proyecto.Fecha, proyecto.GithubURL, proyecto.Imagen, proyecto.ID)
	if err != nil {
		r.logger.Error("Error updating proyecto", zap.Int64("id", proyecto.ID), zap.Error(err))
		return 0, fmt.Errorf("error updating proyecto %d: %w", proyecto.ID, err)
	}
	return res.RowsAffected()
}

func (r *sqliteProyectoRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM proyecto WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("Error deleting proyecto", zap.Int64("id", id), zap.Error(err))
		return 0, fmt.Errorf("error deleting proyecto %d: %w", id, err)
	}
	return res.RowsAffected()
}

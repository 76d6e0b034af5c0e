package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/OriDaer/Portfolio/internal/models"
	"go.uber.org/zap"
)

// ExperienciaRepository defines the interface for work-experience rows.
// Update and Delete report the number of affected rows so callers can tell a
// missing id apart from a successful write.
type ExperienciaRepository interface {
	Create(ctx context.Context, exp *models.Experiencia) (int64, error)
	FindByID(ctx context.Context, id int64) (*models.Experiencia, error)
	List(ctx context.Context) ([]models.Experiencia, error)
	Update(ctx context.Context, exp *models.Experiencia) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type sqliteExperienciaRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewExperienciaRepository creates a new ExperienciaRepository
func NewExperienciaRepository(db *sql.DB, logger *zap.Logger) ExperienciaRepository {
	return &sqliteExperienciaRepository{db: db, logger: logger}
}

func (r *sqliteExperienciaRepository) Create(ctx context.Context, exp *models.Experiencia) (int64, error) {
	query := `
        INSERT INTO experiencia (usuario_id, proyecto, descripcion, puesto, periodo, logros)
        VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		exp.UsuarioID, exp.Proyecto, exp.Descripcion, exp.Puesto, exp.Periodo, exp.Logros)
	if err != nil {
		r.logger.Error("Error creating experiencia", zap.Error(err))
		return 0, fmt.Errorf("error creating experiencia: %w", err)
	}
	newID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading new experiencia id: %w", err)
	}
	exp.ID = newID
	return newID, nil
}

func (r *sqliteExperienciaRepository) FindByID(ctx context.Context, id int64) (*models.Experiencia, error) {
	query := `SELECT id, created_at, usuario_id, proyecto, descripcion, puesto, periodo, logros
        FROM experiencia WHERE id = ?`
	exp := &models.Experiencia{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&exp.ID, &exp.CreatedAt, &exp.UsuarioID,
		&exp.Proyecto, &exp.Descripcion, &exp.Puesto, &exp.Periodo, &exp.Logros)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		r.logger.Error("Error querying experiencia by ID", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("error finding experiencia %d: %w", id, err)
	}
	return exp, nil
}

func (r *sqliteExperienciaRepository) List(ctx context.Context) ([]models.Experiencia, error) {
	query := `SELECT id, created_at, usuario_id, proyecto, descripcion, puesto, periodo, logros
        FROM experiencia ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Error listing experiencias", zap.Error(err))
		return nil, fmt.Errorf("error listing experiencias: %w", err)
	}
	defer rows.Close()

	var items []models.Experiencia
	for rows.Next() {
		var exp models.Experiencia
		if err := rows.Scan(&exp.ID, &exp.CreatedAt, &exp.UsuarioID,
			&exp.Proyecto, &exp.Descripcion, &exp.Puesto, &exp.Periodo, &exp.Logros); err != nil {
			return nil, fmt.Errorf("error scanning experiencia row: %w", err)
		}
		items = append(items, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating experiencia rows: %w", err)
	}
	return items, nil
}

// Update overwrites every mutable field unconditionally.
func (r *sqliteExperienciaRepository) Update(ctx context.Context, exp *models.Experiencia) (int64, error) {
	query := `UPDATE experiencia SET proyecto = ?, descripcion = ?, puesto = ?, periodo = ?, logros = ?
        WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		exp.Proyecto, exp.Descripcion, exp.Puesto, exp.Periodo, exp.Logros, exp.ID)
	if err != nil {
		r.logger.Error("Error updating experiencia", zap.Int64("id", exp.ID), zap.Error(err))
		return 0, fmt.Errorf("error updating experiencia %d: %w", exp.ID, err)
	}
	return res.RowsAffected()
}

func (r *sqliteExperienciaRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM experiencia WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("Error deleting experiencia", zap.Int64("id", id), zap.Error(err))
		return 0, fmt.Errorf("error deleting experiencia %d: %w", id, err)
	}
	return res.RowsAffected()
}

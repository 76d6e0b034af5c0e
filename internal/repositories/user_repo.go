package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/OriDaer/Portfolio/internal/models"
	"go.uber.org/zap"
)

// UserRepository defines the interface for owner-account data operations
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.Usuario, error)
	FindByID(ctx context.Context, id int64) (*models.Usuario, error)
	CreateUser(ctx context.Context, user *models.Usuario) (int64, error) // Returns the new user ID
	UpdateProfile(ctx context.Context, id int64, nombrePublico string) error
	UpdateProfileImage(ctx context.Context, id int64, filename string) error
	UpdateAcercaDeMi(ctx context.Context, id int64, acerca string) error
}

// sqliteUserRepository implements UserRepository over the SQLite store
type sqliteUserRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *sql.DB, logger *zap.Logger) UserRepository {
	return &sqliteUserRepository{db: db, logger: logger}
}

const userColumns = `id, created_at, username, password_hash, nombre_publico, profile_image, acerca_de_mi`

func (r *sqliteUserRepository) scanUser(row *sql.Row) (*models.Usuario, error) {
	user := &models.Usuario{}
	err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.Username,
		&user.PasswordHash,
		&user.NombrePublico,
		&user.ProfileImage,
		&user.AcercaDeMi,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Return nil, nil to indicate not found cleanly
		}
		return nil, err
	}
	return user, nil
}

// FindByUsername retrieves a user row by username.
func (r *sqliteUserRepository) FindByUsername(ctx context.Context, username string) (*models.Usuario, error) {
	query := `SELECT ` + userColumns + ` FROM usuario WHERE username = ?`
	r.logger.Debug("Executing FindByUsername query", zap.String("username", username))

	user, err := r.scanUser(r.db.QueryRowContext(ctx, query, username))
	if err != nil {
		r.logger.Error("Error querying user by username", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("error finding user by username %s: %w", username, err)
	}
	if user == nil {
		r.logger.Warn("User not found by username", zap.String("username", username))
	}
	return user, nil
}

// FindByID retrieves a user row by id.
func (r *sqliteUserRepository) FindByID(ctx context.Context, id int64) (*models.Usuario, error) {
	query := `SELECT ` + userColumns + ` FROM usuario WHERE id = ?`
	r.logger.Debug("Executing FindByID query", zap.Int64("id", id))

	user, err := r.scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		r.logger.Error("Error querying user by ID", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("error finding user by ID %d: %w", id, err)
	}
	return user, nil
}

// CreateUser inserts a new owner row. The unique index on username rejects
// duplicates at the database level.
func (r *sqliteUserRepository) CreateUser(ctx context.Context, user *models.Usuario) (int64, error) {
	query := `
        INSERT INTO usuario (username, password_hash, nombre_publico, profile_image, acerca_de_mi)
        VALUES (?, ?, ?, ?, ?)`

	r.logger.Debug("Executing CreateUser query", zap.String("username", user.Username))

	res, err := r.db.ExecContext(ctx, query,
		user.Username,
		user.PasswordHash,
		user.NombrePublico,
		user.ProfileImage,
		user.AcercaDeMi,
	)
	if err != nil {
		r.logger.Error("Error creating user", zap.String("username", user.Username), zap.Error(err))
		return 0, fmt.Errorf("error creating user %s: %w", user.Username, err)
	}

	newID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading new user id: %w", err)
	}
	user.ID = newID
	r.logger.Info("User created successfully", zap.String("username", user.Username), zap.Int64("newID", newID))
	return newID, nil
}

// UpdateProfile overwrites the public display name.
func (r *sqliteUserRepository) UpdateProfile(ctx context.Context, id int64, nombrePublico string) error {
	query := `UPDATE usuario SET nombre_publico = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, nombrePublico, id); err != nil {
		r.logger.Error("Error updating display name", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("error updating display name for user %d: %w", id, err)
	}
	return nil
}

// UpdateProfileImage overwrites the stored profile image filename.
func (r *sqliteUserRepository) UpdateProfileImage(ctx context.Context, id int64, filename string) error {
	query := `UPDATE usuario SET profile_image = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, filename, id); err != nil {
		r.logger.Error("Error updating profile image", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("error updating profile image for user %d: %w", id, err)
	}
	return nil
}

// UpdateAcercaDeMi overwrites the free-text bio.
func (r *sqliteUserRepository) UpdateAcercaDeMi(ctx context.Context, id int64, acerca string) error {
	query := `UPDATE usuario SET acerca_de_mi = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, acerca, id); err != nil {
		r.logger.Error("Error updating about text", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("error updating about text for user %d: %w", id, err)
	}
	return nil
}

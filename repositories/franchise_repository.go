package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/champion-league/models"
)

var (
	ErrFranchiseNotFound     = errors.New("franchise not found")
	ErrFranchiseNameConflict = errors.New("franchise name conflict")
	ErrFranchiseCodeConflict = errors.New("franchise code conflict")
	ErrFranchiseInUse        = errors.New("franchise cannot be deleted as it is in use")
)

type FranchiseRepository interface {
	Create(ctx context.Context, franchise *models.Franchise) error
	GetByID(ctx context.Context, id int) (*models.Franchise, error)
	List(ctx context.Context, offset, limit int) ([]models.Franchise, error)
	Update(ctx context.Context, id int, patch models.FranchisePatch) (*models.Franchise, error)
	Delete(ctx context.Context, id int) error
}

type postgresFranchiseRepository struct {
	db *sql.DB
}

func NewPostgresFranchiseRepository(db *sql.DB) FranchiseRepository {
	return &postgresFranchiseRepository{db: db}
}

const franchiseColumns = `id, name, franchise_code, logo_path, extra_data, created_at`

func scanFranchise(row interface{ Scan(...interface{}) error }, f *models.Franchise) error {
	return row.Scan(&f.ID, &f.Name, &f.FranchiseCode, &f.LogoPath, &f.ExtraData, &f.CreatedAt)
}

func (r *postgresFranchiseRepository) Create(ctx context.Context, f *models.Franchise) error {
	query := `
		INSERT INTO franchises (name, franchise_code, logo_path, extra_data)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, f.Name, f.FranchiseCode, f.LogoPath, f.ExtraData).
		Scan(&f.ID, &f.CreatedAt)
	return r.handleFranchiseError(err)
}

func (r *postgresFranchiseRepository) GetByID(ctx context.Context, id int) (*models.Franchise, error) {
	query := `SELECT ` + franchiseColumns + ` FROM franchises WHERE id = $1`

	var f models.Franchise
	if err := scanFranchise(r.db.QueryRowContext(ctx, query, id), &f); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFranchiseNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *postgresFranchiseRepository) List(ctx context.Context, offset, limit int) ([]models.Franchise, error) {
	query := `SELECT ` + franchiseColumns + ` FROM franchises ORDER BY id ASC LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	franchises := make([]models.Franchise, 0)
	for rows.Next() {
		var f models.Franchise
		if scanErr := scanFranchise(rows, &f); scanErr != nil {
			return nil, scanErr
		}
		franchises = append(franchises, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return franchises, nil
}

func (r *postgresFranchiseRepository) Update(ctx context.Context, id int, patch models.FranchisePatch) (*models.Franchise, error) {
	query := `
		UPDATE franchises SET
			name = COALESCE($1, name),
			franchise_code = COALESCE($2, franchise_code),
			logo_path = COALESCE($3, logo_path),
			extra_data = COALESCE($4::jsonb, extra_data)
		WHERE id = $5
		RETURNING ` + franchiseColumns

	var f models.Franchise
	err := scanFranchise(r.db.QueryRowContext(ctx, query,
		patch.Name, patch.FranchiseCode, patch.LogoPath, patch.ExtraData, id,
	), &f)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFranchiseNotFound
		}
		return nil, r.handleFranchiseError(err)
	}
	return &f, nil
}

func (r *postgresFranchiseRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM franchises WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return r.handleFranchiseError(err)
	}
	return checkAffectedRows(result, ErrFranchiseNotFound)
}

func (r *postgresFranchiseRepository) handleFranchiseError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case isUniqueViolation(err, "franchises_name_key"):
		return ErrFranchiseNameConflict
	case isUniqueViolation(err, "franchises_code_key"):
		return ErrFranchiseCodeConflict
	case isForeignKeyViolation(err):
		return ErrFranchiseInUse
	}
	return fmt.Errorf("franchise query failed: %w", err)
}

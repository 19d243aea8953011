package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/champion-league/models"
)

var (
	ErrGalleryItemNotFound = errors.New("gallery item not found")
	ErrGalleryMatchInvalid = errors.New("invalid match reference")
)

type ListGalleryFilter struct {
	MatchID *int
	Offset  int
	Limit   int
}

type GalleryRepository interface {
	Create(ctx context.Context, item *models.GalleryItem) error
	GetByID(ctx context.Context, id int) (*models.GalleryItem, error)
	List(ctx context.Context, filter ListGalleryFilter) ([]models.GalleryItem, error)
	Delete(ctx context.Context, id int) (*models.GalleryItem, error)
}

type postgresGalleryRepository struct {
	db *sql.DB
}

func NewPostgresGalleryRepository(db *sql.DB) GalleryRepository {
	return &postgresGalleryRepository{db: db}
}

const galleryColumns = `id, title, description, image_path, match_id, extra_data, created_at`

func scanGalleryItem(row interface{ Scan(...interface{}) error }, g *models.GalleryItem) error {
	return row.Scan(&g.ID, &g.Title, &g.Description, &g.ImagePath, &g.MatchID, &g.ExtraData, &g.CreatedAt)
}

func (r *postgresGalleryRepository) Create(ctx context.Context, g *models.GalleryItem) error {
	query := `
		INSERT INTO gallery (title, description, image_path, match_id, extra_data)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, g.Title, g.Description, g.ImagePath, g.MatchID, g.ExtraData).
		Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrGalleryMatchInvalid
		}
		return fmt.Errorf("failed to insert gallery item: %w", err)
	}
	return nil
}

func (r *postgresGalleryRepository) GetByID(ctx context.Context, id int) (*models.GalleryItem, error) {
	query := `SELECT ` + galleryColumns + ` FROM gallery WHERE id = $1`

	var g models.GalleryItem
	if err := scanGalleryItem(r.db.QueryRowContext(ctx, query, id), &g); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGalleryItemNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *postgresGalleryRepository) List(ctx context.Context, filter ListGalleryFilter) ([]models.GalleryItem, error) {
	fb := newFilterBuilder(`SELECT ` + galleryColumns + ` FROM gallery WHERE 1=1`)
	if filter.MatchID != nil {
		fb.where("match_id = ?", *filter.MatchID)
	}
	fb.raw(" ORDER BY created_at DESC, id DESC")
	fb.page(filter.Offset, filter.Limit)
	query, args := fb.query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.GalleryItem, 0)
	for rows.Next() {
		var g models.GalleryItem
		if scanErr := scanGalleryItem(rows, &g); scanErr != nil {
			return nil, scanErr
		}
		items = append(items, g)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete возвращает удалённую запись: путь к изображению нужен для очистки хранилища.
func (r *postgresGalleryRepository) Delete(ctx context.Context, id int) (*models.GalleryItem, error) {
	query := `DELETE FROM gallery WHERE id = $1 RETURNING ` + galleryColumns

	var g models.GalleryItem
	if err := scanGalleryItem(r.db.QueryRowContext(ctx, query, id), &g); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGalleryItemNotFound
		}
		return nil, fmt.Errorf("failed to delete gallery item: %w", err)
	}
	return &g, nil
}

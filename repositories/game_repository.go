package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/champion-league/models"
)

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrGameNameConflict = errors.New("game name conflict")
	ErrGameInUse        = errors.New("game cannot be deleted as it is in use") // На игру ссылаются команды или матчи
)

type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	GetByID(ctx context.Context, id int) (*models.Game, error)
	List(ctx context.Context, offset, limit int) ([]models.Game, error)
	Update(ctx context.Context, id int, patch models.GamePatch) (*models.Game, error)
	Delete(ctx context.Context, id int) error
	ExistsByName(ctx context.Context, name string) (bool, error)
}

type postgresGameRepository struct {
	db *sql.DB
}

func NewPostgresGameRepository(db *sql.DB) GameRepository {
	return &postgresGameRepository{db: db}
}

const gameColumns = `id, name, description, winning_points, category, image_path, extra_data, created_at`

func scanGame(row interface{ Scan(...interface{}) error }, g *models.Game) error {
	return row.Scan(&g.ID, &g.Name, &g.Description, &g.WinningPoints, &g.Category, &g.ImagePath, &g.ExtraData, &g.CreatedAt)
}

func (r *postgresGameRepository) Create(ctx context.Context, game *models.Game) error {
	query := `
		INSERT INTO games (name, description, winning_points, category, image_path, extra_data)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		game.Name, game.Description, game.WinningPoints, game.Category, game.ImagePath, game.ExtraData,
	).Scan(&game.ID, &game.CreatedAt)
	return r.handleGameError(err)
}

func (r *postgresGameRepository) GetByID(ctx context.Context, id int) (*models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE id = $1`

	var game models.Game
	if err := scanGame(r.db.QueryRowContext(ctx, query, id), &game); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (r *postgresGameRepository) List(ctx context.Context, offset, limit int) ([]models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games ORDER BY id ASC LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := make([]models.Game, 0)
	for rows.Next() {
		var game models.Game
		if scanErr := scanGame(rows, &game); scanErr != nil {
			return nil, scanErr
		}
		games = append(games, game)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return games, nil
}

// Update меняет только переданные поля; extra_data заменяется целиком.
func (r *postgresGameRepository) Update(ctx context.Context, id int, patch models.GamePatch) (*models.Game, error) {
	query := `
		UPDATE games SET
			name = COALESCE($1, name),
			description = COALESCE($2, description),
			winning_points = COALESCE($3, winning_points),
			category = COALESCE($4, category),
			image_path = COALESCE($5, image_path),
			extra_data = COALESCE($6::jsonb, extra_data)
		WHERE id = $7
		RETURNING ` + gameColumns

	var game models.Game
	err := scanGame(r.db.QueryRowContext(ctx, query,
		patch.Name, patch.Description, patch.WinningPoints, patch.Category, patch.ImagePath, patch.ExtraData, id,
	), &game)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, r.handleGameError(err)
	}
	return &game, nil
}

func (r *postgresGameRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM games WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return r.handleGameError(err)
	}
	return checkAffectedRows(result, ErrGameNotFound)
}

func (r *postgresGameRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM games WHERE name = $1)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postgresGameRepository) handleGameError(err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err, "games_name_key") {
		return ErrGameNameConflict
	}
	if isForeignKeyViolation(err) {
		return ErrGameInUse
	}
	return fmt.Errorf("game query failed: %w", err)
}

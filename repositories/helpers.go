package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lib/pq"
)

// SQLExecutor позволяет выполнять запросы как через *sql.DB, так и внутри *sql.Tx.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

func checkAffectedRows(result sql.Result, notFoundError error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return notFoundError // Возвращаем переданную ошибку "не найдено"
	}
	return nil
}

// pqErrorCode возвращает код ошибки Postgres и имя constraint, если err является *pq.Error.
func pqErrorCode(err error) (code string, constraint string, ok bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint, true
	}
	return "", "", false
}

func isUniqueViolation(err error, constraint string) bool {
	code, c, ok := pqErrorCode(err)
	return ok && code == pqUniqueViolation && (constraint == "" || c == constraint)
}

func isForeignKeyViolation(err error) bool {
	code, _, ok := pqErrorCode(err)
	return ok && code == pqForeignKeyViolation
}

// withTx выполняет fn в транзакции: commit при успехе, rollback при ошибке или панике.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("%w (rollback also failed: %v)", err, rbErr)
			}
		} else if cErr := tx.Commit(); cErr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", cErr)
		}
	}()
	return fn(tx)
}

const (
	lockPlayersQuery           = `SELECT id FROM players WHERE id = ANY($1) ORDER BY id FOR UPDATE`
	lockParticipantPlayerQuery = `
		SELECT p.id FROM players p
		JOIN match_players mp ON mp.player_id = p.id
		WHERE mp.id = $1
		FOR UPDATE OF p`
)

func toInt64Array(ids []int) pq.Int64Array {
	arr := make(pq.Int64Array, 0, len(ids))
	for _, id := range ids {
		arr = append(arr, int64(id))
	}
	sort.Slice(arr, func(i, j int) bool { return arr[i] < arr[j] })
	return arr
}

// lockPlayers блокирует строки players (по возрастанию id) до записи в
// match_players, чтобы последующий пересчёт total_points видел все
// закоммиченные участия.
func lockPlayers(ctx context.Context, exec SQLExecutor, playerIDs ...int) error {
	if len(playerIDs) == 0 {
		return nil
	}
	if _, err := exec.ExecContext(ctx, lockPlayersQuery, toInt64Array(playerIDs)); err != nil {
		return fmt.Errorf("failed to lock players: %w", err)
	}
	return nil
}

// lockParticipantPlayer блокирует игрока, которому принадлежит запись участия.
func lockParticipantPlayer(ctx context.Context, exec SQLExecutor, participantID int) error {
	if _, err := exec.ExecContext(ctx, lockParticipantPlayerQuery, participantID); err != nil {
		return fmt.Errorf("failed to lock participant player: %w", err)
	}
	return nil
}

// recomputePlayerTotals пересчитывает players.total_points как сумму points_earned
// по всем участиям. Вызывается в той же транзакции, что и запись участия,
// после lockPlayers или lockParticipantPlayer.
func recomputePlayerTotals(ctx context.Context, exec SQLExecutor, playerIDs ...int) error {
	if len(playerIDs) == 0 {
		return nil
	}
	query := `
		UPDATE players p SET total_points = COALESCE(
			(SELECT SUM(mp.points_earned) FROM match_players mp WHERE mp.player_id = p.id), 0)
		WHERE p.id = ANY($1)`
	if _, err := exec.ExecContext(ctx, query, toInt64Array(playerIDs)); err != nil {
		return fmt.Errorf("failed to recompute player totals: %w", err)
	}
	return nil
}

// filterBuilder собирает WHERE-условия с нумерованными плейсхолдерами $n.
type filterBuilder struct {
	sb               strings.Builder
	args             []interface{}
	placeholderIndex int
}

func newFilterBuilder(base string) *filterBuilder {
	fb := &filterBuilder{placeholderIndex: 1}
	fb.sb.WriteString(base)
	return fb
}

func (fb *filterBuilder) next(arg interface{}) string {
	fb.args = append(fb.args, arg)
	placeholder := "$" + strconv.Itoa(fb.placeholderIndex)
	fb.placeholderIndex++
	return placeholder
}

// where добавляет " AND <expr>", где каждый "?" в expr заменяется на очередной плейсхолдер.
func (fb *filterBuilder) where(expr string, args ...interface{}) {
	fb.sb.WriteString(" AND ")
	for _, arg := range args {
		i := strings.IndexByte(expr, '?')
		fb.sb.WriteString(expr[:i])
		fb.sb.WriteString(fb.next(arg))
		expr = expr[i+1:]
	}
	fb.sb.WriteString(expr)
}

func (fb *filterBuilder) raw(s string) {
	fb.sb.WriteString(s)
}

func (fb *filterBuilder) page(offset, limit int) {
	fb.sb.WriteString(" LIMIT ")
	fb.sb.WriteString(fb.next(limit))
	fb.sb.WriteString(" OFFSET ")
	fb.sb.WriteString(fb.next(offset))
}

func (fb *filterBuilder) query() (string, []interface{}) {
	return fb.sb.String(), fb.args
}

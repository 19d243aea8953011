package services

import "errors"

// Общие категории ошибок, по которым handlers выбирают HTTP-статус.
var (
	ErrNotFound         = errors.New("requested resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrConflict         = errors.New("resource conflict")
	ErrStorageFailed    = errors.New("storage operation failed")
)

// categorizedError несёт собственное сообщение и категорию для errors.Is.
type categorizedError struct {
	msg  string
	kind error
}

func (e *categorizedError) Error() string { return e.msg }
func (e *categorizedError) Unwrap() error { return e.kind }

func notFoundError(msg string) error   { return &categorizedError{msg: msg, kind: ErrNotFound} }
func validationError(msg string) error { return &categorizedError{msg: msg, kind: ErrValidationFailed} }
func conflictError(msg string) error   { return &categorizedError{msg: msg, kind: ErrConflict} }

// Не найдено. Сообщения отдаются клиенту как есть.
var (
	ErrGameNotFound        = notFoundError("Game not found")
	ErrFranchiseNotFound   = notFoundError("Franchise not found")
	ErrPlayerNotFound      = notFoundError("Player not found")
	ErrTeamNotFound        = notFoundError("Team not found")
	ErrMembershipNotFound  = notFoundError("Team membership not found")
	ErrMatchNotFound       = notFoundError("Match not found")
	ErrParticipantNotFound = notFoundError("Match participant not found")
	ErrGalleryItemNotFound = notFoundError("Gallery item not found")
)

// Конфликты уникальности и удаление используемых записей.
var (
	ErrGameNameConflict      = conflictError("game name already exists")
	ErrFranchiseNameConflict = conflictError("franchise name already exists")
	ErrFranchiseCodeConflict = conflictError("franchise code already exists")
	ErrMembershipConflict    = conflictError("player is already a member of this team")
	ErrGameInUse             = conflictError("game cannot be deleted as it is in use by teams or matches")
	ErrFranchiseInUse        = conflictError("franchise cannot be deleted as it is in use")
	ErrTeamInUse             = conflictError("team cannot be deleted as it is referenced by matches")
)

// Ошибки валидации входных данных.
var (
	ErrNameRequired            = validationError("name is required")
	ErrInvalidCategory         = validationError("category must be one of individual, team, mixed")
	ErrInvalidWinningPoints    = validationError("winning_points must not be negative")
	ErrInvalidEmail            = validationError("email is not a valid address")
	ErrInvalidStatus           = validationError("status must be one of scheduled, in_progress, completed, cancelled")
	ErrInvalidMatchDate        = validationError("match_date must be formatted as YYYY-MM-DD")
	ErrInvalidMatchTime        = validationError("match_time must be formatted as HH:MM")
	ErrInvalidWinner           = validationError("winner must name a kind (franchise or team) and a positive id")
	ErrWinnerNotFound          = validationError("winner does not reference an existing franchise or team of that kind")
	ErrWinnerClearConflict     = validationError("winner and clear_winner cannot be combined")
	ErrInvalidReference        = validationError("referenced game, franchise, team, player or match does not exist")
	ErrInvalidPagination       = validationError("skip and limit must not be negative")
	ErrInvalidLeaderboardLimit = validationError("limit must not be negative")
	ErrImageRequired           = validationError("image file is required")
	ErrInvalidImageType        = validationError("file must be an image")
)

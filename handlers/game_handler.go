package handlers

import (
	"net/http"

	"github.com/Dosada05/champion-league/services"
)

type GameHandler struct {
	gameService services.GameService
}

func NewGameHandler(gs services.GameService) *GameHandler {
	return &GameHandler{gameService: gs}
}

// CreateGame godoc
// @Summary Создать игру
// @Tags games
// @Accept json
// @Produce json
// @Param body body services.CreateGameInput true "Данные игры"
// @Success 201 {object} models.Game
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string "Игра с таким названием уже есть"
// @Failure 422 {object} map[string]string
// @Router /games [post]
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var input services.CreateGameInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	game, err := h.gameService.CreateGame(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, game)
}

// ListGames godoc
// @Summary Список игр
// @Tags games
// @Produce json
// @Param skip query int false "Сколько записей пропустить"
// @Param limit query int false "Максимум записей (0-500)"
// @Success 200 {array} models.Game
// @Router /games [get]
func (h *GameHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	page, err := readPagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	games, err := h.gameService.ListGames(r.Context(), page)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, games)
}

// GetGame godoc
// @Summary Получить игру
// @Tags games
// @Produce json
// @Param gameID path int true "Game ID"
// @Success 200 {object} models.Game
// @Failure 404 {object} map[string]string
// @Router /games/{gameID} [get]
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	game, err := h.gameService.GetGameByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, game)
}

// UpdateGame godoc
// @Summary Частично обновить игру
// @Tags games
// @Accept json
// @Produce json
// @Param gameID path int true "Game ID"
// @Param body body services.UpdateGameInput true "Изменяемые поля"
// @Success 200 {object} models.Game
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /games/{gameID} [put]
func (h *GameHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateGameInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	game, err := h.gameService.UpdateGame(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, game)
}

// DeleteGame godoc
// @Summary Удалить игру
// @Tags games
// @Produce json
// @Param gameID path int true "Game ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "Игра используется"
// @Router /games/{gameID} [delete]
func (h *GameHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.gameService.DeleteGame(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	deletedResponse(w, r, "Game")
}

// UploadGameImage godoc
// @Summary Загрузить изображение игры
// @Tags games
// @Accept multipart/form-data
// @Produce json
// @Param gameID path int true "Game ID"
// @Param file formData file true "Изображение"
// @Success 200 {object} models.Game
// @Failure 422 {object} map[string]string "Файл не является изображением"
// @Router /games/{gameID}/image [post]
func (h *GameHandler) UploadGameImage(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	upload, file, err := readImageUpload(r, "file")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	defer file.Close()

	game, err := h.gameService.UploadGameImage(r.Context(), id, upload)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, game)
}

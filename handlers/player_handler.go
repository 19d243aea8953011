package handlers

import (
	"net/http"

	"github.com/Dosada05/champion-league/services"
)

type PlayerHandler struct {
	playerService services.PlayerService
}

func NewPlayerHandler(ps services.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: ps}
}

// CreatePlayer godoc
// @Summary Создать игрока
// @Tags players
// @Accept json
// @Produce json
// @Param body body services.CreatePlayerInput true "Данные игрока"
// @Success 201 {object} models.Player
// @Failure 422 {object} map[string]string
// @Router /players [post]
func (h *PlayerHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var input services.CreatePlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.CreatePlayer(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, player)
}

// ListPlayers godoc
// @Summary Список игроков
// @Tags players
// @Produce json
// @Param franchise_id query int false "Фильтр по франшизе"
// @Param skip query int false "Сколько записей пропустить"
// @Param limit query int false "Максимум записей"
// @Success 200 {array} models.Player
// @Router /players [get]
func (h *PlayerHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	page, err := readPagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	franchiseID, err := queryInt(r, "franchise_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	players, err := h.playerService.ListPlayers(r.Context(), franchiseID, page)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, players)
}

// GetPlayer godoc
// @Summary Получить игрока
// @Tags players
// @Produce json
// @Param playerID path int true "Player ID"
// @Success 200 {object} models.Player
// @Failure 404 {object} map[string]string
// @Router /players/{playerID} [get]
func (h *PlayerHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.GetPlayerByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, player)
}

// GetPlayerTeams godoc
// @Summary Команды игрока
// @Tags players
// @Produce json
// @Param playerID path int true "Player ID"
// @Success 200 {array} models.PlayerTeam
// @Failure 404 {object} map[string]string
// @Router /players/{playerID}/teams [get]
func (h *PlayerHandler) GetPlayerTeams(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	teams, err := h.playerService.GetPlayerTeams(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, teams)
}

// UpdatePlayer godoc
// @Summary Частично обновить игрока
// @Tags players
// @Accept json
// @Produce json
// @Param playerID path int true "Player ID"
// @Param body body services.UpdatePlayerInput true "Изменяемые поля"
// @Success 200 {object} models.Player
// @Failure 404 {object} map[string]string
// @Router /players/{playerID} [put]
func (h *PlayerHandler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdatePlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.UpdatePlayer(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, player)
}

// DeletePlayer godoc
// @Summary Удалить игрока
// @Tags players
// @Produce json
// @Param playerID path int true "Player ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /players/{playerID} [delete]
func (h *PlayerHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.playerService.DeletePlayer(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	deletedResponse(w, r, "Player")
}

// UploadPlayerImage godoc
// @Summary Загрузить фото игрока
// @Tags players
// @Accept multipart/form-data
// @Produce json
// @Param playerID path int true "Player ID"
// @Param file formData file true "Фото"
// @Success 200 {object} models.Player
// @Router /players/{playerID}/image [post]
func (h *PlayerHandler) UploadPlayerImage(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "playerID")
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

	player, err := h.playerService.UploadPlayerImage(r.Context(), id, upload)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, player)
}

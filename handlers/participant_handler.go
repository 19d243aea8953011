package handlers

import (
	"net/http"

	"github.com/Dosada05/champion-league/services"
)

// ParticipantHandler обслуживает результаты игроков (/match-players).
type ParticipantHandler struct {
	participantService services.ParticipantService
}

func NewParticipantHandler(ps services.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{participantService: ps}
}

// AddParticipant godoc
// @Summary Добавить игрока в матч
// @Tags match-players
// @Accept json
// @Produce json
// @Param body body services.CreateParticipantInput true "Результат игрока"
// @Success 201 {object} models.MatchParticipant
// @Failure 422 {object} map[string]string "Неизвестный матч или игрок"
// @Router /match-players [post]
func (h *ParticipantHandler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	var input services.CreateParticipantInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	participant, err := h.participantService.AddParticipant(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, participant)
}

// ListParticipants godoc
// @Summary Список результатов
// @Tags match-players
// @Produce json
// @Param match_id query int false "Фильтр по матчу"
// @Param skip query int false "Сколько записей пропустить"
// @Param limit query int false "Максимум записей"
// @Success 200 {array} models.MatchParticipant
// @Router /match-players [get]
func (h *ParticipantHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	page, err := readPagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	matchID, err := queryInt(r, "match_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	participants, err := h.participantService.ListParticipants(r.Context(), matchID, page)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, participants)
}

// GetParticipant godoc
// @Summary Получить результат игрока
// @Tags match-players
// @Produce json
// @Param participantID path int true "Match player ID"
// @Success 200 {object} models.MatchParticipant
// @Failure 404 {object} map[string]string
// @Router /match-players/{participantID} [get]
func (h *ParticipantHandler) GetParticipant(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "participantID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	participant, err := h.participantService.GetParticipantByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, participant)
}

// UpdateParticipant godoc
// @Summary Обновить результат игрока
// @Description Очки игрока пересчитываются в той же транзакции.
// @Tags match-players
// @Accept json
// @Produce json
// @Param participantID path int true "Match player ID"
// @Param body body services.UpdateParticipantInput true "Изменяемые поля"
// @Success 200 {object} models.MatchParticipant
// @Failure 404 {object} map[string]string
// @Router /match-players/{participantID} [put]
func (h *ParticipantHandler) UpdateParticipant(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "participantID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateParticipantInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	participant, err := h.participantService.UpdateParticipant(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, participant)
}

// DeleteParticipant godoc
// @Summary Удалить результат игрока
// @Tags match-players
// @Produce json
// @Param participantID path int true "Match player ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /match-players/{participantID} [delete]
func (h *ParticipantHandler) DeleteParticipant(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "participantID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.participantService.DeleteParticipant(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	deletedResponse(w, r, "Match player")
}

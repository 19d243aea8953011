package handlers

import (
	"net/http"

	"github.com/Dosada05/champion-league/services"
)

// MembershipHandler обслуживает связи команда-игрок (/team-players).
type MembershipHandler struct {
	membershipService services.MembershipService
}

func NewMembershipHandler(ms services.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: ms}
}

// AddMember godoc
// @Summary Добавить игрока в команду
// @Tags team-players
// @Accept json
// @Produce json
// @Param body body services.CreateMembershipInput true "Команда и игрок"
// @Success 201 {object} models.TeamMembership
// @Failure 409 {object} map[string]string "Игрок уже в команде"
// @Router /team-players [post]
func (h *MembershipHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var input services.CreateMembershipInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	membership, err := h.membershipService.AddMember(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, membership)
}

// ListMemberships godoc
// @Summary Список связей команда-игрок
// @Tags team-players
// @Produce json
// @Param team_id query int false "Фильтр по команде"
// @Param player_id query int false "Фильтр по игроку"
// @Param skip query int false "Сколько записей пропустить"
// @Param limit query int false "Максимум записей"
// @Success 200 {array} models.TeamMembership
// @Router /team-players [get]
func (h *MembershipHandler) ListMemberships(w http.ResponseWriter, r *http.Request) {
	page, err := readPagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	teamID, err := queryInt(r, "team_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	playerID, err := queryInt(r, "player_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	memberships, err := h.membershipService.ListMemberships(r.Context(), services.MembershipFilter{TeamID: teamID, PlayerID: playerID}, page)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, memberships)
}

// GetMembership godoc
// @Summary Получить связь команда-игрок
// @Tags team-players
// @Produce json
// @Param membershipID path int true "Team player ID"
// @Success 200 {object} models.TeamMembership
// @Failure 404 {object} map[string]string
// @Router /team-players/{membershipID} [get]
func (h *MembershipHandler) GetMembership(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "membershipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	membership, err := h.membershipService.GetMembershipByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, membership)
}

// UpdateMembership godoc
// @Summary Изменить роль игрока в команде
// @Tags team-players
// @Accept json
// @Produce json
// @Param membershipID path int true "Team player ID"
// @Param body body services.UpdateMembershipInput true "Изменяемые поля"
// @Success 200 {object} models.TeamMembership
// @Failure 404 {object} map[string]string
// @Router /team-players/{membershipID} [put]
func (h *MembershipHandler) UpdateMembership(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "membershipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateMembershipInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	membership, err := h.membershipService.UpdateMembership(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, membership)
}

// DeleteMembership godoc
// @Summary Удалить связь команда-игрок
// @Tags team-players
// @Produce json
// @Param membershipID path int true "Team player ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /team-players/{membershipID} [delete]
func (h *MembershipHandler) DeleteMembership(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "membershipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.membershipService.DeleteMembership(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	deletedResponse(w, r, "Team player")
}

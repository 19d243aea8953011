package handlers

import (
	"net/http"

	"github.com/Dosada05/champion-league/services"
)

type TeamHandler struct {
	teamService       services.TeamService
	membershipService services.MembershipService
}

func NewTeamHandler(ts services.TeamService, ms services.MembershipService) *TeamHandler {
	return &TeamHandler{teamService: ts, membershipService: ms}
}

func readTeamFilter(r *http.Request) (services.TeamFilter, error) {
	franchiseID, err := queryInt(r, "franchise_id")
	if err != nil {
		return services.TeamFilter{}, err
	}
	gameID, err := queryInt(r, "game_id")
	if err != nil {
		return services.TeamFilter{}, err
	}
	return services.TeamFilter{FranchiseID: franchiseID, GameID: gameID}, nil
}

// CreateTeam godoc
// @Summary Создать команду
// @Tags teams
// @Accept json
// @Produce json
// @Param body body services.CreateTeamInput true "Данные команды"
// @Success 201 {object} models.Team
// @Failure 422 {object} map[string]string "Неизвестная франшиза или игра"
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var input services.CreateTeamInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.teamService.CreateTeam(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, team)
}

// ListTeams godoc
// @Summary Список команд
// @Tags teams
// @Produce json
// @Param franchise_id query int false "Фильтр по франшизе"
// @Param game_id query int false "Фильтр по игре"
// @Param skip query int false "Сколько записей пропустить"
// @Param limit query int false "Максимум записей"
// @Success 200 {array} models.Team
// @Router /teams [get]
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	page, err := readPagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	filter, err := readTeamFilter(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	teams, err := h.teamService.ListTeams(r.Context(), filter, page)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, teams)
}

// ListTeamsWithDetails godoc
// @Summary Команды с названиями франшизы и игры
// @Tags teams
// @Produce json
// @Param franchise_id query int false "Фильтр по франшизе"
// @Param game_id query int false "Фильтр по игре"
// @Success 200 {array} models.TeamWithDetails
// @Router /teams-with-details [get]
func (h *TeamHandler) ListTeamsWithDetails(w http.ResponseWriter, r *http.Request) {
	page, err := readPagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	filter, err := readTeamFilter(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	teams, err := h.teamService.ListTeamsWithDetails(r.Context(), filter, page)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, teams)
}

// GetTeam godoc
// @Summary Получить команду
// @Tags teams
// @Produce json
// @Param teamID path int true "Team ID"
// @Success 200 {object} models.Team
// @Failure 404 {object} map[string]string
// @Router /teams/{teamID} [get]
func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.teamService.GetTeamByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, team)
}

// GetTeamPlayers godoc
// @Summary Состав команды
// @Tags teams
// @Produce json
// @Param teamID path int true "Team ID"
// @Success 200 {array} models.TeamRosterEntry
// @Failure 404 {object} map[string]string
// @Router /teams/{teamID}/players [get]
func (h *TeamHandler) GetTeamPlayers(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	roster, err := h.membershipService.GetTeamRoster(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, roster)
}

// RemoveTeamPlayer godoc
// @Summary Убрать игрока из команды
// @Tags teams
// @Produce json
// @Param teamID path int true "Team ID"
// @Param playerID path int true "Player ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{teamID}/players/{playerID} [delete]
func (h *TeamHandler) RemoveTeamPlayer(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	playerID, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.membershipService.RemovePlayerFromTeam(r.Context(), teamID, playerID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"message": "Player removed from team successfully"})
}

// UpdateTeam godoc
// @Summary Частично обновить команду
// @Tags teams
// @Accept json
// @Produce json
// @Param teamID path int true "Team ID"
// @Param body body services.UpdateTeamInput true "Изменяемые поля"
// @Success 200 {object} models.Team
// @Failure 404 {object} map[string]string
// @Router /teams/{teamID} [put]
func (h *TeamHandler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateTeamInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.teamService.UpdateTeam(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, team)
}

// DeleteTeam godoc
// @Summary Удалить команду
// @Tags teams
// @Produce json
// @Param teamID path int true "Team ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "Команда участвует в матчах"
// @Router /teams/{teamID} [delete]
func (h *TeamHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.teamService.DeleteTeam(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	deletedResponse(w, r, "Team")
}

// UploadTeamLogo godoc
// @Summary Загрузить логотип команды
// @Tags teams
// @Accept multipart/form-data
// @Produce json
// @Param teamID path int true "Team ID"
// @Param file formData file true "Логотип"
// @Success 200 {object} models.Team
// @Router /teams/{teamID}/logo [post]
func (h *TeamHandler) UploadTeamLogo(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "teamID")
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

	team, err := h.teamService.UploadTeamLogo(r.Context(), id, upload)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, team)
}

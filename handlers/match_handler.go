package handlers

import (
	"net/http"

	"github.com/Dosada05/champion-league/models"
	"github.com/Dosada05/champion-league/services"
)

type MatchHandler struct {
	matchService   services.MatchService
	fixtureService services.FixtureService
}

func NewMatchHandler(ms services.MatchService, fs services.FixtureService) *MatchHandler {
	return &MatchHandler{matchService: ms, fixtureService: fs}
}

// matchRequest описывает тело создания и обновления матча. Победителя можно передать
// объектом winner или парой winner_kind + winner_id.
type matchRequest struct {
	GameID          *int                `json:"game_id"`
	HomeFranchiseID *int                `json:"home_franchise_id"`
	AwayFranchiseID *int                `json:"away_franchise_id"`
	HomeTeamID      *int                `json:"home_team_id"`
	AwayTeamID      *int                `json:"away_team_id"`
	MatchDate       *string             `json:"match_date"`
	MatchTime       *string             `json:"match_time"`
	Status          *models.MatchStatus `json:"status"`
	Location        *string             `json:"location"`
	Round           *string             `json:"round"`
	ScoreSummary    *string             `json:"score_summary"`
	Winner          *models.WinnerRef   `json:"winner"`
	WinnerKind      *models.WinnerKind  `json:"winner_kind"`
	WinnerID        *int                `json:"winner_id"`
	ClearWinner     bool                `json:"clear_winner"`
	ExtraData       models.ExtraData    `json:"extra_data"`
}

func (req matchRequest) winner() (*models.WinnerRef, error) {
	switch {
	case req.Winner != nil && (req.WinnerKind != nil || req.WinnerID != nil):
		return nil, services.ErrInvalidWinner
	case req.Winner != nil:
		return req.Winner, nil
	case req.WinnerID != nil:
		return &models.WinnerRef{Kind: req.WinnerKind, ID: *req.WinnerID}, nil
	case req.WinnerKind != nil:
		return nil, services.ErrInvalidWinner
	}
	return nil, nil
}

func filterFromQuery(r *http.Request) (models.MatchFilter, error) {
	gameID, err := queryInt(r, "game_id")
	if err != nil {
		return models.MatchFilter{}, err
	}
	franchiseID, err := queryInt(r, "franchise_id")
	if err != nil {
		return models.MatchFilter{}, err
	}
	filter := models.MatchFilter{
		GameID:      gameID,
		Round:       queryString(r, "round"),
		FranchiseID: franchiseID,
	}
	if status := queryString(r, "status"); status != nil {
		s := models.MatchStatus(*status)
		filter.Status = &s
	}
	return filter, nil
}

// CreateMatch godoc
// @Summary Создать матч
// @Tags matches
// @Accept json
// @Produce json
// @Param body body matchRequest true "Данные матча"
// @Success 201 {object} models.Match
// @Failure 422 {object} map[string]string
// @Router /matches [post]
func (h *MatchHandler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	winner, err := req.winner()
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	input := services.CreateMatchInput{
		HomeFranchiseID: req.HomeFranchiseID,
		AwayFranchiseID: req.AwayFranchiseID,
		HomeTeamID:      req.HomeTeamID,
		AwayTeamID:      req.AwayTeamID,
		MatchDate:       req.MatchDate,
		MatchTime:       req.MatchTime,
		Status:          req.Status,
		Location:        req.Location,
		Round:           req.Round,
		ScoreSummary:    req.ScoreSummary,
		Winner:          winner,
		ExtraData:       req.ExtraData,
	}
	if req.GameID != nil {
		input.GameID = *req.GameID
	}

	match, err := h.matchService.CreateMatch(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, match)
}

// ListMatches godoc
// @Summary Список матчей
// @Tags matches
// @Produce json
// @Param game_id query int false "Фильтр по игре"
// @Param status query string false "scheduled, in_progress, completed, cancelled"
// @Param round query string false "Раунд турнира"
// @Param franchise_id query int false "Домашняя или гостевая франшиза"
// @Param skip query int false "Сколько записей пропустить"
// @Param limit query int false "Максимум записей"
// @Success 200 {array} models.Match
// @Router /matches [get]
func (h *MatchHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	page, err := readPagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	filter, err := filterFromQuery(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matches, err := h.matchService.ListMatches(r.Context(), filter, page)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, matches)
}

// GetMatch godoc
// @Summary Получить матч
// @Tags matches
// @Produce json
// @Param matchID path int true "Match ID"
// @Success 200 {object} models.Match
// @Failure 404 {object} map[string]string
// @Router /matches/{matchID} [get]
func (h *MatchHandler) GetMatch(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.GetMatchByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, match)
}

// GetMatchDetails godoc
// @Summary Матч с соперниками и победителем
// @Tags matches
// @Produce json
// @Param matchID path int true "Match ID"
// @Success 200 {object} models.Fixture
// @Failure 404 {object} map[string]string
// @Router /matches/{matchID}/details [get]
func (h *MatchHandler) GetMatchDetails(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	fixture, err := h.fixtureService.GetFixture(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, fixture)
}

// GetMatchPlayers godoc
// @Summary Участники матча
// @Tags match-players
// @Produce json
// @Param matchID path int true "Match ID"
// @Success 200 {array} models.MatchParticipantDetail
// @Failure 404 {object} map[string]string
// @Router /matches/{matchID}/players [get]
func (h *MatchHandler) GetMatchPlayers(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	players, err := h.matchService.GetMatchPlayers(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, players)
}

// UpdateMatch godoc
// @Summary Частично обновить матч
// @Description Ключи extra_data сливаются с сохранёнными. Если в extra_data есть notes
// @Description без ai_summary, к ним добавляется краткое описание.
// @Tags matches
// @Accept json
// @Produce json
// @Param matchID path int true "Match ID"
// @Param body body matchRequest true "Изменяемые поля"
// @Success 200 {object} models.Match
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /matches/{matchID} [put]
func (h *MatchHandler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var req matchRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	winner, err := req.winner()
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	match, err := h.matchService.UpdateMatch(r.Context(), id, services.UpdateMatchInput{
		GameID:          req.GameID,
		HomeFranchiseID: req.HomeFranchiseID,
		AwayFranchiseID: req.AwayFranchiseID,
		HomeTeamID:      req.HomeTeamID,
		AwayTeamID:      req.AwayTeamID,
		MatchDate:       req.MatchDate,
		MatchTime:       req.MatchTime,
		Status:          req.Status,
		Location:        req.Location,
		Round:           req.Round,
		ScoreSummary:    req.ScoreSummary,
		Winner:          winner,
		ClearWinner:     req.ClearWinner,
		ExtraData:       req.ExtraData,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, match)
}

// DeleteMatch godoc
// @Summary Удалить матч
// @Tags matches
// @Produce json
// @Param matchID path int true "Match ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/{matchID} [delete]
func (h *MatchHandler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.matchService.DeleteMatch(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	deletedResponse(w, r, "Match")
}

// ListFixtures godoc
// @Summary Расписание матчей с соперниками
// @Description Сортировка по дате и времени, матчи без даты в конце.
// @Tags fixtures
// @Produce json
// @Param game_id query int false "Фильтр по игре"
// @Param status query string false "scheduled, in_progress, completed, cancelled"
// @Param round query string false "Раунд турнира"
// @Param franchise_id query int false "Домашняя или гостевая франшиза"
// @Param skip query int false "Сколько записей пропустить"
// @Param limit query int false "Максимум записей"
// @Success 200 {array} models.Fixture
// @Router /fixtures [get]
func (h *MatchHandler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	page, err := readPagination(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	filter, err := filterFromQuery(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	fixtures, err := h.fixtureService.ListFixtures(r.Context(), filter, page)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, fixtures)
}

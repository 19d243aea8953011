package handlers

import (
	"net/http"

	"github.com/Dosada05/champion-league/leaderboard"
	"github.com/Dosada05/champion-league/services"
)

type LeaderboardHandler struct {
	leaderboardService services.LeaderboardService
}

func NewLeaderboardHandler(ls services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: ls}
}

func readLeaderboardQuery(r *http.Request) (leaderboard.Query, error) {
	gameID, err := queryInt(r, "game_id")
	if err != nil {
		return leaderboard.Query{}, err
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		return leaderboard.Query{}, err
	}
	return leaderboard.Query{GameID: gameID, Limit: limit}, nil
}

// GetLeaderboard godoc
// @Summary Общая таблица лидеров
// @Tags leaderboard
// @Produce json
// @Param game_id query int false "Только матчи этой игры"
// @Param limit query int false "Размер каждой таблицы (по умолчанию 10)"
// @Success 200 {object} leaderboard.Combined
// @Failure 404 {object} map[string]string "Игра не найдена"
// @Router /leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	q, err := readLeaderboardQuery(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	combined, err := h.leaderboardService.All(r.Context(), q)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, combined)
}

// GetPlayers godoc
// @Summary Лучшие игроки
// @Tags leaderboard
// @Produce json
// @Param game_id query int false "Только матчи этой игры"
// @Param limit query int false "Размер таблицы (по умолчанию 10)"
// @Success 200 {array} leaderboard.PlayerEntry
// @Router /leaderboard/players [get]
func (h *LeaderboardHandler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	q, err := readLeaderboardQuery(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	entries, err := h.leaderboardService.Players(r.Context(), q)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, entries)
}

// GetFranchises godoc
// @Summary Лучшие франшизы
// @Tags leaderboard
// @Produce json
// @Param game_id query int false "Только матчи этой игры"
// @Param limit query int false "Размер таблицы (по умолчанию 10)"
// @Success 200 {array} leaderboard.FranchiseEntry
// @Router /leaderboard/franchises [get]
func (h *LeaderboardHandler) GetFranchises(w http.ResponseWriter, r *http.Request) {
	q, err := readLeaderboardQuery(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	entries, err := h.leaderboardService.Franchises(r.Context(), q)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, entries)
}

// GetTeams godoc
// @Summary Лучшие команды
// @Tags leaderboard
// @Produce json
// @Param game_id query int false "Только команды этой игры"
// @Param limit query int false "Размер таблицы (по умолчанию 10)"
// @Success 200 {array} leaderboard.TeamEntry
// @Router /leaderboard/teams [get]
func (h *LeaderboardHandler) GetTeams(w http.ResponseWriter, r *http.Request) {
	q, err := readLeaderboardQuery(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	entries, err := h.leaderboardService.Teams(r.Context(), q)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, entries)
}

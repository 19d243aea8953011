package models

type DashboardStats struct {
	GamesTotal        int `json:"games_total"`
	FranchisesTotal   int `json:"franchises_total"`
	PlayersTotal      int `json:"players_total"`
	TeamsTotal        int `json:"teams_total"`
	MatchesScheduled  int `json:"matches_scheduled"`
	MatchesInProgress int `json:"matches_in_progress"`
	MatchesCompleted  int `json:"matches_completed"`
	MatchesCancelled  int `json:"matches_cancelled"`
	GalleryItemsTotal int `json:"gallery_items_total"`
}

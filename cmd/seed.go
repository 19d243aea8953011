package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Dosada05/champion-league/models"
	"github.com/Dosada05/champion-league/repositories"
	"github.com/Dosada05/champion-league/schedule"
	"github.com/Dosada05/champion-league/services"
	"github.com/spf13/cobra"
)

var errAlreadySeeded = errors.New("database already contains games, seed skipped")

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Fill an empty database with sample league data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			dbConn, err := connect(cfg, logger)
			if err != nil {
				return err
			}
			defer closeDB(dbConn, logger)

			ctx := cmd.Context()
			store, err := openStore(ctx, cfg, logger)
			if err != nil {
				return err
			}

			teamRepo := repositories.NewPostgresTeamRepository(dbConn)
			matchRepo := repositories.NewPostgresMatchRepository(dbConn)
			participantRepo := repositories.NewPostgresParticipantRepository(dbConn)
			resolver := services.NewWinnerResolver(repositories.NewPostgresFranchiseRepository(dbConn), teamRepo)
			fixtures := services.NewFixtureService(matchRepo, resolver)

			s := &seeder{
				games:        services.NewGameService(repositories.NewPostgresGameRepository(dbConn), store, cfg.DefaultWinPoints, logger),
				franchises:   services.NewFranchiseService(repositories.NewPostgresFranchiseRepository(dbConn), store, logger),
				players:      services.NewPlayerService(repositories.NewPostgresPlayerRepository(dbConn), store, logger),
				teams:        services.NewTeamService(teamRepo, store, logger),
				memberships:  services.NewMembershipService(repositories.NewPostgresMembershipRepository(dbConn), teamRepo),
				participants: services.NewParticipantService(participantRepo, fixtures, nil, logger),
				matches: services.NewMatchService(services.MatchServiceDeps{
					MatchRepo:       matchRepo,
					ParticipantRepo: participantRepo,
					Resolver:        resolver,
					Fixtures:        fixtures,
					Logger:          logger,
				}),
				supported: cfg.SupportedGames,
				logger:    logger,
			}
			if err := s.run(ctx); err != nil {
				if errors.Is(err, errAlreadySeeded) {
					logger.Warn(err.Error())
					return nil
				}
				return err
			}
			return nil
		},
	}
}

type sampleGame struct {
	name          string
	description   string
	winningPoints int
	category      models.GameCategory
	extra         models.ExtraData
}

var sampleGames = []sampleGame{
	{"Badminton", "Racquet sport played with a shuttlecock", 15, models.GameCategoryMixed,
		models.ExtraData{"scoring_system": "rally point", "sets": 3, "points_per_set": 21}},
	{"Table Tennis", "Played on a table with paddles and a lightweight ball", 12, models.GameCategoryMixed,
		models.ExtraData{"scoring_system": "rally point", "sets": 5, "points_per_set": 11}},
	{"Pool", "Cue sport played on a table with pockets", 10, models.GameCategoryIndividual,
		models.ExtraData{"game_variant": "8-ball", "frames_per_match": 3}},
	{"Carom", "Strike and pocket board game", 8, models.GameCategoryIndividual,
		models.ExtraData{"points_to_win": 29, "rounds_per_match": 3}},
	{"Pickle ball", "Paddle sport combining elements of tennis, badminton and table tennis", 13, models.GameCategoryMixed,
		models.ExtraData{"scoring_system": "rally point", "sets": 3, "points_per_set": 11}},
	{"Chess", "Strategic board game played on a checkered gameboard", 10, models.GameCategoryIndividual,
		models.ExtraData{"time_control": "15+10"}},
	{"Box Cricket", "Modified version of cricket played in a confined space", 20, models.GameCategoryTeam,
		models.ExtraData{"overs_per_side": 5, "players_per_team": 6}},
	{"Foosball", "Table game based on football/soccer", 10, models.GameCategoryTeam,
		models.ExtraData{"goals_to_win": 10, "max_time": 15}},
}

var sampleFranchises = []struct {
	name, code, color, slogan string
}{
	{"AM&C WARRIORS", "AMCW", "blue", "Brave Hearts, Bold Victories"},
	{"S&S SUPER KINGS", "SSK", "yellow", "Rule the Game, Reign Supreme"},
	{"DFO&I TITANS", "DFOT", "red", "Strength in Unity, Glory in Victory"},
	{"CD&D DAREDEVILS", "CDDD", "purple", "Fearless in Play, Relentless in Spirit"},
}

var (
	firstNames = []string{"John", "Jane", "Michael", "Emily", "David", "Sarah", "Robert", "Lisa", "William", "Jessica"}
	lastNames  = []string{"Smith", "Johnson", "Williams", "Jones", "Brown", "Davis", "Miller", "Wilson"}
)

const playersPerFranchise = 10

type seeder struct {
	games        services.GameService
	franchises   services.FranchiseService
	players      services.PlayerService
	teams        services.TeamService
	memberships  services.MembershipService
	matches      services.MatchService
	participants services.ParticipantService
	supported    []string
	logger       *slog.Logger
}

func (s *seeder) run(ctx context.Context) error {
	existing, err := s.games.ListGames(ctx, services.Pagination{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return errAlreadySeeded
	}

	games, err := s.seedGames(ctx)
	if err != nil {
		return err
	}
	franchises, rosters, err := s.seedFranchises(ctx)
	if err != nil {
		return err
	}
	if err := s.seedTeams(ctx, games, franchises, rosters); err != nil {
		return err
	}
	if err := s.seedMatches(ctx, games, franchises, rosters); err != nil {
		return err
	}

	s.logger.Info("sample data created",
		slog.Int("games", len(games)),
		slog.Int("franchises", len(franchises)),
		slog.Int("players", len(franchises)*playersPerFranchise),
	)
	return nil
}

func (s *seeder) isSupported(name string) bool {
	for _, g := range s.supported {
		if strings.EqualFold(g, name) {
			return true
		}
	}
	return false
}

func (s *seeder) seedGames(ctx context.Context) ([]*models.Game, error) {
	var games []*models.Game
	for _, g := range sampleGames {
		if !s.isSupported(g.name) {
			continue
		}
		description, points, category := g.description, g.winningPoints, g.category
		game, err := s.games.CreateGame(ctx, services.CreateGameInput{
			Name:          g.name,
			Description:   &description,
			WinningPoints: &points,
			Category:      &category,
			ExtraData:     g.extra,
		})
		if err != nil {
			return nil, fmt.Errorf("seed game %s: %w", g.name, err)
		}
		games = append(games, game)
	}
	return games, nil
}

// seedFranchises создаёт франшизы и по playersPerFranchise игроков в каждой.
func (s *seeder) seedFranchises(ctx context.Context) ([]*models.Franchise, [][]*models.Player, error) {
	franchises := make([]*models.Franchise, 0, len(sampleFranchises))
	rosters := make([][]*models.Player, 0, len(sampleFranchises))

	for fi, f := range sampleFranchises {
		code := f.code
		franchise, err := s.franchises.CreateFranchise(ctx, services.CreateFranchiseInput{
			Name:          f.name,
			FranchiseCode: &code,
			ExtraData:     models.ExtraData{"primary_color": f.color, "team_slogan": f.slogan},
		})
		if err != nil {
			return nil, nil, fmt.Errorf("seed franchise %s: %w", f.name, err)
		}
		franchises = append(franchises, franchise)

		roster := make([]*models.Player, 0, playersPerFranchise)
		for i := 0; i < playersPerFranchise; i++ {
			n := fi*playersPerFranchise + i
			first := firstNames[n%len(firstNames)]
			last := lastNames[(n/len(firstNames)+i)%len(lastNames)]
			email := fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), n+1)
			franchiseID := franchise.ID
			player, err := s.players.CreatePlayer(ctx, services.CreatePlayerInput{
				Name:        first + " " + last,
				FranchiseID: &franchiseID,
				Email:       &email,
				ExtraData:   models.ExtraData{"department": f.code},
			})
			if err != nil {
				return nil, nil, fmt.Errorf("seed player %d: %w", n+1, err)
			}
			roster = append(roster, player)
		}
		rosters = append(rosters, roster)
	}
	return franchises, rosters, nil
}

// seedTeams создаёт по команде от каждой франшизы в командных играх.
func (s *seeder) seedTeams(ctx context.Context, games []*models.Game, franchises []*models.Franchise, rosters [][]*models.Player) error {
	for _, game := range games {
		if game.Category != models.GameCategoryTeam {
			continue
		}
		size := teamSize(game.ExtraData)
		for fi, franchise := range franchises {
			team, err := s.teams.CreateTeam(ctx, services.CreateTeamInput{
				Name:        fmt.Sprintf("%s %s", franchise.Name, game.Name),
				FranchiseID: franchise.ID,
				GameID:      game.ID,
			})
			if err != nil {
				return fmt.Errorf("seed team for %s: %w", game.Name, err)
			}
			for pi, player := range rosters[fi][:min(size, len(rosters[fi]))] {
				captain := pi == 0
				if _, err := s.memberships.AddMember(ctx, services.CreateMembershipInput{
					TeamID:    team.ID,
					PlayerID:  player.ID,
					IsCaptain: &captain,
				}); err != nil {
					return fmt.Errorf("seed membership team %d player %d: %w", team.ID, player.ID, err)
				}
			}
		}
	}
	return nil
}

// teamSize читает players_per_team; после чтения из базы число приходит как float64.
func teamSize(extra models.ExtraData) int {
	switch n := extra["players_per_team"].(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	return 2
}

// seedMatches раскладывает франшизы по круговому расписанию в каждой игре.
// Первый тур уже сыгран: хозяева побеждают, игроки получают очки.
func (s *seeder) seedMatches(ctx context.Context, games []*models.Game, franchises []*models.Franchise, rosters [][]*models.Player) error {
	ids := make([]int, len(franchises))
	index := make(map[int]int, len(franchises))
	for i, f := range franchises {
		ids[i] = f.ID
		index[f.ID] = i
	}
	pairings, err := schedule.RoundRobin(ids, 1)
	if err != nil {
		return fmt.Errorf("build group schedule: %w", err)
	}

	today := time.Now()
	kind := models.WinnerKindFranchise
	location := "Office Recreation Room"
	clock := "17:30"

	for gi, game := range games {
		for _, p := range pairings {
			home, away := p.Home, p.Away
			played := p.Round == 1
			date := today.AddDate(0, 0, (p.Round-1)*7+gi-len(games)).Format("2006-01-02")
			round := fmt.Sprintf("Group Stage %d", p.Round)
			status := models.MatchStatusScheduled

			input := services.CreateMatchInput{
				GameID:          game.ID,
				HomeFranchiseID: &home,
				AwayFranchiseID: &away,
				MatchDate:       &date,
				MatchTime:       &clock,
				Status:          &status,
				Location:        &location,
				Round:           &round,
			}
			if played {
				status = models.MatchStatusCompleted
				input.Winner = &models.WinnerRef{Kind: &kind, ID: home}
				input.ExtraData = models.ExtraData{
					"notes": fmt.Sprintf("%s beat %s in %s.", franchises[index[home]].Name, franchises[index[away]].Name, game.Name),
				}
			}

			match, err := s.matches.CreateMatch(ctx, input)
			if err != nil {
				return fmt.Errorf("seed %s match %d vs %d: %w", game.Name, home, away, err)
			}
			if !played {
				continue
			}

			for _, franchiseID := range []int{home, away} {
				player := rosters[index[franchiseID]][gi%playersPerFranchise]
				won := franchiseID == home
				points := 0
				if won {
					points = game.WinningPoints
				}
				fid := franchiseID
				if _, err := s.participants.AddParticipant(ctx, services.CreateParticipantInput{
					MatchID:      match.ID,
					PlayerID:     player.ID,
					FranchiseID:  &fid,
					PointsEarned: &points,
					IsWinner:     &won,
				}); err != nil {
					return fmt.Errorf("seed result for match %d: %w", match.ID, err)
				}
			}
		}
	}
	return nil
}

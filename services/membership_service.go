package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/champion-league/models"
	"github.com/Dosada05/champion-league/repositories"
)

// MembershipService управляет составами команд.
type MembershipService interface {
	AddMember(ctx context.Context, input CreateMembershipInput) (*models.TeamMembership, error)
	GetMembershipByID(ctx context.Context, id int) (*models.TeamMembership, error)
	ListMemberships(ctx context.Context, filter MembershipFilter, page Pagination) ([]models.TeamMembership, error)
	UpdateMembership(ctx context.Context, id int, input UpdateMembershipInput) (*models.TeamMembership, error)
	DeleteMembership(ctx context.Context, id int) error
	RemovePlayerFromTeam(ctx context.Context, teamID, playerID int) error
	GetTeamRoster(ctx context.Context, teamID int) ([]models.TeamRosterEntry, error)
}

type MembershipFilter struct {
	TeamID   *int
	PlayerID *int
}

type CreateMembershipInput struct {
	TeamID    int              `json:"team_id"`
	PlayerID  int              `json:"player_id"`
	Role      *string          `json:"role"`
	IsCaptain *bool            `json:"is_captain"`
	ExtraData models.ExtraData `json:"extra_data"`
}

type UpdateMembershipInput struct {
	Role      *string          `json:"role"`
	IsCaptain *bool            `json:"is_captain"`
	ExtraData models.ExtraData `json:"extra_data"`
}

type membershipService struct {
	membershipRepo repositories.MembershipRepository
	teamRepo       repositories.TeamRepository
}

func NewMembershipService(membershipRepo repositories.MembershipRepository, teamRepo repositories.TeamRepository) MembershipService {
	return &membershipService{membershipRepo: membershipRepo, teamRepo: teamRepo}
}

func (s *membershipService) AddMember(ctx context.Context, input CreateMembershipInput) (*models.TeamMembership, error) {
	if input.TeamID <= 0 || input.PlayerID <= 0 {
		return nil, ErrInvalidReference
	}
	m := &models.TeamMembership{
		TeamID:    input.TeamID,
		PlayerID:  input.PlayerID,
		Role:      models.DefaultMemberRole,
		ExtraData: input.ExtraData,
	}
	if input.Role != nil && strings.TrimSpace(*input.Role) != "" {
		m.Role = strings.TrimSpace(*input.Role)
	}
	if input.IsCaptain != nil {
		m.IsCaptain = *input.IsCaptain
	}

	if err := s.membershipRepo.Create(ctx, m); err != nil {
		return nil, s.mapMembershipError(err, 0)
	}
	return m, nil
}

func (s *membershipService) GetMembershipByID(ctx context.Context, id int) (*models.TeamMembership, error) {
	m, err := s.membershipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapMembershipError(err, id)
	}
	return m, nil
}

func (s *membershipService) ListMemberships(ctx context.Context, filter MembershipFilter, page Pagination) ([]models.TeamMembership, error) {
	offset, limit, err := page.normalize()
	if err != nil {
		return nil, err
	}
	memberships, err := s.membershipRepo.List(ctx, repositories.ListMembershipsFilter{
		TeamID:   filter.TeamID,
		PlayerID: filter.PlayerID,
		Offset:   offset,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list team memberships: %w", err)
	}
	return memberships, nil
}

func (s *membershipService) UpdateMembership(ctx context.Context, id int, input UpdateMembershipInput) (*models.TeamMembership, error) {
	if input.Role != nil {
		role := strings.TrimSpace(*input.Role)
		if role == "" {
			role = models.DefaultMemberRole
		}
		input.Role = &role
	}
	m, err := s.membershipRepo.Update(ctx, id, repositories.MembershipPatch{
		Role:      input.Role,
		IsCaptain: input.IsCaptain,
		ExtraData: input.ExtraData,
	})
	if err != nil {
		return nil, s.mapMembershipError(err, id)
	}
	return m, nil
}

func (s *membershipService) DeleteMembership(ctx context.Context, id int) error {
	if err := s.membershipRepo.Delete(ctx, id); err != nil {
		return s.mapMembershipError(err, id)
	}
	return nil
}

func (s *membershipService) RemovePlayerFromTeam(ctx context.Context, teamID, playerID int) error {
	if err := s.membershipRepo.DeleteByTeamAndPlayer(ctx, teamID, playerID); err != nil {
		return s.mapMembershipError(err, 0)
	}
	return nil
}

func (s *membershipService) GetTeamRoster(ctx context.Context, teamID int) ([]models.TeamRosterEntry, error) {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", teamID, err)
	}
	roster, err := s.membershipRepo.ListRoster(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster of team %d: %w", teamID, err)
	}
	return roster, nil
}

func (s *membershipService) mapMembershipError(err error, id int) error {
	switch {
	case errors.Is(err, repositories.ErrMembershipNotFound):
		return ErrMembershipNotFound
	case errors.Is(err, repositories.ErrMembershipConflict):
		return ErrMembershipConflict
	case errors.Is(err, repositories.ErrMembershipReferenceInvalid):
		return ErrInvalidReference
	}
	return fmt.Errorf("team membership operation failed (id: %d): %w", id, err)
}

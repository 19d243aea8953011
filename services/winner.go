package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/champion-league/models"
	"github.com/Dosada05/champion-league/repositories"
)

// WinnerResolver превращает ссылку на победителя матча в франшизу или команду.
type WinnerResolver struct {
	franchiseRepo repositories.FranchiseRepository
	teamRepo      repositories.TeamRepository
}

func NewWinnerResolver(franchiseRepo repositories.FranchiseRepository, teamRepo repositories.TeamRepository) *WinnerResolver {
	return &WinnerResolver{franchiseRepo: franchiseRepo, teamRepo: teamRepo}
}

// Resolve возвращает nil для матча без победителя. Ссылка с видом ищется
// только в своей таблице. У старых записей без вида сначала проверяется
// франшиза, затем команда; если не нашлось ничего, результат Unresolved.
func (r *WinnerResolver) Resolve(ctx context.Context, ref *models.WinnerRef) (*models.ResolvedWinner, error) {
	if ref == nil {
		return nil, nil
	}

	if ref.Kind != nil {
		switch *ref.Kind {
		case models.WinnerKindFranchise:
			return r.franchise(ctx, ref.ID)
		case models.WinnerKindTeam:
			return r.team(ctx, ref.ID)
		}
		return unresolved(ref.ID), nil
	}

	winner, err := r.franchise(ctx, ref.ID)
	if err != nil || winner.Type == models.WinnerVariantFranchise {
		return winner, err
	}
	return r.team(ctx, ref.ID)
}

// Validate проверяет ссылку перед записью: вид обязателен, запись должна существовать.
func (r *WinnerResolver) Validate(ctx context.Context, ref models.WinnerRef) error {
	if ref.Kind == nil || !ref.Kind.IsValid() || ref.ID <= 0 {
		return ErrInvalidWinner
	}
	winner, err := r.Resolve(ctx, &ref)
	if err != nil {
		return err
	}
	if winner.Type == models.WinnerVariantUnresolved {
		return ErrWinnerNotFound
	}
	return nil
}

func unresolved(id int) *models.ResolvedWinner {
	return &models.ResolvedWinner{Type: models.WinnerVariantUnresolved, ID: id}
}

func (r *WinnerResolver) franchise(ctx context.Context, id int) (*models.ResolvedWinner, error) {
	f, err := r.franchiseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrFranchiseNotFound) {
			return unresolved(id), nil
		}
		return nil, fmt.Errorf("failed to resolve franchise winner %d: %w", id, err)
	}
	name := f.Name
	return &models.ResolvedWinner{Type: models.WinnerVariantFranchise, ID: id, Name: &name}, nil
}

func (r *WinnerResolver) team(ctx context.Context, id int) (*models.ResolvedWinner, error) {
	t, err := r.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return unresolved(id), nil
		}
		return nil, fmt.Errorf("failed to resolve team winner %d: %w", id, err)
	}
	name := t.Name
	return &models.ResolvedWinner{Type: models.WinnerVariantTeam, ID: id, Name: &name}, nil
}

package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"sitebill/internal/domain/entities"
	"sitebill/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPlanName  = errors.New("invalid plan name")
	ErrInvalidPlanPrice = errors.New("invalid plan price")
)

const (
	defaultPlanName        = "Plano Mensal Padrão"
	defaultPlanDescription = "Plano padrão criado automaticamente."
	defaultPlanPriceCents  = 100
)

// IPlanUseCase exposes plan operations.
//
// EnsureDefaultPlan backs flows that need a resolvable plan before the
// billing engine runs (initial subscription on client registration, due-date
// updates for users without a subscription). The engine itself never creates
// plans.

type IPlanUseCase interface {
	Create(ctx context.Context, name, description string, priceCents int64, periodicity entities.PlanPeriodicity, siteLimit int) (entities.Plan, error)
	List(ctx context.Context) ([]entities.Plan, error)
	EnsureDefaultPlan(ctx context.Context) (entities.Plan, error)
}

type PlanUseCase struct {
	repo interfaces.IPlanRepository
}

var _ IPlanUseCase = (*PlanUseCase)(nil)

func NewPlanUseCase(repo interfaces.IPlanRepository) *PlanUseCase {
	return &PlanUseCase{repo: repo}
}

func (u *PlanUseCase) Create(ctx context.Context, name, description string, priceCents int64, periodicity entities.PlanPeriodicity, siteLimit int) (entities.Plan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Plan{}, ErrInvalidPlanName
	}
	if priceCents < 0 {
		return entities.Plan{}, ErrInvalidPlanPrice
	}
	if periodicity == "" {
		periodicity = entities.PlanPeriodicityMonthly
	}

	p := entities.Plan{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(description),
		PriceCents:  priceCents,
		Periodicity: periodicity,
		SiteLimit:   siteLimit,
		CreatedAt:   time.Now().UTC(),
	}
	return u.repo.Create(ctx, p)
}

func (u *PlanUseCase) List(ctx context.Context) ([]entities.Plan, error) {
	return u.repo.List(ctx)
}

func (u *PlanUseCase) EnsureDefaultPlan(ctx context.Context) (entities.Plan, error) {
	return ensureDefaultPlan(ctx, u.repo)
}

// ensureDefaultPlan returns any existing plan, creating the fallback monthly
// plan when the table is empty. Idempotent: repeated calls converge on the
// first plan found.
func ensureDefaultPlan(ctx context.Context, repo interfaces.IPlanRepository) (entities.Plan, error) {
	plan, err := repo.First(ctx)
	if err != nil {
		return entities.Plan{}, err
	}
	if plan.ID != "" {
		return plan, nil
	}

	log.Printf("[plan][usecase] no plan found, creating default plan")
	p := entities.Plan{
		ID:          uuid.NewString(),
		Name:        defaultPlanName,
		Description: defaultPlanDescription,
		PriceCents:  defaultPlanPriceCents,
		Periodicity: entities.PlanPeriodicityMonthly,
		CreatedAt:   time.Now().UTC(),
	}
	return repo.Create(ctx, p)
}

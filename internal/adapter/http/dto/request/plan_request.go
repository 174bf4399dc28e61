package request

import (
	"errors"
	"strings"

	"sitebill/internal/domain/entities"
)

var ErrInvalidPlanPayload = errors.New("invalid plan payload")

type CreatePlanRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Periodicity string `json:"periodicity"`
	SiteLimit   int    `json:"siteLimit"`
}

func (r CreatePlanRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

// ResolvePeriodicity validates the periodicity, defaulting to MONTHLY.
func (r CreatePlanRequest) ResolvePeriodicity() (entities.PlanPeriodicity, error) {
	v := strings.ToUpper(strings.TrimSpace(r.Periodicity))
	switch v {
	case "":
		return entities.PlanPeriodicityMonthly, nil
	case string(entities.PlanPeriodicityMonthly):
		return entities.PlanPeriodicity(v), nil
	default:
		return "", ErrInvalidPlanPayload
	}
}

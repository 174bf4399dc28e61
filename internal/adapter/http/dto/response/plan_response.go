package response

import (
	"time"

	"sitebill/internal/domain/entities"
)

type PlanResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"priceCents"`
	Periodicity string    `json:"periodicity"`
	SiteLimit   int       `json:"siteLimit"`
	CreatedAt   time.Time `json:"createdAt"`
}

type PlanListResponse struct {
	Plans []PlanResponse `json:"plans"`
}

func FromPlan(p entities.Plan) PlanResponse {
	return PlanResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Periodicity: string(p.Periodicity),
		SiteLimit:   p.SiteLimit,
		CreatedAt:   p.CreatedAt,
	}
}

func FromPlans(plans []entities.Plan) PlanListResponse {
	out := make([]PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, FromPlan(p))
	}
	return PlanListResponse{Plans: out}
}

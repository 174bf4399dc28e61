package entities

import "time"

type SiteStatus string

const (
	SiteStatusActive    SiteStatus = "ACTIVE"
	SiteStatusSuspended SiteStatus = "SUSPENDED"
)

// Site is a client website covered by a subscription.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id

type Site struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	URL       string     `json:"url"`
	Status    SiteStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

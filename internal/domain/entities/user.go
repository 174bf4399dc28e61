package entities

import "time"

type UserRole string

const (
	UserRoleClient UserRole = "CLIENT"
	UserRoleAdmin  UserRole = "ADMIN"
)

// User is an account owner.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//
// Authentication lives outside this service; ExternalID links the account to
// whatever identity provider created it.

type User struct {
	ID         string    `json:"id"`
	ExternalID string    `json:"external_id,omitempty"`
	Email      string    `json:"email"`
	Name       string    `json:"name,omitempty"`
	Role       UserRole  `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

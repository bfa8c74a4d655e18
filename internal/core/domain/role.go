package domain

const (
	RoleAdmin    = "admin"
	RoleReviewer = "reviewer"
)

// Role is one entry of the fixed role catalog. The catalog is seeded once at
// bootstrap and never mutated through the API.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

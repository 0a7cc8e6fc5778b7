package services

// User roles. Admins see and manage everything; regular users see only
// what they own.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Actor is the authenticated user a request acts as.
type Actor struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanSee is the single visibility rule for owned records (quotes,
// customers): admins see all, everyone else only their own.
func CanSee(actor Actor, ownerID string) bool {
	if actor.IsAdmin() {
		return true
	}
	return actor.ID == ownerID
}

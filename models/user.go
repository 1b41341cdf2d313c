package models

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// Actor is the identity performing an operation. Permission checks only
// ever look at the id and role, so callers pass this instead of a full User.
type Actor struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// AsActor returns the actor identity for this user.
func (u User) AsActor() Actor {
	return Actor{ID: u.ID, Role: u.Role}
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

package domain

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleReviewer UserRole = "reviewer"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleReviewer:
		return true
	default:
		return false
	}
}

type User struct {
	ID       int
	Username string
	FullName string
	Role     UserRole
	Active   bool
}

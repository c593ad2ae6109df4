package entities

// Role identifies an administrative access level.
//
//   - A1: read-only, no access to request details or transitions
//   - A2: detail access, no transitions
//   - A3: full transition rights
//   - A4: payment confirmation only
//   - A5: full transition rights plus configuration administration

type Role string

const (
	RoleA1 Role = "A1"
	RoleA2 Role = "A2"
	RoleA3 Role = "A3"
	RoleA4 Role = "A4"
	RoleA5 Role = "A5"
)

func (r Role) Known() bool {
	switch r {
	case RoleA1, RoleA2, RoleA3, RoleA4, RoleA5:
		return true
	}
	return false
}

package entity

// Roles válidos para AuthUser.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)

// AuthUser es la identidad entregada por el proveedor externo (id, email, rol).
type AuthUser struct {
	ID    string
	Email string
	Role  string
}

// ValidRole indica si el rol es uno de los conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleOperator, RoleViewer:
		return true
	}
	return false
}

// CanMutate indica si el rol puede crear, editar, borrar o mover existencias.
func CanMutate(role string) bool {
	return role == RoleAdmin || role == RoleOperator
}

// CanMutate atajo sobre el rol del usuario. Un usuario nil no puede modificar nada.
func (u *AuthUser) CanMutate() bool {
	return u != nil && CanMutate(u.Role)
}

package authz

// Role es el rol de un usuario del sistema. Enum cerrado: cualquier valor
// externo que no coincida se degrada a RoleEmployee (mínimo privilegio).
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// RoleFromString convierte el rol tal como viene de la persistencia (string
// libre) al enum. Valores vacíos o desconocidos caen a employee, nunca a error
// y nunca a admin.
func RoleFromString(s string) Role {
	switch s {
	case string(RoleAdmin):
		return RoleAdmin
	case string(RoleManager):
		return RoleManager
	case string(RoleEmployee):
		return RoleEmployee
	default:
		return RoleEmployee
	}
}

// Valid indica si el rol pertenece al enum.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleEmployee
}

func (r Role) String() string { return string(r) }

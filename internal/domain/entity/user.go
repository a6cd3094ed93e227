package entity

import "time"

// User representa un usuario del panel (admin, manager o employee).
// Role se persiste como string libre; la conversión al enum y la resolución
// de permisos viven en internal/domain/authz.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	Role         string // admin, manager, employee
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayLabel devuelve la etiqueta humana del actor para auditoría:
// "Nombre Apellido (email)", si no hay nombre solo el email, y si tampoco
// hay email el placeholder "sistema".
func (u *User) DisplayLabel() string {
	if u == nil {
		return "sistema"
	}
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	switch {
	case name != "" && u.Email != "":
		return name + " (" + u.Email + ")"
	case u.Email != "":
		return u.Email
	default:
		return "sistema"
	}
}

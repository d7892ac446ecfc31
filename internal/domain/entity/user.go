package entity

import "time"

// Roles operativos de la propiedad. La cadena de aprobación de reposiciones
// recorre Operational Manager → Operation Lead → Property Head en ese orden.
const (
	RolePropertyPIC        = "Property PIC"
	RoleOperationalManager = "Operational Manager"
	RoleOperationLead      = "Operation Lead"
	RolePropertyHead       = "Property Head"
)

// User representa un perfil operativo de la propiedad.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano después de sembrar
	Name         string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

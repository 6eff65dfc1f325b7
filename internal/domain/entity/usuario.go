package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin       = "admin"
	RolEncargado   = "encargado"
	RolOperador    = "operador"
	RolSolicitante = "solicitante"
)

// RolValido reporta si rol es uno de los roles conocidos.
func RolValido(rol string) bool {
	switch rol {
	case RolAdmin, RolEncargado, RolOperador, RolSolicitante:
		return true
	}
	return false
}

// Usuario representa un usuario del sistema.
type Usuario struct {
	ID           string
	Nombre       string
	Email        string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Rol          string
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package dto

import "github.com/acampos/inventario-api/internal/domain/entity"

// RegistrarRequest body para POST /api/auth/registro.
type RegistrarRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol,omitempty"` // admin|encargado|operador|solicitante; operador por defecto
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CambiarPasswordRequest body para PUT /api/auth/password.
type CambiarPasswordRequest struct {
	PasswordActual string `json:"passwordActual"`
	PasswordNueva  string `json:"passwordNueva"`
}

// UsuarioResponse usuario en respuestas; nunca incluye el hash.
type UsuarioResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Rol       string `json:"rol"`
	Activo    bool   `json:"activo"`
	CreatedAt string `json:"fechaCreacion"`
}

// SesionResponse token más usuario y permisos del rol.
type SesionResponse struct {
	Token    string          `json:"token"`
	Usuario  UsuarioResponse `json:"usuario"`
	Permisos []string        `json:"permisos"`
}

// PerfilResponse respuesta de GET /api/auth/perfil.
type PerfilResponse struct {
	Usuario  UsuarioResponse `json:"usuario"`
	Permisos []string        `json:"permisos"`
}

// ToUsuarioResponse convierte la entidad a DTO.
func ToUsuarioResponse(u *entity.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Email:     u.Email,
		Rol:       u.Rol,
		Activo:    u.Activo,
		CreatedAt: u.CreatedAt.Format(fechaHora),
	}
}

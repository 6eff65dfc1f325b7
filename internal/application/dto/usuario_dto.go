package dto

import "github.com/acampos/inventario-api/internal/domain/entity"

// ActualizarUsuarioRequest body para PUT /api/usuarios/:id. Campos ausentes
// no se tocan.
type ActualizarUsuarioRequest struct {
	Nombre *string `json:"nombre,omitempty"`
	Email  *string `json:"email,omitempty"`
	Rol    *string `json:"rol,omitempty"`
	Activo *bool   `json:"activo,omitempty"`
}

// ToUsuarioListResponse convierte la lista de usuarios a DTOs.
func ToUsuarioListResponse(list []*entity.Usuario) []UsuarioResponse {
	out := make([]UsuarioResponse, 0, len(list))
	for _, u := range list {
		out = append(out, ToUsuarioResponse(u))
	}
	return out
}

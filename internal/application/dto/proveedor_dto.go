package dto

import "github.com/acampos/inventario-api/internal/domain/entity"

// CrearProveedorRequest body para POST /api/proveedores.
type CrearProveedorRequest struct {
	Codigo    string `json:"codigo"`
	Nombre    string `json:"nombre"`
	Contacto  string `json:"contacto,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	Direccion string `json:"direccion,omitempty"`
	Ciudad    string `json:"ciudad,omitempty"`
	Pais      string `json:"pais,omitempty"`
	Notas     string `json:"notas,omitempty"`
}

// ActualizarProveedorRequest body para PUT /api/proveedores/:id. Campos
// ausentes no se tocan; el código no es modificable.
type ActualizarProveedorRequest struct {
	Nombre    *string `json:"nombre,omitempty"`
	Contacto  *string `json:"contacto,omitempty"`
	Telefono  *string `json:"telefono,omitempty"`
	Email     *string `json:"email,omitempty"`
	Direccion *string `json:"direccion,omitempty"`
	Ciudad    *string `json:"ciudad,omitempty"`
	Pais      *string `json:"pais,omitempty"`
	Notas     *string `json:"notas,omitempty"`
}

// ProveedorResponse proveedor en respuestas.
type ProveedorResponse struct {
	ID        string `json:"id"`
	Codigo    string `json:"codigo"`
	Nombre    string `json:"nombre"`
	Contacto  string `json:"contacto,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	Direccion string `json:"direccion,omitempty"`
	Ciudad    string `json:"ciudad,omitempty"`
	Pais      string `json:"pais,omitempty"`
	Notas     string `json:"notas,omitempty"`
	Activo    bool   `json:"activo"`
	CreatedAt string `json:"fechaCreacion"`
	UpdatedAt string `json:"fechaActualizacion"`
}

// ToProveedorResponse convierte la entidad a DTO.
func ToProveedorResponse(p *entity.Proveedor) ProveedorResponse {
	return ProveedorResponse{
		ID:        p.ID,
		Codigo:    p.Codigo,
		Nombre:    p.Nombre,
		Contacto:  p.Contacto,
		Telefono:  p.Telefono,
		Email:     p.Email,
		Direccion: p.Direccion,
		Ciudad:    p.Ciudad,
		Pais:      p.Pais,
		Notas:     p.Notas,
		Activo:    p.Activo,
		CreatedAt: p.CreatedAt.Format(fechaHora),
		UpdatedAt: p.UpdatedAt.Format(fechaHora),
	}
}

// ToProveedorListResponse convierte la lista de entidades a DTOs.
func ToProveedorListResponse(list []*entity.Proveedor) []ProveedorResponse {
	out := make([]ProveedorResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToProveedorResponse(p))
	}
	return out
}

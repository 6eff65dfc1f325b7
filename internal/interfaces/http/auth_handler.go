package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acampos/inventario-api/internal/application/auth"
	"github.com/acampos/inventario-api/internal/application/dto"
)

// AuthHandler maneja registro, login, perfil y cambio de contraseña.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarRequest  true  "nombre, email, password, rol opcional"
// @Success      201   {object}  dto.SesionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/registro [post]
func (h *AuthHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	sesion, err := h.uc.Registrar(c.Context(), auth.RegistrarInput{
		Nombre:   in.Nombre,
		Email:    in.Email,
		Password: in.Password,
		Rol:      in.Rol,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toSesionResponse(sesion))
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.SesionResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	sesion, err := h.uc.Login(c.Context(), in.Email, in.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toSesionResponse(sesion))
}

// Perfil godoc
// @Summary      Usuario autenticado con sus permisos
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PerfilResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/perfil [get]
func (h *AuthHandler) Perfil(c *fiber.Ctx) error {
	usuario, permisos, err := h.uc.Perfil(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.PerfilResponse{
		Usuario:  dto.ToUsuarioResponse(usuario),
		Permisos: permisos,
	})
}

// CambiarPassword godoc
// @Summary      Cambiar contraseña del usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CambiarPasswordRequest  true  "passwordActual, passwordNueva"
// @Success      200   {object}  dto.MensajeResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/password [put]
func (h *AuthHandler) CambiarPassword(c *fiber.Ctx) error {
	var in dto.CambiarPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.CambiarPassword(c.Context(), GetUserID(c), in.PasswordActual, in.PasswordNueva); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MensajeResponse{Message: "contraseña actualizada"})
}

func toSesionResponse(s *auth.Sesion) dto.SesionResponse {
	return dto.SesionResponse{
		Token:    s.Token,
		Usuario:  dto.ToUsuarioResponse(s.Usuario),
		Permisos: s.Permisos,
	}
}

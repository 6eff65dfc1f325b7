// Package auth registro, login y sesión de usuarios.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/acampos/inventario-api/internal/application/authz"
	"github.com/acampos/inventario-api/internal/domain"
	"github.com/acampos/inventario-api/internal/domain/entity"
	"github.com/acampos/inventario-api/internal/domain/repository"
	"github.com/acampos/inventario-api/pkg/jwt"
)

// JWTConfig configuración para la generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registro, login, perfil y cambio de contraseña.
type AuthUseCase struct {
	txRunner    TxRunner
	usuarioRepo repository.UsuarioRepository
	policy      *authz.Policy
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(txRunner TxRunner, usuarioRepo repository.UsuarioRepository, policy *authz.Policy, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{txRunner: txRunner, usuarioRepo: usuarioRepo, policy: policy, jwtCfg: jwtCfg}
}

// RegistrarInput entrada de registro.
type RegistrarInput struct {
	Nombre   string
	Email    string
	Password string
	Rol      string
}

// Sesion es el resultado de registro o login: token más el usuario y los
// permisos de su rol.
type Sesion struct {
	Token    string
	Usuario  *entity.Usuario
	Permisos []string
}

// Registrar crea un usuario. El primer usuario del sistema se fuerza a
// admin (bootstrap); después el rol viene del request, operador por defecto.
// Email repetido devuelve domain.ErrEmailEnUso.
//
// El chequeo de email, el conteo y el insert van dentro de la transacción
// serializada del TxRunner: dos registros simultáneos sobre una base vacía
// no pueden leer ambos un conteo en cero, así que el bootstrap produce
// exactamente un admin.
func (uc *AuthUseCase) Registrar(ctx context.Context, input RegistrarInput) (*Sesion, error) {
	if input.Nombre == "" || input.Email == "" || len(input.Password) < 6 {
		return nil, domain.ErrInvalidInput
	}
	rol := input.Rol
	if rol == "" {
		rol = entity.RolOperador
	}
	if !entity.RolValido(rol) {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var usuario *entity.Usuario
	err = uc.txRunner.RunRegistro(ctx, func(usuarioRepo repository.UsuarioRepository) error {
		existente, err := usuarioRepo.GetByEmail(ctx, input.Email)
		if err != nil {
			return err
		}
		if existente != nil {
			return domain.ErrEmailEnUso
		}

		total, err := usuarioRepo.Count(ctx)
		if err != nil {
			return err
		}
		if total == 0 {
			rol = entity.RolAdmin
		}

		now := time.Now()
		usuario = &entity.Usuario{
			ID:           uuid.New().String(),
			Nombre:       input.Nombre,
			Email:        input.Email,
			PasswordHash: string(hash),
			Rol:          rol,
			Activo:       true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		return usuarioRepo.Create(ctx, usuario)
	})
	if err != nil {
		return nil, err
	}
	return uc.sesionPara(usuario)
}

// Login verifica credenciales y devuelve la sesión.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*Sesion, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	usuario, err := uc.usuarioRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !usuario.Activo {
		return nil, domain.ErrForbidden
	}
	return uc.sesionPara(usuario)
}

// Perfil devuelve el usuario autenticado con los permisos de su rol.
func (uc *AuthUseCase) Perfil(ctx context.Context, usuarioID string) (*entity.Usuario, []string, error) {
	usuario, err := uc.usuarioRepo.GetByID(ctx, usuarioID)
	if err != nil {
		return nil, nil, err
	}
	if usuario == nil {
		return nil, nil, domain.ErrNotFound
	}
	return usuario, uc.policy.Permisos(usuario.Rol), nil
}

// CambiarPassword verifica la contraseña actual y persiste la nueva.
func (uc *AuthUseCase) CambiarPassword(ctx context.Context, usuarioID, actual, nueva string) error {
	if len(nueva) < 6 {
		return domain.ErrInvalidInput
	}
	usuario, err := uc.usuarioRepo.GetByID(ctx, usuarioID)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(actual)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(nueva), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.usuarioRepo.UpdatePassword(ctx, usuarioID, string(hash))
}

func (uc *AuthUseCase) sesionPara(usuario *entity.Usuario) (*Sesion, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &Sesion{
		Token:    token,
		Usuario:  usuario,
		Permisos: uc.policy.Permisos(usuario.Rol),
	}, nil
}

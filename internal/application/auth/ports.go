package auth

import (
	"context"

	"github.com/acampos/inventario-api/internal/domain/repository"
)

// TxRunner ejecuta el alta de un usuario dentro de una transacción que
// serializa los registros concurrentes. El chequeo de email, el conteo que
// decide el bootstrap del primer admin y el insert comparten la misma
// unidad atómica.
type TxRunner interface {
	RunRegistro(ctx context.Context, fn func(
		usuarioRepo repository.UsuarioRepository,
	) error) error
}

package barrel

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Los cambios de nivel de barril y su fila de
// historia se escriben juntos o no se escriben.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		barrelRepo repository.BarrelRepository,
		historyRepo repository.BarrelHistoryRepository,
	) error) error
}

package inventory

import (
	"context"

	"github.com/jhoicas/stockledger-api/internal/domain/repository"
)

// ReadRunner ejecuta fn con las dos fuentes atadas a una misma vista consistente de la BD
// (transacción de solo lectura). El motor no maneja transacciones: lo hace quien lo invoca.
type ReadRunner interface {
	RunReadOnly(ctx context.Context, fn func(
		movements repository.StockMovementSource,
		snapshots repository.StockSnapshotSource,
	) error) error
}

// Observer recibe los conteos de cada reconstrucción (métricas).
type Observer interface {
	ObserveReconstruction(anchored, unanchored int)
	ObserveAggregation(productMovements int)
}

type noopObserver struct{}

func (noopObserver) ObserveReconstruction(int, int) {}
func (noopObserver) ObserveAggregation(int)         {}

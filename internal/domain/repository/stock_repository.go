package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stockledger-api/internal/domain/entity"
)

// StockSnapshotSource puerto de lectura de los snapshots de inventario absoluto.
// Devuelve para cada producto/lote el último valor con fecha de ocurrencia <= asOf
// (nil = el más reciente). El motor vuelve a aplicar la regla sobre lo recibido.
type StockSnapshotSource interface {
	ListLatestByFacility(ctx context.Context, facilityID string, asOf *time.Time) ([]entity.ProductLotStock, error)
}

package inventory

import (
	"time"

	"github.com/jhoicas/stockledger-api/internal/domain/entity"
)

// ResolveStockOnHand selecciona, por producto/lote, el último inventario observado con fecha de
// ocurrencia <= asOf (asOf nil = el más reciente), desempatando por el instante de registro
// más tardío. Los códigos sin observaciones simplemente no aparecen.
func ResolveStockOnHand(observations []entity.ProductLotStock, asOf *time.Time) entity.StockOnHand {
	if asOf == nil {
		return entity.NewStockOnHand(observations)
	}
	cutoff := entity.TruncateDate(*asOf)
	eligible := make([]entity.ProductLotStock, 0, len(observations))
	for _, o := range observations {
		if entity.TruncateDate(o.EventTime.OccurredDate).After(cutoff) {
			continue
		}
		eligible = append(eligible, o)
	}
	return entity.NewStockOnHand(eligible)
}

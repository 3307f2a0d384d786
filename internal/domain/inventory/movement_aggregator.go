package inventory

import (
	"sort"

	"github.com/jhoicas/stockledger-api/internal/domain/entity"
)

// AggregateProductMovements agrupa los movimientos de lote por (producto, EventTime) y fusiona
// cada grupo en un único movimiento de producto. El resultado se ordena por código de producto
// y luego por EventTime ascendente.
func AggregateProductMovements(movements []entity.BalancedMovement) []entity.ProductMovement {
	keys := make([]entity.ProductMovementKey, 0)
	groups := make(map[entity.ProductMovementKey][]entity.BalancedMovement)
	for _, m := range movements {
		key := entity.NewProductMovementKey(m.Code.ProductCode, m.EventTime)
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], m)
	}

	out := make([]entity.ProductMovement, 0, len(keys))
	for _, key := range keys {
		out = append(out, aggregateGroup(key, groups[key]))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ProductCode != out[j].ProductCode {
			return out[i].ProductCode < out[j].ProductCode
		}
		return entity.CompareEventTime(out[i].EventTime, out[j].EventTime) < 0
	})
	return out
}

func aggregateGroup(key entity.ProductMovementKey, members []entity.BalancedMovement) entity.ProductMovement {
	pm := entity.ProductMovement{
		ProductCode:       key.ProductCode,
		EventTime:         key.EventTime,
		RequestedQuantity: members[0].RequestedQuantity,
		LotMovements:      []entity.LotMovement{},
	}

	// Producto sin lote: el detalle se reporta tal cual.
	if len(members) == 1 && !members[0].Code.HasLot() {
		detail := members[0].Detail
		pm.Detail = &detail
		pm.StockOnHand = members[0].StockOnHand
		return pm
	}

	// Un miembro sin lote dentro de un grupo con lotes se lista pero no entra en la fusión.
	toMerge := make([]entity.MovementDetail, 0, len(members))
	for _, m := range members {
		pm.LotMovements = append(pm.LotMovements, entity.LotMovement{
			LotCode:     m.Code.LotCode,
			Detail:      m.Detail,
			StockOnHand: m.StockOnHand,
		})
		if m.Code.HasLot() {
			toMerge = append(toMerge, m.Detail)
		}
	}
	sort.SliceStable(pm.LotMovements, func(i, j int) bool {
		return pm.LotMovements[i].LotCode < pm.LotMovements[j].LotCode
	})
	pm.Detail = FoldDetails(toMerge)
	return pm
}

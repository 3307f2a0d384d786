package inventory

import (
	"sort"

	"github.com/jhoicas/stockledger-api/internal/domain/entity"
)

// ReconstructBalances ancla cada secuencia de movimientos de un producto/lote a su snapshot y
// deriva el saldo resultante de cada movimiento recorriendo del más reciente al más antiguo.
//
// El resultado tiene la misma longitud y orden que movements. Los movimientos cuyo código no
// tiene snapshot se devuelven sin saldo: sin ancla no hay saldo derivable.
func ReconstructBalances(soh entity.StockOnHand, movements []entity.ProductLotMovement) []entity.BalancedMovement {
	out := make([]entity.BalancedMovement, len(movements))
	groups := make(map[entity.ProductLotCode][]int)
	for i, m := range movements {
		out[i] = entity.BalancedMovement{ProductLotMovement: m}
		if _, ok := soh.Get(m.Code); !ok {
			continue
		}
		groups[m.Code] = append(groups[m.Code], i)
	}

	for code, idx := range groups {
		snapshot, _ := soh.Get(code)
		sortNewestFirst(movements, idx)
		for pos, b := range replay(snapshot.Inventory, movements, idx) {
			out[idx[pos]].StockOnHand = &b.after
			out[idx[pos]].PreviousStockOnHand = &b.before
		}
	}
	return out
}

type balance struct {
	before int64
	after  int64
}

// replay pliega los movimientos (ya ordenados del más reciente al más antiguo) a partir del
// inventario ancla: el saldo "después" de cada uno es el "antes" del siguiente.
func replay(anchor int64, movements []entity.ProductLotMovement, idx []int) []balance {
	out := make([]balance, len(idx))
	running := anchor
	for pos, i := range idx {
		before := running - movements[i].Detail.SignedEffect()
		out[pos] = balance{before: before, after: running}
		running = before
	}
	return out
}

// sortNewestFirst ordena los índices por EventTime descendente. Con EventTime idéntico el que
// llegó después en la entrada se considera más reciente.
func sortNewestFirst(movements []entity.ProductLotMovement, idx []int) {
	sort.Slice(idx, func(a, b int) bool {
		if c := entity.DescendingEventTime(movements[idx[a]].EventTime, movements[idx[b]].EventTime); c != 0 {
			return c < 0
		}
		return idx[a] > idx[b]
	})
}

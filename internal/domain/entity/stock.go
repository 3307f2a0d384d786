package entity

import "sort"

// ProductLotStock inventario absoluto observado (snapshot) de un producto/lote.
type ProductLotStock struct {
	Code      ProductLotCode
	Inventory int64
	EventTime EventTime
}

// StockOnHand índice código → snapshot, a lo sumo una entrada por código.
// Se construye con NewStockOnHand y no se modifica después.
type StockOnHand struct {
	byCode map[ProductLotCode]ProductLotStock
}

// NewStockOnHand indexa los snapshots. Si llegan dos para el mismo código se conserva
// el de EventTime mayor.
func NewStockOnHand(stocks []ProductLotStock) StockOnHand {
	byCode := make(map[ProductLotCode]ProductLotStock, len(stocks))
	for _, s := range stocks {
		if cur, ok := byCode[s.Code]; ok && CompareEventTime(cur.EventTime, s.EventTime) >= 0 {
			continue
		}
		byCode[s.Code] = s
	}
	return StockOnHand{byCode: byCode}
}

// Get devuelve el snapshot del código, si existe.
func (s StockOnHand) Get(code ProductLotCode) (ProductLotStock, bool) {
	st, ok := s.byCode[code]
	return st, ok
}

// Len número de códigos con snapshot.
func (s StockOnHand) Len() int {
	return len(s.byCode)
}

// Stocks lista las entradas ordenadas por producto y lote.
func (s StockOnHand) Stocks() []ProductLotStock {
	out := make([]ProductLotStock, 0, len(s.byCode))
	for _, st := range s.byCode {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Code, out[j].Code
		if a.ProductCode != b.ProductCode {
			return a.ProductCode < b.ProductCode
		}
		return a.LotCode < b.LotCode
	})
	return out
}

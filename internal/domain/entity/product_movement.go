package entity

// ProductMovementKey unidad de agregación a nivel producto: todos los movimientos de lote
// que provienen del mismo evento de negocio.
type ProductMovementKey struct {
	ProductCode string
	EventTime   EventTime
}

// NewProductMovementKey construye la llave con el EventTime normalizado.
func NewProductMovementKey(productCode string, t EventTime) ProductMovementKey {
	return ProductMovementKey{ProductCode: productCode, EventTime: t.Normalize()}
}

// LotMovement detalle de un lote dentro de un movimiento de producto.
type LotMovement struct {
	LotCode     string
	Detail      MovementDetail
	StockOnHand *int64
}

// ProductMovement movimiento reportable a nivel producto.
// Detail puede ser nil (grupo sin lotes que fusionar). StockOnHand solo se informa
// para productos sin lote.
type ProductMovement struct {
	ProductCode       string
	EventTime         EventTime
	RequestedQuantity *int64
	Detail            *MovementDetail
	LotMovements      []LotMovement
	StockOnHand       *int64
}

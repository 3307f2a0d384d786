package entity

// ProductLotMovement movimiento normalizado a nivel producto/lote.
type ProductLotMovement struct {
	Code              ProductLotCode
	EventTime         EventTime
	Detail            MovementDetail
	RequestedQuantity *int64
}

// BalancedMovement movimiento anotado con el saldo reconstruido.
// StockOnHand y PreviousStockOnHand quedan en nil cuando el código no tiene snapshot.
type BalancedMovement struct {
	ProductLotMovement
	StockOnHand         *int64 // saldo inmediatamente después del movimiento
	PreviousStockOnHand *int64 // saldo inmediatamente antes
}

// Anchored indica si se pudo derivar el saldo.
func (m BalancedMovement) Anchored() bool {
	return m.StockOnHand != nil
}

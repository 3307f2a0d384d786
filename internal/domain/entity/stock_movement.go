package entity

import "time"

// StockMovementRow fila cruda de movimiento tal como la entrega la fuente de movimientos,
// ya unida con lote, producto, organizaciones, razón y cantidad solicitada.
type StockMovementRow struct {
	ProductCode       string
	LotCode           *string
	OccurredDate      time.Time
	RecordedAt        time.Time
	Quantity          int64 // siempre sin signo
	SourceName        *string
	DestinationName   *string
	ReasonName        *string
	ReasonType        *string // CREDIT, DEBIT u otro valor del catálogo
	RequestedQuantity *int64
}

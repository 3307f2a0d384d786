package entity

// ReasonType naturaleza contable de una razón de movimiento.
type ReasonType string

const (
	ReasonTypeCredit ReasonType = "CREDIT" // suma al inventario
	ReasonTypeDebit  ReasonType = "DEBIT"  // resta del inventario
)

// ParseReasonType devuelve nil si el valor no es CREDIT ni DEBIT.
func ParseReasonType(s string) *ReasonType {
	switch ReasonType(s) {
	case ReasonTypeCredit:
		rt := ReasonTypeCredit
		return &rt
	case ReasonTypeDebit:
		rt := ReasonTypeDebit
		return &rt
	}
	return nil
}

// MovementDetail cantidades sin signo y datos descriptivos de un movimiento.
// Los campos opcionales son punteros: nil = ausente (o ambiguo tras una fusión).
type MovementDetail struct {
	MovementQuantity     int64
	Source               *string
	Destination          *string
	MovementReason       *string
	MovementReasonType   *ReasonType
	AdjustmentQuantity   *int64
	AdjustmentReason     *string
	AdjustmentReasonType *ReasonType
}

// SignedEffect efecto neto sobre el inventario: +cantidad con origen, -cantidad con destino,
// y el ajuste suma si es CREDIT o resta si es DEBIT. Ambas contribuciones se suman.
func (d MovementDetail) SignedEffect() int64 {
	var effect int64
	switch {
	case d.Source != nil:
		effect += d.MovementQuantity
	case d.Destination != nil:
		effect -= d.MovementQuantity
	}
	if d.AdjustmentQuantity != nil && d.AdjustmentReasonType != nil {
		switch *d.AdjustmentReasonType {
		case ReasonTypeCredit:
			effect += *d.AdjustmentQuantity
		case ReasonTypeDebit:
			effect -= *d.AdjustmentQuantity
		}
	}
	return effect
}

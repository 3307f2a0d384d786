package inventory

import "github.com/jhoicas/stockledger-api/internal/domain/entity"

// MergeDetails fusiona el detalle de dos movimientos de lote del mismo evento.
// Las cantidades se suman; origen, destino, razones y tipos se conservan solo si son
// idénticos en ambos, si no quedan en nil (mezcla ambigua). Es conmutativa y asociativa.
func MergeDetails(a, b entity.MovementDetail) entity.MovementDetail {
	return entity.MovementDetail{
		MovementQuantity:     a.MovementQuantity + b.MovementQuantity,
		Source:               sameOrNil(a.Source, b.Source),
		Destination:          sameOrNil(a.Destination, b.Destination),
		MovementReason:       sameOrNil(a.MovementReason, b.MovementReason),
		MovementReasonType:   sameOrNil(a.MovementReasonType, b.MovementReasonType),
		AdjustmentQuantity:   sumOptional(a.AdjustmentQuantity, b.AdjustmentQuantity),
		AdjustmentReason:     sameOrNil(a.AdjustmentReason, b.AdjustmentReason),
		AdjustmentReasonType: sameOrNil(a.AdjustmentReasonType, b.AdjustmentReasonType),
	}
}

// FoldDetails aplica MergeDetails sobre todos los detalles; nil si no hay ninguno.
func FoldDetails(details []entity.MovementDetail) *entity.MovementDetail {
	if len(details) == 0 {
		return nil
	}
	acc := details[0]
	for _, d := range details[1:] {
		acc = MergeDetails(acc, d)
	}
	return &acc
}

func sameOrNil[T comparable](a, b *T) *T {
	if a == nil || b == nil || *a != *b {
		return nil
	}
	v := *a
	return &v
}

// sumOptional trata nil como cero salvo que ambos sean nil.
func sumOptional(a, b *int64) *int64 {
	if a == nil && b == nil {
		return nil
	}
	var sum int64
	if a != nil {
		sum += *a
	}
	if b != nil {
		sum += *b
	}
	return &sum
}

package inventory

import (
	"time"

	"github.com/jhoicas/stockledger-api/internal/domain/entity"
)

// NormalizeMovement convierte una fila cruda en un movimiento tipado.
// Con origen o destino la cantidad es de movimiento y la razón acompaña al movimiento;
// sin ninguno de los dos la fila es un ajuste de inventario.
func NormalizeMovement(row entity.StockMovementRow) entity.ProductLotMovement {
	lotCode := ""
	if row.LotCode != nil {
		lotCode = *row.LotCode
	}

	var reasonType *entity.ReasonType
	if row.ReasonType != nil {
		reasonType = entity.ParseReasonType(*row.ReasonType)
	}

	var detail entity.MovementDetail
	if row.SourceName != nil || row.DestinationName != nil {
		detail = entity.MovementDetail{
			MovementQuantity:   row.Quantity,
			Source:             row.SourceName,
			Destination:        row.DestinationName,
			MovementReason:     row.ReasonName,
			MovementReasonType: reasonType,
		}
	} else {
		qty := row.Quantity
		detail = entity.MovementDetail{
			AdjustmentQuantity:   &qty,
			AdjustmentReason:     row.ReasonName,
			AdjustmentReasonType: reasonType,
		}
	}

	return entity.ProductLotMovement{
		Code:              entity.NewProductLotCode(row.ProductCode, lotCode),
		EventTime:         entity.NewEventTime(row.OccurredDate, row.RecordedAt),
		Detail:            detail,
		RequestedQuantity: row.RequestedQuantity,
	}
}

// NormalizeMovements normaliza las filas cuya fecha de ocurrencia cae en [since, at].
// Los límites se aplican de nuevo aquí aunque la fuente ya los haya filtrado.
func NormalizeMovements(rows []entity.StockMovementRow, since, at *time.Time) []entity.ProductLotMovement {
	out := make([]entity.ProductLotMovement, 0, len(rows))
	for _, row := range rows {
		m := NormalizeMovement(row)
		if !withinWindow(m.EventTime.OccurredDate, since, at) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func withinWindow(date time.Time, since, at *time.Time) bool {
	if since != nil && date.Before(entity.TruncateDate(*since)) {
		return false
	}
	if at != nil && date.After(entity.TruncateDate(*at)) {
		return false
	}
	return true
}

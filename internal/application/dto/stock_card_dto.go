package dto

import (
	"time"

	"github.com/jhoicas/stockledger-api/internal/domain/entity"
)

// StockOnHandDTO inventario absoluto de un producto/lote.
type StockOnHandDTO struct {
	ProductCode  string    `json:"product_code"`
	LotCode      string    `json:"lot_code,omitempty"`
	StockOnHand  int64     `json:"stock_on_hand"`
	OccurredDate string    `json:"occurred_date"` // YYYY-MM-DD
	RecordedAt   time.Time `json:"recorded_at"`
}

// StockOnHandResponse respuesta de GET /api/facilities/:facilityId/stock-on-hand.
type StockOnHandResponse struct {
	FacilityID string           `json:"facility_id"`
	AsOf       string           `json:"as_of,omitempty"`
	Total      int              `json:"total"`
	Items      []StockOnHandDTO `json:"items"`
}

// MovementDetailDTO detalle de un movimiento (nil/omitido = ausente o ambiguo).
type MovementDetailDTO struct {
	MovementQuantity     int64   `json:"movement_quantity"`
	Source               *string `json:"source,omitempty"`
	Destination          *string `json:"destination,omitempty"`
	MovementReason       *string `json:"movement_reason,omitempty"`
	MovementReasonType   *string `json:"movement_reason_type,omitempty"`
	AdjustmentQuantity   *int64  `json:"adjustment_quantity,omitempty"`
	AdjustmentReason     *string `json:"adjustment_reason,omitempty"`
	AdjustmentReasonType *string `json:"adjustment_reason_type,omitempty"`
}

// LotMovementDTO movimiento de un lote dentro de un movimiento de producto.
type LotMovementDTO struct {
	LotCode     string            `json:"lot_code"`
	Detail      MovementDetailDTO `json:"movement_detail"`
	StockOnHand *int64            `json:"stock_on_hand"`
}

// ProductMovementDTO movimiento reportable a nivel producto.
type ProductMovementDTO struct {
	ProductCode       string             `json:"product_code"`
	OccurredDate      string             `json:"occurred_date"`
	RecordedAt        time.Time          `json:"recorded_at"`
	RequestedQuantity *int64             `json:"requested_quantity"`
	Detail            *MovementDetailDTO `json:"movement_detail"`
	StockOnHand       *int64             `json:"stock_on_hand"`
	LotMovements      []LotMovementDTO   `json:"lot_movements"`
}

// ProductMovementsResponse respuesta de los endpoints de movimientos.
type ProductMovementsResponse struct {
	FacilityID string               `json:"facility_id"`
	Since      string               `json:"since,omitempty"`
	At         string               `json:"at,omitempty"`
	Total      int                  `json:"total"`
	Movements  []ProductMovementDTO `json:"movements"`
}

// NewStockOnHandResponse mapea el StockOnHand del motor.
func NewStockOnHandResponse(facilityID string, asOf *time.Time, soh entity.StockOnHand) StockOnHandResponse {
	stocks := soh.Stocks()
	items := make([]StockOnHandDTO, 0, len(stocks))
	for _, s := range stocks {
		items = append(items, StockOnHandDTO{
			ProductCode:  s.Code.ProductCode,
			LotCode:      s.Code.LotCode,
			StockOnHand:  s.Inventory,
			OccurredDate: s.EventTime.OccurredDate.Format(entity.DateLayout),
			RecordedAt:   s.EventTime.RecordedAt,
		})
	}
	return StockOnHandResponse{
		FacilityID: facilityID,
		AsOf:       formatDate(asOf),
		Total:      len(items),
		Items:      items,
	}
}

// NewProductMovementsResponse mapea los movimientos de producto del motor.
func NewProductMovementsResponse(facilityID string, since, at *time.Time, movements []entity.ProductMovement) ProductMovementsResponse {
	out := make([]ProductMovementDTO, 0, len(movements))
	for _, pm := range movements {
		lots := make([]LotMovementDTO, 0, len(pm.LotMovements))
		for _, lm := range pm.LotMovements {
			lots = append(lots, LotMovementDTO{
				LotCode:     lm.LotCode,
				Detail:      newMovementDetailDTO(lm.Detail),
				StockOnHand: lm.StockOnHand,
			})
		}
		var detail *MovementDetailDTO
		if pm.Detail != nil {
			d := newMovementDetailDTO(*pm.Detail)
			detail = &d
		}
		out = append(out, ProductMovementDTO{
			ProductCode:       pm.ProductCode,
			OccurredDate:      pm.EventTime.OccurredDate.Format(entity.DateLayout),
			RecordedAt:        pm.EventTime.RecordedAt,
			RequestedQuantity: pm.RequestedQuantity,
			Detail:            detail,
			StockOnHand:       pm.StockOnHand,
			LotMovements:      lots,
		})
	}
	return ProductMovementsResponse{
		FacilityID: facilityID,
		Since:      formatDate(since),
		At:         formatDate(at),
		Total:      len(out),
		Movements:  out,
	}
}

func newMovementDetailDTO(d entity.MovementDetail) MovementDetailDTO {
	return MovementDetailDTO{
		MovementQuantity:     d.MovementQuantity,
		Source:               d.Source,
		Destination:          d.Destination,
		MovementReason:       d.MovementReason,
		MovementReasonType:   reasonTypeString(d.MovementReasonType),
		AdjustmentQuantity:   d.AdjustmentQuantity,
		AdjustmentReason:     d.AdjustmentReason,
		AdjustmentReasonType: reasonTypeString(d.AdjustmentReasonType),
	}
}

func reasonTypeString(rt *entity.ReasonType) *string {
	if rt == nil {
		return nil
	}
	s := string(*rt)
	return &s
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(entity.DateLayout)
}

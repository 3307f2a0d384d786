package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockledger-api/internal/domain/entity"
	"github.com/jhoicas/stockledger-api/internal/domain/repository"
)

var _ repository.StockMovementSource = (*StockMovementRepo)(nil)

// Cada línea del stock card ya unida con producto, lote, origen/destino, razón y la cantidad
// solicitada del evento. El orden por id es el desempate final del motor.
const listMovementsQuery = `
	SELECT
	    o.code                                AS product_code,
	    l.lotcode                             AS lot_code,
	    li.occurreddate                       AS occurred_date,
	    li.processeddate                      AS recorded_at,
	    li.quantity::numeric                  AS quantity,
	    COALESCE(sf.name, so.name)            AS source_name,
	    COALESCE(df.name, dorg.name)          AS destination_name,
	    r.name                                AS reason_name,
	    r.reasontype                          AS reason_type,
	    rq.requestedquantity::numeric         AS requested_quantity
	FROM stockmanagement.stock_card_line_items li
	JOIN stockmanagement.stock_cards sc        ON sc.id = li.stockcardid
	JOIN referencedata.orderables o            ON o.id = sc.orderableid
	LEFT JOIN referencedata.lots l             ON l.id = sc.lotid
	LEFT JOIN stockmanagement.nodes sn         ON sn.id = li.sourceid
	LEFT JOIN referencedata.facilities sf      ON sf.id = sn.referenceid AND sn.isrefdatafacility
	LEFT JOIN stockmanagement.organizations so ON so.id = sn.referenceid AND NOT sn.isrefdatafacility
	LEFT JOIN stockmanagement.nodes dn         ON dn.id = li.destinationid
	LEFT JOIN referencedata.facilities df      ON df.id = dn.referenceid AND dn.isrefdatafacility
	LEFT JOIN stockmanagement.organizations dorg ON dorg.id = dn.referenceid AND NOT dn.isrefdatafacility
	LEFT JOIN stockmanagement.stock_card_line_item_reasons r ON r.id = li.reasonid
	LEFT JOIN stockmanagement.requested_quantities rq
	       ON rq.stockeventid = li.origineventid AND rq.orderableid = sc.orderableid
	WHERE sc.facilityid = $1`

// StockMovementRepo fuente de movimientos sobre PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// ListByFacility lista las filas de movimiento de una instalación con fecha de ocurrencia en [since, at].
func (r *StockMovementRepo) ListByFacility(ctx context.Context, facilityID string, since, at *time.Time) ([]entity.StockMovementRow, error) {
	query := listMovementsQuery
	args := []any{facilityID}
	pos := 2
	if since != nil {
		query += fmt.Sprintf(" AND li.occurreddate >= $%d", pos)
		args = append(args, entity.TruncateDate(*since))
		pos++
	}
	if at != nil {
		query += fmt.Sprintf(" AND li.occurreddate <= $%d", pos)
		args = append(args, entity.TruncateDate(*at))
	}
	query += " ORDER BY li.occurreddate, li.processeddate, li.id"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements by facility: %w", err)
	}
	defer rows.Close()

	var list []entity.StockMovementRow
	for rows.Next() {
		var (
			m         entity.StockMovementRow
			quantity  decimal.Decimal
			requested decimal.NullDecimal
		)
		if err := rows.Scan(
			&m.ProductCode,
			&m.LotCode,
			&m.OccurredDate,
			&m.RecordedAt,
			&quantity,
			&m.SourceName,
			&m.DestinationName,
			&m.ReasonName,
			&m.ReasonType,
			&requested,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if m.Quantity, err = toQuantity(quantity); err != nil {
			return nil, fmt.Errorf("movement %s: %w", m.ProductCode, err)
		}
		if requested.Valid {
			q, err := toQuantity(requested.Decimal)
			if err != nil {
				return nil, fmt.Errorf("requested quantity %s: %w", m.ProductCode, err)
			}
			m.RequestedQuantity = &q
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movements: %w", err)
	}
	return list, nil
}

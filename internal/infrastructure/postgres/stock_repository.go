package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockledger-api/internal/domain/entity"
	"github.com/jhoicas/stockledger-api/internal/domain/repository"
)

var _ repository.StockSnapshotSource = (*StockSnapshotRepo)(nil)

// Último stock on hand calculado por stock card; el motor colapsa por código de producto/lote.
const listLatestSnapshotsQuery = `
	SELECT DISTINCT ON (sc.id)
	    o.code                      AS product_code,
	    l.lotcode                   AS lot_code,
	    csoh.stockonhand::numeric   AS stock_on_hand,
	    csoh.occurreddate           AS occurred_date,
	    csoh.processeddate          AS recorded_at
	FROM stockmanagement.calculated_stocks_on_hand csoh
	JOIN stockmanagement.stock_cards sc ON sc.id = csoh.stockcardid
	JOIN referencedata.orderables o     ON o.id = sc.orderableid
	LEFT JOIN referencedata.lots l      ON l.id = sc.lotid
	WHERE sc.facilityid = $1`

// StockSnapshotRepo fuente de snapshots de inventario sobre PostgreSQL (usable con pool o tx).
type StockSnapshotRepo struct {
	q Querier
}

// NewStockSnapshotRepository construye el adaptador de snapshots. Pasar pool o tx (Querier).
func NewStockSnapshotRepository(q Querier) *StockSnapshotRepo {
	return &StockSnapshotRepo{q: q}
}

// ListLatestByFacility devuelve el último inventario absoluto por stock card con fecha <= asOf.
func (r *StockSnapshotRepo) ListLatestByFacility(ctx context.Context, facilityID string, asOf *time.Time) ([]entity.ProductLotStock, error) {
	query := listLatestSnapshotsQuery
	args := []any{facilityID}
	if asOf != nil {
		query += " AND csoh.occurreddate <= $2"
		args = append(args, entity.TruncateDate(*asOf))
	}
	query += " ORDER BY sc.id, csoh.occurreddate DESC, csoh.processeddate DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock on hand by facility: %w", err)
	}
	defer rows.Close()

	var list []entity.ProductLotStock
	for rows.Next() {
		var (
			productCode        string
			lotCode            *string
			inventory          decimal.Decimal
			occurred, recorded time.Time
		)
		if err := rows.Scan(&productCode, &lotCode, &inventory, &occurred, &recorded); err != nil {
			return nil, fmt.Errorf("scan stock on hand: %w", err)
		}
		inv, err := toInventory(inventory)
		if err != nil {
			return nil, fmt.Errorf("stock on hand %s: %w", productCode, err)
		}
		lot := ""
		if lotCode != nil {
			lot = *lotCode
		}
		list = append(list, entity.ProductLotStock{
			Code:      entity.NewProductLotCode(productCode, lot),
			Inventory: inv,
			EventTime: entity.NewEventTime(occurred, recorded),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stock on hand: %w", err)
	}
	return list, nil
}

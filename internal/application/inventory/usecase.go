package inventory

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/stockledger-api/internal/domain"
	"github.com/jhoicas/stockledger-api/internal/domain/entity"
	"github.com/jhoicas/stockledger-api/internal/domain/inventory"
	"github.com/jhoicas/stockledger-api/internal/domain/repository"
)

// StockCardUseCase reconstruye la línea de tiempo de inventario de una instalación a partir
// del log de movimientos y los snapshots de inventario absoluto.
type StockCardUseCase struct {
	runner   ReadRunner
	observer Observer
	log      zerolog.Logger
}

// NewStockCardUseCase construye el caso de uso. observer puede ser nil.
func NewStockCardUseCase(runner ReadRunner, observer Observer, log zerolog.Logger) *StockCardUseCase {
	if observer == nil {
		observer = noopObserver{}
	}
	return &StockCardUseCase{
		runner:   runner,
		observer: observer,
		log:      log.With().Str("component", "stock_card").Logger(),
	}
}

// GetStockOnHand devuelve el último inventario absoluto por producto/lote con fecha <= asOf
// (nil = el más reciente registrado).
func (uc *StockCardUseCase) GetStockOnHand(ctx context.Context, facilityID string, asOf *time.Time) (entity.StockOnHand, error) {
	if facilityID == "" {
		return entity.StockOnHand{}, domain.ErrInvalidInput
	}
	var soh entity.StockOnHand
	err := uc.runner.RunReadOnly(ctx, func(_ repository.StockMovementSource, snapshots repository.StockSnapshotSource) error {
		var err error
		soh, err = uc.resolve(ctx, snapshots, facilityID, asOf)
		return err
	})
	if err != nil {
		return entity.StockOnHand{}, err
	}
	return soh, nil
}

// GetAllProductMovements reconstruye los movimientos de producto con fecha de ocurrencia en
// [since, at], anclados al snapshot vigente en at.
func (uc *StockCardUseCase) GetAllProductMovements(ctx context.Context, facilityID string, since, at *time.Time) ([]entity.ProductMovement, error) {
	if facilityID == "" {
		return nil, domain.ErrInvalidInput
	}
	if since != nil && at != nil && entity.TruncateDate(*since).After(entity.TruncateDate(*at)) {
		return nil, domain.ErrInvalidWindow
	}

	var (
		rows []entity.StockMovementRow
		soh  entity.StockOnHand
	)
	err := uc.runner.RunReadOnly(ctx, func(movements repository.StockMovementSource, snapshots repository.StockSnapshotSource) error {
		var err error
		rows, err = movements.ListByFacility(ctx, facilityID, since, at)
		if err != nil {
			return err
		}
		soh, err = uc.resolve(ctx, snapshots, facilityID, at)
		return err
	})
	if err != nil {
		return nil, err
	}

	normalized := inventory.NormalizeMovements(rows, since, at)
	balanced := inventory.ReconstructBalances(soh, normalized)
	uc.report(facilityID, balanced)

	result := inventory.AggregateProductMovements(balanced)
	uc.observer.ObserveAggregation(len(result))

	uc.log.Debug().
		Str("facility_id", facilityID).
		Str("since", formatDate(since)).
		Str("at", formatDate(at)).
		Int("rows", len(rows)).
		Int("snapshots", soh.Len()).
		Int("product_movements", len(result)).
		Msg("movimientos reconstruidos")
	return result, nil
}

// GetLatestProductMovements es GetAllProductMovements sin límites de fecha.
func (uc *StockCardUseCase) GetLatestProductMovements(ctx context.Context, facilityID string) ([]entity.ProductMovement, error) {
	return uc.GetAllProductMovements(ctx, facilityID, nil, nil)
}

func (uc *StockCardUseCase) resolve(ctx context.Context, snapshots repository.StockSnapshotSource, facilityID string, asOf *time.Time) (entity.StockOnHand, error) {
	observations, err := snapshots.ListLatestByFacility(ctx, facilityID, asOf)
	if err != nil {
		return entity.StockOnHand{}, err
	}
	return inventory.ResolveStockOnHand(observations, asOf), nil
}

// report registra los movimientos que quedaron sin saldo por falta de snapshot.
func (uc *StockCardUseCase) report(facilityID string, balanced []entity.BalancedMovement) {
	unanchored := make(map[entity.ProductLotCode]int)
	count := 0
	for _, m := range balanced {
		if m.Anchored() {
			continue
		}
		unanchored[m.Code]++
		count++
	}
	uc.observer.ObserveReconstruction(len(balanced)-count, count)
	for code, n := range unanchored {
		uc.log.Debug().
			Str("facility_id", facilityID).
			Str("code", code.String()).
			Int("movements", n).
			Msg("sin snapshot: movimientos sin saldo")
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(entity.DateLayout)
}

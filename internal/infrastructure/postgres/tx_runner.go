package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stockledger-api/internal/application/inventory"
	"github.com/jhoicas/stockledger-api/internal/domain/repository"
)

var _ inventory.ReadRunner = (*TxRunner)(nil)

// readOnlySnapshot ambas lecturas (movimientos y snapshots) ven la misma foto de la BD.
var readOnlySnapshot = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunReadOnly abre una transacción REPEATABLE READ de solo lectura, ejecuta fn con las fuentes
// atadas a la tx y la cierra. Sin reintentos: los errores se devuelven al llamador.
func (r *TxRunner) RunReadOnly(ctx context.Context, fn func(
	movements repository.StockMovementSource,
	snapshots repository.StockSnapshotSource,
) error) error {
	tx, err := r.pool.BeginTx(ctx, readOnlySnapshot)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockMovementRepository(tx), NewStockSnapshotRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

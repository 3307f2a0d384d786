package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockledger-api/internal/domain"
)

// Querier abstrae *pgxpool.Pool y pgx.Tx para que los repositorios sirvan con o sin transacción.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// toQuantity convierte una cantidad NUMERIC a entero sin signo.
func toQuantity(d decimal.Decimal) (int64, error) {
	if !d.IsInteger() || d.IsNegative() {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidQuantity, d.String())
	}
	return d.IntPart(), nil
}

// toInventory convierte un inventario absoluto NUMERIC a entero (puede ser negativo).
func toInventory(d decimal.Decimal) (int64, error) {
	if !d.IsInteger() {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidQuantity, d.String())
	}
	return d.IntPart(), nil
}

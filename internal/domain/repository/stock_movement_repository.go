package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stockledger-api/internal/domain/entity"
)

// StockMovementSource puerto de lectura del log de movimientos de una instalación.
// since/at son fechas calendario inclusivas sobre la fecha de ocurrencia; nil = sin límite.
// Las filas deben venir en orden de registro estable (el motor lo usa como último desempate).
type StockMovementSource interface {
	ListByFacility(ctx context.Context, facilityID string, since, at *time.Time) ([]entity.StockMovementRow, error)
}

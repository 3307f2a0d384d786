package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/stockledger-api/internal/application/dto"
	"github.com/jhoicas/stockledger-api/internal/application/inventory"
	"github.com/jhoicas/stockledger-api/internal/domain"
	"github.com/jhoicas/stockledger-api/internal/domain/entity"
)

// StockCardHandler expone la reconstrucción de stock cards de una instalación (solo lectura, protegido).
type StockCardHandler struct {
	uc            *inventory.StockCardUseCase
	maxWindowDays int
}

// NewStockCardHandler construye el handler. maxWindowDays = 0 desactiva el límite de rango.
func NewStockCardHandler(uc *inventory.StockCardUseCase, maxWindowDays int) *StockCardHandler {
	return &StockCardHandler{uc: uc, maxWindowDays: maxWindowDays}
}

// GetStockOnHand godoc
// @Summary      Stock on hand por producto/lote
// @Tags         stock-cards
// @Security     Bearer
// @Produce      json
// @Param        facilityId  path   string  true   "UUID de la instalación"
// @Param        as_of       query  string  false  "Fecha de corte YYYY-MM-DD (vacío = más reciente)"
// @Success      200  {object}  dto.StockOnHandResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/facilities/{facilityId}/stock-on-hand [get]
func (h *StockCardHandler) GetStockOnHand(c *fiber.Ctx) error {
	facilityID, err := parseFacilityID(c)
	if err != nil {
		return writeError(c, err)
	}
	asOf, err := parseDateQuery(c, "as_of")
	if err != nil {
		return writeError(c, err)
	}
	soh, err := h.uc.GetStockOnHand(c.UserContext(), facilityID, asOf)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewStockOnHandResponse(facilityID, asOf, soh))
}

// GetProductMovements godoc
// @Summary      Movimientos de producto con saldos reconstruidos
// @Description  Movimientos con fecha de ocurrencia en [since, at], anclados al snapshot vigente en at.
// @Tags         stock-cards
// @Security     Bearer
// @Produce      json
// @Param        facilityId  path   string  true   "UUID de la instalación"
// @Param        since       query  string  false  "Desde YYYY-MM-DD (inclusivo)"
// @Param        at          query  string  false  "Hasta YYYY-MM-DD (inclusivo)"
// @Success      200  {object}  dto.ProductMovementsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/facilities/{facilityId}/product-movements [get]
func (h *StockCardHandler) GetProductMovements(c *fiber.Ctx) error {
	facilityID, err := parseFacilityID(c)
	if err != nil {
		return writeError(c, err)
	}
	since, err := parseDateQuery(c, "since")
	if err != nil {
		return writeError(c, err)
	}
	at, err := parseDateQuery(c, "at")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.checkWindow(since, at); err != nil {
		return writeError(c, err)
	}
	movements, err := h.uc.GetAllProductMovements(c.UserContext(), facilityID, since, at)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewProductMovementsResponse(facilityID, since, at, movements))
}

// GetLatestProductMovements godoc
// @Summary      Historial completo de movimientos de producto
// @Tags         stock-cards
// @Security     Bearer
// @Produce      json
// @Param        facilityId  path   string  true  "UUID de la instalación"
// @Success      200  {object}  dto.ProductMovementsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/facilities/{facilityId}/product-movements/latest [get]
func (h *StockCardHandler) GetLatestProductMovements(c *fiber.Ctx) error {
	facilityID, err := parseFacilityID(c)
	if err != nil {
		return writeError(c, err)
	}
	movements, err := h.uc.GetLatestProductMovements(c.UserContext(), facilityID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewProductMovementsResponse(facilityID, nil, nil, movements))
}

// checkWindow solo acota rangos con ambos extremos; sin since el llamador pide todo el historial.
func (h *StockCardHandler) checkWindow(since, at *time.Time) error {
	if since == nil || at == nil {
		return nil
	}
	if since.After(*at) {
		return domain.ErrInvalidWindow
	}
	if h.maxWindowDays > 0 && at.Sub(*since) > time.Duration(h.maxWindowDays)*24*time.Hour {
		return domain.ErrWindowTooLarge
	}
	return nil
}

func parseFacilityID(c *fiber.Ctx) (string, error) {
	id, err := uuid.Parse(c.Params("facilityId"))
	if err != nil {
		return "", domain.ErrInvalidInput
	}
	return id.String(), nil
}

func parseDateQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(entity.DateLayout, raw)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &t, nil
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "facility_id debe ser UUID y las fechas YYYY-MM-DD"})
	case errors.Is(err, domain.ErrInvalidWindow):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_WINDOW", Message: "since no puede ser posterior a at"})
	case errors.Is(err, domain.ErrWindowTooLarge):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "WINDOW_TOO_LARGE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_DATA", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

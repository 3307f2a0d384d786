package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockledger-api/internal/application/dto"
	"github.com/jhoicas/stockledger-api/internal/application/inventory"
	"github.com/jhoicas/stockledger-api/internal/domain/entity"
	"github.com/jhoicas/stockledger-api/internal/domain/repository"
	"github.com/jhoicas/stockledger-api/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/stockledger-api/internal/interfaces/http"
)

const testFacilityID = "7f1c9a2e-3b4d-4e5f-8a9b-0c1d2e3f4a5b"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type stubMovements struct {
	rows      []entity.StockMovementRow
	err       error
	since, at *time.Time
}

func (s *stubMovements) ListByFacility(_ context.Context, _ string, since, at *time.Time) ([]entity.StockMovementRow, error) {
	s.since, s.at = since, at
	return s.rows, s.err
}

type stubSnapshots struct {
	stocks []entity.ProductLotStock
	asOf   *time.Time
}

func (s *stubSnapshots) ListLatestByFacility(_ context.Context, _ string, asOf *time.Time) ([]entity.ProductLotStock, error) {
	s.asOf = asOf
	return s.stocks, nil
}

type stubRunner struct {
	movements *stubMovements
	snapshots *stubSnapshots
}

func (r *stubRunner) RunReadOnly(_ context.Context, fn func(repository.StockMovementSource, repository.StockSnapshotSource) error) error {
	return fn(r.movements, r.snapshots)
}

func strPtr(s string) *string { return &s }

func date(s string) time.Time {
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// newLedgerFixture P1/L1 con snapshot 100 y una recepción de 10 el 2024-01-02.
func newLedgerFixture() *stubRunner {
	recorded := date("2024-01-02").Add(9 * time.Hour)
	return &stubRunner{
		movements: &stubMovements{rows: []entity.StockMovementRow{{
			ProductCode:  "P1",
			LotCode:      strPtr("L1"),
			OccurredDate: date("2024-01-02"),
			RecordedAt:   recorded,
			Quantity:     10,
			SourceName:   strPtr("Central Warehouse"),
			ReasonName:   strPtr("Receipt"),
			ReasonType:   strPtr("CREDIT"),
		}}},
		snapshots: &stubSnapshots{stocks: []entity.ProductLotStock{{
			Code:      entity.NewProductLotCode("P1", "L1"),
			Inventory: 100,
			EventTime: entity.NewEventTime(date("2024-01-02"), recorded),
		}}},
	}
}

func buildStockCardApp(t *testing.T, runner inventory.ReadRunner, m *metrics.Metrics) *fiber.App {
	t.Helper()
	uc := inventory.NewStockCardUseCase(runner, nil, zerolog.Nop())
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		StockCard:     uc,
		JWTSecret:     testJWTSecret,
		JWTIssuer:     testIssuer,
		MaxWindowDays: 31,
		Metrics:       m,
	})
	return app
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock on hand
// ──────────────────────────────────────────────────────────────────────────────

func TestGetStockOnHand_DevuelveSnapshot(t *testing.T) {
	runner := newLedgerFixture()
	app := buildStockCardApp(t, runner, nil)

	resp := doGet(t, app, "/api/facilities/"+testFacilityID+"/stock-on-hand?as_of=2024-01-31", bearer(t))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.StockOnHandResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testFacilityID, body.FacilityID)
	assert.Equal(t, "2024-01-31", body.AsOf)
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "P1", body.Items[0].ProductCode)
	assert.Equal(t, "L1", body.Items[0].LotCode)
	assert.Equal(t, int64(100), body.Items[0].StockOnHand)

	require.NotNil(t, runner.snapshots.asOf)
	assert.True(t, date("2024-01-31").Equal(*runner.snapshots.asOf))
}

func TestGetStockOnHand_SinToken_Retorna401(t *testing.T) {
	app := buildStockCardApp(t, newLedgerFixture(), nil)

	resp := doGet(t, app, "/api/facilities/"+testFacilityID+"/stock-on-hand", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGetStockOnHand_FacilityNoUUID_Retorna400(t *testing.T) {
	app := buildStockCardApp(t, newLedgerFixture(), nil)

	resp := doGet(t, app, "/api/facilities/no-es-uuid/stock-on-hand", bearer(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, resp).Code)
}

func TestGetStockOnHand_FechaInvalida_Retorna400(t *testing.T) {
	app := buildStockCardApp(t, newLedgerFixture(), nil)

	resp := doGet(t, app, "/api/facilities/"+testFacilityID+"/stock-on-hand?as_of=31-01-2024", bearer(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Product movements
// ──────────────────────────────────────────────────────────────────────────────

func TestGetProductMovements_ReconstruyeSaldos(t *testing.T) {
	runner := newLedgerFixture()
	app := buildStockCardApp(t, runner, nil)

	resp := doGet(t, app, "/api/facilities/"+testFacilityID+"/product-movements?since=2024-01-01&at=2024-01-31", bearer(t))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ProductMovementsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2024-01-01", body.Since)
	assert.Equal(t, "2024-01-31", body.At)
	require.Equal(t, 1, body.Total)

	pm := body.Movements[0]
	assert.Equal(t, "P1", pm.ProductCode)
	assert.Equal(t, "2024-01-02", pm.OccurredDate)
	require.NotNil(t, pm.Detail)
	assert.Equal(t, int64(10), pm.Detail.MovementQuantity)
	require.NotNil(t, pm.Detail.Source)
	assert.Equal(t, "Central Warehouse", *pm.Detail.Source)
	require.Len(t, pm.LotMovements, 1)
	assert.Equal(t, "L1", pm.LotMovements[0].LotCode)
	require.NotNil(t, pm.LotMovements[0].StockOnHand)
	assert.Equal(t, int64(100), *pm.LotMovements[0].StockOnHand)

	require.NotNil(t, runner.movements.since)
	require.NotNil(t, runner.movements.at)
	assert.True(t, date("2024-01-01").Equal(*runner.movements.since))
	assert.True(t, date("2024-01-31").Equal(*runner.movements.at))
}

func TestGetProductMovements_SinceMayorQueAt_Retorna400(t *testing.T) {
	app := buildStockCardApp(t, newLedgerFixture(), nil)

	resp := doGet(t, app, "/api/facilities/"+testFacilityID+"/product-movements?since=2024-02-01&at=2024-01-01", bearer(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_WINDOW", decodeError(t, resp).Code)
}

func TestGetProductMovements_RangoExcedido_Retorna400(t *testing.T) {
	app := buildStockCardApp(t, newLedgerFixture(), nil)

	resp := doGet(t, app, "/api/facilities/"+testFacilityID+"/product-movements?since=2024-01-01&at=2024-06-01", bearer(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "WINDOW_TOO_LARGE", decodeError(t, resp).Code)
}

func TestGetProductMovements_SoloAt_SinLimiteDeRango(t *testing.T) {
	runner := newLedgerFixture()
	app := buildStockCardApp(t, runner, nil)

	resp := doGet(t, app, "/api/facilities/"+testFacilityID+"/product-movements?at=2024-06-01", bearer(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, runner.movements.since)
}

func TestGetProductMovements_ErrorDeDatos_Retorna500(t *testing.T) {
	runner := newLedgerFixture()
	runner.movements.err = errors.New("conexión perdida")
	app := buildStockCardApp(t, runner, nil)

	resp := doGet(t, app, "/api/facilities/"+testFacilityID+"/product-movements/latest", bearer(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL", decodeError(t, resp).Code)
}

func TestGetLatestProductMovements_SinLimites(t *testing.T) {
	runner := newLedgerFixture()
	app := buildStockCardApp(t, runner, nil)

	resp := doGet(t, app, "/api/facilities/"+testFacilityID+"/product-movements/latest", bearer(t))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ProductMovementsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Since)
	assert.Empty(t, body.At)
	assert.Equal(t, 1, body.Total)
	assert.Nil(t, runner.movements.since)
	assert.Nil(t, runner.movements.at)
}

// ──────────────────────────────────────────────────────────────────────────────
// Métricas
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_MetricsExpuestasSinToken(t *testing.T) {
	m := metrics.New("test")
	app := buildStockCardApp(t, newLedgerFixture(), m)

	resp := doGet(t, app, "/api/facilities/"+testFacilityID+"/stock-on-hand", bearer(t))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doGet(t, app, "/metrics", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "test_http_requests_total")
	assert.Contains(t, string(body), `route="/api/facilities/:facilityId/stock-on-hand"`)
}

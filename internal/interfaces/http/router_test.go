package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/precios-pro/internal/application/usecase"
	"github.com/tu-usuario/precios-pro/internal/infrastructure/memory"
	apphttp "github.com/tu-usuario/precios-pro/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la API completa sobre los almacenes en memoria.
func buildTestApp() *fiber.App {
	products := memory.NewProductStore()
	salesRepo := memory.NewSaleStore()
	configRepo := memory.NewConfigStore()

	deps := apphttp.RouterDeps{
		ProductUC:   usecase.NewProductUseCase(products),
		PricingUC:   usecase.NewPricingUseCase(products, configRepo),
		SalesUC:     usecase.NewSalesUseCase(salesRepo, products, memory.NewTxRunner(products, salesRepo), nil),
		AnalyticsUC: usecase.NewAnalyticsUseCase(products, salesRepo, configRepo, nil),
		ConfigUC:    usecase.NewConfigUseCase(configRepo),
	}

	app := fiber.New()
	apphttp.Router(app, deps)
	return app
}

// doJSON lanza una petición con cuerpo JSON y decodifica la respuesta en out.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// seedOperatingPercentages carga los porcentajes operativos de referencia
// (10 + 15 + 14 = 39).
func seedOperatingPercentages(t *testing.T, app *fiber.App) {
	t.Helper()
	for _, entry := range []map[string]any{
		{"key": "contabilidad", "amount": "10"},
		{"key": "mercadeo", "amount": "15"},
		{"key": "operacion", "amount": "14"},
	} {
		code := doJSON(t, app, http.MethodPost, "/api/config/operating_percentages", entry, nil)
		require.Equal(t, http.StatusOK, code)
	}
}

// createProduct crea un producto y devuelve su ID.
func createProduct(t *testing.T, app *fiber.App, body map[string]any) string {
	t.Helper()
	var created map[string]any
	code := doJSON(t, app, http.MethodPost, "/api/products/", body, &created)
	require.Equal(t, http.StatusCreated, code)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	return id
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo: configurar → crear producto → tarificar → vender → dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_FlujoCompletoDePrecioYVenta(t *testing.T) {
	app := buildTestApp()
	seedOperatingPercentages(t, app)

	id := createProduct(t, app, map[string]any{
		"name":               "Camiseta estampada",
		"purchase_cost":      "20000",
		"desired_margin_pct": "30",
		"stock_quantity":     10,
	})

	// Calcular y aplicar el precio: 20.000 / 0,61 / 0,70 = 46.838.
	var pricing map[string]any
	code := doJSON(t, app, http.MethodPost, "/api/products/"+id+"/pricing", nil, &pricing)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "46838", pricing["final_price"], "precio despejado con %operativos 39 y margen 30")
	assert.Equal(t, "26838", pricing["unit_profit"])

	// Registrar una venta de 2 unidades al precio aplicado.
	var sale map[string]any
	code = doJSON(t, app, http.MethodPost, "/api/sales/", map[string]any{
		"product_id": id,
		"quantity":   2,
	}, &sale)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "93676", sale["total_revenue"])
	assert.Equal(t, "53676", sale["total_profit"])

	// El stock bajó de 10 a 8.
	var stored map[string]any
	code = doJSON(t, app, http.MethodGet, "/api/products/"+id, nil, &stored)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(8), stored["stock_quantity"])

	// El resumen de ventana refleja la venta.
	var summary map[string]any
	code = doJSON(t, app, http.MethodGet, "/api/products/"+id+"/sales-summary", nil, &summary)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(30), summary["window_days"])
	assert.Equal(t, float64(2), summary["units_sold"])

	// El dashboard integra los mismos números.
	var dash map[string]any
	code = doJSON(t, app, http.MethodGet, "/api/analytics/dashboard", nil, &dash)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "93676", dash["revenue_30_days"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de errores de dominio a códigos HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_ProductoInexistenteRetorna404(t *testing.T) {
	app := buildTestApp()

	var errBody map[string]any
	code := doJSON(t, app, http.MethodGet, "/api/products/no-existe", nil, &errBody)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", errBody["code"])
}

func TestAPI_ConfiguracionImposibleRetorna422(t *testing.T) {
	app := buildTestApp()

	// %operativos = 100: el despeje del precio deja de estar definido.
	code := doJSON(t, app, http.MethodPost, "/api/config/operating_percentages",
		map[string]any{"key": "todo", "amount": "100"}, nil)
	require.Equal(t, http.StatusOK, code)

	id := createProduct(t, app, map[string]any{
		"name":          "Imposible",
		"purchase_cost": "1000",
	})

	var errBody map[string]any
	code = doJSON(t, app, http.MethodGet, "/api/products/"+id+"/pricing", nil, &errBody)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "INVALID_CONFIGURATION", errBody["code"])
}

func TestAPI_VentaSinProductoRetorna400(t *testing.T) {
	app := buildTestApp()

	var errBody map[string]any
	code := doJSON(t, app, http.MethodPost, "/api/sales/", map[string]any{"quantity": 1}, &errBody)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION", errBody["code"])
}

func TestAPI_MapaDeConfigDesconocidoRetorna404(t *testing.T) {
	app := buildTestApp()

	code := doJSON(t, app, http.MethodPost, "/api/config/otro_mapa",
		map[string]any{"key": "x", "amount": "1"}, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

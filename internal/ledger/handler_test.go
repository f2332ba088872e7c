package ledger_test

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"kebab-inventory-backend/internal/database"
	"kebab-inventory-backend/internal/ledger"
	"kebab-inventory-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	setupTestDB(t)

	app := fiber.New()
	app.Get("/api/inventory/:date", ledger.GetDayHandler())
	app.Post("/api/inventory/:date", ledger.SaveDayHandler())
	app.Get("/api/reports/daily/:date", ledger.DailyReportHandler())
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, target, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp, raw
}

// Counters missing from the request body are zeroes, not errors.
func TestSaveDayHandlerPermissiveBlanks(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, "POST", "/api/inventory/2024-01-01",
		`{"entries":[{"product_id":1,"production":12}]}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, raw)
	}

	var saveResp ledger.SaveDayResponse
	if err := json.Unmarshal(raw, &saveResp); err != nil {
		t.Fatalf("decode save response: %v", err)
	}
	if saveResp.Saved != 1 || len(saveResp.Failed) != 0 {
		t.Fatalf("unexpected save response: %+v", saveResp)
	}

	resp, raw = doJSON(t, app, "GET", "/api/inventory/2024-01-01", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, raw)
	}

	var view ledger.DailyView
	if err := json.Unmarshal(raw, &view); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	e := view.Entries[0]
	if e.Initial != 0 || e.Production != 12 || e.Shipment != 0 || e.Returns != 0 {
		t.Fatalf("blank counters not zeroed: %+v", e)
	}
	if e.Final != 12 {
		t.Errorf("final = %d, want 12", e.Final)
	}
}

func TestSaveDayHandlerPartialFailure(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, "POST", "/api/inventory/2024-01-01",
		`{"entries":[{"product_id":1,"initial":5},{"product_id":2,"initial":-5}]}`)
	if resp.StatusCode != fiber.StatusMultiStatus {
		t.Fatalf("status = %d, want 207; body = %s", resp.StatusCode, raw)
	}

	var saveResp ledger.SaveDayResponse
	if err := json.Unmarshal(raw, &saveResp); err != nil {
		t.Fatalf("decode save response: %v", err)
	}
	if saveResp.Saved != 1 || len(saveResp.Failed) != 1 {
		t.Fatalf("unexpected save response: %+v", saveResp)
	}
	if saveResp.Failed[0].ProductID != 2 || saveResp.Failed[0].Date != "2024-01-01" {
		t.Errorf("failure lacks retry context: %+v", saveResp.Failed[0])
	}
}

func TestSaveDayHandlerWritesAuditLog(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, "POST", "/api/inventory/2024-01-01", `{"entries":[{"product_id":1,"initial":1}]}`)

	var count int64
	if err := database.DB.Model(&models.AuditLog{}).
		Where("entity_type = ?", "inventory_day").Count(&count).Error; err != nil {
		t.Fatalf("count audit logs: %v", err)
	}
	if count != 1 {
		t.Errorf("got %d audit rows, want 1", count)
	}
}

func TestDailyReportHandler(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, "POST", "/api/inventory/2024-01-01",
		`{"entries":[{"product_id":1,"initial":10,"production":5,"shipment":3}]}`)

	resp, raw := doJSON(t, app, "GET", "/api/reports/daily/2024-01-01", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, raw)
	}

	var report ledger.DailyReport
	if err := json.Unmarshal(raw, &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if len(report.PerProduct) != 6 {
		t.Fatalf("got %d report rows, want 6", len(report.PerProduct))
	}
	if report.PerProduct[0].Final != 12 || report.Totals.Final != 12 {
		t.Errorf("final = %d / totals = %d, want 12 / 12",
			report.PerProduct[0].Final, report.Totals.Final)
	}
}

func TestInventoryHandlersRejectBadDate(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "GET", "/api/inventory/today", "")
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("GET status = %d, want 400", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, "POST", "/api/inventory/2024-1-1", `{"entries":[]}`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("POST status = %d, want 400", resp.StatusCode)
	}
}

//go:build integration

package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aevon-lab/sales-analytics/internal/core/storage"
	"github.com/aevon-lab/sales-analytics/internal/core/storage/postgres"
	"github.com/aevon-lab/sales-analytics/internal/core/storage/sqlite"
	"github.com/aevon-lab/sales-analytics/internal/ingestion"
	"github.com/aevon-lab/sales-analytics/internal/migrations"
	"github.com/aevon-lab/sales-analytics/internal/projection"
	"github.com/aevon-lab/sales-analytics/internal/server"
	"github.com/stretchr/testify/require"
)

// SALESD_TEST_DSN switches the harness from a temp SQLite file to Postgres.
const testDSNEnv = "SALESD_TEST_DSN"

const ledgerCSV = `Order ID,Order Date,Ship Date,Ship Mode,Customer ID,Customer Name,Segment,Country,Region,Category,Sub-Category,Product Name,Sales,Quantity,Discount,Profit
A-1,2020-01-05,2020-01-08,Standard Class,C-1,Ann,Consumer,United States,West,Furniture,Chairs,Chair,100,1,0,10
A-2,15-01-2020,,Second Class,C-2,Bob,Corporate,United States,East,Technology,Phones,Phone,50.5,2,0.1,5
A-3,2/3/2020,,First Class,C-3,Cy,Consumer,United States,West,Furniture,Tables,Table,200,1,0,20
A-4,2020-03-09,,Same Day,C-4,Di,Home Office,United States,East,Office Supplies,Paper,Paper,300,3,0,-30
A-5,,,,C-5,Ed,Consumer,United States,East,Technology,Phones,Phone,999,1,0,1
`

type integrationHarness struct {
	baseURL    string
	client     *http.Client
	db         *sql.DB
	cancel     context.CancelFunc
	serverDone chan error
}

func (h *integrationHarness) close(t *testing.T) {
	t.Helper()

	h.cancel()
	select {
	case <-h.serverDone:
	case <-time.After(5 * time.Second):
		t.Log("server shutdown timed out")
	}
	require.NoError(t, h.db.Close())
}

func TestSalesAPI_ImportThenQuery(t *testing.T) {
	h := startHarness(t)
	defer h.close(t)

	status, body := post(t, h, "/api/sales/import", ledgerCSV)
	require.Equal(t, http.StatusOK, status, string(body))

	var result ingestion.ImportResult
	require.NoError(t, json.Unmarshal(body, &result))
	require.Equal(t, 5, result.Rows)
	require.Equal(t, 1, result.UndatedRows)
	require.NotEmpty(t, result.ImportID)

	status, body = get(t, h, "/api/sales/monthly")
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `[
		{"month":"2020-01","total_sales":150.5,"total_profit":15},
		{"month":"2020-02","total_sales":200,"total_profit":20},
		{"month":"2020-03","total_sales":300,"total_profit":-30}
	]`, string(body))

	status, body = get(t, h, "/api/sales/top-categories?limit=2")
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `[
		{"category":"Technology","total_sales":1049.5,"total_profit":6},
		{"category":"Furniture","total_sales":300,"total_profit":30}
	]`, string(body))

	status, body = get(t, h, "/api/sales/regions?start=2020-02-01")
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `[
		{"region":"East","total_sales":300},
		{"region":"West","total_sales":200}
	]`, string(body))

	status, body = post(t, h, "/api/sales/predict?region=West", "")
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"next_month_forecast":300,"points_used":2,"slope":100,"forecast_month":"2020-03"}`, string(body))
}

func TestSalesAPI_ReimportReplacesLedger(t *testing.T) {
	h := startHarness(t)
	defer h.close(t)

	status, _ := post(t, h, "/api/sales/import", ledgerCSV)
	require.Equal(t, http.StatusOK, status)

	replacement := "Order ID,Order Date,Region,Category,Sales,Quantity,Profit\nB-1,2021-06-01,South,Furniture,42,1,4\n"
	status, _ = post(t, h, "/api/sales/import", replacement)
	require.Equal(t, http.StatusOK, status)

	status, body := get(t, h, "/api/sales/regions")
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `[{"region":"South","total_sales":42}]`, string(body))
}

func TestSalesAPI_RejectsBadRequests(t *testing.T) {
	h := startHarness(t)
	defer h.close(t)

	status, _ := post(t, h, "/api/sales/import", "Order ID,Region\n")
	require.Equal(t, http.StatusBadRequest, status)

	status, _ = get(t, h, "/api/sales/monthly?start=2020-13-01")
	require.Equal(t, http.StatusBadRequest, status)

	status, _ = get(t, h, "/api/sales/monthly?bogus=1")
	require.Equal(t, http.StatusBadRequest, status)
}

func startHarness(t *testing.T) *integrationHarness {
	t.Helper()

	db, store := openStore(t)

	ingestionSvc := ingestion.NewService(store, 1)
	projectionSvc := projection.NewService(store)

	addr := fmt.Sprintf("127.0.0.1:%d", freePort(t))
	httpServer := server.New(addr, db, "release", []string{"*"})
	ingestionSvc.RegisterRoutes(httpServer.Engine)
	projectionSvc.RegisterRoutes(httpServer.Engine)

	ctx, cancel := context.WithCancel(context.Background())
	serverDone := make(chan error, 1)
	go func() { serverDone <- httpServer.Run(ctx) }()

	baseURL := "http://" + addr
	waitForHealthy(t, baseURL)

	return &integrationHarness{
		baseURL:    baseURL,
		client:     &http.Client{Timeout: 5 * time.Second},
		db:         db,
		cancel:     cancel,
		serverDone: serverDone,
	}
}

func openStore(t *testing.T) (*sql.DB, storage.SalesStore) {
	t.Helper()

	if dsn := os.Getenv(testDSNEnv); dsn != "" {
		db, err := postgres.Open(dsn, 10, 10)
		require.NoError(t, err)
		require.NoError(t, migrations.RunMigrations(db, migrations.Postgres, true))
		adapter, err := postgres.NewAdapter(db)
		require.NoError(t, err)
		return db, adapter
	}

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "sales.db"), 1)
	require.NoError(t, err)
	require.NoError(t, migrations.RunMigrations(db, migrations.SQLite, true))
	adapter, err := sqlite.NewAdapter(db)
	require.NoError(t, err)
	return db, adapter
}

func waitForHealthy(t *testing.T, baseURL string) {
	t.Helper()

	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(baseURL + "/api/health")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("server at %s did not become healthy", baseURL)
}

func get(t *testing.T, h *integrationHarness, path string) (int, []byte) {
	t.Helper()

	resp, err := h.client.Get(h.baseURL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func post(t *testing.T, h *integrationHarness, path, csvBody string) (int, []byte) {
	t.Helper()

	resp, err := h.client.Post(h.baseURL+path, "text/csv", strings.NewReader(csvBody))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func freePort(t *testing.T) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

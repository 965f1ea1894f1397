package app

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tair/gog-commerce/internal/config"
	"github.com/tair/gog-commerce/pkg/logger"
)

// newTestServer wires the full API against a database that refuses connections
func newTestServer(t *testing.T) *Server {
	t.Helper()

	sqlDB, err := sql.Open("postgres", "host=127.0.0.1 port=1 user=nobody dbname=none sslmode=disable connect_timeout=1")
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DisableAutomaticPing: true})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}

	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("RAZORPAY_KEY_SECRET", "test_secret")
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}

	srv, err := InitializeServer(cfg, db, nil, nil, prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("InitializeServer: %v", err)
	}
	return srv
}

func TestRouter(t *testing.T) {
	router := newTestServer(t).Router()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"health reports database down", http.MethodGet, "/health", "", http.StatusServiceUnavailable},
		{"metrics exposition", http.MethodGet, "/metrics", "", http.StatusOK},
		{"routes live under /api", http.MethodGet, "/products", "", http.StatusNotFound},
		{"user data requires a token", http.MethodGet, "/api/userData", "", http.StatusUnauthorized},
		{"admin routes require a token", http.MethodGet, "/api/admin/orders", "", http.StatusUnauthorized},
		{"bad signature", http.MethodPost, "/api/payment/verify", `{"razorpay_order_id":"o","razorpay_payment_id":"p","razorpay_signature":"x"}`, http.StatusBadRequest},
		{"sales report requires a token", http.MethodGet, "/api/admin/sales/decade", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("%s %s = %d, want %d (body %s)", tt.method, tt.path, rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestMetricsExposeRequestCounters(t *testing.T) {
	router := newTestServer(t).Router()

	req := httptest.NewRequest(http.MethodGet, "/api/userData", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rec.Body.String(), MetricsNamespace+"_") {
		t.Errorf("metrics output lacks %s collectors", MetricsNamespace)
	}
}

func TestHealthReportsGatewayCircuit(t *testing.T) {
	router := newTestServer(t).Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body struct {
		Status         string                 `json:"status"`
		PaymentGateway map[string]interface{} `json:"payment_gateway"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "unhealthy" {
		t.Errorf("status = %q", body.Status)
	}
	if body.PaymentGateway["name"] != "razorpay" || body.PaymentGateway["state"] != "closed" {
		t.Errorf("payment_gateway = %v", body.PaymentGateway)
	}
}

func TestRequestLogsCarryTraceID(t *testing.T) {
	prevProvider := otel.GetTracerProvider()
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	prevLogger := logger.Logger
	var buf bytes.Buffer
	logger.Logger = zerolog.New(&buf)
	t.Cleanup(func() {
		otel.SetTracerProvider(prevProvider)
		logger.Logger = prevLogger
		tp.Shutdown(context.Background())
	})

	router := newTestServer(t).Router()
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/userData", nil))

	if !strings.Contains(buf.String(), `"trace_id"`) {
		t.Errorf("api request log lacks trace_id: %s", buf.String())
	}
}

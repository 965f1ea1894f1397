package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tair/gog-commerce/pkg/auth"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestAuthenticate(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	a := NewAuthenticator(tokens)

	valid, err := tokens.GenerateToken(auth.Identity{UserID: 7, Email: "u@example.com", Role: "user"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	foreign, err := auth.NewTokenManager("other", time.Hour).GenerateToken(auth.Identity{UserID: 7})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing token", "", http.StatusUnauthorized},
		{"foreign signature", "Bearer " + foreign, http.StatusForbidden},
		{"garbage", "Bearer abc.def.ghi", http.StatusForbidden},
		{"bearer token", "Bearer " + valid, http.StatusOK},
		{"bare token", valid, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotClaims *auth.Claims
			h := a.Authenticate(func(w http.ResponseWriter, r *http.Request) {
				gotClaims, _ = ClaimsFromContext(r.Context())
				okHandler(w, r)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/userData", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h(rr, req)

			if rr.Code != tt.want {
				t.Fatalf("status = %d, want %d", rr.Code, tt.want)
			}
			if tt.want == http.StatusOK && (gotClaims == nil || gotClaims.UserID != 7) {
				t.Errorf("claims not propagated: %+v", gotClaims)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	a := NewAuthenticator(tokens)
	h := a.RequireAdmin(okHandler)

	userToken, _ := tokens.GenerateToken(auth.Identity{UserID: 1, Role: "user"})
	adminToken, _ := tokens.GenerateToken(auth.Identity{UserID: 2, Role: "admin"})

	for token, want := range map[string]int{userToken: http.StatusForbidden, adminToken: http.StatusOK} {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		h(rr, req)
		if rr.Code != want {
			t.Errorf("status = %d, want %d", rr.Code, want)
		}
	}
}

func TestMetricsMiddlewareUsesRouteTemplate(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg, "test")

	router := mux.NewRouter()
	router.Use(m.Middleware)
	router.HandleFunc("/api/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for i := 0; i < 2; i++ {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/products/9", nil))
	}

	got := testutil.ToFloat64(m.requestCounter.WithLabelValues(http.MethodGet, "/api/products/{id}", "404"))
	if got != 2 {
		t.Errorf("counter = %v, want 2", got)
	}
}

func TestCacheAndLimiterWithoutRedisPassThrough(t *testing.T) {
	cache := NewResponseCache(nil, "cache:catalog", time.Minute)
	limiter := NewRateLimiter(nil, "auth", 1, time.Minute)

	h := cache.Middleware(limiter.Limit(okHandler))
	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/products", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, rr.Code)
		}
		if rr.Header().Get("X-Cache") != "" {
			t.Fatalf("cache header set without redis")
		}
	}

	if err := cache.Invalidate(httptest.NewRequest(http.MethodGet, "/", nil).Context()); err != nil {
		t.Errorf("Invalidate without redis: %v", err)
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"":              "",
		"Bearer abc":    "abc",
		"bearer  abc ":  "abc",
		"abc":           "abc",
		"Basic dXNlcjo": "",
	}
	for header, want := range cases {
		if got := bearerToken(header); got != want {
			t.Errorf("bearerToken(%q) = %q, want %q", header, got, want)
		}
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.RemoteAddr = "10.0.0.5:5123"
	if got := clientIP(req); got != "10.0.0.5" {
		t.Errorf("clientIP = %q", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if got := clientIP(req); got != "203.0.113.9" {
		t.Errorf("clientIP with forwarded header = %q", got)
	}
}
